package httpserver_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"moviestore/httpserver"
	"moviestore/memory"
	"moviestore/movie"

	"github.com/stretchr/testify/assert"
)

func TestHealthcheck(t *testing.T) {
	t.Run("reports a wired store", func(t *testing.T) {
		svc := movie.NewUsecase(memory.NewMovieRepository(), movie.DefaultRatingScale)
		server := mustNewServer(t, httpserver.WithMovieService(svc))

		rec := serve(server, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"code":"200"`)
		assert.Contains(t, rec.Body.String(), `"message":"OK"`)
		assert.Contains(t, rec.Body.String(), `"status":"OK"`)
		assert.Contains(t, rec.Body.String(), `"store":"ready"`)
	})

	t.Run("reports a missing store", func(t *testing.T) {
		server := mustNewServer(t)

		rec := serve(server, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"store":"not_configured"`)
	})
}
