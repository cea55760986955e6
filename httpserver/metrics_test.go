package httpserver_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type metricsSnapshot struct {
	RequestsReceived  int64            `json:"total_requests_received"`
	ResponsesSent     int64            `json:"total_responses_sent"`
	ResponsesByStatus map[string]int64 `json:"total_responses_sent_by_status"`
}

func TestMetrics(t *testing.T) {
	server := mustNewServer(t)
	server.Router.GET("/panic", func(c echo.Context) error {
		panic("boom")
	})

	serve(server, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	serve(server, httptest.NewRequest(http.MethodGet, "/nope", nil))
	serve(server, httptest.NewRequest(http.MethodGet, "/panic", nil))

	rec := serve(server, httptest.NewRequest(http.MethodGet, "/debug/vars", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var snapshot metricsSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot), "body: %s", rec.Body.String())

	assert.Equal(t, int64(4), snapshot.RequestsReceived)
	assert.Equal(t, int64(3), snapshot.ResponsesSent)
	assert.Equal(t, map[string]int64{"200": 1, "404": 1, "500": 1}, snapshot.ResponsesByStatus)
}

func TestMetricsArePerServer(t *testing.T) {
	first := mustNewServer(t)
	second := mustNewServer(t)

	serve(first, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	rec := serve(second, httptest.NewRequest(http.MethodGet, "/debug/vars", nil))

	var snapshot metricsSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	assert.Equal(t, int64(1), snapshot.RequestsReceived)
	assert.Equal(t, int64(0), snapshot.ResponsesSent)
	assert.Empty(t, snapshot.ResponsesByStatus)
}
