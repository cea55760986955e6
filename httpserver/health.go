package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) RegisterHealthRoutes() {
	s.Router.GET("/healthcheck", s.healthCheck)
}

// healthCheck godoc
// @Summary Health Check
// @Description Check if server is alive and the movie store is wired
// @Tags health
// @Success 200 {object} map[string]string
// @Router /healthcheck [get]
func (s *Server) healthCheck(c echo.Context) error {
	store := "ready"
	if s.MovieService == nil {
		store = "not_configured"
	}
	return writeSuccess(c, http.StatusOK, map[string]string{
		"status": "OK",
		"store":  store,
	})
}
