package httpserver

import (
	"expvar"
	"net/http"
	"strconv"

	"github.com/felixge/httpsnoop"
	"github.com/labstack/echo/v4"
)

// requestMetrics holds per server counters. They are kept off the global
// expvar registry so several servers can live in one process.
type requestMetrics struct {
	requestsReceived     expvar.Int
	responsesSent        expvar.Int
	processingTimeMicros expvar.Int
	responsesByStatus    expvar.Map
}

func (m *requestMetrics) String() string {
	vars := new(expvar.Map).Init()
	vars.Set("total_requests_received", &m.requestsReceived)
	vars.Set("total_responses_sent", &m.responsesSent)
	vars.Set("total_processing_time_μs", &m.processingTimeMicros)
	vars.Set("total_responses_sent_by_status", &m.responsesByStatus)
	return vars.String()
}

// metricsMiddleware must be the outermost middleware so it sees the status
// written by the error handler, including recovered panics.
func (s *Server) metricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.metrics.requestsReceived.Add(1)

		res := c.Response()
		original := res.Writer
		defer func() { res.Writer = original }()

		captured := httpsnoop.CaptureMetrics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res.Writer = w
			if err := next(c); err != nil {
				c.Error(err)
			}
		}), original, c.Request())

		s.metrics.responsesSent.Add(1)
		s.metrics.processingTimeMicros.Add(captured.Duration.Microseconds())
		s.metrics.responsesByStatus.Add(strconv.Itoa(captured.Code), 1)
		return nil
	}
}

func (s *Server) RegisterMetricsRoutes() {
	s.Router.GET("/debug/vars", s.handleMetrics)
}

// handleMetrics godoc
// @Summary Request Metrics
// @Description Request counters in expvar format
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /debug/vars [get]
func (s *Server) handleMetrics(c echo.Context) error {
	return c.JSONBlob(http.StatusOK, []byte(s.metrics.String()))
}
