package httpserver

import (
	"context"
	"fmt"
	"net/http"

	"moviestore/errs"
	"moviestore/movie"
	"moviestore/pkg/logger"
	"moviestore/pkg/sentry"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/tomasen/realip"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Server struct {
	// Router is the Echo router instance
	Router *echo.Echo

	// Addr represents the address the server will listen on
	Addr string

	// Allowed origins for CORS
	AllowOrigins []string

	// Requests per second allowed per client IP, zero disables limiting
	RateLimit rate.Limit

	Logger *zap.SugaredLogger

	MovieService movie.Service

	metrics *requestMetrics
}

func New(options ...Options) (*Server, error) {
	s := Server{
		Router:       echo.New(),
		Addr:         ":8080",
		AllowOrigins: []string{"*"},
		Logger:       logger.NOOPLogger,
		metrics:      &requestMetrics{},
	}

	for _, fn := range options {
		if err := fn(&s); err != nil {
			return nil, err
		}
	}

	s.Router.HideBanner = true
	s.Router.Validator = NewValidator()
	s.Router.HTTPErrorHandler = s.handleError
	s.RegisterGlobalMiddlewares()

	s.RegisterHealthRoutes()
	s.RegisterMetricsRoutes()
	s.RegisterSwaggerRoutes()
	s.RegisterMovieRoutes(s.Router.Group("/api/movies"))
	return &s, nil
}

func (s *Server) RegisterGlobalMiddlewares() {
	s.Router.Use(s.metricsMiddleware)
	s.Router.Use(middleware.Recover())
	s.Router.Use(middleware.Secure())
	s.Router.Use(middleware.RequestID())
	s.Router.Use(middleware.Gzip())
	s.Router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))

	if s.RateLimit > 0 {
		s.Router.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
			Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
				Rate:  s.RateLimit,
				Burst: max(1, int(s.RateLimit)),
			}),
			IdentifierExtractor: func(c echo.Context) (string, error) {
				return realip.FromRequest(c.Request()), nil
			},
		}))
	}

	// CORS
	if len(s.AllowOrigins) > 0 {
		s.Router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: s.AllowOrigins,
		}))
	}
}

func (s *Server) Start() error {
	return s.Router.Start(s.Addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Router.Shutdown(ctx)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

// handleError maps application errors to HTTP status codes and writes them
// in the standard envelope. Server side failures go to sentry.
func (s *Server) handleError(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := "Internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		message = fmt.Sprint(he.Message)
	} else {
		switch errs.ErrorCode(err) {
		case errs.EINVALID:
			code = http.StatusBadRequest
			message = errs.ErrorMessage(err)
		case errs.ENOTFOUND:
			code = http.StatusNotFound
			message = errs.ErrorMessage(err)
		case errs.ECONFLICT:
			code = http.StatusConflict
			message = errs.ErrorMessage(err)
		case errs.EUNAUTHORIZED:
			code = http.StatusUnauthorized
			message = errs.ErrorMessage(err)
		case errs.ENOTIMPLEMENTED:
			code = http.StatusNotImplemented
			message = errs.ErrorMessage(err)
		}
	}

	if code >= http.StatusInternalServerError {
		s.Logger.Errorw(err.Error(), "request_id", s.requestID(c), "path", c.Path())
		sentry.WithContext(c).
			WithTags(map[string]string{"path": c.Path()}).
			WithExtras(map[string]interface{}{"status": code, "method": c.Request().Method}).
			Error(err)
	} else {
		s.Logger.Infow(err.Error(), "request_id", s.requestID(c), "status", code)
	}

	// Don't write response if already committed
	if c.Response().Committed {
		return
	}
	if err := writeError(c, code, message, "", err); err != nil {
		s.Logger.Errorw("write error response", "error", err)
	}
}

func (s *Server) requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
