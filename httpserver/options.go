package httpserver

import (
	"errors"
	"fmt"

	"moviestore/movie"
	"moviestore/pkg/config"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Options func(s *Server) error

func WithConfig(cfg *config.Config) Options {
	return func(s *Server) error {
		if cfg.Port > 0 {
			s.Addr = fmt.Sprintf(":%d", cfg.Port)
		}
		s.AllowOrigins = cfg.Origins()
		s.RateLimit = rate.Limit(cfg.RateLimit)
		return nil
	}
}

func WithLogger(l *zap.SugaredLogger) Options {
	return func(s *Server) error {
		if l == nil {
			return errors.New("httpserver: nil logger")
		}
		s.Logger = l
		return nil
	}
}

func WithMovieService(svc movie.Service) Options {
	return func(s *Server) error {
		s.MovieService = svc
		return nil
	}
}
