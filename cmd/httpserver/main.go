package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"moviestore/grpcserver"
	"moviestore/httpserver"
	"moviestore/memory"
	"moviestore/movie"
	"moviestore/pkg/config"
	"moviestore/pkg/logger"
	"moviestore/pkg/sentry"
	"moviestore/seed"

	sentrygo "github.com/getsentry/sentry-go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot load config:", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.AppEnv)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot init logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Fatalw("cannot init sentry", "error", err)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	if err := run(cfg, log); err != nil {
		log.Errorw("server stopped with error", "error", err)
		sentry.Fatal(err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.SugaredLogger) error {
	scale, err := cfg.RatingScale()
	if err != nil {
		return err
	}

	movies := movie.NewUsecase(memory.NewMovieRepository(), scale)

	if cfg.SeedFile != "" {
		f, err := seed.LoadFile(cfg.SeedFile)
		if err != nil {
			return err
		}
		added, err := seed.Apply(context.Background(), movies, f)
		if err != nil {
			return err
		}
		log.Infow("seeded movie store", "file", cfg.SeedFile, "movies", added)
	}

	server, err := httpserver.New(
		httpserver.WithConfig(cfg),
		httpserver.WithLogger(log),
		httpserver.WithMovieService(movies),
	)
	if err != nil {
		return err
	}

	errChan := make(chan error, 2)
	go func() {
		log.Infow("http server started", "addr", server.Addr, "rating_min", scale.Min, "rating_max", scale.Max)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	var grpcSrv *grpcserver.Server
	if cfg.GRPCPort > 0 {
		grpcSrv = grpcserver.New(
			fmt.Sprintf(":%d", cfg.GRPCPort),
			grpcserver.WithLogger(log.Desugar()),
			grpcserver.WithRateLimit(rate.Limit(cfg.RateLimit)),
		)
		grpcSrv.SetServing(true)
		go func() {
			log.Infow("grpc health server started", "addr", grpcSrv.Addr)
			if err := grpcSrv.Start(); err != nil {
				errChan <- err
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-sigChan:
		log.Infow("shutting down", "signal", sig.String())
	case runErr = <-errChan:
	}

	if grpcSrv != nil {
		grpcSrv.SetServing(false)
		grpcSrv.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return errors.Join(runErr, err)
	}

	log.Info("server stopped")
	return runErr
}
