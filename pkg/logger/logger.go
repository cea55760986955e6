package logger

import (
	"go.uber.org/zap"
)

// NOOPLogger discards everything. Used as the default in tests.
var NOOPLogger = zap.NewNop().Sugar()

// New builds a sugared zap logger. Local environments get the development
// console encoder, everything else gets JSON.
func New(appEnv string) (*zap.SugaredLogger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if appEnv == "local" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	return l.Sugar().With("env", appEnv), nil
}
