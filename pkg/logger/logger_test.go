package logger_test

import (
	"testing"

	"moviestore/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, env := range []string{"local", "production", ""} {
		t.Run("builds logger for env "+env, func(t *testing.T) {
			l, err := logger.New(env)

			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestNOOPLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		logger.NOOPLogger.Infow("ignored", "movie_id", "m1")
	})
}
