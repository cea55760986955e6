package config

import (
	"fmt"
	"strings"

	"moviestore/movie"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var Empty = new(Config)

type Config struct {
	AppEnv       string  `envconfig:"APP_ENV"`
	Port         int     `envconfig:"PORT" default:"8080"`
	GRPCPort     int     `envconfig:"GRPC_PORT"`
	SentryDSN    string  `envconfig:"SENTRY_DSN"`
	AllowOrigins string  `envconfig:"ALLOW_ORIGINS" default:"*"`
	RateLimit    float64 `envconfig:"RATE_LIMIT" default:"20"`
	SeedFile     string  `envconfig:"SEED_FILE"`

	Rating struct {
		Min int `envconfig:"RATING_MIN" default:"1"`
		Max int `envconfig:"RATING_MAX" default:"5"`
	}
}

func LoadConfig() (*Config, error) {
	// load default .env file, ignore the error
	_ = godotenv.Load()

	cfg := new(Config)
	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("load config error: %v", err)
	}

	if _, err := cfg.RatingScale(); err != nil {
		return nil, fmt.Errorf("load config error: %v", err)
	}

	return cfg, nil
}

// RatingScale returns the configured rating interval.
func (c *Config) RatingScale() (movie.RatingScale, error) {
	scale := movie.RatingScale{Min: c.Rating.Min, Max: c.Rating.Max}
	if err := scale.Validate(); err != nil {
		return movie.RatingScale{}, err
	}
	return scale, nil
}

// Origins splits ALLOW_ORIGINS into a list, dropping empty entries.
func (c *Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
