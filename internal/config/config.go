package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"ENV" default:"development"`

	// DatabaseURL selects the Postgres-backed store when set; the server
	// falls back to the in-memory store when it is empty.
	DatabaseURL string `envconfig:"DATABASE_URL"`

	// StaticDir points at the built client bundle. Static serving is
	// skipped when it is empty (e.g. when the client runs on its own
	// dev server).
	StaticDir string `envconfig:"STATIC_DIR"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
