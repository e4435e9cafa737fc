// Package config loads the application configuration from environment
// variables. Database connection parameters stay external, the core
// contract does not depend on them.
package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	ListenAddr string        `env:"LISTEN_ADDR, default=:8080"`
	DBDriver   string        `env:"DB_DRIVER, default=sqlite"`
	DBDSN      string        `env:"DB_DSN, default=cajeroweb.db"`
	SessionTTL time.Duration `env:"SESSION_TTL, default=30m"`
}

func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	err := envconfig.Process(ctx, &cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
