// Package config loads storefront configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the full runtime configuration. Defaults give a working
// single-binary demo with no environment set at all.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string `env:"ADDR" envDefault:":8080"`
	// StoreBackend selects the persistence backend: sqlite, redis, or memory.
	StoreBackend string `env:"STORE_BACKEND" envDefault:"sqlite"`
	// StorePath is the SQLite database file (sqlite backend only).
	StorePath string `env:"STORE_PATH" envDefault:"legoland.db"`
	// RedisURL is the Redis connection URL (redis backend only).
	RedisURL string `env:"REDIS_URL" envDefault:"redis://localhost:6379"`
}

// Parse reads configuration from environment variables.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
