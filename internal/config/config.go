// Package config reads process settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/samuel/internal/logging"
	"github.com/caarlos0/env/v11"
)

// Config holds the settings shared by the CLI commands and the servers.
// Command line flags take precedence over these values.
type Config struct {
	Addr            string        `env:"SAMUEL_ADDR"             envDefault:":8080"`
	LogLevel        string        `env:"SAMUEL_LOG_LEVEL"        envDefault:"info"`
	BombFile        string        `env:"SAMUEL_BOMB_FILE"`
	Seed            uint64        `env:"SAMUEL_SEED"`
	ShutdownTimeout time.Duration `env:"SAMUEL_SHUTDOWN_TIMEOUT" envDefault:"5s"`

	// RedisAddr selects the shared Redis store; empty keeps puzzles in memory.
	RedisAddr     string        `env:"SAMUEL_REDIS_ADDR"`
	RedisPassword string        `env:"SAMUEL_REDIS_PASSWORD"`
	RedisDB       int           `env:"SAMUEL_REDIS_DB"`
	PuzzleTTL     time.Duration `env:"SAMUEL_PUZZLE_TTL" envDefault:"1h"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Level returns the slog level named by LogLevel.
func (c Config) Level() (slog.Level, error) {
	return logging.ParseLevel(c.LogLevel)
}
