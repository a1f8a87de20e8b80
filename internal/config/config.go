// Package config loads process configuration from the environment.
package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/lifesim-api/internal/errors"
)

// Config holds process-level configuration for the simulation shell.
// Engine components take their dependencies explicitly; this only
// covers what the process needs to wire them together.
type Config struct {
	// RedisAddr is the address of the Redis instance backing the
	// persisted counters and memorial records. Empty selects the
	// in-memory implementations (single-process, no persistence).
	RedisAddr string `env:"LIFESIM_REDIS_ADDR"`

	// GameID scopes the persisted counters; lives within the same
	// game share once_per_game and maxOccurrences tracking.
	GameID string `env:"LIFESIM_GAME_ID" envDefault:"default"`

	// Seed pins the random source when non-zero. Zero means
	// non-deterministic play.
	Seed int64 `env:"LIFESIM_SEED"`

	// StartingMoney is the player's balance at birth.
	StartingMoney int `env:"LIFESIM_STARTING_MONEY" envDefault:"500"`
}

// Load parses configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks configuration invariants
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GameID == "" {
		vb.RequiredField("GameID")
	}
	if c.StartingMoney < 0 {
		vb.Fieldf("StartingMoney", "must be non-negative, got %d", c.StartingMoney)
	}

	return vb.Build()
}
