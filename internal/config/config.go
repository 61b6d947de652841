// Package config provides environment-driven runtime configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jonathan/talentflow/internal/server/middleware"
)

// Config represents the runtime configuration. All values have defaults;
// environment variables override them.
type Config struct {
	Addr   string // listen address
	DBPath string // SQLite database path
	Seed   int64  // synthetic data random seed
	Debug  bool   // debug logging
	Chaos  middleware.ChaosConfig
}

// Load reads configuration from the environment, applying defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:   envString("TALENTFLOW_ADDR", ":8080"),
		DBPath: envString("TALENTFLOW_DB", "talentflow.db"),
		Debug:  envBool("TALENTFLOW_DEBUG", false),
		Chaos:  middleware.DefaultChaosConfig(),
	}

	var err error
	cfg.Seed, err = envInt64("TALENTFLOW_SEED", 1)
	if err != nil {
		return nil, err
	}

	minMs, err := envInt64("CHAOS_MIN_LATENCY_MS", int64(cfg.Chaos.MinLatency/time.Millisecond))
	if err != nil {
		return nil, err
	}
	maxMs, err := envInt64("CHAOS_MAX_LATENCY_MS", int64(cfg.Chaos.MaxLatency/time.Millisecond))
	if err != nil {
		return nil, err
	}
	cfg.Chaos.MinLatency = time.Duration(minMs) * time.Millisecond
	cfg.Chaos.MaxLatency = time.Duration(maxMs) * time.Millisecond

	if raw := os.Getenv("CHAOS_FAILURE_RATE"); raw != "" {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("config error: CHAOS_FAILURE_RATE must be a float: %w", err)
		}
		cfg.Chaos.FailureRate = rate
	}

	return cfg, cfg.Validate()
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("config error: database path must not be empty")
	}
	if c.Chaos.MinLatency < 0 || c.Chaos.MaxLatency < c.Chaos.MinLatency {
		return fmt.Errorf("config error: chaos latency bounds must satisfy 0 <= min <= max")
	}
	if c.Chaos.FailureRate < 0 || c.Chaos.FailureRate > 1 {
		return fmt.Errorf("config error: chaos failure rate must be in [0, 1]")
	}
	return nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v == "1" || v == "true"
}

func envInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("config error: %s must be an integer: %w", key, err)
	}
	return n, nil
}
