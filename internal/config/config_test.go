package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults tests configuration defaults with a clean environment
func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"TALENTFLOW_ADDR", "TALENTFLOW_DB", "TALENTFLOW_SEED", "TALENTFLOW_DEBUG",
		"CHAOS_MIN_LATENCY_MS", "CHAOS_MAX_LATENCY_MS", "CHAOS_FAILURE_RATE",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "talentflow.db", cfg.DBPath)
	assert.Equal(t, int64(1), cfg.Seed)
	assert.False(t, cfg.Debug)
	assert.Equal(t, 200*time.Millisecond, cfg.Chaos.MinLatency)
	assert.Equal(t, 1200*time.Millisecond, cfg.Chaos.MaxLatency)
	assert.Equal(t, 0.10, cfg.Chaos.FailureRate)
}

// TestLoad_Overrides tests environment variable overrides
func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TALENTFLOW_ADDR", ":9090")
	t.Setenv("TALENTFLOW_DB", "/tmp/tf.db")
	t.Setenv("TALENTFLOW_SEED", "42")
	t.Setenv("TALENTFLOW_DEBUG", "true")
	t.Setenv("CHAOS_MIN_LATENCY_MS", "0")
	t.Setenv("CHAOS_MAX_LATENCY_MS", "0")
	t.Setenv("CHAOS_FAILURE_RATE", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "/tmp/tf.db", cfg.DBPath)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.Debug)
	assert.False(t, cfg.Chaos.Enabled(), "zeroed chaos config disables injection")
}

// TestLoad_Invalid tests that malformed values are rejected
func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad seed", "TALENTFLOW_SEED", "not-a-number"},
		{"bad min latency", "CHAOS_MIN_LATENCY_MS", "fast"},
		{"bad failure rate", "CHAOS_FAILURE_RATE", "often"},
		{"failure rate out of range", "CHAOS_FAILURE_RATE", "1.5"},
		{"inverted latency bounds", "CHAOS_MAX_LATENCY_MS", "100"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

// TestValidate tests the bounds checks directly
func TestValidate(t *testing.T) {
	cfg := &Config{DBPath: "talentflow.db"}
	assert.NoError(t, cfg.Validate())

	cfg.DBPath = ""
	assert.Error(t, cfg.Validate())

	cfg = &Config{DBPath: "talentflow.db"}
	cfg.Chaos.MinLatency = 500 * time.Millisecond
	cfg.Chaos.MaxLatency = 100 * time.Millisecond
	assert.Error(t, cfg.Validate())

	cfg = &Config{DBPath: "talentflow.db"}
	cfg.Chaos.FailureRate = -0.1
	assert.Error(t, cfg.Validate())
}
