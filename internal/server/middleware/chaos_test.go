package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(hits *int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		*hits++
		w.WriteHeader(http.StatusOK)
	})
}

// TestChaos_Disabled tests that a zero config returns the handler unchanged
func TestChaos_Disabled(t *testing.T) {
	hits := 0
	wrapped := Chaos(ChaosConfig{}, nil)(okHandler(&hits))

	start := time.Now()
	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/jobs", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, hits)
	assert.Less(t, time.Since(start), 50*time.Millisecond, "no injected latency")
}

// TestChaos_FailureRate tests that a seeded config injects roughly the
// configured share of failures, and that failures never reach the handler
func TestChaos_FailureRate(t *testing.T) {
	hits := 0
	wrapped := Chaos(ChaosConfig{FailureRate: 0.10, Seed: 42}, nil)(okHandler(&hits))

	const n = 1000
	failures := 0
	for i := 0; i < n; i++ {
		w := httptest.NewRecorder()
		wrapped.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/jobs", nil))
		if w.Code == http.StatusInternalServerError {
			failures++
			assert.JSONEq(t, `{"error":"simulated network failure"}`, w.Body.String())
		}
	}

	assert.Equal(t, n-failures, hits, "failed requests never touch the handler")
	assert.InDelta(t, 100, failures, 40, "failure share tracks the configured rate")
}

// TestChaos_Deterministic tests that the same seed yields the same outcomes
func TestChaos_Deterministic(t *testing.T) {
	outcomes := func(seed int64) []int {
		hits := 0
		wrapped := Chaos(ChaosConfig{FailureRate: 0.5, Seed: seed}, nil)(okHandler(&hits))
		codes := make([]int, 0, 50)
		for i := 0; i < 50; i++ {
			w := httptest.NewRecorder()
			wrapped.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/jobs", nil))
			codes = append(codes, w.Code)
		}
		return codes
	}

	assert.Equal(t, outcomes(7), outcomes(7))
}

// TestChaos_Latency tests that requests wait at least the minimum latency
func TestChaos_Latency(t *testing.T) {
	hits := 0
	wrapped := Chaos(ChaosConfig{
		MinLatency: 20 * time.Millisecond,
		MaxLatency: 40 * time.Millisecond,
		Seed:       1,
	}, nil)(okHandler(&hits))

	start := time.Now()
	w := httptest.NewRecorder()
	wrapped.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/jobs", nil))
	elapsed := time.Since(start)

	require.Equal(t, http.StatusOK, w.Code)
	assert.GreaterOrEqual(t, elapsed, 20*time.Millisecond)
}

// TestChaos_ContextCancel tests that a canceled request stops waiting
func TestChaos_ContextCancel(t *testing.T) {
	hits := 0
	wrapped := Chaos(ChaosConfig{
		MinLatency: 10 * time.Second,
		MaxLatency: 10 * time.Second,
		Seed:       1,
	}, nil)(okHandler(&hits))

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	req := httptest.NewRequest(http.MethodGet, "/api/jobs", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		wrapped.ServeHTTP(w, req)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("chaos middleware ignored request cancellation")
	}
	assert.Equal(t, 0, hits)
}

// TestDefaultChaosConfig tests the default simulation parameters
func TestDefaultChaosConfig(t *testing.T) {
	cfg := DefaultChaosConfig()
	assert.Equal(t, 200*time.Millisecond, cfg.MinLatency)
	assert.Equal(t, 1200*time.Millisecond, cfg.MaxLatency)
	assert.Equal(t, 0.10, cfg.FailureRate)
	assert.True(t, cfg.Enabled())
}
