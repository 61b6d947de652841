// Package middleware provides HTTP middleware for the API surface.
package middleware

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ChaosConfig controls the simulated-network decorator. Every request
// sleeps for a uniform random duration in [MinLatency, MaxLatency) and
// independently fails with probability FailureRate before the handler runs.
type ChaosConfig struct {
	MinLatency  time.Duration
	MaxLatency  time.Duration
	FailureRate float64
	Seed        int64 // 0 means time-seeded
}

// DefaultChaosConfig mirrors the original simulation: latency in
// [200ms, 1200ms) and a 10% failure rate.
func DefaultChaosConfig() ChaosConfig {
	return ChaosConfig{
		MinLatency:  200 * time.Millisecond,
		MaxLatency:  1200 * time.Millisecond,
		FailureRate: 0.10,
	}
}

// Enabled reports whether the config injects any latency or failures.
func (c ChaosConfig) Enabled() bool {
	return c.FailureRate > 0 || c.MaxLatency > 0
}

// Chaos returns a decorator applying the configured latency and failure
// injection. The failure fires before the wrapped handler, so a failed
// request never touches the store; callers cannot distinguish it from a
// real backend error. A disabled config returns the handler unchanged.
func Chaos(cfg ChaosConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		if !cfg.Enabled() {
			return next
		}

		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		var mu sync.Mutex
		rng := rand.New(rand.NewSource(seed))

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			var delay time.Duration
			if span := cfg.MaxLatency - cfg.MinLatency; span > 0 {
				delay = cfg.MinLatency + time.Duration(rng.Int63n(int64(span)))
			} else {
				delay = cfg.MinLatency
			}
			fail := rng.Float64() < cfg.FailureRate
			mu.Unlock()

			if delay > 0 {
				select {
				case <-time.After(delay):
				case <-r.Context().Done():
					return
				}
			}

			if fail {
				logger.Debug("injected failure",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{
					"error": "simulated network failure",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
