package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/talentflow/internal/server/middleware"
	"github.com/jonathan/talentflow/internal/store"
)

// Config holds server configuration.
type Config struct {
	Addr  string
	Chaos middleware.ChaosConfig
}

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	store      *store.Store
	logger     *zap.Logger
}

// New creates a new server instance over an opened store.
func New(st *store.Store, cfg Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{store: st, logger: logger}

	// API routes. The chaos decorator wraps the whole API surface so the
	// handlers themselves stay deterministic.
	api := http.NewServeMux()
	api.HandleFunc("GET /api/jobs", s.handleListJobs)
	api.HandleFunc("POST /api/jobs", s.handleCreateJob)
	api.HandleFunc("GET /api/jobs/{id}", s.handleGetJob)
	api.HandleFunc("PATCH /api/jobs/{id}", s.handleUpdateJob)
	api.HandleFunc("PATCH /api/jobs/{id}/reorder", s.handleReorderJob)

	api.HandleFunc("GET /api/candidates", s.handleListCandidates)
	api.HandleFunc("POST /api/candidates", s.handleCreateCandidate)
	api.HandleFunc("GET /api/candidates/{id}", s.handleGetCandidate)
	api.HandleFunc("PATCH /api/candidates/{id}", s.handleUpdateCandidate)
	api.HandleFunc("GET /api/candidates/{id}/timeline", s.handleCandidateTimeline)

	api.HandleFunc("GET /api/assessments/{jobId}", s.handleGetAssessment)
	api.HandleFunc("PUT /api/assessments/{jobId}", s.handleSaveAssessment)
	api.HandleFunc("POST /api/assessments/{jobId}/submit", s.handleSubmitAssessment)

	api.HandleFunc("GET /api/candidates/{candidateId}/notes", s.handleListNotes)
	api.HandleFunc("POST /api/candidates/{candidateId}/notes", s.handleCreateNote)
	api.HandleFunc("PATCH /api/notes/{id}", s.handleUpdateNote)
	api.HandleFunc("DELETE /api/notes/{id}", s.handleDeleteNote)

	api.HandleFunc("GET /api/stats", s.handleStats)

	chaos := middleware.Chaos(cfg.Chaos, logger)

	mux := http.NewServeMux()
	mux.Handle("/api/", chaos(api))
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Start begins listening for requests and blocks until a shutdown signal.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errc <- err
		}
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}

	s.logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

// withCORS adds CORS headers so a browser frontend can call the API.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}

// handleHealth returns server health status. Exempt from chaos injection.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// storeError maps a store error to its HTTP response.
func (s *Server) storeError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("store error", zap.Error(err))
	}
	s.errorResponse(w, status, err.Error())
}

// pageEnvelope is the pagination envelope for list responses.
type pageEnvelope struct {
	Data       any              `json:"data"`
	Pagination store.Pagination `json:"pagination"`
}

// parseQueryInt parses an integer query parameter with default and max values.
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 1 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}
