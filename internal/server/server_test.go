package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talentflow/internal/store"
	"github.com/jonathan/talentflow/internal/types"
)

// newTestServer creates a server over a fresh store with chaos disabled,
// so handler behavior is deterministic.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "talentflow.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return New(st, Config{Addr: ":0"}, nil)
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// createTestJob creates a job through the handler and returns it.
func createTestJob(t *testing.T, s *Server, title string) types.Job {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/jobs", jsonBody(t, types.CreateJobRequest{
		Title:   title,
		Company: "TalentFlow Inc",
	}))
	w := httptest.NewRecorder()
	s.handleCreateJob(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeBody[types.Job](t, w)
}

// createTestCandidate creates a candidate through the handler and returns it.
func createTestCandidate(t *testing.T, s *Server, name, email string) types.Candidate {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/candidates", jsonBody(t, types.CreateCandidateRequest{
		Name:  name,
		Email: email,
	}))
	w := httptest.NewRecorder()
	s.handleCreateCandidate(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeBody[types.Candidate](t, w)
}

// TestHandleHealth tests the health endpoint
func TestHandleHealth(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	s.handleHealth(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[map[string]string](t, w)
	assert.Equal(t, "ok", resp["status"])
}

// TestRouting tests that the assembled mux dispatches nested resource paths
func TestRouting(t *testing.T) {
	s := newTestServer(t)
	handler := s.httpServer.Handler

	job := createTestJob(t, s, "Routing Test Engineer")
	candidate := createTestCandidate(t, s, "Route Tester", "route@example.com")

	paths := []string{
		"/health",
		"/api/jobs",
		"/api/jobs/" + job.ID.String(),
		"/api/candidates",
		"/api/candidates/" + candidate.ID.String(),
		"/api/candidates/" + candidate.ID.String() + "/timeline",
		"/api/candidates/" + candidate.ID.String() + "/notes",
		"/api/stats",
	}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "GET %s", path)
	}
}

// TestCORSPreflight tests the OPTIONS short-circuit
func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)
	handler := s.httpServer.Handler

	req := httptest.NewRequest(http.MethodOptions, "/api/jobs", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PATCH")
}

func TestParseQueryInt(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		def, max int
		want     int
	}{
		{"missing uses default", "", 10, 100, 10},
		{"valid value", "pageSize=25", 10, 100, 25},
		{"clamped to max", "pageSize=500", 10, 100, 100},
		{"zero uses default", "pageSize=0", 10, 100, 10},
		{"garbage uses default", "pageSize=abc", 10, 100, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/jobs?"+tt.query, nil)
			assert.Equal(t, tt.want, parseQueryInt(req, "pageSize", tt.def, tt.max))
		})
	}
}
