package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/talentflow/internal/store"
	"github.com/jonathan/talentflow/internal/types"
)

// handleListCandidates lists candidates with search, stage filter, and pagination.
func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := store.ListCandidatesOptions{
		Search:   q.Get("search"),
		Stage:    q.Get("stage"),
		Page:     parseQueryInt(r, "page", 1, 0),
		PageSize: parseQueryInt(r, "pageSize", 10, 100),
	}

	if opts.Stage != "" {
		if _, ok := types.StageNames[opts.Stage]; !ok {
			s.errorResponse(w, http.StatusBadRequest, "Invalid stage filter")
			return
		}
	}

	candidates, total, err := s.store.ListCandidates(r.Context(), opts)
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, pageEnvelope{
		Data:       candidates,
		Pagination: store.NewPagination(opts.Page, opts.PageSize, total),
	})
}

// handleGetCandidate retrieves a candidate by id.
func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	candidate, err := s.store.GetCandidate(r.Context(), id)
	if err != nil {
		s.storeError(w, err)
		return
	}
	if candidate == nil {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, candidate)
}

// handleCreateCandidate creates a candidate at stage "1" (Applied).
func (s *Server) handleCreateCandidate(w http.ResponseWriter, r *http.Request) {
	var req types.CreateCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	candidate, err := s.store.CreateCandidate(r.Context(), &req)
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, candidate)
}

// handleUpdateCandidate applies a partial update. A stage change also
// appends a timeline entry.
func (s *Server) handleUpdateCandidate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	var req types.UpdateCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	candidate, err := s.store.UpdateCandidate(r.Context(), id, &req)
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, candidate)
}

// handleCandidateTimeline returns a candidate's stage history, oldest first.
func (s *Server) handleCandidateTimeline(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	candidate, err := s.store.GetCandidate(r.Context(), id)
	if err != nil {
		s.storeError(w, err)
		return
	}
	if candidate == nil {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	timeline, err := s.store.ListTimeline(r.Context(), id)
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"data": timeline,
	})
}
