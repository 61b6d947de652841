package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/talentflow/internal/types"
)

// handleListNotes returns a candidate's notes, oldest first.
func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request) {
	candidateID, err := uuid.Parse(r.PathValue("candidateId"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	candidate, err := s.store.GetCandidate(r.Context(), candidateID)
	if err != nil {
		s.storeError(w, err)
		return
	}
	if candidate == nil {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	notes, err := s.store.ListNotes(r.Context(), candidateID)
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"data": notes,
	})
}

// handleCreateNote attaches a note to a candidate; mentions are derived
// from the content.
func (s *Server) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	candidateID, err := uuid.Parse(r.PathValue("candidateId"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	candidate, err := s.store.GetCandidate(r.Context(), candidateID)
	if err != nil {
		s.storeError(w, err)
		return
	}
	if candidate == nil {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	var req types.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	note, err := s.store.CreateNote(r.Context(), candidateID, req.Author, req.Content)
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, note)
}

// handleUpdateNote rewrites a note's content and re-derives its mentions.
func (s *Server) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid note ID")
		return
	}

	var req types.UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	note, err := s.store.UpdateNote(r.Context(), id, req.Content)
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, note)
}

// handleDeleteNote removes a note by id.
func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid note ID")
		return
	}

	if err := s.store.DeleteNote(r.Context(), id); err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
