package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/talentflow/internal/store"
	"github.com/jonathan/talentflow/internal/types"
)

// handleListJobs lists jobs with search, status filter, sort, and pagination.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := store.ListJobsOptions{
		Search:   q.Get("search"),
		Status:   q.Get("status"),
		Sort:     q.Get("sort"),
		Page:     parseQueryInt(r, "page", 1, 0),
		PageSize: parseQueryInt(r, "pageSize", 10, 100),
	}

	if opts.Status != "" && opts.Status != types.JobStatusActive && opts.Status != types.JobStatusArchived {
		s.errorResponse(w, http.StatusBadRequest, "Invalid status filter")
		return
	}

	jobs, total, err := s.store.ListJobs(r.Context(), opts)
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, pageEnvelope{
		Data:       jobs,
		Pagination: store.NewPagination(opts.Page, opts.PageSize, total),
	})
}

// handleGetJob retrieves a job by id.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	job, err := s.store.GetJob(r.Context(), id)
	if err != nil {
		s.storeError(w, err)
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, job)
}

// handleCreateJob creates a job posting. Duplicate titles are allowed;
// uniqueness is a form-level concern, not enforced here.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var req types.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	job, err := s.store.CreateJob(r.Context(), &req)
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, job)
}

// handleUpdateJob applies a partial update to a job.
func (s *Server) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	var req types.UpdateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	job, err := s.store.UpdateJob(r.Context(), id, &req)
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, job)
}

// handleReorderJob moves a job on the board with move-element semantics.
func (s *Server) handleReorderJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	var req types.ReorderJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	job, err := s.store.ReorderJob(r.Context(), id, *req.FromOrder, *req.ToOrder)
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, job)
}
