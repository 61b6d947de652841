package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/talentflow/internal/types"
)

// handleGetAssessment retrieves the assessment for a job, 404 when none exists.
func (s *Server) handleGetAssessment(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("jobId"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	assessment, err := s.store.GetAssessmentByJob(r.Context(), jobID)
	if err != nil {
		s.storeError(w, err)
		return
	}
	if assessment == nil {
		s.errorResponse(w, http.StatusNotFound, "Assessment not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, assessment)
}

// handleSaveAssessment creates or replaces the assessment for a job.
func (s *Server) handleSaveAssessment(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("jobId"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	job, err := s.store.GetJob(r.Context(), jobID)
	if err != nil {
		s.storeError(w, err)
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	var req types.SaveAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	for _, q := range req.Questions {
		if !validQuestionType(q.Type) {
			s.errorResponse(w, http.StatusBadRequest, "Invalid question type: "+q.Type)
			return
		}
	}

	assessment, err := s.store.UpsertAssessmentByJob(r.Context(), jobID, &req)
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, assessment)
}

// handleSubmitAssessment records a candidate's answers for a job's assessment.
// The responses payload is stored opaquely.
func (s *Server) handleSubmitAssessment(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("jobId"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	assessment, err := s.store.GetAssessmentByJob(r.Context(), jobID)
	if err != nil {
		s.storeError(w, err)
		return
	}
	if assessment == nil {
		s.errorResponse(w, http.StatusNotFound, "Assessment not found")
		return
	}

	var req types.SubmitAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := s.store.CreateResponse(r.Context(), assessment.ID, req.CandidateID, req.Responses)
	if err != nil {
		s.storeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, resp)
}

func validQuestionType(t string) bool {
	for _, known := range types.QuestionTypes {
		if t == known {
			return true
		}
	}
	return false
}
