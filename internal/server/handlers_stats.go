package server

import (
	"net/http"
)

// StatsResponse aggregates the counts the dashboard renders.
type StatsResponse struct {
	Jobs struct {
		Total    int `json:"total"`
		Active   int `json:"active"`
		Archived int `json:"archived"`
	} `json:"jobs"`
	Candidates struct {
		Total   int            `json:"total"`
		ByStage map[string]int `json:"byStage"`
	} `json:"candidates"`
	Assessments struct {
		Total int `json:"total"`
	} `json:"assessments"`
}

// handleStats returns dashboard aggregates.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var resp StatsResponse

	jobTotal, byStatus, err := s.store.CountJobsByStatus(ctx)
	if err != nil {
		s.storeError(w, err)
		return
	}
	resp.Jobs.Total = jobTotal
	resp.Jobs.Active = byStatus["active"]
	resp.Jobs.Archived = byStatus["archived"]

	candidateTotal, byStage, err := s.store.CountCandidatesByStage(ctx)
	if err != nil {
		s.storeError(w, err)
		return
	}
	resp.Candidates.Total = candidateTotal
	resp.Candidates.ByStage = byStage

	assessments, err := s.store.CountAssessments(ctx)
	if err != nil {
		s.storeError(w, err)
		return
	}
	resp.Assessments.Total = assessments

	s.jsonResponse(w, http.StatusOK, resp)
}
