package store

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talentflow/internal/types"
)

// TestGetAssessmentByJob_Missing tests the (nil, nil) contract
func TestGetAssessmentByJob_Missing(t *testing.T) {
	s := newTestStore(t)

	a, err := s.GetAssessmentByJob(t.Context(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, a)
}

// TestUpsertAssessmentByJob tests that saves are keyed by job: a second
// save replaces, never duplicates
func TestUpsertAssessmentByJob(t *testing.T) {
	s := newTestStore(t)
	jobs := createJobs(t, s, "Backend Engineer")
	jobID := jobs[0].ID

	first, err := s.UpsertAssessmentByJob(t.Context(), jobID, &types.SaveAssessmentRequest{
		Title:     "Screening v1",
		Questions: []types.Question{{Type: types.QuestionShortText, Title: "Why us?"}},
		TimeLimit: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, jobID, first.JobID)
	require.Len(t, first.Questions, 1)
	assert.NotEqual(t, uuid.Nil, first.Questions[0].ID, "question ids assigned on save")

	second, err := s.UpsertAssessmentByJob(t.Context(), jobID, &types.SaveAssessmentRequest{
		Title: "Screening v2",
		Questions: []types.Question{
			{Type: types.QuestionSingleChoice, Title: "Experience?", Options: []string{"0-2", "3+"}},
			{Type: types.QuestionNumeric, Title: "Notice period in weeks"},
		},
		TimeLimit: 45,
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "upsert keeps the original assessment id")
	assert.Equal(t, "Screening v2", second.Title)
	assert.Len(t, second.Questions, 2)

	count, err := s.CountAssessments(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 1, count, "at most one assessment per job")
}

// TestCreateResponse tests opaque response storage
func TestCreateResponse(t *testing.T) {
	s := newTestStore(t)
	jobs := createJobs(t, s, "Backend Engineer")

	assessment, err := s.UpsertAssessmentByJob(t.Context(), jobs[0].ID, &types.SaveAssessmentRequest{
		Title:     "Screening",
		Questions: []types.Question{{Type: types.QuestionLongText, Title: "Tell us more"}},
	})
	require.NoError(t, err)

	candidateID := uuid.New()
	payload := json.RawMessage(`{"q1":"because"}`)
	resp, err := s.CreateResponse(t.Context(), assessment.ID, candidateID, payload)
	require.NoError(t, err)
	assert.Equal(t, assessment.ID, resp.AssessmentID)

	stored, err := s.ListResponses(t.Context(), assessment.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.JSONEq(t, string(payload), string(stored[0].Responses))
	assert.Equal(t, candidateID, stored[0].CandidateID)
}
