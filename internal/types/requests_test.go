package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCreateJobRequest_Validate tests job creation validation
func TestCreateJobRequest_Validate(t *testing.T) {
	valid := CreateJobRequest{Title: "QA Engineer", Company: "TalentFlow"}
	assert.NoError(t, valid.Validate())

	missingTitle := CreateJobRequest{Company: "TalentFlow"}
	assert.Error(t, missingTitle.Validate())

	badType := CreateJobRequest{Title: "QA Engineer", Company: "TalentFlow", Type: "Gig"}
	assert.Error(t, badType.Validate())
}

// TestUpdateJobRequest_Apply tests partial update semantics
func TestUpdateJobRequest_Apply(t *testing.T) {
	job := Job{Title: "QA Engineer", Slug: "qa-engineer", Company: "TalentFlow", Status: JobStatusActive}

	title := "Senior QA Engineer"
	status := JobStatusArchived
	req := UpdateJobRequest{Title: &title, Status: &status}
	req.Apply(&job)

	assert.Equal(t, "Senior QA Engineer", job.Title)
	assert.Equal(t, "senior-qa-engineer", job.Slug, "title change re-derives slug")
	assert.Equal(t, JobStatusArchived, job.Status)
	assert.Equal(t, "TalentFlow", job.Company, "unset fields untouched")
}

// TestCreateCandidateRequest_Validate tests candidate creation validation
func TestCreateCandidateRequest_Validate(t *testing.T) {
	valid := CreateCandidateRequest{Name: "Alex Kim", Email: "alex.kim@example.com"}
	assert.NoError(t, valid.Validate())

	badEmail := CreateCandidateRequest{Name: "Alex Kim", Email: "not-an-email"}
	assert.Error(t, badEmail.Validate())
}

// TestUpdateCandidateRequest_Validate tests stage value validation
func TestUpdateCandidateRequest_Validate(t *testing.T) {
	good := "3"
	req := UpdateCandidateRequest{Stage: &good}
	require.NoError(t, req.Validate())

	bad := "7"
	req = UpdateCandidateRequest{Stage: &bad}
	assert.Error(t, req.Validate())
}

// TestReorderJobRequest_Validate tests that both positions are required
func TestReorderJobRequest_Validate(t *testing.T) {
	from, to := 2, 5
	valid := ReorderJobRequest{FromOrder: &from, ToOrder: &to}
	assert.NoError(t, valid.Validate())

	missing := ReorderJobRequest{FromOrder: &from}
	assert.Error(t, missing.Validate())
}
