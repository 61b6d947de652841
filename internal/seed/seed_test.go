package seed

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talentflow/internal/store"
	"github.com/jonathan/talentflow/internal/types"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "talentflow.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// TestSeed_ReferentialIntegrity tests that every generated candidate
// references a generated job, and every assessment a generated job
func TestSeed_ReferentialIntegrity(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, New(s, 42, nil).Seed(t.Context()))

	jobs, total, err := s.ListJobs(t.Context(), store.ListJobsOptions{PageSize: 100})
	require.NoError(t, err)
	require.Equal(t, jobCount, total)

	jobIDs := map[uuid.UUID]bool{}
	for _, j := range jobs {
		jobIDs[j.ID] = true
	}

	candidates, total, err := s.ListCandidates(t.Context(), store.ListCandidatesOptions{PageSize: 100, Page: 1})
	require.NoError(t, err)
	assert.Equal(t, candidateCount, total)
	for _, c := range candidates {
		require.NotEmpty(t, c.AppliedJobs)
		for _, jobID := range c.AppliedJobs {
			assert.True(t, jobIDs[jobID], "candidate %s references unknown job", c.Name)
		}
	}
}

// TestSeed_OrdersAreDense tests the order invariant on generated jobs
func TestSeed_OrdersAreDense(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, New(s, 7, nil).Seed(t.Context()))

	jobs, _, err := s.ListJobs(t.Context(), store.ListJobsOptions{PageSize: 100})
	require.NoError(t, err)

	seen := map[int]bool{}
	for _, j := range jobs {
		assert.False(t, seen[j.Order], "duplicate order %d", j.Order)
		seen[j.Order] = true
		assert.GreaterOrEqual(t, j.Order, 0)
		assert.Less(t, j.Order, len(jobs))
	}
}

// TestSeed_Deterministic tests that a fixed seed reproduces the dataset,
// ids included
func TestSeed_Deterministic(t *testing.T) {
	s1 := newTestStore(t)
	s2 := newTestStore(t)
	require.NoError(t, New(s1, 99, nil).Seed(t.Context()))
	require.NoError(t, New(s2, 99, nil).Seed(t.Context()))

	jobs1, _, err := s1.ListJobs(t.Context(), store.ListJobsOptions{PageSize: 100})
	require.NoError(t, err)
	jobs2, _, err := s2.ListJobs(t.Context(), store.ListJobsOptions{PageSize: 100})
	require.NoError(t, err)

	require.Equal(t, len(jobs1), len(jobs2))
	for i := range jobs1 {
		assert.Equal(t, jobs1[i].ID, jobs2[i].ID)
		assert.Equal(t, jobs1[i].Title, jobs2[i].Title)
		assert.Equal(t, jobs1[i].Company, jobs2[i].Company)
		assert.Equal(t, jobs1[i].Status, jobs2[i].Status)
	}

	cands1, _, err := s1.ListCandidates(t.Context(), store.ListCandidatesOptions{PageSize: 200})
	require.NoError(t, err)
	cands2, _, err := s2.ListCandidates(t.Context(), store.ListCandidatesOptions{PageSize: 200})
	require.NoError(t, err)

	require.Equal(t, len(cands1), len(cands2))
	for i := range cands1 {
		assert.Equal(t, cands1[i].ID, cands2[i].ID)
		assert.Equal(t, cands1[i].Name, cands2[i].Name)
		assert.Equal(t, cands1[i].CurrentStage, cands2[i].CurrentStage)
	}
}

// TestSeed_CandidateTimeline tests one timeline entry per candidate
func TestSeed_CandidateTimeline(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, New(s, 1, nil).Seed(t.Context()))

	candidates, _, err := s.ListCandidates(t.Context(), store.ListCandidatesOptions{PageSize: 10})
	require.NoError(t, err)
	for _, c := range candidates {
		timeline, err := s.ListTimeline(t.Context(), c.ID)
		require.NoError(t, err)
		require.Len(t, timeline, 1)
		assert.Equal(t, c.CurrentStage, timeline[0].Stage)
	}
}

// TestSeed_Assessments tests question count bounds and type coverage
func TestSeed_Assessments(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, New(s, 13, nil).Seed(t.Context()))

	n, err := s.CountAssessments(t.Context())
	require.NoError(t, err)
	assert.Equal(t, assessmentCount, n)

	jobs, _, err := s.ListJobs(t.Context(), store.ListJobsOptions{PageSize: 100})
	require.NoError(t, err)

	found := 0
	for _, j := range jobs {
		a, err := s.GetAssessmentByJob(t.Context(), j.ID)
		require.NoError(t, err)
		if a == nil {
			continue
		}
		found++
		assert.GreaterOrEqual(t, len(a.Questions), 10)
		assert.LessOrEqual(t, len(a.Questions), 14)

		seenTypes := map[string]bool{}
		for _, q := range a.Questions {
			seenTypes[q.Type] = true
		}
		for _, qt := range types.QuestionTypes {
			assert.True(t, seenTypes[qt], "question type %s missing", qt)
		}
	}
	assert.Equal(t, assessmentCount, found)
}

// TestSeedIfEmpty tests the jobs-empty guard
func TestSeedIfEmpty(t *testing.T) {
	s := newTestStore(t)
	gen := New(s, 5, nil)

	require.NoError(t, gen.SeedIfEmpty(t.Context()))
	jobs1, _, err := s.ListJobs(t.Context(), store.ListJobsOptions{PageSize: 100})
	require.NoError(t, err)

	// Second invocation must not regenerate.
	require.NoError(t, gen.SeedIfEmpty(t.Context()))
	jobs2, _, err := s.ListJobs(t.Context(), store.ListJobsOptions{PageSize: 100})
	require.NoError(t, err)

	require.Equal(t, len(jobs1), len(jobs2))
	for i := range jobs1 {
		assert.Equal(t, jobs1[i].ID, jobs2[i].ID)
	}
}
