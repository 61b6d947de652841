package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewStages tests the initial stage map for a fresh candidate
func TestNewStages(t *testing.T) {
	now := time.Now()
	stages := NewStages(now)

	require.Len(t, stages, 5)
	assert.Equal(t, StageStatusCurrent, stages[StageApplied].Status)
	require.NotNil(t, stages[StageApplied].Date)
	assert.Equal(t, now, *stages[StageApplied].Date)

	for _, id := range StageIDs[1:] {
		assert.Equal(t, StageStatusPending, stages[id].Status)
		assert.Nil(t, stages[id].Date)
	}
}

// TestCandidate_AdvanceStage tests stage transitions
func TestCandidate_AdvanceStage(t *testing.T) {
	start := time.Now()
	c := Candidate{CurrentStage: StageApplied, Stages: NewStages(start)}

	later := start.Add(48 * time.Hour)
	c.AdvanceStage(StageScreening, StageStatusCurrent, later)

	assert.Equal(t, StageScreening, c.CurrentStage)
	assert.Equal(t, StageStatusCompleted, c.Stages[StageApplied].Status)
	assert.Equal(t, StageStatusCurrent, c.Stages[StageScreening].Status)
	require.NotNil(t, c.Stages[StageScreening].Date)
	assert.Equal(t, later, *c.Stages[StageScreening].Date)
	assert.Equal(t, StageStatusPending, c.Stages[StageInterview].Status)
}

// TestCandidate_AdvanceStage_SkipsAreAllowed tests that non-monotonic
// transitions are not rejected below the view layer
func TestCandidate_AdvanceStage_SkipsAreAllowed(t *testing.T) {
	now := time.Now()
	c := Candidate{CurrentStage: StageApplied, Stages: NewStages(now)}

	c.AdvanceStage(StageHired, StageStatusCurrent, now)

	assert.Equal(t, StageHired, c.CurrentStage)
	assert.Equal(t, StageStatusCurrent, c.Stages[StageHired].Status)
}
