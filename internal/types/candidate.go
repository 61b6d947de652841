package types

import (
	"time"

	"github.com/google/uuid"
)

// Pipeline stage identifiers. Stages are keyed by string ids "1".."5";
// stage progression is a view-layer restriction, not enforced here.
const (
	StageApplied   = "1"
	StageScreening = "2"
	StageInterview = "3"
	StageOffer     = "4"
	StageHired     = "5"
)

// StageNames maps stage ids to their display names.
var StageNames = map[string]string{
	StageApplied:   "Applied",
	StageScreening: "Screening",
	StageInterview: "Interview",
	StageOffer:     "Offer",
	StageHired:     "Hired",
}

// StageIDs lists all stage ids in pipeline order.
var StageIDs = []string{StageApplied, StageScreening, StageInterview, StageOffer, StageHired}

// Stage entry status values.
const (
	StageStatusPending   = "pending"
	StageStatusCurrent   = "current"
	StageStatusCompleted = "completed"
)

// StageEntry records a candidate's standing in one pipeline stage.
// Date is nil until the candidate reaches the stage.
type StageEntry struct {
	Status string     `json:"status"`
	Date   *time.Time `json:"date"`
}

// Candidate represents an applicant moving through the pipeline.
// CurrentStage is always a key present in Stages. Notes is populated only
// by the client state layer; the store keeps notes in their own collection.
type Candidate struct {
	ID           uuid.UUID             `json:"id"`
	Name         string                `json:"name"`
	Email        string                `json:"email"`
	Phone        string                `json:"phone"`
	Experience   string                `json:"experience"`
	Skills       []string              `json:"skills"`
	AppliedJobs  []uuid.UUID           `json:"appliedJobs"`
	CurrentStage string                `json:"currentStage"`
	Stages       map[string]StageEntry `json:"stages"`
	Resume       string                `json:"resume,omitempty"`
	LinkedIn     string                `json:"linkedin,omitempty"`
	Portfolio    string                `json:"portfolio,omitempty"`
	Notes        []Note                `json:"notes,omitempty"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

// NewStages builds the initial stage map for a fresh candidate: every
// stage pending except "1", which is current as of now.
func NewStages(now time.Time) map[string]StageEntry {
	stages := make(map[string]StageEntry, len(StageIDs))
	for _, id := range StageIDs {
		stages[id] = StageEntry{Status: StageStatusPending}
	}
	stages[StageApplied] = StageEntry{Status: StageStatusCurrent, Date: &now}
	return stages
}

// AdvanceStage moves the candidate to the given stage: the stage entry is
// written with the given status and today's date, earlier stages that were
// current become completed. The transition date is never backdated.
func (c *Candidate) AdvanceStage(stage, status string, now time.Time) {
	if c.Stages == nil {
		c.Stages = NewStages(now)
	}
	for id, entry := range c.Stages {
		if id != stage && entry.Status == StageStatusCurrent {
			entry.Status = StageStatusCompleted
			c.Stages[id] = entry
		}
	}
	c.Stages[stage] = StageEntry{Status: status, Date: &now}
	c.CurrentStage = stage
}

// TimelineEntry is one row of a candidate's append-only stage history.
type TimelineEntry struct {
	ID          uuid.UUID `json:"id"`
	CandidateID uuid.UUID `json:"candidateId"`
	Stage       string    `json:"stage"`
	Status      string    `json:"status"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}
