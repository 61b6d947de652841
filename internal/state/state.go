package state

import (
	"github.com/google/uuid"
	"github.com/jonathan/talentflow/internal/types"
)

// JobFilters is the job list's view state.
type JobFilters struct {
	Search   string
	Status   string
	Sort     string
	Page     int
	PageSize int
}

// CandidateFilters is the candidate list's view state.
type CandidateFilters struct {
	Search   string
	Stage    string
	Page     int
	PageSize int
}

// BuilderSection groups draft questions under a heading. Sections exist
// only in the builder; the persisted assessment keeps a flat question list.
type BuilderSection struct {
	ID        uuid.UUID
	Title     string
	Questions []types.Question
}

// BuilderState is the in-memory draft for composing a job's assessment.
type BuilderState struct {
	JobID       uuid.UUID
	Title       string
	Description string
	TimeLimit   int
	Sections    []BuilderSection
}

// Flatten returns the draft's questions as the ordered flat list the
// persisted Assessment carries.
func (b *BuilderState) Flatten() []types.Question {
	questions := []types.Question{}
	for _, section := range b.Sections {
		questions = append(questions, section.Questions...)
	}
	return questions
}

// State is the full client-side working copy. Values returned from the
// Store are snapshots; callers never mutate them in place.
type State struct {
	Jobs             []types.Job
	Candidates       []types.Candidate
	Assessments      map[uuid.UUID]types.Assessment // keyed by job id
	JobFilters       JobFilters
	CandidateFilters CandidateFilters
	Builder          *BuilderState
}

// NewState returns an empty state with default pagination.
func NewState() State {
	return State{
		Jobs:             []types.Job{},
		Candidates:       []types.Candidate{},
		Assessments:      map[uuid.UUID]types.Assessment{},
		JobFilters:       JobFilters{Page: 1, PageSize: 10, Sort: "order"},
		CandidateFilters: CandidateFilters{Page: 1, PageSize: 10},
	}
}

// FromSnapshot builds a state from store query results, the only sanctioned
// way to populate the cache.
func FromSnapshot(jobs []types.Job, candidates []types.Candidate, assessments []types.Assessment) State {
	s := NewState()
	s.Jobs = append(s.Jobs, jobs...)
	s.Candidates = append(s.Candidates, candidates...)
	for _, a := range assessments {
		s.Assessments[a.JobID] = a
	}
	return s
}
