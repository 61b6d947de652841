// Package state holds the client-side working copy of the domain: a
// reducer over a closed action set, dispatched serially. It is an explicit
// cache rebuilt from store snapshots, never a second write path.
package state

import (
	"github.com/google/uuid"
	"github.com/jonathan/talentflow/internal/types"
)

// Action is the sealed set of state transitions. The reducer matches every
// variant; anything else is a no-op.
type Action interface {
	isAction()
}

// AddJob appends a job. The reducer assigns a fresh id and sets order to
// the current job count.
type AddJob struct {
	Job types.Job
}

// UpdateJob applies a partial update to the job with the given id.
type UpdateJob struct {
	ID    uuid.UUID
	Patch types.UpdateJobRequest
}

// ArchiveJob flips a job's status to archived. Jobs are never removed.
type ArchiveJob struct {
	ID uuid.UUID
}

// UnarchiveJob flips a job's status back to active.
type UnarchiveJob struct {
	ID uuid.UUID
}

// ReorderJob moves the job at FromOrder to ToOrder with array
// move-element semantics. Positions outside 0..N-1 are ignored.
type ReorderJob struct {
	FromOrder int
	ToOrder   int
}

// AddCandidate appends a candidate. The reducer assigns a fresh id and an
// initial stage map when missing.
type AddCandidate struct {
	Candidate types.Candidate
}

// UpdateCandidateStage moves a candidate to a stage, writing
// stages[stage] = {status, date: today}. Other stage entries are left
// untouched; progression rules are a view-layer concern.
type UpdateCandidateStage struct {
	ID     uuid.UUID
	Stage  string
	Status string
}

// AddNote appends a note to a candidate's embedded note list. Mentions are
// derived from the content.
type AddNote struct {
	CandidateID uuid.UUID
	Author      string
	Content     string
}

// UpdateNote rewrites an embedded note's content, re-deriving mentions.
type UpdateNote struct {
	CandidateID uuid.UUID
	NoteID      uuid.UUID
	Content     string
}

// DeleteNote removes an embedded note.
type DeleteNote struct {
	CandidateID uuid.UUID
	NoteID      uuid.UUID
}

// SetJobFilters replaces the job list's filter and pagination state.
type SetJobFilters struct {
	Filters JobFilters
}

// SetCandidateFilters replaces the candidate list's filter and pagination state.
type SetCandidateFilters struct {
	Filters CandidateFilters
}

// SetAssessment stores or replaces the assessment for its job.
type SetAssessment struct {
	Assessment types.Assessment
}

// DeleteAssessment removes the assessment for a job.
type DeleteAssessment struct {
	JobID uuid.UUID
}

// OpenBuilder starts a fresh assessment draft for a job, replacing any
// draft in progress.
type OpenBuilder struct {
	JobID uuid.UUID
}

// CloseBuilder discards the current draft.
type CloseBuilder struct{}

// SetBuilderMeta updates the draft's title, description, and time limit.
type SetBuilderMeta struct {
	Title       string
	Description string
	TimeLimit   int
}

// AddBuilderSection appends a section to the draft. The reducer assigns a
// fresh id.
type AddBuilderSection struct {
	Title string
}

// UpdateBuilderSection renames a draft section.
type UpdateBuilderSection struct {
	ID    uuid.UUID
	Title string
}

// DeleteBuilderSection removes a draft section and its questions.
type DeleteBuilderSection struct {
	ID uuid.UUID
}

// AddBuilderQuestion appends a question to a draft section. The reducer
// assigns a fresh question id when unset.
type AddBuilderQuestion struct {
	SectionID uuid.UUID
	Question  types.Question
}

// UpdateBuilderQuestion replaces a question in a draft section, matched by
// question id.
type UpdateBuilderQuestion struct {
	SectionID uuid.UUID
	Question  types.Question
}

// DeleteBuilderQuestion removes a question from a draft section.
type DeleteBuilderQuestion struct {
	SectionID  uuid.UUID
	QuestionID uuid.UUID
}

// MoveBuilderQuestion moves a question within a section from one index to
// another.
type MoveBuilderQuestion struct {
	SectionID uuid.UUID
	From      int
	To        int
}

func (AddJob) isAction()                {}
func (UpdateJob) isAction()             {}
func (ArchiveJob) isAction()            {}
func (UnarchiveJob) isAction()          {}
func (ReorderJob) isAction()            {}
func (AddCandidate) isAction()          {}
func (UpdateCandidateStage) isAction()  {}
func (AddNote) isAction()               {}
func (UpdateNote) isAction()            {}
func (DeleteNote) isAction()            {}
func (SetJobFilters) isAction()         {}
func (SetCandidateFilters) isAction()   {}
func (SetAssessment) isAction()         {}
func (DeleteAssessment) isAction()      {}
func (OpenBuilder) isAction()           {}
func (CloseBuilder) isAction()          {}
func (SetBuilderMeta) isAction()        {}
func (AddBuilderSection) isAction()     {}
func (UpdateBuilderSection) isAction()  {}
func (DeleteBuilderSection) isAction()  {}
func (AddBuilderQuestion) isAction()    {}
func (UpdateBuilderQuestion) isAction() {}
func (DeleteBuilderQuestion) isAction() {}
func (MoveBuilderQuestion) isAction()   {}
