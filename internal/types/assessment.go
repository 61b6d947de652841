package types

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Question type values.
const (
	QuestionSingleChoice = "single-choice"
	QuestionMultiChoice  = "multi-choice"
	QuestionShortText    = "short-text"
	QuestionLongText     = "long-text"
	QuestionNumeric      = "numeric"
	QuestionFileUpload   = "file-upload"
)

// QuestionTypes lists all valid question type values.
var QuestionTypes = []string{
	QuestionSingleChoice,
	QuestionMultiChoice,
	QuestionShortText,
	QuestionLongText,
	QuestionNumeric,
	QuestionFileUpload,
}

// DisplayCondition shows a question only when another question's answer
// satisfies the operator/value comparison.
type DisplayCondition struct {
	QuestionID uuid.UUID `json:"questionId"`
	Operator   string    `json:"operator"`
	Value      string    `json:"value"`
}

// Question is one item of an assessment. Options applies only to the
// choice types; the numeric and length bounds only to their respective types.
type Question struct {
	ID          uuid.UUID         `json:"id"`
	Type        string            `json:"type"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Required    bool              `json:"required"`
	Options     []string          `json:"options,omitempty"`
	Min         *float64          `json:"min,omitempty"`
	Max         *float64          `json:"max,omitempty"`
	MaxLength   *int              `json:"maxLength,omitempty"`
	Condition   *DisplayCondition `json:"condition,omitempty"`
}

// Assessment is a per-job questionnaire. At most one assessment exists per
// job: saves go through an upsert keyed by JobID.
type Assessment struct {
	ID          uuid.UUID  `json:"id"`
	JobID       uuid.UUID  `json:"jobId"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Questions   []Question `json:"questions"`
	TimeLimit   int        `json:"timeLimit"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// AssessmentResponse stores a candidate's submitted answers. The responses
// payload is opaque to the backend.
type AssessmentResponse struct {
	ID           uuid.UUID       `json:"id"`
	AssessmentID uuid.UUID       `json:"assessmentId"`
	CandidateID  uuid.UUID       `json:"candidateId"`
	Responses    json.RawMessage `json:"responses"`
	SubmittedAt  time.Time       `json:"submittedAt"`
}
