package types

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CreateJobRequest represents the request to create a job posting.
type CreateJobRequest struct {
	Title        string   `json:"title" validate:"required,min=1"`
	Company      string   `json:"company" validate:"required,min=1"`
	Location     string   `json:"location,omitempty"`
	Type         string   `json:"type,omitempty" validate:"omitempty,oneof=Full-time Part-time Contract Remote"`
	Description  string   `json:"description,omitempty"`
	Requirements []string `json:"requirements,omitempty"`
	Salary       string   `json:"salary,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

// Validate validates the CreateJobRequest using the validator.
func (r *CreateJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// UpdateJobRequest represents a partial job update. Nil fields are left unchanged.
type UpdateJobRequest struct {
	Title        *string   `json:"title,omitempty" validate:"omitempty,min=1"`
	Company      *string   `json:"company,omitempty" validate:"omitempty,min=1"`
	Location     *string   `json:"location,omitempty"`
	Type         *string   `json:"type,omitempty" validate:"omitempty,oneof=Full-time Part-time Contract Remote"`
	Status       *string   `json:"status,omitempty" validate:"omitempty,oneof=active archived"`
	Description  *string   `json:"description,omitempty"`
	Requirements *[]string `json:"requirements,omitempty"`
	Salary       *string   `json:"salary,omitempty"`
	Tags         *[]string `json:"tags,omitempty"`
}

// Validate validates the UpdateJobRequest using the validator.
func (r *UpdateJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Apply writes the non-nil fields onto the job. A title change re-derives
// the slug.
func (r *UpdateJobRequest) Apply(j *Job) {
	if r.Title != nil {
		j.Title = *r.Title
		j.Slug = Slugify(*r.Title)
	}
	if r.Company != nil {
		j.Company = *r.Company
	}
	if r.Location != nil {
		j.Location = *r.Location
	}
	if r.Type != nil {
		j.Type = *r.Type
	}
	if r.Status != nil {
		j.Status = *r.Status
	}
	if r.Description != nil {
		j.Description = *r.Description
	}
	if r.Requirements != nil {
		j.Requirements = *r.Requirements
	}
	if r.Salary != nil {
		j.Salary = *r.Salary
	}
	if r.Tags != nil {
		j.Tags = *r.Tags
	}
}

// ReorderJobRequest moves a job from one board position to another with
// array move-element semantics.
type ReorderJobRequest struct {
	FromOrder *int `json:"fromOrder" validate:"required,gte=0"`
	ToOrder   *int `json:"toOrder" validate:"required,gte=0"`
}

// Validate validates the ReorderJobRequest using the validator.
func (r *ReorderJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// CreateCandidateRequest represents the request to create a candidate.
// New candidates always start at stage "1" (Applied).
type CreateCandidateRequest struct {
	Name        string      `json:"name" validate:"required,min=1"`
	Email       string      `json:"email" validate:"required,email"`
	Phone       string      `json:"phone,omitempty"`
	Experience  string      `json:"experience,omitempty"`
	Skills      []string    `json:"skills,omitempty"`
	AppliedJobs []uuid.UUID `json:"appliedJobs,omitempty"`
	Resume      string      `json:"resume,omitempty"`
	LinkedIn    string      `json:"linkedin,omitempty"`
	Portfolio   string      `json:"portfolio,omitempty"`
}

// Validate validates the CreateCandidateRequest using the validator.
func (r *CreateCandidateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// UpdateCandidateRequest represents a partial candidate update. Setting
// Stage moves the candidate and appends a timeline entry.
type UpdateCandidateRequest struct {
	Name       *string   `json:"name,omitempty" validate:"omitempty,min=1"`
	Email      *string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone      *string   `json:"phone,omitempty"`
	Experience *string   `json:"experience,omitempty"`
	Skills     *[]string `json:"skills,omitempty"`
	Stage      *string   `json:"stage,omitempty" validate:"omitempty,oneof=1 2 3 4 5"`
	Resume     *string   `json:"resume,omitempty"`
	LinkedIn   *string   `json:"linkedin,omitempty"`
	Portfolio  *string   `json:"portfolio,omitempty"`
}

// Validate validates the UpdateCandidateRequest using the validator.
func (r *UpdateCandidateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// SaveAssessmentRequest creates or replaces the assessment for a job.
type SaveAssessmentRequest struct {
	Title       string     `json:"title" validate:"required,min=1"`
	Description string     `json:"description,omitempty"`
	Questions   []Question `json:"questions" validate:"dive"`
	TimeLimit   int        `json:"timeLimit" validate:"gte=0"`
}

// Validate validates the SaveAssessmentRequest using the validator.
func (r *SaveAssessmentRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// SubmitAssessmentRequest records a candidate's answers for a job's assessment.
type SubmitAssessmentRequest struct {
	CandidateID uuid.UUID       `json:"candidateId" validate:"required"`
	Responses   json.RawMessage `json:"responses" validate:"required"`
}

// Validate validates the SubmitAssessmentRequest using the validator.
func (r *SubmitAssessmentRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// CreateNoteRequest attaches a note to a candidate. Mentions are derived
// from the content server-side.
type CreateNoteRequest struct {
	Content string `json:"content" validate:"required,min=1"`
	Author  string `json:"author" validate:"required,min=1"`
}

// Validate validates the CreateNoteRequest using the validator.
func (r *CreateNoteRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// UpdateNoteRequest rewrites a note's content; mentions are re-derived.
type UpdateNoteRequest struct {
	Content string `json:"content" validate:"required,min=1"`
}

// Validate validates the UpdateNoteRequest using the validator.
func (r *UpdateNoteRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
