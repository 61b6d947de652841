// Package types provides the domain entities shared by the store, state, and server layers.
package types

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Employment type values for Job.Type.
const (
	EmploymentFullTime = "Full-time"
	EmploymentPartTime = "Part-time"
	EmploymentContract = "Contract"
	EmploymentRemote   = "Remote"
)

// Job status values.
const (
	JobStatusActive   = "active"
	JobStatusArchived = "archived"
)

// Job represents a job posting. Order is the job's position in the
// manually-ranked board: across all jobs the order values form a dense
// 0..N-1 permutation.
type Job struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	Type         string    `json:"type"`
	Status       string    `json:"status"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	Salary       string    `json:"salary"`
	PostedDate   time.Time `json:"postedDate"`
	Applicants   int       `json:"applicants"`
	Order        int       `json:"order"`
	Tags         []string  `json:"tags"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)
	slugHyphens = regexp.MustCompile(`-{2,}`)
)

// Slugify derives a URL-safe identifier from a job title: lowercase,
// only [a-z0-9-], repeated hyphens collapsed, no leading/trailing hyphen.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugInvalid.ReplaceAllString(s, "-")
	s = slugHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
