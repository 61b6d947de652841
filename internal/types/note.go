package types

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Note is a free-text comment attached to a candidate. Mentions is derived
// from Content at save time and is never mutated independently: NewNote and
// SetContent are the only writers.
type Note struct {
	ID          uuid.UUID `json:"id"`
	CandidateID uuid.UUID `json:"candidateId"`
	Content     string    `json:"content"`
	Author      string    `json:"author"`
	Mentions    []string  `json:"mentions"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewNote constructs a note with mentions extracted from content.
func NewNote(candidateID uuid.UUID, author, content string, now time.Time) Note {
	return Note{
		ID:          uuid.New(),
		CandidateID: candidateID,
		Content:     content,
		Author:      author,
		Mentions:    ExtractMentions(content),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// SetContent replaces the note content and re-derives mentions.
func (n *Note) SetContent(content string, now time.Time) {
	n.Content = content
	n.Mentions = ExtractMentions(content)
	n.UpdatedAt = now
}

var mentionPattern = regexp.MustCompile(`@([A-Za-z0-9][A-Za-z0-9_-]*)`)

// ExtractMentions returns the unique @token ids in content, in order of
// first appearance. An empty content yields an empty (non-nil) slice.
func ExtractMentions(content string) []string {
	matches := mentionPattern.FindAllStringSubmatch(content, -1)
	mentions := make([]string, 0, len(matches))
	seen := make(map[string]bool, len(matches))
	for _, m := range matches {
		if !seen[m[1]] {
			seen[m[1]] = true
			mentions = append(mentions, m[1])
		}
	}
	return mentions
}
