package types

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// TestExtractMentions tests @token extraction order and uniqueness
func TestExtractMentions(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			"two mentions in order",
			"ok @hr-team please check @jane-smith",
			[]string{"hr-team", "jane-smith"},
		},
		{
			"duplicate kept once at first appearance",
			"@alice ping @bob then @alice again",
			[]string{"alice", "bob"},
		},
		{"no mentions", "plain note with no tags", []string{}},
		{"empty content", "", []string{}},
		{"bare at sign ignored", "email me @ noon", []string{}},
		{"mention at start", "@eng-leads take a look", []string{"eng-leads"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractMentions(tt.content))
		})
	}
}

// TestNewNote tests that mentions are derived at construction
func TestNewNote(t *testing.T) {
	now := time.Now()
	candidateID := uuid.New()
	note := NewNote(candidateID, "Sarah Chen", "looks great @hr-team", now)

	assert.NotEqual(t, uuid.Nil, note.ID)
	assert.Equal(t, candidateID, note.CandidateID)
	assert.Equal(t, []string{"hr-team"}, note.Mentions)
	assert.Equal(t, now, note.CreatedAt)
}

// TestNote_SetContent tests that mentions are re-derived on every rewrite
func TestNote_SetContent(t *testing.T) {
	note := NewNote(uuid.New(), "Mike Ross", "ping @alice", time.Now())
	assert.Equal(t, []string{"alice"}, note.Mentions)

	later := time.Now().Add(time.Hour)
	note.SetContent("actually @bob and @carol should see this", later)

	assert.Equal(t, []string{"bob", "carol"}, note.Mentions)
	assert.Equal(t, later, note.UpdatedAt)
}
