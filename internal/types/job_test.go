package types

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSlugify tests slug derivation from job titles
func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple title", "Backend Engineer", "backend-engineer"},
		{"mixed case", "Senior QA Engineer", "senior-qa-engineer"},
		{"punctuation", "C++ / Systems Developer!", "c-systems-developer"},
		{"repeated separators", "Data  --  Engineer", "data-engineer"},
		{"leading and trailing noise", "  (Remote) Designer  ", "remote-designer"},
		{"numbers kept", "L5 Engineer 2025", "l5-engineer-2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

// TestSlugify_Charset tests that slugs only ever contain [a-z0-9-]
// with no repeated hyphens
func TestSlugify_Charset(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	titles := []string{
		"Frontend Engineer",
		"VP, People & Culture",
		"Développeur Sénior",
		"!!!",
		"QA Engineer",
	}
	for _, title := range titles {
		slug := Slugify(title)
		if slug == "" {
			continue
		}
		assert.Regexp(t, valid, slug, "title %q", title)
	}
}
