package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore opens a store in a per-test temp directory.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "talentflow.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// TestOpen_CreatesSchema tests that a fresh store starts empty but queryable
func TestOpen_CreatesSchema(t *testing.T) {
	s := newTestStore(t)

	total, byStatus, err := s.CountJobsByStatus(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Empty(t, byStatus)
}

// TestNewPagination tests envelope arithmetic
func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 10, 25)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 10, p.PageSize)
	assert.Equal(t, 25, p.Total)
	assert.Equal(t, 3, p.TotalPages)

	empty := NewPagination(1, 10, 0)
	assert.Equal(t, 1, empty.TotalPages, "empty collection still has one page")
}
