// Package store provides the embedded SQLite record store backing all
// entity collections.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// ErrNoRecord is returned by mutations that reference a missing record.
// Point reads return (nil, nil) for missing records instead.
var ErrNoRecord = errors.New("record not found")

// Store wraps the SQLite database holding all collections.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates or opens the store at the given path. ":memory:" opens an
// ephemeral store for tests.
func Open(path string) (*Store, error) {
	dsn := path
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
		dsn = path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	// The store has exactly one logical writer; a single connection keeps
	// SQLite from returning busy errors under test parallelism.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, path: path}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// initSchema creates the collections and their indexes.
func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS jobs (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		slug TEXT NOT NULL,
		company TEXT NOT NULL,
		location TEXT NOT NULL DEFAULT '',
		employment_type TEXT NOT NULL DEFAULT 'Full-time',
		status TEXT NOT NULL DEFAULT 'active',
		description TEXT NOT NULL DEFAULT '',
		requirements_json TEXT,
		salary TEXT NOT NULL DEFAULT '',
		posted_date DATETIME NOT NULL,
		applicants INTEGER NOT NULL DEFAULT 0,
		sort_order INTEGER NOT NULL,
		tags_json TEXT,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_jobs_status_order ON jobs(status, sort_order);
	CREATE INDEX IF NOT EXISTS idx_jobs_slug ON jobs(slug);

	CREATE TABLE IF NOT EXISTS candidates (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		experience TEXT NOT NULL DEFAULT '',
		skills_json TEXT,
		job_id TEXT,
		applied_jobs_json TEXT,
		current_stage TEXT NOT NULL,
		stages_json TEXT NOT NULL,
		resume TEXT NOT NULL DEFAULT '',
		linkedin TEXT NOT NULL DEFAULT '',
		portfolio TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_candidates_stage ON candidates(current_stage);
	CREATE INDEX IF NOT EXISTS idx_candidates_job ON candidates(job_id);

	CREATE TABLE IF NOT EXISTS candidate_timeline (
		id TEXT PRIMARY KEY,
		candidate_id TEXT NOT NULL,
		stage TEXT NOT NULL,
		status TEXT NOT NULL,
		date DATETIME NOT NULL,
		created_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_timeline_candidate ON candidate_timeline(candidate_id, created_at);

	CREATE TABLE IF NOT EXISTS assessments (
		id TEXT PRIMARY KEY,
		job_id TEXT NOT NULL UNIQUE,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		questions_json TEXT NOT NULL,
		time_limit INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS assessment_responses (
		id TEXT PRIMARY KEY,
		assessment_id TEXT NOT NULL,
		candidate_id TEXT NOT NULL,
		responses_json TEXT NOT NULL,
		submitted_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_responses_assessment ON assessment_responses(assessment_id);
	CREATE INDEX IF NOT EXISTS idx_responses_candidate ON assessment_responses(candidate_id);

	CREATE TABLE IF NOT EXISTS notes (
		id TEXT PRIMARY KEY,
		candidate_id TEXT NOT NULL,
		content TEXT NOT NULL,
		author TEXT NOT NULL,
		mentions_json TEXT,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_notes_candidate ON notes(candidate_id, created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Wipe deletes every record in every collection. Used by the seeder before
// regenerating data.
func (s *Store) Wipe(ctx context.Context) error {
	for _, table := range []string{
		"jobs", "candidates", "candidate_timeline",
		"assessments", "assessment_responses", "notes",
	} {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to wipe %s: %w", table, err)
		}
	}
	return nil
}

// Pagination describes one page of a list result.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPagination computes the pagination envelope for a list result.
// TotalPages is at least 1 so an empty collection still has one page.
func NewPagination(page, pageSize, total int) Pagination {
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	return Pagination{Page: page, PageSize: pageSize, Total: total, TotalPages: totalPages}
}

// marshalJSON encodes a list/map field for storage in a TEXT column.
// Nil values are stored as SQL NULL.
func marshalJSON(v any) (any, error) {
	if v == nil {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal field: %w", err)
	}
	return b, nil
}

// unmarshalJSON decodes a JSON TEXT column into dst, tolerating NULL.
func unmarshalJSON(raw []byte, dst any) {
	if len(raw) == 0 {
		return
	}
	_ = json.Unmarshal(raw, dst)
}
