package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/talentflow/internal/types"
)

func scanNote(row interface{ Scan(...any) error }) (*types.Note, error) {
	var n types.Note
	var id, cid string
	var mentionsJSON []byte

	err := row.Scan(&id, &cid, &n.Content, &n.Author, &mentionsJSON,
		&n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return nil, err
	}

	n.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid note id %q: %w", id, err)
	}
	n.CandidateID, err = uuid.Parse(cid)
	if err != nil {
		return nil, fmt.Errorf("invalid note candidate id %q: %w", cid, err)
	}
	unmarshalJSON(mentionsJSON, &n.Mentions)
	if n.Mentions == nil {
		n.Mentions = []string{}
	}
	return &n, nil
}

// CreateNote attaches a note to a candidate. Mentions are derived from the
// content by the Note constructor.
func (s *Store) CreateNote(ctx context.Context, candidateID uuid.UUID, author, content string) (*types.Note, error) {
	note := types.NewNote(candidateID, author, content, time.Now().UTC())

	mentionsJSON, err := marshalJSON(note.Mentions)
	if err != nil {
		return nil, err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO notes (id, candidate_id, content, author, mentions_json,
		                    created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		note.ID.String(), note.CandidateID.String(), note.Content, note.Author,
		mentionsJSON, note.CreatedAt, note.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert note: %w", err)
	}
	return &note, nil
}

// GetNote retrieves a note by id. Returns (nil, nil) when missing.
func (s *Store) GetNote(ctx context.Context, id uuid.UUID) (*types.Note, error) {
	note, err := scanNote(s.db.QueryRowContext(ctx,
		`SELECT id, candidate_id, content, author, mentions_json, created_at, updated_at
		 FROM notes WHERE id = ?`, id.String()))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	return note, nil
}

// ListNotes returns a candidate's notes, oldest first.
func (s *Store) ListNotes(ctx context.Context, candidateID uuid.UUID) ([]types.Note, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, candidate_id, content, author, mentions_json, created_at, updated_at
		 FROM notes WHERE candidate_id = ?
		 ORDER BY created_at ASC, id ASC`, candidateID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := []types.Note{}
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, *note)
	}
	return notes, rows.Err()
}

// UpdateNote rewrites a note's content and re-derives its mentions.
// Returns ErrNoRecord when the note does not exist.
func (s *Store) UpdateNote(ctx context.Context, id uuid.UUID, content string) (*types.Note, error) {
	note, err := s.GetNote(ctx, id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, fmt.Errorf("note %s: %w", id, ErrNoRecord)
	}

	note.SetContent(content, time.Now().UTC())

	mentionsJSON, err := marshalJSON(note.Mentions)
	if err != nil {
		return nil, err
	}
	_, err = s.db.ExecContext(ctx,
		`UPDATE notes SET content = ?, mentions_json = ?, updated_at = ? WHERE id = ?`,
		note.Content, mentionsJSON, note.UpdatedAt, id.String())
	if err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	return note, nil
}

// DeleteNote removes a note by id. Returns ErrNoRecord when it does not exist.
func (s *Store) DeleteNote(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id.String())
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("note %s: %w", id, ErrNoRecord)
	}
	return nil
}

// BulkAddNotes inserts pre-built notes in one transaction. Used by the seeder.
func (s *Store) BulkAddNotes(ctx context.Context, notes []types.Note) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for i := range notes {
		n := &notes[i]
		mentionsJSON, err := marshalJSON(n.Mentions)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO notes (id, candidate_id, content, author, mentions_json,
			                    created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			n.ID.String(), n.CandidateID.String(), n.Content, n.Author,
			mentionsJSON, n.CreatedAt, n.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert note %s: %w", n.ID, err)
		}
	}
	return tx.Commit()
}
