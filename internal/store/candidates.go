package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/talentflow/internal/types"
)

const candidateColumns = `id, name, email, phone, experience, skills_json,
	job_id, applied_jobs_json, current_stage, stages_json, resume, linkedin,
	portfolio, created_at, updated_at`

func scanCandidate(row interface{ Scan(...any) error }) (*types.Candidate, error) {
	var c types.Candidate
	var id string
	var jobID sql.NullString
	var skillsJSON, appliedJSON, stagesJSON []byte

	err := row.Scan(&id, &c.Name, &c.Email, &c.Phone, &c.Experience, &skillsJSON,
		&jobID, &appliedJSON, &c.CurrentStage, &stagesJSON, &c.Resume,
		&c.LinkedIn, &c.Portfolio, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}

	c.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid candidate id %q: %w", id, err)
	}
	unmarshalJSON(skillsJSON, &c.Skills)
	unmarshalJSON(appliedJSON, &c.AppliedJobs)
	unmarshalJSON(stagesJSON, &c.Stages)
	return &c, nil
}

// primaryJobID returns the indexable job reference: the first applied job.
func primaryJobID(appliedJobs []uuid.UUID) any {
	if len(appliedJobs) == 0 {
		return nil
	}
	return appliedJobs[0].String()
}

// execer is the subset of *sql.DB and *sql.Tx the write helpers need, so a
// candidate mutation and its timeline append can share one transaction.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// CreateCandidate inserts a new candidate at stage "1" (Applied) and
// appends the initial timeline entry. Both rows commit together.
func (s *Store) CreateCandidate(ctx context.Context, req *types.CreateCandidateRequest) (*types.Candidate, error) {
	now := time.Now().UTC()
	c := types.Candidate{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Experience:   req.Experience,
		Skills:       req.Skills,
		AppliedJobs:  req.AppliedJobs,
		CurrentStage: types.StageApplied,
		Stages:       types.NewStages(now),
		Resume:       req.Resume,
		LinkedIn:     req.LinkedIn,
		Portfolio:    req.Portfolio,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if err := s.insertCandidate(ctx, tx, &c); err != nil {
		return nil, err
	}
	if _, err := s.appendTimeline(ctx, tx, c.ID, c.CurrentStage, types.StageStatusCurrent, now); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit candidate: %w", err)
	}
	return &c, nil
}

func (s *Store) insertCandidate(ctx context.Context, db execer, c *types.Candidate) error {
	skillsJSON, err := marshalJSON(c.Skills)
	if err != nil {
		return err
	}
	appliedJSON, err := marshalJSON(c.AppliedJobs)
	if err != nil {
		return err
	}
	stagesJSON, err := marshalJSON(c.Stages)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO candidates (`+candidateColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID.String(), c.Name, c.Email, c.Phone, c.Experience, skillsJSON,
		primaryJobID(c.AppliedJobs), appliedJSON, c.CurrentStage, stagesJSON,
		c.Resume, c.LinkedIn, c.Portfolio, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert candidate: %w", err)
	}
	return nil
}

// GetCandidate retrieves a candidate by id. Returns (nil, nil) when missing.
func (s *Store) GetCandidate(ctx context.Context, id uuid.UUID) (*types.Candidate, error) {
	c, err := scanCandidate(s.db.QueryRowContext(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE id = ?`, id.String()))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return c, nil
}

// ListCandidatesOptions filters and paginates the candidate list.
type ListCandidatesOptions struct {
	Search   string // case-insensitive substring on name or email
	Stage    string // stage id "1".."5"; empty matches all
	Page     int
	PageSize int
}

// ListCandidates returns one page of candidates plus the total match count,
// ordered by creation time.
func (s *Store) ListCandidates(ctx context.Context, opts ListCandidatesOptions) ([]types.Candidate, int, error) {
	where := "1=1"
	args := []any{}
	if opts.Stage != "" {
		where += " AND current_stage = ?"
		args = append(args, opts.Stage)
	}
	if opts.Search != "" {
		where += " AND (LOWER(name) LIKE ? OR LOWER(email) LIKE ?)"
		pattern := "%" + strings.ToLower(opts.Search) + "%"
		args = append(args, pattern, pattern)
	}

	var total int
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM candidates WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count candidates: %w", err)
	}

	page, pageSize := normalizePage(opts.Page, opts.PageSize)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE `+where+
			` ORDER BY created_at ASC, id ASC LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	candidates := []types.Candidate{}
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, *c)
	}
	return candidates, total, rows.Err()
}

// UpdateCandidate applies a partial update. A stage change advances the
// stage map and appends a timeline entry; the transition date is always
// now, never backdated. Returns ErrNoRecord when the candidate is missing.
func (s *Store) UpdateCandidate(ctx context.Context, id uuid.UUID, req *types.UpdateCandidateRequest) (*types.Candidate, error) {
	c, err := s.GetCandidate(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("candidate %s: %w", id, ErrNoRecord)
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Experience != nil {
		c.Experience = *req.Experience
	}
	if req.Skills != nil {
		c.Skills = *req.Skills
	}
	if req.Resume != nil {
		c.Resume = *req.Resume
	}
	if req.LinkedIn != nil {
		c.LinkedIn = *req.LinkedIn
	}
	if req.Portfolio != nil {
		c.Portfolio = *req.Portfolio
	}

	now := time.Now().UTC()
	stageChanged := req.Stage != nil && *req.Stage != c.CurrentStage
	if stageChanged {
		c.AdvanceStage(*req.Stage, types.StageStatusCurrent, now)
	}
	c.UpdatedAt = now

	skillsJSON, err := marshalJSON(c.Skills)
	if err != nil {
		return nil, err
	}
	stagesJSON, err := marshalJSON(c.Stages)
	if err != nil {
		return nil, err
	}

	// The row update and the timeline append commit together so the stage
	// history never diverges from current_stage.
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.ExecContext(ctx,
		`UPDATE candidates SET name = ?, email = ?, phone = ?, experience = ?,
		 skills_json = ?, current_stage = ?, stages_json = ?, resume = ?,
		 linkedin = ?, portfolio = ?, updated_at = ? WHERE id = ?`,
		c.Name, c.Email, c.Phone, c.Experience, skillsJSON, c.CurrentStage,
		stagesJSON, c.Resume, c.LinkedIn, c.Portfolio, c.UpdatedAt, id.String())
	if err != nil {
		return nil, fmt.Errorf("failed to update candidate: %w", err)
	}

	if stageChanged {
		if _, err := s.appendTimeline(ctx, tx, id, c.CurrentStage, types.StageStatusCurrent, now); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit candidate update: %w", err)
	}
	return c, nil
}

// appendTimeline writes one append-only stage history row on the caller's
// transaction.
func (s *Store) appendTimeline(ctx context.Context, db execer, candidateID uuid.UUID, stage, status string, date time.Time) (*types.TimelineEntry, error) {
	entry := types.TimelineEntry{
		ID:          uuid.New(),
		CandidateID: candidateID,
		Stage:       stage,
		Status:      status,
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}
	_, err := db.ExecContext(ctx,
		`INSERT INTO candidate_timeline (id, candidate_id, stage, status, date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID.String(), entry.CandidateID.String(), entry.Stage, entry.Status,
		entry.Date, entry.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to append timeline entry: %w", err)
	}
	return &entry, nil
}

// ListTimeline returns a candidate's stage history, oldest first.
func (s *Store) ListTimeline(ctx context.Context, candidateID uuid.UUID) ([]types.TimelineEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, candidate_id, stage, status, date, created_at
		 FROM candidate_timeline WHERE candidate_id = ?
		 ORDER BY created_at ASC, id ASC`, candidateID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list timeline: %w", err)
	}
	defer rows.Close()

	entries := []types.TimelineEntry{}
	for rows.Next() {
		var e types.TimelineEntry
		var id, cid string
		if err := rows.Scan(&id, &cid, &e.Stage, &e.Status, &e.Date, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan timeline entry: %w", err)
		}
		e.ID, _ = uuid.Parse(id)
		e.CandidateID, _ = uuid.Parse(cid)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// CountCandidatesByStage returns the total candidate count plus per-stage counts.
func (s *Store) CountCandidatesByStage(ctx context.Context) (total int, byStage map[string]int, err error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT current_stage, COUNT(*) FROM candidates GROUP BY current_stage")
	if err != nil {
		return 0, nil, fmt.Errorf("failed to count candidates: %w", err)
	}
	defer rows.Close()

	byStage = map[string]int{}
	for rows.Next() {
		var stage string
		var n int
		if err := rows.Scan(&stage, &n); err != nil {
			return 0, nil, fmt.Errorf("failed to scan candidate count: %w", err)
		}
		byStage[stage] = n
		total += n
	}
	return total, byStage, rows.Err()
}

// BulkAddCandidates inserts pre-built candidates and their initial timeline
// entries in one transaction. Used by the seeder.
func (s *Store) BulkAddCandidates(ctx context.Context, candidates []types.Candidate, timeline []types.TimelineEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for i := range candidates {
		c := &candidates[i]
		skillsJSON, err := marshalJSON(c.Skills)
		if err != nil {
			return err
		}
		appliedJSON, err := marshalJSON(c.AppliedJobs)
		if err != nil {
			return err
		}
		stagesJSON, err := marshalJSON(c.Stages)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO candidates (`+candidateColumns+`)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID.String(), c.Name, c.Email, c.Phone, c.Experience, skillsJSON,
			primaryJobID(c.AppliedJobs), appliedJSON, c.CurrentStage, stagesJSON,
			c.Resume, c.LinkedIn, c.Portfolio, c.CreatedAt, c.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert candidate %s: %w", c.ID, err)
		}
	}

	for i := range timeline {
		e := &timeline[i]
		_, err = tx.ExecContext(ctx,
			`INSERT INTO candidate_timeline (id, candidate_id, stage, status, date, created_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			e.ID.String(), e.CandidateID.String(), e.Stage, e.Status, e.Date, e.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert timeline entry %s: %w", e.ID, err)
		}
	}
	return tx.Commit()
}
