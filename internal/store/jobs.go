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

// scanJob reads one job row.
func scanJob(row interface{ Scan(...any) error }) (*types.Job, error) {
	var j types.Job
	var id string
	var requirementsJSON, tagsJSON []byte

	err := row.Scan(&id, &j.Title, &j.Slug, &j.Company, &j.Location, &j.Type,
		&j.Status, &j.Description, &requirementsJSON, &j.Salary, &j.PostedDate,
		&j.Applicants, &j.Order, &tagsJSON, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return nil, err
	}

	j.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid job id %q: %w", id, err)
	}
	unmarshalJSON(requirementsJSON, &j.Requirements)
	unmarshalJSON(tagsJSON, &j.Tags)
	return &j, nil
}

const jobColumns = `id, title, slug, company, location, employment_type, status,
	description, requirements_json, salary, posted_date, applicants, sort_order,
	tags_json, created_at, updated_at`

// CreateJob inserts a new job with a derived slug and a trailing board
// position (order = current job count).
func (s *Store) CreateJob(ctx context.Context, req *types.CreateJobRequest) (*types.Job, error) {
	now := time.Now().UTC()
	job := types.Job{
		ID:           uuid.New(),
		Title:        req.Title,
		Slug:         types.Slugify(req.Title),
		Company:      req.Company,
		Location:     req.Location,
		Type:         req.Type,
		Status:       types.JobStatusActive,
		Description:  req.Description,
		Requirements: req.Requirements,
		Salary:       req.Salary,
		PostedDate:   now,
		Tags:         req.Tags,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if job.Type == "" {
		job.Type = types.EmploymentFullTime
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM jobs").Scan(&job.Order); err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}

	requirementsJSON, err := marshalJSON(job.Requirements)
	if err != nil {
		return nil, err
	}
	tagsJSON, err := marshalJSON(job.Tags)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO jobs (`+jobColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		job.ID.String(), job.Title, job.Slug, job.Company, job.Location, job.Type,
		job.Status, job.Description, requirementsJSON, job.Salary, job.PostedDate,
		job.Applicants, job.Order, tagsJSON, job.CreatedAt, job.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit job: %w", err)
	}
	return &job, nil
}

// GetJob retrieves a job by id. Returns (nil, nil) when no job exists.
func (s *Store) GetJob(ctx context.Context, id uuid.UUID) (*types.Job, error) {
	job, err := scanJob(s.db.QueryRowContext(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = ?`, id.String()))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// ListJobsOptions filters and paginates the job list.
type ListJobsOptions struct {
	Search   string // case-insensitive substring on title or company
	Status   string // "active" or "archived"; empty matches all
	Sort     string // "order" (default), "title", or "postedDate"
	Page     int
	PageSize int
}

// ListJobs returns one page of jobs plus the total match count. Filtering
// never rewrites sort_order; it only narrows the visible set.
func (s *Store) ListJobs(ctx context.Context, opts ListJobsOptions) ([]types.Job, int, error) {
	where := "1=1"
	args := []any{}
	if opts.Status != "" {
		where += " AND status = ?"
		args = append(args, opts.Status)
	}
	if opts.Search != "" {
		where += " AND (LOWER(title) LIKE ? OR LOWER(company) LIKE ?)"
		pattern := "%" + strings.ToLower(opts.Search) + "%"
		args = append(args, pattern, pattern)
	}

	var total int
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM jobs WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	orderBy := "sort_order ASC"
	switch opts.Sort {
	case "title":
		orderBy = "LOWER(title) ASC"
	case "postedDate":
		orderBy = "posted_date DESC"
	}

	page, pageSize := normalizePage(opts.Page, opts.PageSize)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE `+where+
			` ORDER BY `+orderBy+` LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := []types.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, *job)
	}
	return jobs, total, rows.Err()
}

// UpdateJob applies a partial update. A title change re-derives the slug.
// Returns ErrNoRecord when the job does not exist.
func (s *Store) UpdateJob(ctx context.Context, id uuid.UUID, req *types.UpdateJobRequest) (*types.Job, error) {
	job, err := s.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, fmt.Errorf("job %s: %w", id, ErrNoRecord)
	}

	req.Apply(job)
	job.UpdatedAt = time.Now().UTC()

	requirementsJSON, err := marshalJSON(job.Requirements)
	if err != nil {
		return nil, err
	}
	tagsJSON, err := marshalJSON(job.Tags)
	if err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx,
		`UPDATE jobs SET title = ?, slug = ?, company = ?, location = ?,
		 employment_type = ?, status = ?, description = ?, requirements_json = ?,
		 salary = ?, tags_json = ?, updated_at = ? WHERE id = ?`,
		job.Title, job.Slug, job.Company, job.Location, job.Type, job.Status,
		job.Description, requirementsJSON, job.Salary, tagsJSON, job.UpdatedAt,
		id.String())
	if err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return job, nil
}

// ReorderJob moves a job from fromOrder to toOrder with array
// move-element semantics: every job in the affected contiguous range
// shifts by one, the moved job takes toOrder, and order values stay a
// dense 0..N-1 permutation.
func (s *Store) ReorderJob(ctx context.Context, id uuid.UUID, fromOrder, toOrder int) (*types.Job, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var current int
	err = tx.QueryRowContext(ctx,
		"SELECT sort_order FROM jobs WHERE id = ?", id.String()).Scan(&current)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("job %s: %w", id, ErrNoRecord)
		}
		return nil, fmt.Errorf("failed to read job order: %w", err)
	}
	if current != fromOrder {
		return nil, &ErrStaleOrder{Expected: current, Got: fromOrder}
	}

	var count int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM jobs").Scan(&count); err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}
	if toOrder < 0 || toOrder >= count {
		return nil, &ErrOrderOutOfRange{Order: toOrder, Count: count}
	}

	now := time.Now().UTC()
	switch {
	case fromOrder < toOrder:
		_, err = tx.ExecContext(ctx,
			`UPDATE jobs SET sort_order = sort_order - 1, updated_at = ?
			 WHERE sort_order > ? AND sort_order <= ?`, now, fromOrder, toOrder)
	case fromOrder > toOrder:
		_, err = tx.ExecContext(ctx,
			`UPDATE jobs SET sort_order = sort_order + 1, updated_at = ?
			 WHERE sort_order >= ? AND sort_order < ?`, now, toOrder, fromOrder)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to shift job range: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE jobs SET sort_order = ?, updated_at = ? WHERE id = ?",
		toOrder, now, id.String())
	if err != nil {
		return nil, fmt.Errorf("failed to move job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit reorder: %w", err)
	}
	return s.GetJob(ctx, id)
}

// ErrStaleOrder indicates the caller's fromOrder no longer matches the
// job's persisted position.
type ErrStaleOrder struct {
	Expected int
	Got      int
}

func (e *ErrStaleOrder) Error() string {
	return fmt.Sprintf("stale fromOrder: job is at position %d, not %d", e.Expected, e.Got)
}

// ErrOrderOutOfRange indicates a reorder target outside the board. Valid
// positions are 0..N-1 for N jobs.
type ErrOrderOutOfRange struct {
	Order int
	Count int
}

func (e *ErrOrderOutOfRange) Error() string {
	return fmt.Sprintf("toOrder %d out of range: board has %d jobs", e.Order, e.Count)
}

// CountJobsByStatus returns the total job count plus per-status counts.
func (s *Store) CountJobsByStatus(ctx context.Context) (total int, byStatus map[string]int, err error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT status, COUNT(*) FROM jobs GROUP BY status")
	if err != nil {
		return 0, nil, fmt.Errorf("failed to count jobs: %w", err)
	}
	defer rows.Close()

	byStatus = map[string]int{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return 0, nil, fmt.Errorf("failed to scan job count: %w", err)
		}
		byStatus[status] = n
		total += n
	}
	return total, byStatus, rows.Err()
}

// BulkAddJobs inserts pre-built jobs in one transaction. Used by the seeder;
// the caller is responsible for dense order values.
func (s *Store) BulkAddJobs(ctx context.Context, jobs []types.Job) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for i := range jobs {
		job := &jobs[i]
		requirementsJSON, err := marshalJSON(job.Requirements)
		if err != nil {
			return err
		}
		tagsJSON, err := marshalJSON(job.Tags)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO jobs (`+jobColumns+`)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			job.ID.String(), job.Title, job.Slug, job.Company, job.Location,
			job.Type, job.Status, job.Description, requirementsJSON, job.Salary,
			job.PostedDate, job.Applicants, job.Order, tagsJSON, job.CreatedAt,
			job.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert job %s: %w", job.ID, err)
		}
	}
	return tx.Commit()
}

// normalizePage clamps page/pageSize to sane defaults.
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}
