package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/talentflow/internal/types"
)

func scanAssessment(row interface{ Scan(...any) error }) (*types.Assessment, error) {
	var a types.Assessment
	var id, jobID string
	var questionsJSON []byte

	err := row.Scan(&id, &jobID, &a.Title, &a.Description, &questionsJSON,
		&a.TimeLimit, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}

	a.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid assessment id %q: %w", id, err)
	}
	a.JobID, err = uuid.Parse(jobID)
	if err != nil {
		return nil, fmt.Errorf("invalid assessment job id %q: %w", jobID, err)
	}
	unmarshalJSON(questionsJSON, &a.Questions)
	if a.Questions == nil {
		a.Questions = []types.Question{}
	}
	return &a, nil
}

// GetAssessmentByJob retrieves the assessment for a job. Returns (nil, nil)
// when the job has none.
func (s *Store) GetAssessmentByJob(ctx context.Context, jobID uuid.UUID) (*types.Assessment, error) {
	a, err := scanAssessment(s.db.QueryRowContext(ctx,
		`SELECT id, job_id, title, description, questions_json, time_limit,
		        created_at, updated_at
		 FROM assessments WHERE job_id = ?`, jobID.String()))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get assessment: %w", err)
	}
	return a, nil
}

// UpsertAssessmentByJob creates or replaces the assessment for a job. The
// unique job_id index guarantees at most one assessment per job.
func (s *Store) UpsertAssessmentByJob(ctx context.Context, jobID uuid.UUID, req *types.SaveAssessmentRequest) (*types.Assessment, error) {
	now := time.Now().UTC()
	questions := req.Questions
	if questions == nil {
		questions = []types.Question{}
	}
	for i := range questions {
		if questions[i].ID == uuid.Nil {
			questions[i].ID = uuid.New()
		}
	}

	questionsJSON, err := marshalJSON(questions)
	if err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO assessments (id, job_id, title, description, questions_json,
		                          time_limit, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (job_id) DO UPDATE SET
		   title = excluded.title,
		   description = excluded.description,
		   questions_json = excluded.questions_json,
		   time_limit = excluded.time_limit,
		   updated_at = excluded.updated_at`,
		uuid.New().String(), jobID.String(), req.Title, req.Description,
		questionsJSON, req.TimeLimit, now, now)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert assessment: %w", err)
	}

	return s.GetAssessmentByJob(ctx, jobID)
}

// CreateResponse stores a candidate's submitted answers for an assessment.
// The responses payload is stored opaquely.
func (s *Store) CreateResponse(ctx context.Context, assessmentID, candidateID uuid.UUID, responses json.RawMessage) (*types.AssessmentResponse, error) {
	resp := types.AssessmentResponse{
		ID:           uuid.New(),
		AssessmentID: assessmentID,
		CandidateID:  candidateID,
		Responses:    responses,
		SubmittedAt:  time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO assessment_responses (id, assessment_id, candidate_id,
		                                   responses_json, submitted_at)
		 VALUES (?, ?, ?, ?, ?)`,
		resp.ID.String(), resp.AssessmentID.String(), resp.CandidateID.String(),
		[]byte(resp.Responses), resp.SubmittedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert response: %w", err)
	}
	return &resp, nil
}

// ListResponses returns all submissions for an assessment, oldest first.
func (s *Store) ListResponses(ctx context.Context, assessmentID uuid.UUID) ([]types.AssessmentResponse, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, assessment_id, candidate_id, responses_json, submitted_at
		 FROM assessment_responses WHERE assessment_id = ?
		 ORDER BY submitted_at ASC, id ASC`, assessmentID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}
	defer rows.Close()

	responses := []types.AssessmentResponse{}
	for rows.Next() {
		var r types.AssessmentResponse
		var id, aid, cid string
		var payload []byte
		if err := rows.Scan(&id, &aid, &cid, &payload, &r.SubmittedAt); err != nil {
			return nil, fmt.Errorf("failed to scan response: %w", err)
		}
		r.ID, _ = uuid.Parse(id)
		r.AssessmentID, _ = uuid.Parse(aid)
		r.CandidateID, _ = uuid.Parse(cid)
		r.Responses = json.RawMessage(payload)
		responses = append(responses, r)
	}
	return responses, rows.Err()
}

// CountAssessments returns the number of stored assessments.
func (s *Store) CountAssessments(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM assessments").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count assessments: %w", err)
	}
	return n, nil
}

// BulkAddAssessments inserts pre-built assessments in one transaction.
// Used by the seeder.
func (s *Store) BulkAddAssessments(ctx context.Context, assessments []types.Assessment) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for i := range assessments {
		a := &assessments[i]
		questionsJSON, err := marshalJSON(a.Questions)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO assessments (id, job_id, title, description,
			                          questions_json, time_limit, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			a.ID.String(), a.JobID.String(), a.Title, a.Description,
			questionsJSON, a.TimeLimit, a.CreatedAt, a.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert assessment %s: %w", a.ID, err)
		}
	}
	return tx.Commit()
}
