// Package seed populates the store with deterministic synthetic data for
// demo and development use.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/talentflow/internal/store"
	"github.com/jonathan/talentflow/internal/types"
)

const (
	jobCount        = 25
	candidateCount  = 150
	assessmentCount = 6
)

// Generator produces internally-consistent synthetic data. All randomness
// flows through a single seeded source, so a fixed seed reproduces the
// same dataset.
type Generator struct {
	store  *store.Store
	rng    *rand.Rand
	logger *zap.Logger
}

// New creates a generator over the given store with a fixed random seed.
func New(st *store.Store, seed int64, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		store:  st,
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
	}
}

// SeedIfEmpty seeds only when the jobs collection is empty.
func (g *Generator) SeedIfEmpty(ctx context.Context) error {
	total, _, err := g.store.CountJobsByStatus(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		g.logger.Info("store already seeded", zap.Int("jobs", total))
		return nil
	}
	return g.Seed(ctx)
}

// Seed wipes every collection and regenerates the full dataset. A failure
// partway through leaves partial collections behind; re-running Seed
// recovers by wiping again.
func (g *Generator) Seed(ctx context.Context) error {
	if err := g.store.Wipe(ctx); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	jobs := g.generateJobs()
	if err := g.store.BulkAddJobs(ctx, jobs); err != nil {
		return fmt.Errorf("seed jobs: %w", err)
	}

	candidates, timeline := g.generateCandidates(jobs)
	if err := g.store.BulkAddCandidates(ctx, candidates, timeline); err != nil {
		return fmt.Errorf("seed candidates: %w", err)
	}

	assessments := g.generateAssessments(jobs)
	if err := g.store.BulkAddAssessments(ctx, assessments); err != nil {
		return fmt.Errorf("seed assessments: %w", err)
	}

	notes := g.generateNotes(candidates)
	if err := g.store.BulkAddNotes(ctx, notes); err != nil {
		return fmt.Errorf("seed notes: %w", err)
	}

	g.logger.Info("seeded store",
		zap.Int("jobs", len(jobs)),
		zap.Int("candidates", len(candidates)),
		zap.Int("assessments", len(assessments)),
		zap.Int("notes", len(notes)))
	return nil
}

// newID draws a UUID from the seeded source so a fixed seed reproduces
// the exact dataset, ids included.
func (g *Generator) newID() uuid.UUID {
	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		// math/rand readers never fail; keep the generator total anyway.
		return uuid.New()
	}
	return id
}

func (g *Generator) pick(values []string) string {
	return values[g.rng.Intn(len(values))]
}

// pastDate returns a UTC timestamp up to maxDays in the past.
func (g *Generator) pastDate(now time.Time, maxDays int) time.Time {
	return now.AddDate(0, 0, -g.rng.Intn(maxDays))
}

func (g *Generator) generateJobs() []types.Job {
	now := time.Now().UTC()
	jobs := make([]types.Job, 0, jobCount)

	add := func(title, company, location, empType, salary, description string, requirements, tags []string) {
		status := types.JobStatusActive
		if g.rng.Float64() < 0.2 {
			status = types.JobStatusArchived
		}
		jobs = append(jobs, types.Job{
			ID:           g.newID(),
			Title:        title,
			Slug:         types.Slugify(title),
			Company:      company,
			Location:     location,
			Type:         empType,
			Status:       status,
			Description:  description,
			Requirements: requirements,
			Salary:       salary,
			PostedDate:   g.pastDate(now, 90),
			Applicants:   g.rng.Intn(120),
			Order:        len(jobs),
			Tags:         tags,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	// Hand-authored postings first so the board always has a few complete,
	// readable entries.
	add("Senior Frontend Engineer", "TalentFlow", "San Francisco, CA",
		types.EmploymentFullTime, "$150k - $190k",
		"Own the candidate-facing application experience end to end.",
		[]string{"5+ years building SPAs", "Deep React knowledge", "Design system experience"},
		[]string{"react", "typescript", "frontend"})
	add("Staff Platform Engineer", "TalentFlow", "Remote",
		types.EmploymentRemote, "$180k - $220k",
		"Design and operate the services powering the hiring pipeline.",
		[]string{"Distributed systems background", "Go or Rust in production", "On-call experience"},
		[]string{"go", "platform", "infrastructure"})
	add("Technical Recruiter", "TalentFlow", "New York, NY",
		types.EmploymentFullTime, "$90k - $120k",
		"Partner with engineering leadership to grow the team.",
		[]string{"3+ years technical recruiting", "Full-cycle ownership"},
		[]string{"recruiting", "people"})

	for len(jobs) < jobCount {
		title := g.pick(jobTitles)
		add(title, g.pick(companies), g.pick(locations), g.pick(employmentTypes),
			g.pick(salaryBands), "We are hiring a "+title+" to join our team.",
			g.sample(requirementsPool, 2+g.rng.Intn(3)),
			g.sample(tagPool, 1+g.rng.Intn(3)))
	}
	return jobs
}

// sample returns n distinct values from pool, preserving pool order bias.
func (g *Generator) sample(pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	idx := g.rng.Perm(len(pool))[:n]
	out := make([]string, n)
	for i, j := range idx {
		out[i] = pool[j]
	}
	return out
}

func (g *Generator) generateCandidates(jobs []types.Job) ([]types.Candidate, []types.TimelineEntry) {
	now := time.Now().UTC()
	candidates := make([]types.Candidate, 0, candidateCount)
	timeline := make([]types.TimelineEntry, 0, candidateCount)

	for i := 0; i < candidateCount; i++ {
		first := g.pick(firstNames)
		last := g.pick(lastNames)
		name := first + " " + last
		email := fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), i)

		// Job references are always drawn from the generated set, keeping
		// referential integrity at generation time.
		job := jobs[g.rng.Intn(len(jobs))]

		applied := g.pastDate(now, 60)
		stageIdx := g.rng.Intn(len(types.StageIDs))
		stage := types.StageIDs[stageIdx]

		stages := make(map[string]types.StageEntry, len(types.StageIDs))
		for j, id := range types.StageIDs {
			switch {
			case j < stageIdx:
				d := applied.AddDate(0, 0, j*3)
				stages[id] = types.StageEntry{Status: types.StageStatusCompleted, Date: &d}
			case j == stageIdx:
				d := applied.AddDate(0, 0, j*3)
				stages[id] = types.StageEntry{Status: types.StageStatusCurrent, Date: &d}
			default:
				stages[id] = types.StageEntry{Status: types.StageStatusPending}
			}
		}

		c := types.Candidate{
			ID:           g.newID(),
			Name:         name,
			Email:        email,
			Phone:        fmt.Sprintf("+1 (555) %03d-%04d", g.rng.Intn(1000), g.rng.Intn(10000)),
			Experience:   fmt.Sprintf("%d years", 1+g.rng.Intn(14)),
			Skills:       g.sample(skillPool, 2+g.rng.Intn(4)),
			AppliedJobs:  []uuid.UUID{job.ID},
			CurrentStage: stage,
			Stages:       stages,
			CreatedAt:    applied,
			UpdatedAt:    applied,
		}
		candidates = append(candidates, c)

		entryDate := applied
		if d := stages[stage].Date; d != nil {
			entryDate = *d
		}
		timeline = append(timeline, types.TimelineEntry{
			ID:          g.newID(),
			CandidateID: c.ID,
			Stage:       stage,
			Status:      types.StageStatusCurrent,
			Date:        entryDate,
			CreatedAt:   entryDate,
		})
	}
	return candidates, timeline
}

func (g *Generator) generateAssessments(jobs []types.Job) []types.Assessment {
	now := time.Now().UTC()
	count := assessmentCount
	if count > len(jobs) {
		count = len(jobs)
	}

	assessments := make([]types.Assessment, 0, count)
	for i := 0; i < count; i++ {
		job := jobs[i]
		questions := g.generateQuestions()
		assessments = append(assessments, types.Assessment{
			ID:          g.newID(),
			JobID:       job.ID,
			Title:       job.Title + " Screening",
			Description: "Initial screening questionnaire for the " + job.Title + " role.",
			Questions:   questions,
			TimeLimit:   30 + 15*g.rng.Intn(4),
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	return assessments
}

// generateQuestions builds 10-14 questions covering all question types,
// with an occasional conditional-display rule referencing an earlier
// question.
func (g *Generator) generateQuestions() []types.Question {
	n := 10 + g.rng.Intn(5)
	questions := make([]types.Question, 0, n)

	for i := 0; i < n; i++ {
		qType := types.QuestionTypes[i%len(types.QuestionTypes)]
		q := types.Question{
			ID:       g.newID(),
			Type:     qType,
			Title:    g.pick(questionTitles),
			Required: g.rng.Float64() < 0.7,
		}
		switch qType {
		case types.QuestionSingleChoice, types.QuestionMultiChoice:
			q.Options = g.sample(optionPool, 3+g.rng.Intn(2))
		case types.QuestionNumeric:
			min, max := 0.0, float64(10+g.rng.Intn(20))
			q.Min, q.Max = &min, &max
		case types.QuestionShortText:
			maxLen := 200
			q.MaxLength = &maxLen
		case types.QuestionLongText:
			maxLen := 2000
			q.MaxLength = &maxLen
		}
		// Occasionally gate a question on an earlier choice answer.
		if i > 0 && g.rng.Float64() < 0.15 {
			prev := questions[g.rng.Intn(len(questions))]
			if len(prev.Options) > 0 {
				q.Condition = &types.DisplayCondition{
					QuestionID: prev.ID,
					Operator:   "equals",
					Value:      prev.Options[0],
				}
			}
		}
		questions = append(questions, q)
	}
	return questions
}

func (g *Generator) generateNotes(candidates []types.Candidate) []types.Note {
	notes := []types.Note{}
	for i := range candidates {
		if g.rng.Float64() >= 0.3 {
			continue
		}
		c := &candidates[i]
		content := g.pick(noteTemplates)
		note := types.NewNote(c.ID, g.pick(authors), content, c.CreatedAt.AddDate(0, 0, 1))
		note.ID = g.newID()
		notes = append(notes, note)
	}
	return notes
}
