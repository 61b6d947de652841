package state

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/talentflow/internal/types"
)

// reduce maps (state, action) to a new state. It is pure given its inputs:
// the dispatch layer supplies the clock and id source. Unknown actions
// return the state unchanged.
func reduce(s State, action Action, now time.Time, newID func() uuid.UUID) State {
	switch a := action.(type) {
	case AddJob:
		job := a.Job
		if job.ID == uuid.Nil {
			job.ID = newID()
		}
		job.Slug = types.Slugify(job.Title)
		if job.Status == "" {
			job.Status = types.JobStatusActive
		}
		job.Order = len(s.Jobs)
		if job.PostedDate.IsZero() {
			job.PostedDate = now
		}
		job.CreatedAt = now
		job.UpdatedAt = now
		s.Jobs = append(cloneJobs(s.Jobs), job)
		return s

	case UpdateJob:
		jobs := cloneJobs(s.Jobs)
		for i := range jobs {
			if jobs[i].ID == a.ID {
				a.Patch.Apply(&jobs[i])
				jobs[i].UpdatedAt = now
				break
			}
		}
		s.Jobs = jobs
		return s

	case ArchiveJob:
		return setJobStatus(s, a.ID, types.JobStatusArchived, now)

	case UnarchiveJob:
		return setJobStatus(s, a.ID, types.JobStatusActive, now)

	case ReorderJob:
		// Orders are a dense 0..N-1 permutation; a position outside the
		// board is a no-op so the invariant survives any dispatch.
		if a.FromOrder < 0 || a.FromOrder >= len(s.Jobs) ||
			a.ToOrder < 0 || a.ToOrder >= len(s.Jobs) {
			return s
		}
		jobs := cloneJobs(s.Jobs)
		for i := range jobs {
			switch order := jobs[i].Order; {
			case order == a.FromOrder:
				jobs[i].Order = a.ToOrder
				jobs[i].UpdatedAt = now
			case a.FromOrder < a.ToOrder && order > a.FromOrder && order <= a.ToOrder:
				jobs[i].Order--
				jobs[i].UpdatedAt = now
			case a.FromOrder > a.ToOrder && order >= a.ToOrder && order < a.FromOrder:
				jobs[i].Order++
				jobs[i].UpdatedAt = now
			}
		}
		s.Jobs = jobs
		return s

	case AddCandidate:
		c := a.Candidate
		if c.ID == uuid.Nil {
			c.ID = newID()
		}
		if c.CurrentStage == "" {
			c.CurrentStage = types.StageApplied
		}
		if c.Stages == nil {
			c.Stages = types.NewStages(now)
		}
		c.CreatedAt = now
		c.UpdatedAt = now
		s.Candidates = append(cloneCandidates(s.Candidates), c)
		return s

	case UpdateCandidateStage:
		candidates := cloneCandidates(s.Candidates)
		for i := range candidates {
			if candidates[i].ID != a.ID {
				continue
			}
			stages := make(map[string]types.StageEntry, len(candidates[i].Stages))
			for k, v := range candidates[i].Stages {
				stages[k] = v
			}
			// The transition date is always today; entries for other
			// stages are left exactly as they were.
			date := now
			stages[a.Stage] = types.StageEntry{Status: a.Status, Date: &date}
			candidates[i].Stages = stages
			candidates[i].CurrentStage = a.Stage
			candidates[i].UpdatedAt = now
			break
		}
		s.Candidates = candidates
		return s

	case AddNote:
		return withCandidate(s, a.CandidateID, func(c *types.Candidate) {
			note := types.NewNote(a.CandidateID, a.Author, a.Content, now)
			note.ID = newID()
			c.Notes = append(cloneNotes(c.Notes), note)
			c.UpdatedAt = now
		})

	case UpdateNote:
		return withCandidate(s, a.CandidateID, func(c *types.Candidate) {
			notes := cloneNotes(c.Notes)
			for i := range notes {
				if notes[i].ID == a.NoteID {
					notes[i].SetContent(a.Content, now)
					break
				}
			}
			c.Notes = notes
			c.UpdatedAt = now
		})

	case DeleteNote:
		return withCandidate(s, a.CandidateID, func(c *types.Candidate) {
			notes := []types.Note{}
			for _, n := range c.Notes {
				if n.ID != a.NoteID {
					notes = append(notes, n)
				}
			}
			c.Notes = notes
			c.UpdatedAt = now
		})

	case SetJobFilters:
		s.JobFilters = a.Filters
		return s

	case SetCandidateFilters:
		s.CandidateFilters = a.Filters
		return s

	case SetAssessment:
		assessments := cloneAssessments(s.Assessments)
		assessments[a.Assessment.JobID] = a.Assessment
		s.Assessments = assessments
		return s

	case DeleteAssessment:
		assessments := cloneAssessments(s.Assessments)
		delete(assessments, a.JobID)
		s.Assessments = assessments
		return s

	case OpenBuilder:
		s.Builder = &BuilderState{JobID: a.JobID, Sections: []BuilderSection{}}
		return s

	case CloseBuilder:
		s.Builder = nil
		return s

	case SetBuilderMeta:
		if s.Builder == nil {
			return s
		}
		b := cloneBuilder(s.Builder)
		b.Title = a.Title
		b.Description = a.Description
		b.TimeLimit = a.TimeLimit
		s.Builder = b
		return s

	case AddBuilderSection:
		if s.Builder == nil {
			return s
		}
		b := cloneBuilder(s.Builder)
		b.Sections = append(b.Sections, BuilderSection{
			ID:        newID(),
			Title:     a.Title,
			Questions: []types.Question{},
		})
		s.Builder = b
		return s

	case UpdateBuilderSection:
		return withSection(s, a.ID, func(sec *BuilderSection) {
			sec.Title = a.Title
		})

	case DeleteBuilderSection:
		if s.Builder == nil {
			return s
		}
		b := cloneBuilder(s.Builder)
		sections := []BuilderSection{}
		for _, sec := range b.Sections {
			if sec.ID != a.ID {
				sections = append(sections, sec)
			}
		}
		b.Sections = sections
		s.Builder = b
		return s

	case AddBuilderQuestion:
		return withSection(s, a.SectionID, func(sec *BuilderSection) {
			q := a.Question
			if q.ID == uuid.Nil {
				q.ID = newID()
			}
			sec.Questions = append(sec.Questions, q)
		})

	case UpdateBuilderQuestion:
		return withSection(s, a.SectionID, func(sec *BuilderSection) {
			for i := range sec.Questions {
				if sec.Questions[i].ID == a.Question.ID {
					sec.Questions[i] = a.Question
					break
				}
			}
		})

	case DeleteBuilderQuestion:
		return withSection(s, a.SectionID, func(sec *BuilderSection) {
			questions := []types.Question{}
			for _, q := range sec.Questions {
				if q.ID != a.QuestionID {
					questions = append(questions, q)
				}
			}
			sec.Questions = questions
		})

	case MoveBuilderQuestion:
		return withSection(s, a.SectionID, func(sec *BuilderSection) {
			if a.From < 0 || a.From >= len(sec.Questions) || a.To < 0 || a.To >= len(sec.Questions) {
				return
			}
			q := sec.Questions[a.From]
			rest := append(sec.Questions[:a.From:a.From], sec.Questions[a.From+1:]...)
			questions := make([]types.Question, 0, len(sec.Questions))
			questions = append(questions, rest[:a.To]...)
			questions = append(questions, q)
			questions = append(questions, rest[a.To:]...)
			sec.Questions = questions
		})

	default:
		return s
	}
}

func setJobStatus(s State, id uuid.UUID, status string, now time.Time) State {
	jobs := cloneJobs(s.Jobs)
	for i := range jobs {
		if jobs[i].ID == id {
			jobs[i].Status = status
			jobs[i].UpdatedAt = now
			break
		}
	}
	s.Jobs = jobs
	return s
}

// withCandidate clones the candidate list, applies fn to the matching
// entry, and returns the updated state.
func withCandidate(s State, id uuid.UUID, fn func(*types.Candidate)) State {
	candidates := cloneCandidates(s.Candidates)
	for i := range candidates {
		if candidates[i].ID == id {
			fn(&candidates[i])
			break
		}
	}
	s.Candidates = candidates
	return s
}

// withSection clones the builder, applies fn to the matching section, and
// returns the updated state. No-op when no builder is open.
func withSection(s State, sectionID uuid.UUID, fn func(*BuilderSection)) State {
	if s.Builder == nil {
		return s
	}
	b := cloneBuilder(s.Builder)
	for i := range b.Sections {
		if b.Sections[i].ID == sectionID {
			fn(&b.Sections[i])
			break
		}
	}
	s.Builder = b
	return s
}

func cloneJobs(jobs []types.Job) []types.Job {
	out := make([]types.Job, len(jobs))
	copy(out, jobs)
	return out
}

func cloneCandidates(candidates []types.Candidate) []types.Candidate {
	out := make([]types.Candidate, len(candidates))
	copy(out, candidates)
	return out
}

func cloneNotes(notes []types.Note) []types.Note {
	out := make([]types.Note, len(notes))
	copy(out, notes)
	return out
}

func cloneAssessments(m map[uuid.UUID]types.Assessment) map[uuid.UUID]types.Assessment {
	out := make(map[uuid.UUID]types.Assessment, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneBuilder(b *BuilderState) *BuilderState {
	out := *b
	out.Sections = make([]BuilderSection, len(b.Sections))
	copy(out.Sections, b.Sections)
	for i := range out.Sections {
		questions := make([]types.Question, len(out.Sections[i].Questions))
		copy(questions, out.Sections[i].Questions)
		out.Sections[i].Questions = questions
	}
	return &out
}
