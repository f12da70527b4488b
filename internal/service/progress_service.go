package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/provado/provado-backend/internal/model"
	"github.com/provado/provado-backend/internal/repository"
	"github.com/rs/zerolog"
)

// UnspecifiedSubject is the sentinel bucket for answers whose question
// reference can no longer be resolved to a subject.
const UnspecifiedSubject = "Sem matéria"

// SubjectStats is a user's aggregate performance within one subject.
type SubjectStats struct {
	Subject string `json:"subject"`
	Total   int    `json:"total"`
	Correct int    `json:"correct"`
	Percent int    `json:"percent"`
}

// Overview is the user's all-time aggregate across every attempt.
type Overview struct {
	TotalAnswered  int            `json:"total_answered"`
	TotalCorrect   int            `json:"total_correct"`
	OverallPercent int            `json:"overall_percent"`
	BySubject      []SubjectStats `json:"by_subject"`
}

// ProgressService rolls up a user's answers into per-subject statistics.
// It always reads current persisted state — aggregates are cheap relative
// to the study session they summarize, and stale numbers across devices
// would be worse than the extra query.
type ProgressService struct {
	answerRepo  *repository.AnswerRepository
	attemptRepo *repository.AttemptRepository
	recentLimit int
	log         zerolog.Logger
}

// NewProgressService creates a new ProgressService.
func NewProgressService(
	answerRepo *repository.AnswerRepository,
	attemptRepo *repository.AttemptRepository,
	recentLimit int,
	log zerolog.Logger,
) *ProgressService {
	return &ProgressService{
		answerRepo:  answerRepo,
		attemptRepo: attemptRepo,
		recentLimit: recentLimit,
		log:         log.With().Str("component", "progress_service").Logger(),
	}
}

// Overall aggregates every answer across all of the user's attempts,
// overall and grouped by subject.
func (s *ProgressService) Overall(ctx context.Context, userID int) (*Overview, error) {
	rows, err := s.answerRepo.ListByUserWithSubject(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}

	overview := &Overview{BySubject: aggregateBySubject(rows)}
	for _, r := range rows {
		overview.TotalAnswered++
		if r.Correct {
			overview.TotalCorrect++
		}
	}
	overview.OverallPercent = percentOf(overview.TotalCorrect, overview.TotalAnswered)

	return overview, nil
}

// Recent retrieves the user's most recently finished attempts with their
// exam summaries. limit <= 0 falls back to the configured default.
func (s *ProgressService) Recent(ctx context.Context, userID, limit int) ([]model.AttemptWithExam, error) {
	if limit <= 0 || limit > 100 {
		limit = s.recentLimit
	}
	return s.attemptRepo.ListFinishedByUser(ctx, userID, limit)
}

// aggregateBySubject groups flattened answer rows by subject and sorts the
// result by descending percent, ties broken by subject name, so the
// ordering is deterministic.
func aggregateBySubject(rows []repository.AnswerSubject) []SubjectStats {
	totals := make(map[string]*SubjectStats)
	order := make([]string, 0)

	for _, r := range rows {
		subject := UnspecifiedSubject
		if r.Subject != nil {
			subject = *r.Subject
		}

		st, ok := totals[subject]
		if !ok {
			st = &SubjectStats{Subject: subject}
			totals[subject] = st
			order = append(order, subject)
		}
		st.Total++
		if r.Correct {
			st.Correct++
		}
	}

	stats := make([]SubjectStats, 0, len(order))
	for _, subject := range order {
		st := totals[subject]
		st.Percent = percentOf(st.Correct, st.Total)
		stats = append(stats, *st)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Percent != stats[j].Percent {
			return stats[i].Percent > stats[j].Percent
		}
		return stats[i].Subject < stats[j].Subject
	})

	return stats
}

func percentOf(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}
