package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/provado/provado-backend/internal/config"
	"github.com/provado/provado-backend/internal/model"
	"github.com/provado/provado-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Domain errors.
var (
	ErrExamNotFound = errors.New("exam not found")
)

// CatalogService is the read-only view over exam and question reference
// data. Exams and questions never change after seeding, so payloads and
// subject lists are cached in Redis without invalidation. Attempt and
// answer state is never cached here.
type CatalogService struct {
	examRepo     *repository.ExamRepository
	questionRepo *repository.QuestionRepository
	rdb          *redis.Client
	log          zerolog.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(
	examRepo *repository.ExamRepository,
	questionRepo *repository.QuestionRepository,
	rdb *redis.Client,
	log zerolog.Logger,
) *CatalogService {
	return &CatalogService{
		examRepo:     examRepo,
		questionRepo: questionRepo,
		rdb:          rdb,
		log:          log.With().Str("component", "catalog_service").Logger(),
	}
}

// ExamDetail is an exam together with its subject breakdown.
type ExamDetail struct {
	model.Exam
	Title         string   `json:"title"`
	Subjects      []string `json:"subjects"`
	QuestionCount int      `json:"question_count"`
}

// ListExams retrieves the full catalog, newest year first.
func (s *CatalogService) ListExams(ctx context.Context) ([]model.Exam, error) {
	return s.examRepo.List(ctx)
}

// GetExam retrieves one exam with its subjects and question count.
func (s *CatalogService) GetExam(ctx context.Context, examID uuid.UUID) (*ExamDetail, error) {
	exam, err := s.examRepo.GetByID(ctx, examID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExamNotFound
		}
		return nil, fmt.Errorf("get exam: %w", err)
	}

	subjects, err := s.ListSubjects(ctx, examID)
	if err != nil {
		return nil, err
	}

	questions, err := s.GetExamPayload(ctx, examID)
	if err != nil {
		return nil, err
	}

	return &ExamDetail{
		Exam:          *exam,
		Title:         exam.Title(),
		Subjects:      subjects,
		QuestionCount: len(questions),
	}, nil
}

// ListQuestions retrieves the effective question set of an exam (optionally
// narrowed by subject) straight from PostgreSQL, answer key included.
// Internal callers only — the key must never reach an unfinished attempt.
func (s *CatalogService) ListQuestions(ctx context.Context, examID uuid.UUID, subject *string) ([]model.Question, error) {
	return s.questionRepo.ListByExam(ctx, examID, subject)
}

// ListSubjects retrieves an exam's sorted subject list, Redis-cached.
func (s *CatalogService) ListSubjects(ctx context.Context, examID uuid.UUID) ([]string, error) {
	key := config.CacheKey.ExamSubjectsKey(examID.String())

	cached, err := s.rdb.Get(ctx, key).Result()
	if err == nil {
		var subjects []string
		if err := json.Unmarshal([]byte(cached), &subjects); err == nil {
			return subjects, nil
		}
		// Corrupted entry: fall through to the database and overwrite.
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Msg("subject cache read failed, falling back to database")
	}

	subjects, err := s.questionRepo.ListSubjectsByExam(ctx, examID)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}

	if raw, err := json.Marshal(subjects); err == nil {
		if err := s.rdb.Set(ctx, key, raw, 0).Err(); err != nil {
			s.log.Warn().Err(err).Msg("subject cache write failed")
		}
	}
	return subjects, nil
}

// ListAllSubjects retrieves the sorted distinct subjects across all exams,
// for the study-by-subject screen.
func (s *CatalogService) ListAllSubjects(ctx context.Context) ([]string, error) {
	return s.questionRepo.ListAllSubjects(ctx)
}

// ListExamsWithSubject retrieves exams containing the given subject,
// newest year first.
func (s *CatalogService) ListExamsWithSubject(ctx context.Context, subject string) ([]model.Exam, error) {
	return s.examRepo.ListWithSubject(ctx, subject)
}

// GetExamPayload retrieves an exam's full question payload without the
// answer key, Redis-cached. This is what clients render while an attempt
// is in progress.
func (s *CatalogService) GetExamPayload(ctx context.Context, examID uuid.UUID) ([]model.QuestionForAttempt, error) {
	key := config.CacheKey.ExamPayloadKey(examID.String())

	cached, err := s.rdb.Get(ctx, key).Result()
	if err == nil {
		var payload []model.QuestionForAttempt
		if err := json.Unmarshal([]byte(cached), &payload); err == nil {
			return payload, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Msg("payload cache read failed, falling back to database")
	}

	return s.warmExamPayload(ctx, examID)
}

// PrewarmAllCaches loads every exam's payload and subject list into Redis.
// Called at boot so first requests never hit a cold cache.
func (s *CatalogService) PrewarmAllCaches(ctx context.Context) error {
	exams, err := s.examRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list exams: %w", err)
	}

	for _, exam := range exams {
		if _, err := s.warmExamPayload(ctx, exam.ID); err != nil {
			return fmt.Errorf("warm exam %s: %w", exam.ID, err)
		}
		if _, err := s.ListSubjects(ctx, exam.ID); err != nil {
			return fmt.Errorf("warm subjects %s: %w", exam.ID, err)
		}
	}

	s.log.Info().Int("exams", len(exams)).Msg("Catalog caches prewarmed")
	return nil
}

func (s *CatalogService) warmExamPayload(ctx context.Context, examID uuid.UUID) ([]model.QuestionForAttempt, error) {
	questions, err := s.questionRepo.ListByExam(ctx, examID, nil)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	payload := make([]model.QuestionForAttempt, 0, len(questions))
	for i := range questions {
		payload = append(payload, questions[i].ForAttempt())
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	if err := s.rdb.Set(ctx, config.CacheKey.ExamPayloadKey(examID.String()), raw, 0).Err(); err != nil {
		s.log.Warn().Err(err).Msg("payload cache write failed")
	}

	return payload, nil
}
