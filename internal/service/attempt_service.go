package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/provado/provado-backend/internal/model"
	"github.com/provado/provado-backend/internal/repository"
	"github.com/provado/provado-backend/internal/scoring"
	"github.com/rs/zerolog"
)

// Attempt lifecycle errors.
var (
	ErrAttemptNotFound    = errors.New("attempt not found")
	ErrAttemptForbidden   = errors.New("attempt owned by another user")
	ErrAttemptNotFinished = errors.New("attempt is not finished yet")
	ErrEmptyQuestionSet   = errors.New("no questions match the requested filter")
)

// loadOwnedAttempt is the single authorization step shared by every
// operation that takes an attempt ID. Callers must translate both error
// cases to the same user-facing "not found" so attempt IDs of other users
// do not leak.
func loadOwnedAttempt(ctx context.Context, repo *repository.AttemptRepository, attemptID uuid.UUID, userID int) (*model.Attempt, error) {
	attempt, err := repo.GetByID(ctx, attemptID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAttemptNotFound
		}
		return nil, fmt.Errorf("get attempt: %w", err)
	}
	if attempt.UserID != userID {
		return nil, ErrAttemptForbidden
	}
	return attempt, nil
}

// AttemptService owns the attempt lifecycle: start, resume, finish, review.
type AttemptService struct {
	attemptRepo  *repository.AttemptRepository
	answerRepo   *repository.AnswerRepository
	examRepo     *repository.ExamRepository
	questionRepo *repository.QuestionRepository
	// passThreshold is the policy cutoff handed to the scoring engine.
	passThreshold int
	log           zerolog.Logger
}

// NewAttemptService creates a new AttemptService.
func NewAttemptService(
	attemptRepo *repository.AttemptRepository,
	answerRepo *repository.AnswerRepository,
	examRepo *repository.ExamRepository,
	questionRepo *repository.QuestionRepository,
	passThreshold int,
	log zerolog.Logger,
) *AttemptService {
	return &AttemptService{
		attemptRepo:   attemptRepo,
		answerRepo:    answerRepo,
		examRepo:      examRepo,
		questionRepo:  questionRepo,
		passThreshold: passThreshold,
		log:           log.With().Str("component", "attempt_service").Logger(),
	}
}

// Start creates a new in-progress attempt over the exam's questions,
// narrowed by subject when given. The effective question set is resolved
// up front and an empty set rejects the attempt.
func (s *AttemptService) Start(ctx context.Context, userID int, examID uuid.UUID, subject *string) (*model.Attempt, error) {
	if _, err := s.examRepo.GetByID(ctx, examID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExamNotFound
		}
		return nil, fmt.Errorf("get exam: %w", err)
	}

	questions, err := s.questionRepo.ListByExam(ctx, examID, subject)
	if err != nil {
		return nil, fmt.Errorf("resolve question set: %w", err)
	}
	if len(questions) == 0 {
		return nil, ErrEmptyQuestionSet
	}

	attempt := &model.Attempt{
		UserID:  userID,
		ExamID:  examID,
		Subject: subject,
	}
	if err := s.attemptRepo.Create(ctx, attempt); err != nil {
		return nil, fmt.Errorf("create attempt: %w", err)
	}

	s.log.Info().
		Str("attempt_id", attempt.ID.String()).
		Str("exam_id", examID.String()).
		Int("questions", len(questions)).
		Msg("Attempt started")

	return attempt, nil
}

// ResumePayload is everything a client needs to render an in-progress
// attempt: prior selections are pre-filled, the answer key is withheld.
type ResumePayload struct {
	Attempt   model.Attempt              `json:"attempt"`
	Exam      model.ExamSummary          `json:"exam"`
	Questions []model.QuestionForAttempt `json:"questions"`
	Answers   []model.AnswerForAttempt   `json:"answers"`
	Total     int                        `json:"total"`
	Answered  int                        `json:"answered"`
}

// Get loads an attempt for its owner, with its effective question set and
// the answers recorded so far.
func (s *AttemptService) Get(ctx context.Context, attemptID uuid.UUID, userID int) (*ResumePayload, error) {
	attempt, err := loadOwnedAttempt(ctx, s.attemptRepo, attemptID, userID)
	if err != nil {
		return nil, err
	}

	exam, err := s.examRepo.GetByID(ctx, attempt.ExamID)
	if err != nil {
		return nil, fmt.Errorf("get exam: %w", err)
	}

	questions, err := s.questionRepo.ListByExam(ctx, attempt.ExamID, attempt.Subject)
	if err != nil {
		return nil, fmt.Errorf("resolve question set: %w", err)
	}

	answers, err := s.answerRepo.ListByAttempt(ctx, attemptID)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}

	payload := &ResumePayload{
		Attempt:   *attempt,
		Exam:      exam.Summary(),
		Questions: make([]model.QuestionForAttempt, 0, len(questions)),
		Answers:   make([]model.AnswerForAttempt, 0, len(answers)),
		Total:     len(questions),
		Answered:  len(answers),
	}
	for i := range questions {
		payload.Questions = append(payload.Questions, questions[i].ForAttempt())
	}
	for i := range answers {
		payload.Answers = append(payload.Answers, answers[i].ForAttempt())
	}
	return payload, nil
}

// List retrieves the user's attempts, newest first.
func (s *AttemptService) List(ctx context.Context, userID int) ([]model.AttemptWithExam, error) {
	return s.attemptRepo.ListByUser(ctx, userID)
}

// FinishSummary is the result page of a finished attempt.
type FinishSummary struct {
	Attempt model.Attempt     `json:"attempt"`
	Exam    model.ExamSummary `json:"exam"`
	Result  scoring.Result    `json:"result"`
}

// Finish transitions an attempt to its terminal state, computing and
// persisting score and pass flag in one conditional write. Idempotent:
// once finished, every later call returns the stored result unchanged and
// never re-scores — the repository's compare-and-set guarantees that even
// two concurrent finishers cannot both commit.
func (s *AttemptService) Finish(ctx context.Context, attemptID uuid.UUID, userID int) (*FinishSummary, error) {
	attempt, err := loadOwnedAttempt(ctx, s.attemptRepo, attemptID, userID)
	if err != nil {
		return nil, err
	}

	questions, err := s.questionRepo.ListByExam(ctx, attempt.ExamID, attempt.Subject)
	if err != nil {
		return nil, fmt.Errorf("resolve question set: %w", err)
	}

	if !attempt.Finished() {
		answers, err := s.answerRepo.ListByAttempt(ctx, attemptID)
		if err != nil {
			return nil, fmt.Errorf("list answers: %w", err)
		}

		result := scoring.Score(len(questions), answers, s.passThreshold)

		finished, transitioned, err := s.attemptRepo.Finish(ctx, attemptID, result.Correct, result.Passed)
		if err != nil {
			return nil, fmt.Errorf("finish attempt: %w", err)
		}
		attempt = finished

		if transitioned {
			s.log.Info().
				Str("attempt_id", attemptID.String()).
				Int("score", result.Correct).
				Int("percent", result.Percent).
				Msg("Attempt finished")
		}
	}

	return s.buildSummary(ctx, attempt, questions)
}

// buildSummary derives the result view from the stored attempt row. Score
// and pass flag come from the row, never from a recomputation, so repeated
// finishes are bit-identical.
func (s *AttemptService) buildSummary(ctx context.Context, attempt *model.Attempt, questions []model.Question) (*FinishSummary, error) {
	exam, err := s.examRepo.GetByID(ctx, attempt.ExamID)
	if err != nil {
		return nil, fmt.Errorf("get exam: %w", err)
	}

	answers, err := s.answerRepo.ListByAttempt(ctx, attempt.ID)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}

	result := scoring.Score(len(questions), answers, s.passThreshold)
	if attempt.Score != nil && result.Correct != *attempt.Score {
		// The ledger can only drift from the stored score through manual
		// data edits; the stored score stays authoritative either way.
		s.log.Warn().
			Str("attempt_id", attempt.ID.String()).
			Int("stored", *attempt.Score).
			Int("recomputed", result.Correct).
			Msg("Stored score differs from ledger")
		result.Correct = *attempt.Score
	}
	result.Passed = attempt.Passed

	return &FinishSummary{
		Attempt: *attempt,
		Exam:    exam.Summary(),
		Result:  result,
	}, nil
}

// ReviewPayload is the per-question answer-key comparison of a finished
// attempt.
type ReviewPayload struct {
	Attempt model.Attempt        `json:"attempt"`
	Exam    model.ExamSummary    `json:"exam"`
	Items   []scoring.ReviewItem `json:"items"`
}

// Review reconstructs the per-question comparison for a finished attempt.
// The subject filter only applies to whole-exam attempts; an attempt that
// was started with a subject already has a pre-narrowed question set.
// Unfinished attempts are rejected so the answer key cannot leak early.
func (s *AttemptService) Review(ctx context.Context, attemptID uuid.UUID, userID int, onlyWrong bool, subject string) (*ReviewPayload, error) {
	attempt, err := loadOwnedAttempt(ctx, s.attemptRepo, attemptID, userID)
	if err != nil {
		return nil, err
	}
	if !attempt.Finished() {
		return nil, ErrAttemptNotFinished
	}

	exam, err := s.examRepo.GetByID(ctx, attempt.ExamID)
	if err != nil {
		return nil, fmt.Errorf("get exam: %w", err)
	}

	questions, err := s.questionRepo.ListByExam(ctx, attempt.ExamID, attempt.Subject)
	if err != nil {
		return nil, fmt.Errorf("resolve question set: %w", err)
	}

	answers, err := s.answerRepo.ListByAttempt(ctx, attemptID)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}

	filter := scoring.ReviewFilter{OnlyWrong: onlyWrong}
	if attempt.Subject == nil {
		filter.Subject = subject
	}

	return &ReviewPayload{
		Attempt: *attempt,
		Exam:    exam.Summary(),
		Items:   scoring.Review(questions, answers, filter),
	}, nil
}
