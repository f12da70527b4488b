package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/provado/provado-backend/internal/model"
	"github.com/provado/provado-backend/internal/repository"
	"github.com/rs/zerolog"
)

// Answer ledger errors.
var (
	ErrQuestionNotInAttempt   = errors.New("question is not part of the attempt")
	ErrAttemptAlreadyFinished = errors.New("attempt is already finished")
	ErrInvalidOption          = errors.New("chosen option must be A through E")
)

// AnswerService is the answer ledger: one row per (attempt, question)
// pair, resubmission overwrites.
type AnswerService struct {
	answerRepo   *repository.AnswerRepository
	attemptRepo  *repository.AttemptRepository
	questionRepo *repository.QuestionRepository
	log          zerolog.Logger
}

// NewAnswerService creates a new AnswerService.
func NewAnswerService(
	answerRepo *repository.AnswerRepository,
	attemptRepo *repository.AttemptRepository,
	questionRepo *repository.QuestionRepository,
	log zerolog.Logger,
) *AnswerService {
	return &AnswerService{
		answerRepo:   answerRepo,
		attemptRepo:  attemptRepo,
		questionRepo: questionRepo,
		log:          log.With().Str("component", "answer_service").Logger(),
	}
}

// Submit records the chosen option for a question of an in-progress
// attempt, overwriting any prior answer for the same question and
// recomputing its correctness at write time. Answers are frozen the moment
// the attempt finishes — a late submit is rejected, never silently applied,
// so a shown review can never drift.
func (s *AnswerService) Submit(ctx context.Context, attemptID uuid.UUID, userID int, questionID uuid.UUID, chosenOption string) (*model.Answer, error) {
	if !model.ValidOption(chosenOption) {
		return nil, ErrInvalidOption
	}

	attempt, err := loadOwnedAttempt(ctx, s.attemptRepo, attemptID, userID)
	if err != nil {
		return nil, err
	}
	if attempt.Finished() {
		return nil, ErrAttemptAlreadyFinished
	}

	question, err := s.findInAttempt(ctx, attempt, questionID)
	if err != nil {
		return nil, err
	}

	answer := &model.Answer{
		AttemptID:    attemptID,
		QuestionID:   questionID,
		ChosenOption: chosenOption,
		Correct:      chosenOption == question.CorrectOption,
	}
	if err := s.answerRepo.Upsert(ctx, answer); err != nil {
		return nil, fmt.Errorf("upsert answer: %w", err)
	}

	return answer, nil
}

// ListForAttempt retrieves the attempt's answers for its owner. Used both
// for resuming and for scoring.
func (s *AnswerService) ListForAttempt(ctx context.Context, attemptID uuid.UUID, userID int) ([]model.Answer, error) {
	if _, err := loadOwnedAttempt(ctx, s.attemptRepo, attemptID, userID); err != nil {
		return nil, err
	}
	return s.answerRepo.ListByAttempt(ctx, attemptID)
}

// findInAttempt resolves a question within the attempt's effective set.
// A question from another exam — or outside the attempt's subject filter —
// is rejected even if it exists in the catalog.
func (s *AnswerService) findInAttempt(ctx context.Context, attempt *model.Attempt, questionID uuid.UUID) (*model.Question, error) {
	questions, err := s.questionRepo.ListByExam(ctx, attempt.ExamID, attempt.Subject)
	if err != nil {
		return nil, fmt.Errorf("resolve question set: %w", err)
	}
	for i := range questions {
		if questions[i].ID == questionID {
			return &questions[i], nil
		}
	}
	return nil, ErrQuestionNotInAttempt
}
