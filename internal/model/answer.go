package model

import (
	"time"

	"github.com/google/uuid"
)

// Answer records the chosen option for one (attempt, question) pair.
// At most one row exists per pair; resubmitting overwrites the row and
// recomputes the correctness flag.
type Answer struct {
	ID           uuid.UUID `json:"id"`
	AttemptID    uuid.UUID `json:"attempt_id"`
	QuestionID   uuid.UUID `json:"question_id"`
	ChosenOption string    `json:"chosen_option"`
	Correct      bool      `json:"correct"`
	AnsweredAt   time.Time `json:"answered_at"`
}

// SubmitAnswerRequest is the payload for answering a question.
type SubmitAnswerRequest struct {
	QuestionID   uuid.UUID `json:"question_id" binding:"required"`
	ChosenOption string    `json:"chosen_option" binding:"required,oneof=A B C D E"`
}

// AnswerForAttempt is the answer shape returned while an attempt is in
// progress: the correctness flag is withheld so the client cannot derive
// the answer key before finishing.
type AnswerForAttempt struct {
	QuestionID   uuid.UUID `json:"question_id"`
	ChosenOption string    `json:"chosen_option"`
}

// ForAttempt strips the correctness flag from an answer.
func (a *Answer) ForAttempt() AnswerForAttempt {
	return AnswerForAttempt{
		QuestionID:   a.QuestionID,
		ChosenOption: a.ChosenOption,
	}
}
