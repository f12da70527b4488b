package model

import (
	"time"

	"github.com/google/uuid"
)

// Attempt represents one user's run through an exam's questions,
// optionally narrowed to a single subject.
//
// Lifecycle: a row with finished_at NULL is in progress and always
// resumable; finished_at, score and passed are written together exactly
// once, by Finish.
type Attempt struct {
	ID         uuid.UUID  `json:"id"`
	UserID     int        `json:"user_id"`
	ExamID     uuid.UUID  `json:"exam_id"`
	Subject    *string    `json:"subject,omitempty"` // nil = whole exam
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	Score      *int       `json:"score,omitempty"`
	Passed     *bool      `json:"passed,omitempty"`
}

// Finished reports whether the attempt reached its terminal state.
func (a *Attempt) Finished() bool {
	return a.FinishedAt != nil
}

// StartAttemptRequest is the payload for starting a new attempt.
type StartAttemptRequest struct {
	ExamID  uuid.UUID `json:"exam_id" binding:"required"`
	Subject string    `json:"subject" binding:"omitempty,max=100"`
}

// AttemptWithExam annotates an attempt with its exam summary, used by
// attempt listings and the recent-progress endpoint.
type AttemptWithExam struct {
	Attempt
	Exam ExamSummary `json:"exam"`
}
