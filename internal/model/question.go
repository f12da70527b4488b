package model

import "github.com/google/uuid"

// Option labels. Every question has exactly five alternatives.
const (
	OptionA = "A"
	OptionB = "B"
	OptionC = "C"
	OptionD = "D"
	OptionE = "E"
)

// ValidOption reports whether s is one of the five option labels.
func ValidOption(s string) bool {
	switch s {
	case OptionA, OptionB, OptionC, OptionD, OptionE:
		return true
	}
	return false
}

// Question represents a single multiple-choice question of an exam.
// Immutable reference data, like Exam.
type Question struct {
	ID            uuid.UUID `json:"id"`
	ExamID        uuid.UUID `json:"exam_id"`
	Subject       string    `json:"subject"`
	Statement     string    `json:"statement"`
	OptionA       string    `json:"option_a"`
	OptionB       string    `json:"option_b"`
	OptionC       string    `json:"option_c"`
	OptionD       string    `json:"option_d"`
	OptionE       string    `json:"option_e"`
	CorrectOption string    `json:"correct_option"`
}

// QuestionForAttempt is a question without the answer key, served to a
// client while its attempt is still in progress. The key is only exposed
// through the review endpoint after finish.
type QuestionForAttempt struct {
	ID        uuid.UUID `json:"id"`
	Subject   string    `json:"subject"`
	Statement string    `json:"statement"`
	OptionA   string    `json:"option_a"`
	OptionB   string    `json:"option_b"`
	OptionC   string    `json:"option_c"`
	OptionD   string    `json:"option_d"`
	OptionE   string    `json:"option_e"`
}

// ForAttempt strips the answer key from a question.
func (q *Question) ForAttempt() QuestionForAttempt {
	return QuestionForAttempt{
		ID:        q.ID,
		Subject:   q.Subject,
		Statement: q.Statement,
		OptionA:   q.OptionA,
		OptionB:   q.OptionB,
		OptionC:   q.OptionC,
		OptionD:   q.OptionD,
		OptionE:   q.OptionE,
	}
}
