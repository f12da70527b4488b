package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Exam represents a past public-service exam ("prova de concurso").
// Exams are immutable reference data: rows are seeded, never edited.
type Exam struct {
	ID      uuid.UUID `json:"id"`
	Contest string    `json:"contest"` // e.g. "Analista Judiciário TRF-3"
	Board   string    `json:"board"`   // issuing body, e.g. "FCC"
	Year    int       `json:"year"`
	// CutoffScore is the official cutoff published for the real exam,
	// shown for context only. The practice pass threshold is a separate
	// policy value (config.PassThresholdPercent).
	CutoffScore *int      `json:"cutoff_score,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Title renders the display title used across the app.
func (e *Exam) Title() string {
	return fmt.Sprintf("%s • %s • %d", e.Contest, e.Board, e.Year)
}

// ExamSummary is the compact exam shape embedded in attempt listings.
type ExamSummary struct {
	ID      uuid.UUID `json:"id"`
	Contest string    `json:"contest"`
	Board   string    `json:"board"`
	Year    int       `json:"year"`
	Title   string    `json:"title"`
}

// Summary builds the embeddable summary for an exam.
func (e *Exam) Summary() ExamSummary {
	return ExamSummary{
		ID:      e.ID,
		Contest: e.Contest,
		Board:   e.Board,
		Year:    e.Year,
		Title:   e.Title(),
	}
}
