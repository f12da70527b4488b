package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/provado/provado-backend/internal/model"
)

// AttemptRepository handles attempt data access.
type AttemptRepository struct {
	pool *pgxpool.Pool
}

// NewAttemptRepository creates a new AttemptRepository.
func NewAttemptRepository(pool *pgxpool.Pool) *AttemptRepository {
	return &AttemptRepository{pool: pool}
}

// Create inserts a new in-progress attempt.
func (r *AttemptRepository) Create(ctx context.Context, a *model.Attempt) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO attempts (user_id, exam_id, subject)
		 VALUES ($1, $2, $3)
		 RETURNING id, started_at`,
		a.UserID, a.ExamID, a.Subject,
	).Scan(&a.ID, &a.StartedAt)
}

// GetByID retrieves an attempt by its UUID.
func (r *AttemptRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Attempt, error) {
	a := &model.Attempt{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, user_id, exam_id, subject, started_at, finished_at, score, passed
		 FROM attempts WHERE id = $1`, id,
	).Scan(&a.ID, &a.UserID, &a.ExamID, &a.Subject, &a.StartedAt, &a.FinishedAt, &a.Score, &a.Passed)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Finish writes score, passed and finished_at in one conditional update.
// The `finished_at IS NULL` guard is the compare-and-set that makes finish
// idempotent under concurrent calls: only the first finisher matches, every
// later call falls through to the stored result.
//
// Returns the finished attempt and whether this call performed the
// transition (false = it was already finished; the stored row is returned
// unchanged).
func (r *AttemptRepository) Finish(ctx context.Context, id uuid.UUID, score int, passed *bool) (*model.Attempt, bool, error) {
	a := &model.Attempt{}
	err := r.pool.QueryRow(ctx,
		`UPDATE attempts
		 SET score = $2, passed = $3, finished_at = NOW()
		 WHERE id = $1 AND finished_at IS NULL
		 RETURNING id, user_id, exam_id, subject, started_at, finished_at, score, passed`,
		id, score, passed,
	).Scan(&a.ID, &a.UserID, &a.ExamID, &a.Subject, &a.StartedAt, &a.FinishedAt, &a.Score, &a.Passed)

	if err == nil {
		return a, true, nil
	}
	if err != pgx.ErrNoRows {
		return nil, false, err
	}

	// Lost the race or already finished earlier: the stored result wins.
	a, err = r.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return a, false, nil
}

// ListByUser retrieves all attempts of a user, newest first, annotated with
// their exam summary.
func (r *AttemptRepository) ListByUser(ctx context.Context, userID int) ([]model.AttemptWithExam, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT a.id, a.user_id, a.exam_id, a.subject, a.started_at, a.finished_at, a.score, a.passed,
		        e.id, e.contest, e.board, e.year
		 FROM attempts a
		 JOIN exams e ON e.id = a.exam_id
		 WHERE a.user_id = $1
		 ORDER BY a.started_at DESC`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAttemptsWithExam(rows)
}

// ListFinishedByUser retrieves the user's most recently finished attempts,
// by finished_at descending, annotated with their exam summary. Unfinished
// attempts are excluded.
func (r *AttemptRepository) ListFinishedByUser(ctx context.Context, userID, limit int) ([]model.AttemptWithExam, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT a.id, a.user_id, a.exam_id, a.subject, a.started_at, a.finished_at, a.score, a.passed,
		        e.id, e.contest, e.board, e.year
		 FROM attempts a
		 JOIN exams e ON e.id = a.exam_id
		 WHERE a.user_id = $1 AND a.finished_at IS NOT NULL
		 ORDER BY a.finished_at DESC
		 LIMIT $2`, userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAttemptsWithExam(rows)
}

func scanAttemptsWithExam(rows pgx.Rows) ([]model.AttemptWithExam, error) {
	var attempts []model.AttemptWithExam
	for rows.Next() {
		var a model.AttemptWithExam
		var examID uuid.UUID
		var contest, board string
		var year int
		if err := rows.Scan(&a.ID, &a.UserID, &a.ExamID, &a.Subject, &a.StartedAt, &a.FinishedAt, &a.Score, &a.Passed,
			&examID, &contest, &board, &year); err != nil {
			return nil, err
		}
		e := model.Exam{ID: examID, Contest: contest, Board: board, Year: year}
		a.Exam = e.Summary()
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}
