package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/provado/provado-backend/internal/model"
)

// AnswerRepository handles answer ledger data access.
type AnswerRepository struct {
	pool *pgxpool.Pool
}

// NewAnswerRepository creates a new AnswerRepository.
func NewAnswerRepository(pool *pgxpool.Pool) *AnswerRepository {
	return &AnswerRepository{pool: pool}
}

// Upsert inserts the answer for an (attempt, question) pair or overwrites
// the existing one, relying on the unique constraint on that pair. The
// correctness flag is recomputed by the caller before every write.
func (r *AnswerRepository) Upsert(ctx context.Context, a *model.Answer) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO answers (attempt_id, question_id, chosen_option, correct)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (attempt_id, question_id)
		 DO UPDATE SET chosen_option = EXCLUDED.chosen_option,
		               correct = EXCLUDED.correct,
		               answered_at = NOW()
		 RETURNING id, answered_at`,
		a.AttemptID, a.QuestionID, a.ChosenOption, a.Correct,
	).Scan(&a.ID, &a.AnsweredAt)
}

// ListByAttempt retrieves all answers of an attempt.
func (r *AnswerRepository) ListByAttempt(ctx context.Context, attemptID uuid.UUID) ([]model.Answer, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, attempt_id, question_id, chosen_option, correct, answered_at
		 FROM answers
		 WHERE attempt_id = $1
		 ORDER BY answered_at`, attemptID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var answers []model.Answer
	for rows.Next() {
		var a model.Answer
		if err := rows.Scan(&a.ID, &a.AttemptID, &a.QuestionID, &a.ChosenOption, &a.Correct, &a.AnsweredAt); err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}

// AnswerSubject is the flattened row the progress aggregator consumes:
// one answer's correctness plus the subject of its question. Subject is
// nil when the question row can no longer be resolved.
type AnswerSubject struct {
	Correct bool
	Subject *string
}

// ListByUserWithSubject retrieves every answer belonging to any of the
// user's attempts, joined to its question's subject. LEFT JOIN keeps
// answers whose question reference is unresolvable; the aggregator buckets
// those under a sentinel subject.
func (r *AnswerRepository) ListByUserWithSubject(ctx context.Context, userID int) ([]AnswerSubject, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT ans.correct, q.subject
		 FROM answers ans
		 JOIN attempts att ON att.id = ans.attempt_id
		 LEFT JOIN questions q ON q.id = ans.question_id
		 WHERE att.user_id = $1
		 ORDER BY ans.answered_at`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []AnswerSubject
	for rows.Next() {
		var as AnswerSubject
		if err := rows.Scan(&as.Correct, &as.Subject); err != nil {
			return nil, err
		}
		result = append(result, as)
	}
	return result, rows.Err()
}
