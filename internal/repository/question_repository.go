package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/provado/provado-backend/internal/model"
)

// QuestionRepository handles question reference data access.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

// NewQuestionRepository creates a new QuestionRepository.
func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

const questionColumns = `id, exam_id, subject, statement,
	option_a, option_b, option_c, option_d, option_e, correct_option`

// ListByExam retrieves the questions of an exam, optionally narrowed to one
// subject. Ordered by id so the 1-based position of a question is stable
// across requests.
func (r *QuestionRepository) ListByExam(ctx context.Context, examID uuid.UUID, subject *string) ([]model.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE exam_id = $1`
	args := []any{examID}

	if subject != nil {
		query += ` AND subject = $2`
		args = append(args, *subject)
	}
	query += ` ORDER BY id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []model.Question
	for rows.Next() {
		var q model.Question
		if err := rows.Scan(&q.ID, &q.ExamID, &q.Subject, &q.Statement,
			&q.OptionA, &q.OptionB, &q.OptionC, &q.OptionD, &q.OptionE, &q.CorrectOption); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// ListSubjectsByExam retrieves the sorted distinct subjects of an exam.
func (r *QuestionRepository) ListSubjectsByExam(ctx context.Context, examID uuid.UUID) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT subject FROM questions
		 WHERE exam_id = $1
		 ORDER BY subject`, examID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}

// ListAllSubjects retrieves the sorted distinct subjects across all exams.
func (r *QuestionRepository) ListAllSubjects(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT subject FROM questions ORDER BY subject`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}
	return subjects, rows.Err()
}

// Create inserts a new question. Used by seeding only.
func (r *QuestionRepository) Create(ctx context.Context, q *model.Question) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO questions (exam_id, subject, statement,
		    option_a, option_b, option_c, option_d, option_e, correct_option)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		q.ExamID, q.Subject, q.Statement,
		q.OptionA, q.OptionB, q.OptionC, q.OptionD, q.OptionE, q.CorrectOption,
	).Scan(&q.ID)
}
