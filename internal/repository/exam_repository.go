package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/provado/provado-backend/internal/model"
)

// ExamRepository handles exam reference data access.
type ExamRepository struct {
	pool *pgxpool.Pool
}

// NewExamRepository creates a new ExamRepository.
func NewExamRepository(pool *pgxpool.Pool) *ExamRepository {
	return &ExamRepository{pool: pool}
}

// GetByID retrieves an exam by its UUID.
func (r *ExamRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Exam, error) {
	e := &model.Exam{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, contest, board, year, cutoff_score, created_at
		 FROM exams WHERE id = $1`, id,
	).Scan(&e.ID, &e.Contest, &e.Board, &e.Year, &e.CutoffScore, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// List retrieves all exams, newest year first.
func (r *ExamRepository) List(ctx context.Context) ([]model.Exam, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, contest, board, year, cutoff_score, created_at
		 FROM exams
		 ORDER BY year DESC, contest ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exams []model.Exam
	for rows.Next() {
		var e model.Exam
		if err := rows.Scan(&e.ID, &e.Contest, &e.Board, &e.Year, &e.CutoffScore, &e.CreatedAt); err != nil {
			return nil, err
		}
		exams = append(exams, e)
	}
	return exams, rows.Err()
}

// ListWithSubject retrieves exams that contain at least one question of the
// given subject, newest year first. Backs the study-by-subject screen.
func (r *ExamRepository) ListWithSubject(ctx context.Context, subject string) ([]model.Exam, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT e.id, e.contest, e.board, e.year, e.cutoff_score, e.created_at
		 FROM exams e
		 JOIN questions q ON q.exam_id = e.id
		 WHERE q.subject = $1
		 ORDER BY e.year DESC, e.contest ASC`, subject,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exams []model.Exam
	for rows.Next() {
		var e model.Exam
		if err := rows.Scan(&e.ID, &e.Contest, &e.Board, &e.Year, &e.CutoffScore, &e.CreatedAt); err != nil {
			return nil, err
		}
		exams = append(exams, e)
	}
	return exams, rows.Err()
}

// Create inserts a new exam. Used by seeding only; exams are immutable
// once created.
func (r *ExamRepository) Create(ctx context.Context, e *model.Exam) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO exams (contest, board, year, cutoff_score)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		e.Contest, e.Board, e.Year, e.CutoffScore,
	).Scan(&e.ID, &e.CreatedAt)
}
