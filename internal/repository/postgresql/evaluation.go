package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/aiwa-ops/hrops-backend-go/internal/domain/evaluation"
	"github.com/aiwa-ops/hrops-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type evaluationRepositoryImpl struct {
	db *database.DB
}

func NewEvaluationRepository(db *database.DB) evaluation.Repository {
	return &evaluationRepositoryImpl{db: db}
}

const evaluationColumns = `
	e.id, e.employee_id, e.date, e.score, e.rating, e.speed_score,
	e.accuracy_score, e.quality_score, e.discipline_score, e.orders_prepared,
	e.avg_prep_time, e.calls_count, e.avg_response_time, e.created_at,
	e.updated_at, u.full_name
`

func scanEvaluation(row pgx.Row) (evaluation.Evaluation, error) {
	var e evaluation.Evaluation
	err := row.Scan(
		&e.ID,
		&e.EmployeeID,
		&e.Date,
		&e.Score,
		&e.Rating,
		&e.SpeedScore,
		&e.AccuracyScore,
		&e.QualityScore,
		&e.DisciplineScore,
		&e.OrdersPrepared,
		&e.AvgPrepTime,
		&e.CallsCount,
		&e.AvgResponseTime,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.EmployeeName,
	)
	return e, err
}

// Upsert implements evaluation.Repository. The unique index on
// (employee_id, date) makes a later save replace the earlier scoring.
func (r *evaluationRepositoryImpl) Upsert(ctx context.Context, e evaluation.Evaluation) (evaluation.Evaluation, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		INSERT INTO evaluations (
			id, employee_id, date, score, rating, speed_score, accuracy_score,
			quality_score, discipline_score, orders_prepared, avg_prep_time,
			calls_count, avg_response_time
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (employee_id, date) DO UPDATE
		SET score = EXCLUDED.score,
			rating = EXCLUDED.rating,
			speed_score = EXCLUDED.speed_score,
			accuracy_score = EXCLUDED.accuracy_score,
			quality_score = EXCLUDED.quality_score,
			discipline_score = EXCLUDED.discipline_score,
			orders_prepared = EXCLUDED.orders_prepared,
			avg_prep_time = EXCLUDED.avg_prep_time,
			calls_count = EXCLUDED.calls_count,
			avg_response_time = EXCLUDED.avg_response_time,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`, e.ID, e.EmployeeID, e.Date, e.Score, e.Rating, e.SpeedScore,
		e.AccuracyScore, e.QualityScore, e.DisciplineScore, e.OrdersPrepared,
		e.AvgPrepTime, e.CallsCount, e.AvgResponseTime).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return evaluation.Evaluation{}, err
	}
	return e, nil
}

// GetByEmployeeAndDate implements evaluation.Repository.
func (r *evaluationRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (evaluation.Evaluation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + evaluationColumns + `
		FROM evaluations e
		JOIN users u ON u.id = e.employee_id
		WHERE e.employee_id = $1 AND e.date = $2
	`

	e, err := scanEvaluation(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return evaluation.Evaluation{}, evaluation.ErrEvaluationNotFound
		}
		return evaluation.Evaluation{}, err
	}
	return e, nil
}

// ListByDate implements evaluation.Repository.
func (r *evaluationRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]evaluation.Evaluation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + evaluationColumns + `
		FROM evaluations e
		JOIN users u ON u.id = e.employee_id
		WHERE e.date = $1
		ORDER BY e.score DESC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEvaluations(rows)
}

// ListByEmployee implements evaluation.Repository.
func (r *evaluationRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]evaluation.Evaluation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + evaluationColumns + `
		FROM evaluations e
		JOIN users u ON u.id = e.employee_id
		WHERE e.employee_id = $1 AND e.date BETWEEN $2 AND $3
		ORDER BY e.date DESC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEvaluations(rows)
}

func collectEvaluations(rows pgx.Rows) ([]evaluation.Evaluation, error) {
	var evals []evaluation.Evaluation
	for rows.Next() {
		e, err := scanEvaluation(rows)
		if err != nil {
			return nil, err
		}
		evals = append(evals, e)
	}
	return evals, rows.Err()
}
