package evaluation

import (
	"context"
	"time"
)

type Repository interface {
	// Upsert writes the evaluation for (employee_id, date), replacing any
	// previous scoring for that day.
	Upsert(ctx context.Context, e Evaluation) (Evaluation, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Evaluation, error)
	ListByDate(ctx context.Context, date time.Time) ([]Evaluation, error)
	ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]Evaluation, error)
}
