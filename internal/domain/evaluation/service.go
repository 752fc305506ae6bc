package evaluation

import (
	"context"
	"time"
)

// Service defines business logic for daily performance evaluations.
type Service interface {
	// Save upserts the evaluation for (employee, date), computing the
	// weighted score from the department's evaluation settings.
	Save(ctx context.Context, req SaveEvaluationRequest) (EvaluationResponse, error)

	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (EvaluationResponse, error)
	ListByDate(ctx context.Context, date time.Time) ([]EvaluationResponse, error)
	ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]EvaluationResponse, error)
}
