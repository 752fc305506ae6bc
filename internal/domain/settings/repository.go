package settings

import "context"

type Repository interface {
	// GetWorkSettings returns the singleton row or ErrNotConfigured.
	GetWorkSettings(ctx context.Context) (WorkSettings, error)
	UpsertWorkSettings(ctx context.Context, ws WorkSettings) (WorkSettings, error)

	GetEvaluationSettings(ctx context.Context, departmentID string) (EvaluationSettings, error)
	UpsertEvaluationSettings(ctx context.Context, es EvaluationSettings) (EvaluationSettings, error)
}
