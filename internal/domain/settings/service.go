package settings

import "context"

// Service defines business logic for organization settings.
type Service interface {
	// GetWorkSettings returns the shift configuration or ErrNotConfigured.
	GetWorkSettings(ctx context.Context) (WorkSettingsResponse, error)

	// UpdateWorkSettings overwrites the singleton shift configuration.
	// Changes apply from the next toggle; closed records are never recomputed.
	UpdateWorkSettings(ctx context.Context, req UpdateWorkSettingsRequest) (WorkSettingsResponse, error)

	GetEvaluationSettings(ctx context.Context, departmentID string) (EvaluationSettingsResponse, error)
	UpdateEvaluationSettings(ctx context.Context, req UpdateEvaluationSettingsRequest) (EvaluationSettingsResponse, error)
}
