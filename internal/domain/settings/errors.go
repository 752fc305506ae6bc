package settings

import "errors"

var (
	// ErrNotConfigured means the organization work settings row is missing.
	// Fatal to any attendance call, nothing is mutated.
	ErrNotConfigured = errors.New("system work settings are not configured")

	ErrEvaluationSettingsNotFound = errors.New("no evaluation settings for this department")
	ErrWeightsMustSumTo100        = errors.New("evaluation weights must sum to exactly 100")
)
