package settings

import "time"

// WorkSettings is the organization-wide shift configuration. A single row,
// mutated only by manager action, loaded per request and passed explicitly to
// the attendance engine.
type WorkSettings struct {
	ID string

	// WorkStartTime/WorkEndTime are "HH:MM" in the attendance timezone.
	WorkStartTime string
	WorkEndTime   string

	// LateThresholdMinutes is the grace period after WorkStartTime during
	// which a check-in still counts as on time.
	LateThresholdMinutes int

	// EarlyAllowanceMinutes is how long before WorkStartTime a check-in is
	// accepted. Zero means no early check-in.
	EarlyAllowanceMinutes int

	UpdatedAt time.Time
}

// EvaluationSettings holds the per-department weighted-scoring configuration.
// The four weights must sum to exactly 100.
type EvaluationSettings struct {
	ID               string
	DepartmentID     string
	SpeedWeight      int
	AccuracyWeight   int
	QualityWeight    int
	DisciplineWeight int
	DailyTarget      int
	UpdatedAt        time.Time
}
