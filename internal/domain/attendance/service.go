package attendance

import (
	"context"
	"time"
)

// Service defines business logic for attendance operations.
type Service interface {
	// Toggle performs the daily check-in/check-out transition for an
	// employee: NoRecord -> CheckedIn -> CheckedOut. A toggle on a closed day
	// is a no-op.
	Toggle(ctx context.Context, employeeID string) (ToggleResponse, error)

	// GetToday returns the employee's record for the current civil day, or
	// nil when the day has no record yet.
	GetToday(ctx context.Context, employeeID string) (*RecordResponse, error)

	// ListMine returns the employee's records within [from, to].
	ListMine(ctx context.Context, employeeID string, from, to time.Time) ([]RecordResponse, error)

	// ListByDate returns every employee's record for one civil day.
	ListByDate(ctx context.Context, date time.Time) ([]RecordResponse, error)

	// CloseOpenSessions closes forgotten sessions from previous civil days at
	// their shift end, splitting hours with the same calculator as a normal
	// check-out. Returns the number of sessions closed.
	CloseOpenSessions(ctx context.Context) (int, error)
}
