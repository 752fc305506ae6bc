package attendance

import (
	"context"
	"time"
)

// Repository defines data access for attendance records.
type Repository interface {
	// GetByEmployeeAndDate returns the record for the given civil day, or
	// (nil, nil) when none exists yet.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)

	// UpsertCheckIn atomically creates or completes the day's record with the
	// check-in fields. A row whose check_in is already set is left untouched,
	// so concurrent double-invocation cannot overwrite the first write.
	UpsertCheckIn(ctx context.Context, rec Record) (Record, error)

	// SetCheckOut writes the check-out fields. The write is guarded on
	// check_out IS NULL; a second call is a no-op returning ErrRecordNotFound.
	SetCheckOut(ctx context.Context, id string, checkOut time.Time, workHours, overtimeHours float64) error

	// ListOpenSessionsBefore returns records with a check-in but no check-out
	// dated strictly before the given civil day. Used by the auto-close job.
	ListOpenSessionsBefore(ctx context.Context, day time.Time) ([]Record, error)

	// ListByEmployee returns an employee's records within [from, to].
	ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]Record, error)

	// ListByDate returns all records for one civil day with employee names.
	ListByDate(ctx context.Context, date time.Time) ([]Record, error)
}
