package attendance

import "time"

// Rating is the closed set of check-in outcomes. Display text is localized at
// the handler boundary, never stored here.
type Rating string

const (
	RatingOnTime Rating = "ON_TIME"
	RatingLate   Rating = "LATE"
)

// State of a record in the per-day lifecycle.
type State string

const (
	StateNoRecord   State = "NO_RECORD"
	StateCheckedIn  State = "CHECKED_IN"
	StateCheckedOut State = "CHECKED_OUT"
)

// Record is one employee-day of attendance. At most one row exists per
// (employee_id, date) where date is the start of the civil day.
type Record struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	CheckIn       *time.Time
	CheckOut      *time.Time
	DelayMinutes  int
	WorkHours     float64
	OvertimeHours float64
	Score         int
	Rating        Rating
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined for listings.
	EmployeeName   *string
	DepartmentName *string
}

// State derives the lifecycle position of the record.
func (r *Record) State() State {
	switch {
	case r == nil || r.CheckIn == nil:
		return StateNoRecord
	case r.CheckOut == nil:
		return StateCheckedIn
	default:
		return StateCheckedOut
	}
}
