package attendance

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("attendance record not found")
)

// ShiftNotStartedError rejects a check-in attempted before the allowed
// window. StartsAt carries the configured shift start ("HH:MM") so the user
// sees the concrete boundary.
type ShiftNotStartedError struct {
	StartsAt string
}

func (e *ShiftNotStartedError) Error() string {
	return fmt.Sprintf("shift has not started yet, check-in opens at %s", e.StartsAt)
}

// EarlyCheckoutError rejects a check-out attempted before shift end. EndsAt
// carries the configured shift end ("HH:MM").
type EarlyCheckoutError struct {
	EndsAt string
}

func (e *EarlyCheckoutError) Error() string {
	return fmt.Sprintf("cannot check out before the shift ends at %s", e.EndsAt)
}
