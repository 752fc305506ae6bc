package attendance

import (
	"fmt"
	"math"

	"github.com/aiwa-ops/hrops-backend-go/internal/domain/attendance"
	"github.com/aiwa-ops/hrops-backend-go/internal/domain/settings"
	"github.com/aiwa-ops/hrops-backend-go/internal/domain/user"
	"github.com/aiwa-ops/hrops-backend-go/internal/pkg/clock"
)

// Shift is the effective boundary pair for one employee, expressed as
// minutes since midnight in the attendance timezone.
type Shift struct {
	StartMinutes int
	EndMinutes   int
}

// DurationHours is the official shift length.
func (s Shift) DurationHours() float64 {
	return float64(s.EndMinutes-s.StartMinutes) / 60
}

// ResolveShift determines the shift boundaries for an employee: a personal
// "HH:MM" override wins, otherwise the organization default applies.
func ResolveShift(emp user.User, ws settings.WorkSettings) (Shift, error) {
	startStr := ws.WorkStartTime
	if emp.CustomStartTime != nil && *emp.CustomStartTime != "" {
		startStr = *emp.CustomStartTime
	}
	endStr := ws.WorkEndTime
	if emp.CustomEndTime != nil && *emp.CustomEndTime != "" {
		endStr = *emp.CustomEndTime
	}

	start, err := clock.ParseClock(startStr)
	if err != nil {
		return Shift{}, fmt.Errorf("resolve shift start: %w", err)
	}
	end, err := clock.ParseClock(endStr)
	if err != nil {
		return Shift{}, fmt.Errorf("resolve shift end: %w", err)
	}
	return Shift{StartMinutes: start, EndMinutes: end}, nil
}

// Lateness evaluates a check-in against the shift start. Arrivals within the
// grace period count as fully on time: delay stays 0 and the score stays 100.
// Beyond it, the delay is measured from the shift start itself and the score
// decays 0.5 points per minute with a floor of 50.
func Lateness(nowMinutes, startMinutes, lateThreshold int) (delay int, rating attendance.Rating, score int) {
	if nowMinutes <= startMinutes+lateThreshold {
		return 0, attendance.RatingOnTime, 100
	}
	delay = nowMinutes - startMinutes
	score = int(math.Round(100 - float64(delay)/2))
	if score < 50 {
		score = 50
	}
	return delay, attendance.RatingLate, score
}

// SplitHours divides the time between check-in and check-out into regular and
// overtime hours.
//
// Billing starts at the later of the actual check-in and the official shift
// start: arriving early earns nothing extra, arriving late bills from the
// actual arrival. Employees without overtime eligibility are capped at the
// shift length even if they stayed later.
func SplitHours(checkInMinutes, nowMinutes int, shift Shift, overtimeEnabled bool) (regular, overtime float64) {
	billedStart := checkInMinutes
	if shift.StartMinutes > billedStart {
		billedStart = shift.StartMinutes
	}

	worked := float64(nowMinutes-billedStart) / 60
	if worked < 0 {
		worked = 0
	}
	shiftLen := shift.DurationHours()

	if overtimeEnabled && worked > shiftLen {
		return round2(shiftLen), round2(worked - shiftLen)
	}
	if worked > shiftLen {
		worked = shiftLen
	}
	return round2(worked), 0
}

// round2 rounds to 2 decimal places for reporting precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
