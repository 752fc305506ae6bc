package clock

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultTimezone is the civil timezone all attendance arithmetic runs in.
// Wall-clock comparisons must never depend on the host timezone.
const DefaultTimezone = "Asia/Riyadh"

// Clock provides the current time. Services take it as a dependency so tests
// can pin the wall clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns a Clock backed by time.Now.
func System() Clock { return systemClock{} }

// Fixed returns a Clock frozen at t.
func Fixed(t time.Time) Clock { return fixedClock{t} }

type fixedClock struct{ t time.Time }

func (f fixedClock) Now() time.Time { return f.t }

// LoadLocation resolves a timezone name, falling back to DefaultTimezone.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return loc, nil
}

// MinutesOfDay converts an absolute timestamp to minutes since midnight in
// loc, in [0, 1439]. Some civil-time formatters emit hour 24 for midnight;
// that value is folded back to 0 since it does not exist on a 24-hour clock.
func MinutesOfDay(t time.Time, loc *time.Location) int {
	local := t.In(loc)
	h, m := local.Hour(), local.Minute()
	if h >= 24 {
		h = 0
	}
	return h*60 + m
}

// CivilDay truncates t to the start of its civil day in loc. Used as the
// day-granularity key for the one-record-per-employee-per-day invariant.
func CivilDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// ParseClock converts an "HH:MM" configuration string into minutes since
// midnight so it can be compared numerically against MinutesOfDay.
func ParseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock string %q: want HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock string %q: %w", s, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock string %q: %w", s, err)
	}
	if h == 24 {
		h = 0
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock string %q out of range", s)
	}
	return h*60 + m, nil
}

// FormatMinutes renders minutes since midnight back as "HH:MM" for
// user-facing boundary messages.
func FormatMinutes(minutes int) string {
	minutes %= 24 * 60
	if minutes < 0 {
		minutes += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
