package attendance

import (
	"testing"

	"github.com/aiwa-ops/hrops-backend-go/internal/domain/attendance"
	"github.com/aiwa-ops/hrops-backend-go/internal/domain/settings"
	"github.com/aiwa-ops/hrops-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestResolveShift_OrgDefaults(t *testing.T) {
	ws := settings.WorkSettings{WorkStartTime: "09:00", WorkEndTime: "17:00"}

	shift, err := ResolveShift(user.User{}, ws)
	require.NoError(t, err)
	assert.Equal(t, 540, shift.StartMinutes)
	assert.Equal(t, 1020, shift.EndMinutes)
	assert.Equal(t, 8.0, shift.DurationHours())
}

func TestResolveShift_EmployeeOverrideWins(t *testing.T) {
	ws := settings.WorkSettings{WorkStartTime: "09:00", WorkEndTime: "17:00"}
	emp := user.User{CustomStartTime: strPtr("08:00"), CustomEndTime: strPtr("16:30")}

	shift, err := ResolveShift(emp, ws)
	require.NoError(t, err)
	assert.Equal(t, 480, shift.StartMinutes)
	assert.Equal(t, 990, shift.EndMinutes)
}

func TestResolveShift_PartialOverride(t *testing.T) {
	ws := settings.WorkSettings{WorkStartTime: "09:00", WorkEndTime: "17:00"}
	emp := user.User{CustomStartTime: strPtr("10:00")}

	shift, err := ResolveShift(emp, ws)
	require.NoError(t, err)
	assert.Equal(t, 600, shift.StartMinutes)
	assert.Equal(t, 1020, shift.EndMinutes)
}

func TestResolveShift_EmptyOverrideIgnored(t *testing.T) {
	ws := settings.WorkSettings{WorkStartTime: "09:00", WorkEndTime: "17:00"}
	emp := user.User{CustomStartTime: strPtr("")}

	shift, err := ResolveShift(emp, ws)
	require.NoError(t, err)
	assert.Equal(t, 540, shift.StartMinutes)
}

func TestResolveShift_BadConfig(t *testing.T) {
	_, err := ResolveShift(user.User{}, settings.WorkSettings{WorkStartTime: "nine", WorkEndTime: "17:00"})
	assert.Error(t, err)
}

func TestLateness(t *testing.T) {
	const start, threshold = 540, 15 // 09:00, 15 min grace

	tests := []struct {
		name       string
		nowMinutes int
		wantDelay  int
		wantRating attendance.Rating
		wantScore  int
	}{
		{"exactly at start", 540, 0, attendance.RatingOnTime, 100},
		{"within grace", 550, 0, attendance.RatingOnTime, 100},
		{"exactly at threshold boundary", 555, 0, attendance.RatingOnTime, 100},
		{"one past threshold", 556, 16, attendance.RatingLate, 92},
		{"twenty minutes late", 560, 20, attendance.RatingLate, 90},
		{"very late hits score floor", 660, 120, attendance.RatingLate, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delay, rating, score := Lateness(tt.nowMinutes, start, threshold)
			assert.Equal(t, tt.wantDelay, delay)
			assert.Equal(t, tt.wantRating, rating)
			assert.Equal(t, tt.wantScore, score)
		})
	}
}

func TestSplitHours(t *testing.T) {
	shift := Shift{StartMinutes: 540, EndMinutes: 1020} // 09:00-17:00

	tests := []struct {
		name         string
		checkIn      int
		now          int
		overtime     bool
		wantRegular  float64
		wantOvertime float64
	}{
		{"late arrival, overtime off, stays past end", 560, 1080, false, 8.0, 0},
		{"late arrival, overtime on, stays past end", 560, 1080, true, 8.0, 0.67},
		{"early arrival bills from shift start", 500, 1020, false, 8.0, 0},
		{"early arrival with overtime on, no excess", 500, 1020, true, 8.0, 0},
		{"exact shift worked", 540, 1020, true, 8.0, 0},
		{"left at shift end after late arrival", 560, 1020, true, 7.67, 0},
		{"overtime off caps at shift length", 540, 1140, false, 8.0, 0},
		{"overtime on past shift length", 540, 1140, true, 8.0, 2.0},
		{"same-minute checkout clamps to zero", 1020, 1020, true, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regular, overtime := SplitHours(tt.checkIn, tt.now, shift, tt.overtime)
			assert.InDelta(t, tt.wantRegular, regular, 0.001)
			assert.InDelta(t, tt.wantOvertime, overtime, 0.001)
		})
	}
}

// Regular plus overtime must never exceed the wall-clock span between
// check-in and check-out.
func TestSplitHours_NeverExceedsElapsed(t *testing.T) {
	shift := Shift{StartMinutes: 540, EndMinutes: 1020}
	for checkIn := 480; checkIn <= 660; checkIn += 17 {
		for now := 1020; now <= 1320; now += 23 {
			for _, ot := range []bool{true, false} {
				regular, overtime := SplitHours(checkIn, now, shift, ot)
				elapsed := float64(now-checkIn) / 60
				assert.LessOrEqual(t, regular+overtime, elapsed+0.01,
					"checkIn=%d now=%d overtime=%v", checkIn, now, ot)
			}
		}
	}
}
