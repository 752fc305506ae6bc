package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func riyadh(t *testing.T) *time.Location {
	t.Helper()
	loc, err := LoadLocation(DefaultTimezone)
	require.NoError(t, err)
	return loc
}

func TestMinutesOfDay_IndependentOfSourceZone(t *testing.T) {
	loc := riyadh(t)

	// 06:00 UTC == 09:00 in Riyadh (fixed +03:00, no DST).
	utc := time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC)
	assert.Equal(t, 9*60, MinutesOfDay(utc, loc))

	// Same instant expressed in another zone must normalize identically.
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	assert.Equal(t, 9*60, MinutesOfDay(utc.In(tokyo), loc))
}

func TestMinutesOfDay_MidnightBoundary(t *testing.T) {
	loc := riyadh(t)

	// 21:00 UTC == 00:00 next day in Riyadh.
	utc := time.Date(2025, 3, 10, 21, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, MinutesOfDay(utc, loc))

	// Last minute of the civil day.
	utc = time.Date(2025, 3, 10, 20, 59, 0, 0, time.UTC)
	assert.Equal(t, 23*60+59, MinutesOfDay(utc, loc))
}

func TestCivilDay(t *testing.T) {
	loc := riyadh(t)

	// 22:30 UTC on March 10 is already March 11 in Riyadh.
	utc := time.Date(2025, 3, 10, 22, 30, 0, 0, time.UTC)
	day := CivilDay(utc, loc)
	assert.Equal(t, 2025, day.Year())
	assert.Equal(t, time.March, day.Month())
	assert.Equal(t, 11, day.Day())
	assert.Equal(t, 0, day.Hour())
	assert.Equal(t, loc, day.Location())
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"09:00", 540, false},
		{"00:00", 0, false},
		{"23:59", 1439, false},
		{"17:30", 1050, false},
		// Hour 24 from sloppy formatters folds back to midnight.
		{"24:00", 0, false},
		{"25:00", 0, true},
		{"09:60", 0, true},
		{"0900", 0, true},
		{"", 0, true},
		{"ab:cd", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "09:00", FormatMinutes(540))
	assert.Equal(t, "00:00", FormatMinutes(0))
	assert.Equal(t, "23:59", FormatMinutes(1439))
	assert.Equal(t, "00:00", FormatMinutes(1440))
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, at, Fixed(at).Now())
}
