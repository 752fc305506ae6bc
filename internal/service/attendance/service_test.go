package attendance

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/aiwa-ops/hrops-backend-go/internal/domain/attendance"
	"github.com/aiwa-ops/hrops-backend-go/internal/domain/settings"
	"github.com/aiwa-ops/hrops-backend-go/internal/domain/user"
	"github.com/aiwa-ops/hrops-backend-go/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- in-memory fakes ----

type fakeAttendanceRepo struct {
	recs map[string]*attendance.Record // keyed by employeeID + civil day
	seq  int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{recs: make(map[string]*attendance.Record)}
}

func recKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	if rec, ok := f.recs[recKey(employeeID, date)]; ok {
		cp := *rec
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) UpsertCheckIn(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	key := recKey(rec.EmployeeID, rec.Date)
	if existing, ok := f.recs[key]; ok {
		// Mirrors the SQL guard: an existing check-in is never overwritten.
		if existing.CheckIn != nil {
			return *existing, nil
		}
		existing.CheckIn = rec.CheckIn
		existing.DelayMinutes = rec.DelayMinutes
		existing.Score = rec.Score
		existing.Rating = rec.Rating
		return *existing, nil
	}
	f.seq++
	rec.ID = fmt.Sprintf("rec-%d", f.seq)
	f.recs[key] = &rec
	return rec, nil
}

func (f *fakeAttendanceRepo) SetCheckOut(ctx context.Context, id string, checkOut time.Time, workHours, overtimeHours float64) error {
	for _, rec := range f.recs {
		if rec.ID != id {
			continue
		}
		if rec.CheckOut != nil {
			return attendance.ErrRecordNotFound
		}
		rec.CheckOut = &checkOut
		rec.WorkHours = workHours
		rec.OvertimeHours = overtimeHours
		return nil
	}
	return attendance.ErrRecordNotFound
}

func (f *fakeAttendanceRepo) ListOpenSessionsBefore(ctx context.Context, day time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.recs {
		if rec.CheckIn != nil && rec.CheckOut == nil && rec.Date.Before(day) {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.recs {
		if rec.EmployeeID == employeeID && !rec.Date.Before(from) && !rec.Date.After(to) {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.recs {
		if rec.Date.Equal(date) {
			out = append(out, *rec)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]user.User
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) { return u, nil }
func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (f *fakeUserRepo) List(ctx context.Context, departmentID *string) ([]user.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) Update(ctx context.Context, u user.User) error { return nil }
func (f *fakeUserRepo) SetOvertimeEnabled(ctx context.Context, id string, enabled bool) error {
	return nil
}
func (f *fakeUserRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeSettingsRepo struct {
	ws         settings.WorkSettings
	configured bool
}

func (f *fakeSettingsRepo) GetWorkSettings(ctx context.Context) (settings.WorkSettings, error) {
	if !f.configured {
		return settings.WorkSettings{}, settings.ErrNotConfigured
	}
	return f.ws, nil
}

func (f *fakeSettingsRepo) UpsertWorkSettings(ctx context.Context, ws settings.WorkSettings) (settings.WorkSettings, error) {
	f.ws, f.configured = ws, true
	return ws, nil
}

func (f *fakeSettingsRepo) GetEvaluationSettings(ctx context.Context, departmentID string) (settings.EvaluationSettings, error) {
	return settings.EvaluationSettings{}, settings.ErrEvaluationSettingsNotFound
}

func (f *fakeSettingsRepo) UpsertEvaluationSettings(ctx context.Context, es settings.EvaluationSettings) (settings.EvaluationSettings, error) {
	return es, nil
}

// ---- fixture ----

type fixture struct {
	attRepo  *fakeAttendanceRepo
	users    *fakeUserRepo
	settings *fakeSettingsRepo
	loc      *time.Location
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	loc, err := clock.LoadLocation(clock.DefaultTimezone)
	require.NoError(t, err)

	dept := "Customer Service"
	return &fixture{
		attRepo: newFakeAttendanceRepo(),
		users: &fakeUserRepo{users: map[string]user.User{
			"emp-1": {ID: "emp-1", FullName: "Ahmed", DepartmentName: &dept},
		}},
		settings: &fakeSettingsRepo{
			ws: settings.WorkSettings{
				WorkStartTime:        "09:00",
				WorkEndTime:          "17:00",
				LateThresholdMinutes: 15,
			},
			configured: true,
		},
		loc: loc,
	}
}

// service returns the attendance service with the wall clock pinned at the
// given Riyadh local time on March 10 2025.
func (f *fixture) service(hour, min int) attendance.Service {
	at := time.Date(2025, 3, 10, hour, min, 0, 0, f.loc)
	return NewAttendanceService(f.attRepo, f.users, f.settings, clock.Fixed(at), f.loc)
}

func (f *fixture) todayRecord(t *testing.T) *attendance.Record {
	t.Helper()
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, f.loc)
	rec, err := f.attRepo.GetByEmployeeAndDate(context.Background(), "emp-1", day)
	require.NoError(t, err)
	return rec
}

// ---- toggle: check-in ----

func TestToggle_NotConfigured(t *testing.T) {
	f := newFixture(t)
	f.settings.configured = false

	_, err := f.service(9, 0).Toggle(context.Background(), "emp-1")
	assert.ErrorIs(t, err, settings.ErrNotConfigured)
	assert.Nil(t, f.todayRecord(t), "nothing may be written on a configuration error")
}

func TestToggle_UnknownEmployee(t *testing.T) {
	f := newFixture(t)

	_, err := f.service(9, 0).Toggle(context.Background(), "ghost")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestToggle_CheckInBeforeShift(t *testing.T) {
	f := newFixture(t)

	_, err := f.service(8, 50).Toggle(context.Background(), "emp-1")

	var notStarted *attendance.ShiftNotStartedError
	require.True(t, errors.As(err, &notStarted))
	assert.Equal(t, "09:00", notStarted.StartsAt)
	assert.Nil(t, f.todayRecord(t), "no record may be created on rejection")
}

func TestToggle_CheckInExactlyAtStart(t *testing.T) {
	f := newFixture(t)

	resp, err := f.service(9, 0).Toggle(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.Equal(t, attendance.ToggleCheckedIn, resp.Status)
	assert.Equal(t, attendance.RatingOnTime, resp.Rating)
	assert.Equal(t, 0, resp.DelayMinutes)
	assert.Equal(t, 100, resp.Score)
	assert.Equal(t, "Customer Service", resp.Department)

	rec := f.todayRecord(t)
	require.NotNil(t, rec)
	assert.NotNil(t, rec.CheckIn)
	assert.Nil(t, rec.CheckOut)
}

func TestToggle_CheckInAtThresholdBoundary(t *testing.T) {
	f := newFixture(t)

	// 09:15 with a 15 minute grace: lateness triggers only strictly past it.
	resp, err := f.service(9, 15).Toggle(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, attendance.RatingOnTime, resp.Rating)
	assert.Equal(t, 0, resp.DelayMinutes)
}

func TestToggle_CheckInOnePastThreshold(t *testing.T) {
	f := newFixture(t)

	resp, err := f.service(9, 16).Toggle(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, attendance.RatingLate, resp.Rating)
	assert.Equal(t, 16, resp.DelayMinutes)
}

func TestToggle_CheckInLate(t *testing.T) {
	f := newFixture(t)

	resp, err := f.service(9, 20).Toggle(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.Equal(t, attendance.RatingLate, resp.Rating)
	assert.Equal(t, 20, resp.DelayMinutes)
	assert.Equal(t, 90, resp.Score)
}

func TestToggle_CheckInWithCustomOverride(t *testing.T) {
	f := newFixture(t)
	early := "08:00"
	u := f.users.users["emp-1"]
	u.CustomStartTime = &early
	f.users.users["emp-1"] = u

	// 08:10 is inside the custom shift's grace period, late for the org one.
	resp, err := f.service(8, 10).Toggle(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, attendance.RatingOnTime, resp.Rating)

	// Before the custom start the rejection carries the custom boundary.
	f2 := newFixture(t)
	u2 := f2.users.users["emp-1"]
	u2.CustomStartTime = &early
	f2.users.users["emp-1"] = u2

	_, err = f2.service(7, 50).Toggle(context.Background(), "emp-1")
	var notStarted *attendance.ShiftNotStartedError
	require.True(t, errors.As(err, &notStarted))
	assert.Equal(t, "08:00", notStarted.StartsAt)
}

func TestToggle_EarlyAllowanceOpensWindow(t *testing.T) {
	f := newFixture(t)
	f.settings.ws.EarlyAllowanceMinutes = 30

	resp, err := f.service(8, 50).Toggle(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, attendance.ToggleCheckedIn, resp.Status)
	assert.Equal(t, 0, resp.DelayMinutes)
}

// ---- toggle: check-out ----

func (f *fixture) checkInAt(t *testing.T, hour, min int) {
	t.Helper()
	_, err := f.service(hour, min).Toggle(context.Background(), "emp-1")
	require.NoError(t, err)
}

func TestToggle_EarlyCheckoutRejected(t *testing.T) {
	f := newFixture(t)
	f.checkInAt(t, 9, 20)

	_, err := f.service(16, 30).Toggle(context.Background(), "emp-1")

	var early *attendance.EarlyCheckoutError
	require.True(t, errors.As(err, &early))
	assert.Equal(t, "17:00", early.EndsAt)

	rec := f.todayRecord(t)
	assert.Nil(t, rec.CheckOut, "rejected checkout must not write")
}

func TestToggle_CheckoutOvertimeDisabled(t *testing.T) {
	f := newFixture(t)
	f.checkInAt(t, 9, 20)

	resp, err := f.service(18, 0).Toggle(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.Equal(t, attendance.ToggleCheckedOut, resp.Status)
	assert.InDelta(t, 8.0, resp.WorkHours, 0.001)
	assert.InDelta(t, 0.0, resp.OvertimeHours, 0.001)

	rec := f.todayRecord(t)
	require.NotNil(t, rec.CheckOut)
	assert.InDelta(t, 8.0, rec.WorkHours, 0.001)
}

func TestToggle_CheckoutOvertimeEnabled(t *testing.T) {
	f := newFixture(t)
	u := f.users.users["emp-1"]
	u.IsOvertimeEnabled = true
	f.users.users["emp-1"] = u
	f.checkInAt(t, 9, 20)

	resp, err := f.service(18, 0).Toggle(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.InDelta(t, 8.0, resp.WorkHours, 0.001)
	assert.InDelta(t, 0.67, resp.OvertimeHours, 0.001)
}

func TestToggle_CheckoutExactlyAtShiftEnd(t *testing.T) {
	f := newFixture(t)
	f.checkInAt(t, 9, 0)

	resp, err := f.service(17, 0).Toggle(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, attendance.ToggleCheckedOut, resp.Status)
	assert.InDelta(t, 8.0, resp.WorkHours, 0.001)
}

// Hours are always computed against the official shift start, not against an
// over-early arrival.
func TestToggle_EarlyArrivalNotRewarded(t *testing.T) {
	f := newFixture(t)
	f.settings.ws.EarlyAllowanceMinutes = 60
	f.checkInAt(t, 8, 30)

	resp, err := f.service(17, 0).Toggle(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.InDelta(t, 8.0, resp.WorkHours, 0.001)
	assert.InDelta(t, 0.0, resp.OvertimeHours, 0.001)
}

// ---- toggle: closed day ----

func TestToggle_IdempotentAfterCheckout(t *testing.T) {
	f := newFixture(t)
	f.checkInAt(t, 9, 0)

	_, err := f.service(17, 30).Toggle(context.Background(), "emp-1")
	require.NoError(t, err)

	before := *f.todayRecord(t)

	resp, err := f.service(17, 45).Toggle(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Equal(t, attendance.ToggleDayComplete, resp.Status)

	after := *f.todayRecord(t)
	assert.Equal(t, before.CheckOut, after.CheckOut)
	assert.Equal(t, before.WorkHours, after.WorkHours)
	assert.Equal(t, before.OvertimeHours, after.OvertimeHours)
}

// Completed records never imply more time than actually elapsed.
func TestToggle_HoursNeverExceedElapsed(t *testing.T) {
	f := newFixture(t)
	u := f.users.users["emp-1"]
	u.IsOvertimeEnabled = true
	f.users.users["emp-1"] = u
	f.checkInAt(t, 9, 20)

	_, err := f.service(19, 43).Toggle(context.Background(), "emp-1")
	require.NoError(t, err)

	rec := f.todayRecord(t)
	elapsed := rec.CheckOut.Sub(*rec.CheckIn).Hours()
	assert.LessOrEqual(t, rec.WorkHours+rec.OvertimeHours, elapsed+0.01)
}

// ---- auto-close ----

func TestCloseOpenSessions(t *testing.T) {
	f := newFixture(t)

	// Yesterday's session was never closed.
	yesterday := time.Date(2025, 3, 9, 0, 0, 0, 0, f.loc)
	checkIn := time.Date(2025, 3, 9, 9, 30, 0, 0, f.loc)
	_, err := f.attRepo.UpsertCheckIn(context.Background(), attendance.Record{
		EmployeeID: "emp-1",
		Date:       yesterday,
		CheckIn:    &checkIn,
		Rating:     attendance.RatingLate,
	})
	require.NoError(t, err)

	closed, err := f.service(10, 0).CloseOpenSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, closed)

	rec, err := f.attRepo.GetByEmployeeAndDate(context.Background(), "emp-1", yesterday)
	require.NoError(t, err)
	require.NotNil(t, rec.CheckOut)
	assert.Equal(t, 17, rec.CheckOut.In(f.loc).Hour())
	assert.InDelta(t, 7.5, rec.WorkHours, 0.001) // 09:30 to 17:00
	assert.InDelta(t, 0.0, rec.OvertimeHours, 0.001)

	// Today's open sessions are untouched; a second run closes nothing.
	closed, err = f.service(10, 0).CloseOpenSessions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, closed)
}

// ---- queries ----

func TestGetToday(t *testing.T) {
	f := newFixture(t)

	got, err := f.service(9, 0).GetToday(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	f.checkInAt(t, 9, 0)

	got, err = f.service(10, 0).GetToday(context.Background(), "emp-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "2025-03-10", got.Date)
	assert.NotNil(t, got.CheckIn)
}
