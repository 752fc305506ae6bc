package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aiwa-ops/hrops-backend-go/internal/domain/attendance"
	"github.com/aiwa-ops/hrops-backend-go/internal/domain/settings"
	"github.com/aiwa-ops/hrops-backend-go/internal/domain/user"
	"github.com/aiwa-ops/hrops-backend-go/internal/pkg/clock"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.Repository
	userRepo       user.Repository
	settingsRepo   settings.Repository
	clk            clock.Clock
	loc            *time.Location
}

func NewAttendanceService(
	attendanceRepo attendance.Repository,
	userRepo user.Repository,
	settingsRepo settings.Repository,
	clk clock.Clock,
	loc *time.Location,
) attendance.Service {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		settingsRepo:   settingsRepo,
		clk:            clk,
		loc:            loc,
	}
}

// Toggle implements attendance.Service.
//
// All reads happen before any decision; the single write at the end is
// guarded in SQL so a concurrent duplicate call cannot double-write.
func (a *AttendanceServiceImpl) Toggle(ctx context.Context, employeeID string) (attendance.ToggleResponse, error) {
	ws, err := a.settingsRepo.GetWorkSettings(ctx)
	if err != nil {
		if errors.Is(err, settings.ErrNotConfigured) {
			return attendance.ToggleResponse{}, settings.ErrNotConfigured
		}
		return attendance.ToggleResponse{}, fmt.Errorf("failed to load work settings: %w", err)
	}

	emp, err := a.userRepo.GetByID(ctx, employeeID)
	if err != nil {
		return attendance.ToggleResponse{}, fmt.Errorf("failed to load employee: %w", err)
	}

	now := a.clk.Now()
	day := clock.CivilDay(now, a.loc)
	nowMinutes := clock.MinutesOfDay(now, a.loc)

	rec, err := a.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return attendance.ToggleResponse{}, fmt.Errorf("failed to load today's attendance: %w", err)
	}

	shift, err := ResolveShift(emp, ws)
	if err != nil {
		return attendance.ToggleResponse{}, err
	}

	switch rec.State() {
	case attendance.StateNoRecord:
		return a.checkIn(ctx, emp, day, now, nowMinutes, shift, ws)
	case attendance.StateCheckedIn:
		return a.checkOut(ctx, emp, rec, nowMinutes, now, shift)
	default:
		// Day already closed: report completion, never write twice.
		return attendance.ToggleResponse{
			Status:        attendance.ToggleDayComplete,
			Rating:        rec.Rating,
			DelayMinutes:  rec.DelayMinutes,
			Score:         rec.Score,
			WorkHours:     rec.WorkHours,
			OvertimeHours: rec.OvertimeHours,
			Department:    departmentOf(emp),
		}, nil
	}
}

func (a *AttendanceServiceImpl) checkIn(
	ctx context.Context,
	emp user.User,
	day, now time.Time,
	nowMinutes int,
	shift Shift,
	ws settings.WorkSettings,
) (attendance.ToggleResponse, error) {
	if nowMinutes < shift.StartMinutes-ws.EarlyAllowanceMinutes {
		return attendance.ToggleResponse{}, &attendance.ShiftNotStartedError{
			StartsAt: clock.FormatMinutes(shift.StartMinutes),
		}
	}

	delay, rating, score := Lateness(nowMinutes, shift.StartMinutes, ws.LateThresholdMinutes)

	rec := attendance.Record{
		EmployeeID:   emp.ID,
		Date:         day,
		CheckIn:      &now,
		DelayMinutes: delay,
		Score:        score,
		Rating:       rating,
	}
	if _, err := a.attendanceRepo.UpsertCheckIn(ctx, rec); err != nil {
		return attendance.ToggleResponse{}, fmt.Errorf("failed to record check-in: %w", err)
	}

	return attendance.ToggleResponse{
		Status:       attendance.ToggleCheckedIn,
		Rating:       rating,
		DelayMinutes: delay,
		Score:        score,
		Department:   departmentOf(emp),
	}, nil
}

func (a *AttendanceServiceImpl) checkOut(
	ctx context.Context,
	emp user.User,
	rec *attendance.Record,
	nowMinutes int,
	now time.Time,
	shift Shift,
) (attendance.ToggleResponse, error) {
	if nowMinutes < shift.EndMinutes {
		return attendance.ToggleResponse{}, &attendance.EarlyCheckoutError{
			EndsAt: clock.FormatMinutes(shift.EndMinutes),
		}
	}

	// The stored check-in is an absolute timestamp; re-normalize it in the
	// attendance timezone rather than trusting any stale numeric field.
	checkInMinutes := clock.MinutesOfDay(*rec.CheckIn, a.loc)
	regular, overtime := SplitHours(checkInMinutes, nowMinutes, shift, emp.IsOvertimeEnabled)

	if err := a.attendanceRepo.SetCheckOut(ctx, rec.ID, now, regular, overtime); err != nil {
		return attendance.ToggleResponse{}, fmt.Errorf("failed to record check-out: %w", err)
	}

	return attendance.ToggleResponse{
		Status:        attendance.ToggleCheckedOut,
		Rating:        rec.Rating,
		DelayMinutes:  rec.DelayMinutes,
		Score:         rec.Score,
		WorkHours:     regular,
		OvertimeHours: overtime,
		Department:    departmentOf(emp),
	}, nil
}

// GetToday implements attendance.Service.
func (a *AttendanceServiceImpl) GetToday(ctx context.Context, employeeID string) (*attendance.RecordResponse, error) {
	day := clock.CivilDay(a.clk.Now(), a.loc)
	rec, err := a.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to load today's attendance: %w", err)
	}
	if rec == nil {
		return nil, nil
	}
	resp := rec.ToResponse()
	return &resp, nil
}

// ListMine implements attendance.Service.
func (a *AttendanceServiceImpl) ListMine(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.RecordResponse, error) {
	recs, err := a.attendanceRepo.ListByEmployee(ctx, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	responses := make([]attendance.RecordResponse, 0, len(recs))
	for _, rec := range recs {
		responses = append(responses, rec.ToResponse())
	}
	return responses, nil
}

// ListByDate implements attendance.Service.
func (a *AttendanceServiceImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.RecordResponse, error) {
	recs, err := a.attendanceRepo.ListByDate(ctx, clock.CivilDay(date, a.loc))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	responses := make([]attendance.RecordResponse, 0, len(recs))
	for _, rec := range recs {
		responses = append(responses, rec.ToResponse())
	}
	return responses, nil
}

// CloseOpenSessions implements attendance.Service. Sessions from previous
// civil days are closed at their shift end; employees keep the hours earned
// up to that boundary.
func (a *AttendanceServiceImpl) CloseOpenSessions(ctx context.Context) (int, error) {
	ws, err := a.settingsRepo.GetWorkSettings(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load work settings: %w", err)
	}

	today := clock.CivilDay(a.clk.Now(), a.loc)
	open, err := a.attendanceRepo.ListOpenSessionsBefore(ctx, today)
	if err != nil {
		return 0, fmt.Errorf("failed to list open sessions: %w", err)
	}

	closed := 0
	for _, rec := range open {
		emp, err := a.userRepo.GetByID(ctx, rec.EmployeeID)
		if err != nil {
			slog.Error("auto-close: failed to load employee", "employee_id", rec.EmployeeID, "error", err)
			continue
		}
		shift, err := ResolveShift(emp, ws)
		if err != nil {
			slog.Error("auto-close: failed to resolve shift", "employee_id", rec.EmployeeID, "error", err)
			continue
		}

		day := clock.CivilDay(rec.Date, a.loc)
		closeAt := day.Add(time.Duration(shift.EndMinutes) * time.Minute)
		checkInMinutes := clock.MinutesOfDay(*rec.CheckIn, a.loc)
		regular, overtime := SplitHours(checkInMinutes, shift.EndMinutes, shift, emp.IsOvertimeEnabled)

		if err := a.attendanceRepo.SetCheckOut(ctx, rec.ID, closeAt, regular, overtime); err != nil {
			slog.Error("auto-close: failed to close session", "attendance_id", rec.ID, "error", err)
			continue
		}
		closed++
	}
	return closed, nil
}

func departmentOf(emp user.User) string {
	if emp.DepartmentName != nil {
		return *emp.DepartmentName
	}
	return ""
}
