package cron

import (
	"context"
	"log/slog"

	"github.com/aiwa-ops/hrops-backend-go/internal/domain/attendance"
)

// AttendanceJobs wraps the attendance maintenance work run by the scheduler.
type AttendanceJobs struct {
	svc attendance.Service
}

func NewAttendanceJobs(svc attendance.Service) *AttendanceJobs {
	return &AttendanceJobs{svc: svc}
}

// CloseStaleSessions closes sessions from previous civil days whose owners
// never checked out. Hours are split by the same calculator as a normal
// check-out, with the shift end standing in for the missing check-out time.
func (j *AttendanceJobs) CloseStaleSessions(ctx context.Context) error {
	closed, err := j.svc.CloseOpenSessions(ctx)
	if err != nil {
		return err
	}
	if closed > 0 {
		slog.Info("auto-closed stale attendance sessions", "count", closed)
	}
	return nil
}
