package report

import (
	"context"
	"time"
)

// Repository runs the aggregate queries behind manager reports.
type Repository interface {
	// TopEmployees returns up to limit employees ranked by average
	// evaluation score within [from, to].
	TopEmployees(ctx context.Context, from, to time.Time, limit int) ([]LeaderboardEntry, error)

	// OvertimeTotals sums overtime hours per employee within [from, to],
	// omitting employees with no overtime.
	OvertimeTotals(ctx context.Context, from, to time.Time) ([]OvertimeEntry, error)

	// AttendanceSheet returns every attendance line within [from, to]
	// ordered by date then employee name.
	AttendanceSheet(ctx context.Context, from, to time.Time) ([]AttendanceSheetRow, error)
}
