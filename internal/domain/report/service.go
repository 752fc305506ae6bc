package report

import (
	"context"
	"time"
)

// Service defines business logic for manager reports.
type Service interface {
	// Leaderboard ranks employees by average evaluation score for the month
	// containing the given date.
	Leaderboard(ctx context.Context, month time.Time, limit int) ([]LeaderboardEntry, error)

	// OvertimeReport totals overtime hours per employee for the month.
	OvertimeReport(ctx context.Context, month time.Time) ([]OvertimeEntry, error)

	// AttendanceSheet returns the month's attendance lines.
	AttendanceSheet(ctx context.Context, month time.Time) ([]AttendanceSheetRow, error)

	// AttendanceSheetPDF renders the month's attendance sheet as a PDF
	// document ready to stream to the client.
	AttendanceSheetPDF(ctx context.Context, month time.Time) ([]byte, error)
}
