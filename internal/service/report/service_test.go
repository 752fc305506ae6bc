package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/aiwa-ops/hrops-backend-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReportRepo struct {
	from, to time.Time
	entries  []report.LeaderboardEntry
	rows     []report.AttendanceSheetRow
}

func (s *stubReportRepo) TopEmployees(ctx context.Context, from, to time.Time, limit int) ([]report.LeaderboardEntry, error) {
	s.from, s.to = from, to
	if limit < len(s.entries) {
		return s.entries[:limit], nil
	}
	return s.entries, nil
}

func (s *stubReportRepo) OvertimeTotals(ctx context.Context, from, to time.Time) ([]report.OvertimeEntry, error) {
	s.from, s.to = from, to
	return nil, nil
}

func (s *stubReportRepo) AttendanceSheet(ctx context.Context, from, to time.Time) ([]report.AttendanceSheetRow, error) {
	s.from, s.to = from, to
	return s.rows, nil
}

func TestLeaderboard_RanksAndMonthBounds(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Riyadh")
	require.NoError(t, err)

	repo := &stubReportRepo{entries: []report.LeaderboardEntry{
		{EmployeeID: "a", Name: "Aya", Score: 95},
		{EmployeeID: "b", Name: "Badr", Score: 88},
		{EmployeeID: "c", Name: "Celine", Score: 71},
	}}
	svc := NewReportService(repo, loc)

	entries, err := svc.Leaderboard(context.Background(), time.Date(2025, 3, 14, 11, 0, 0, 0, loc), 0)
	require.NoError(t, err)

	require.Len(t, entries, 3)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, 2, entries[1].Rank)
	assert.Equal(t, 3, entries[2].Rank)

	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, loc), repo.from)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, loc), repo.to)
}

func TestAttendanceSheetPDF(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Riyadh")
	require.NoError(t, err)

	repo := &stubReportRepo{rows: []report.AttendanceSheetRow{
		{Date: "2025-03-10", EmployeeName: "Aya", Department: "Kitchen", CheckIn: "09:00", CheckOut: "17:00", WorkHours: 8, Rating: "ON_TIME"},
	}}
	svc := NewReportService(repo, loc)

	data, err := svc.AttendanceSheetPDF(context.Background(), time.Date(2025, 3, 1, 0, 0, 0, 0, loc))
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output should be a PDF document")
}
