package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aiwa-ops/hrops-backend-go/internal/domain/report"
	"github.com/jung-kurt/gofpdf"
)

const defaultLeaderboardLimit = 5

type ReportServiceImpl struct {
	reportRepo report.Repository
	loc        *time.Location
}

func NewReportService(reportRepo report.Repository, loc *time.Location) report.Service {
	return &ReportServiceImpl{reportRepo: reportRepo, loc: loc}
}

// monthBounds returns the first instant of the month containing t and the
// first instant of the next month, both in the attendance timezone.
func (s *ReportServiceImpl) monthBounds(t time.Time) (time.Time, time.Time) {
	local := t.In(s.loc)
	from := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, s.loc)
	return from, from.AddDate(0, 1, 0)
}

// Leaderboard implements report.Service.
func (s *ReportServiceImpl) Leaderboard(ctx context.Context, month time.Time, limit int) ([]report.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	from, to := s.monthBounds(month)
	entries, err := s.reportRepo.TopEmployees(ctx, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to build leaderboard: %w", err)
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

// OvertimeReport implements report.Service.
func (s *ReportServiceImpl) OvertimeReport(ctx context.Context, month time.Time) ([]report.OvertimeEntry, error) {
	from, to := s.monthBounds(month)
	entries, err := s.reportRepo.OvertimeTotals(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to build overtime report: %w", err)
	}
	return entries, nil
}

// AttendanceSheet implements report.Service.
func (s *ReportServiceImpl) AttendanceSheet(ctx context.Context, month time.Time) ([]report.AttendanceSheetRow, error) {
	from, to := s.monthBounds(month)
	rows, err := s.reportRepo.AttendanceSheet(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to build attendance sheet: %w", err)
	}
	return rows, nil
}

// AttendanceSheetPDF implements report.Service.
func (s *ReportServiceImpl) AttendanceSheetPDF(ctx context.Context, month time.Time) ([]byte, error) {
	rows, err := s.AttendanceSheet(ctx, month)
	if err != nil {
		return nil, err
	}

	from, _ := s.monthBounds(month)

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Attendance Sheet - %s", from.Format("January 2006")))
	pdf.Ln(14)

	headers := []string{"Date", "Employee", "Department", "Check In", "Check Out", "Delay (min)", "Hours", "Overtime", "Rating"}
	widths := []float64{24, 48, 38, 26, 26, 26, 22, 24, 26}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range rows {
		cells := []string{
			row.Date,
			row.EmployeeName,
			row.Department,
			row.CheckIn,
			row.CheckOut,
			fmt.Sprintf("%d", row.DelayMinutes),
			fmt.Sprintf("%.2f", row.WorkHours),
			fmt.Sprintf("%.2f", row.OvertimeHours),
			row.Rating,
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 7, c, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
