package postgresql

import (
	"context"
	"time"

	"github.com/aiwa-ops/hrops-backend-go/internal/domain/report"
	"github.com/aiwa-ops/hrops-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
	// tz is the IANA timezone attendance timestamps are rendered in.
	tz string
}

func NewReportRepository(db *database.DB, tz string) report.Repository {
	return &reportRepositoryImpl{db: db, tz: tz}
}

// TopEmployees implements report.Repository.
func (r *reportRepositoryImpl) TopEmployees(ctx context.Context, from, to time.Time, limit int) ([]report.LeaderboardEntry, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT u.id, u.full_name, COALESCE(u.avatar_url, ''), COALESCE(d.name, ''),
			   ROUND(AVG(e.score))::int,
			   COALESCE(SUM(e.orders_prepared + e.calls_count), 0)::int
		FROM evaluations e
		JOIN users u ON u.id = e.employee_id
		LEFT JOIN departments d ON d.id = u.department_id
		WHERE e.date >= $1 AND e.date < $2
		GROUP BY u.id, d.name
		ORDER BY AVG(e.score) DESC, u.full_name
		LIMIT $3
	`, from, to, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []report.LeaderboardEntry
	for rows.Next() {
		var e report.LeaderboardEntry
		if err := rows.Scan(&e.EmployeeID, &e.Name, &e.AvatarURL, &e.Department, &e.Score, &e.Production); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// OvertimeTotals implements report.Repository.
func (r *reportRepositoryImpl) OvertimeTotals(ctx context.Context, from, to time.Time) ([]report.OvertimeEntry, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT u.id, u.full_name, COALESCE(d.name, ''),
			   ROUND(SUM(a.overtime_hours)::numeric, 2)::float8,
			   COUNT(*)::int
		FROM attendance_records a
		JOIN users u ON u.id = a.employee_id
		LEFT JOIN departments d ON d.id = u.department_id
		WHERE a.date >= $1 AND a.date < $2 AND a.check_out IS NOT NULL
		GROUP BY u.id, d.name
		HAVING SUM(a.overtime_hours) > 0
		ORDER BY SUM(a.overtime_hours) DESC
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []report.OvertimeEntry
	for rows.Next() {
		var e report.OvertimeEntry
		if err := rows.Scan(&e.EmployeeID, &e.Name, &e.Department, &e.OvertimeHours, &e.DaysWorked); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// AttendanceSheet implements report.Repository.
func (r *reportRepositoryImpl) AttendanceSheet(ctx context.Context, from, to time.Time) ([]report.AttendanceSheetRow, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT to_char(a.date, 'YYYY-MM-DD'), u.full_name, COALESCE(d.name, ''),
			   COALESCE(to_char(a.check_in AT TIME ZONE $3, 'HH24:MI'), ''),
			   COALESCE(to_char(a.check_out AT TIME ZONE $3, 'HH24:MI'), ''),
			   a.delay_minutes, a.work_hours, a.overtime_hours, a.rating
		FROM attendance_records a
		JOIN users u ON u.id = a.employee_id
		LEFT JOIN departments d ON d.id = u.department_id
		WHERE a.date >= $1 AND a.date < $2
		ORDER BY a.date, u.full_name
	`, from, to, r.tz)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sheet []report.AttendanceSheetRow
	for rows.Next() {
		var row report.AttendanceSheetRow
		err := rows.Scan(
			&row.Date, &row.EmployeeName, &row.Department, &row.CheckIn,
			&row.CheckOut, &row.DelayMinutes, &row.WorkHours, &row.OvertimeHours,
			&row.Rating,
		)
		if err != nil {
			return nil, err
		}
		sheet = append(sheet, row)
	}
	return sheet, rows.Err()
}
