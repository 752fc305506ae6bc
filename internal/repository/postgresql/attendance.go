package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aiwa-ops/hrops-backend-go/internal/domain/attendance"
	"github.com/aiwa-ops/hrops-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.check_in, a.check_out, a.delay_minutes,
	a.work_hours, a.overtime_hours, a.score, a.rating, a.created_at, a.updated_at
`

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID,
		&rec.EmployeeID,
		&rec.Date,
		&rec.CheckIn,
		&rec.CheckOut,
		&rec.DelayMinutes,
		&rec.WorkHours,
		&rec.OvertimeHours,
		&rec.Score,
		&rec.Rating,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	return rec, err
}

// GetByEmployeeAndDate implements attendance.Repository.
func (r *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		WHERE a.employee_id = $1 AND a.date = $2
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

// UpsertCheckIn implements attendance.Repository. The unique index on
// (employee_id, date) plus the check_in IS NULL guard make concurrent
// double-toggles converge on the first write: the loser of the race gets the
// winner's row back untouched.
func (r *attendanceRepositoryImpl) UpsertCheckIn(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	upsertQuery := `
		INSERT INTO attendance_records (
			id, employee_id, date, check_in, delay_minutes, score, rating
		)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6)
		ON CONFLICT (employee_id, date) DO UPDATE
		SET check_in = EXCLUDED.check_in,
			delay_minutes = EXCLUDED.delay_minutes,
			score = EXCLUDED.score,
			rating = EXCLUDED.rating,
			updated_at = NOW()
		WHERE attendance_records.check_in IS NULL
		RETURNING
			attendance_records.id, attendance_records.employee_id,
			attendance_records.date, attendance_records.check_in,
			attendance_records.check_out, attendance_records.delay_minutes,
			attendance_records.work_hours, attendance_records.overtime_hours,
			attendance_records.score, attendance_records.rating,
			attendance_records.created_at, attendance_records.updated_at
	`

	stored, err := scanRecord(q.QueryRow(ctx, upsertQuery,
		rec.EmployeeID, rec.Date, rec.CheckIn, rec.DelayMinutes, rec.Score, rec.Rating,
	))
	if err == nil {
		return stored, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return attendance.Record{}, err
	}

	// The guard skipped the update: another call already checked in. Return
	// the row it wrote.
	existing, err := r.GetByEmployeeAndDate(ctx, rec.EmployeeID, rec.Date)
	if err != nil {
		return attendance.Record{}, err
	}
	if existing == nil {
		return attendance.Record{}, fmt.Errorf("attendance upsert lost its row for employee %s", rec.EmployeeID)
	}
	return *existing, nil
}

// SetCheckOut implements attendance.Repository.
func (r *attendanceRepositoryImpl) SetCheckOut(ctx context.Context, id string, checkOut time.Time, workHours, overtimeHours float64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE attendance_records
		SET check_out = $1, work_hours = $2, overtime_hours = $3, updated_at = NOW()
		WHERE id = $4 AND check_out IS NULL
	`, checkOut, workHours, overtimeHours, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}
	return nil
}

// ListOpenSessionsBefore implements attendance.Repository.
func (r *attendanceRepositoryImpl) ListOpenSessionsBefore(ctx context.Context, day time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		WHERE a.check_in IS NOT NULL AND a.check_out IS NULL AND a.date < $1
		ORDER BY a.date, a.employee_id
	`

	rows, err := q.Query(ctx, query, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRecords(rows)
}

// ListByEmployee implements attendance.Repository.
func (r *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records a
		WHERE a.employee_id = $1 AND a.date BETWEEN $2 AND $3
		ORDER BY a.date DESC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRecords(rows)
}

// ListByDate implements attendance.Repository.
func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `, u.full_name, d.name
		FROM attendance_records a
		JOIN users u ON u.id = a.employee_id
		LEFT JOIN departments d ON d.id = u.department_id
		WHERE a.date = $1
		ORDER BY u.full_name
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.CheckIn, &rec.CheckOut,
			&rec.DelayMinutes, &rec.WorkHours, &rec.OvertimeHours, &rec.Score,
			&rec.Rating, &rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName, &rec.DepartmentName,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func collectRecords(rows pgx.Rows) ([]attendance.Record, error) {
	var records []attendance.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
