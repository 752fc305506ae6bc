package postgresql

import (
	"context"
	"errors"

	"github.com/aiwa-ops/hrops-backend-go/internal/domain/department"
	"github.com/aiwa-ops/hrops-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.Repository {
	return &departmentRepositoryImpl{db: db}
}

// Create implements department.Repository.
func (r *departmentRepositoryImpl) Create(ctx context.Context, d department.Department) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		INSERT INTO departments (id, name, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, d.ID, d.Name, d.Description).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return department.Department{}, department.ErrNameExists
		}
		return department.Department{}, err
	}
	return d, nil
}

// GetByID implements department.Repository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id string) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	var d department.Department
	err := q.QueryRow(ctx, `
		SELECT d.id, d.name, d.description, d.created_at, d.updated_at,
			   COUNT(u.id)
		FROM departments d
		LEFT JOIN users u ON u.department_id = d.id AND u.is_active
		WHERE d.id = $1
		GROUP BY d.id
	`, id).Scan(&d.ID, &d.Name, &d.Description, &d.CreatedAt, &d.UpdatedAt, &d.EmployeeCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, err
	}
	return d, nil
}

// List implements department.Repository.
func (r *departmentRepositoryImpl) List(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT d.id, d.name, d.description, d.created_at, d.updated_at,
			   COUNT(u.id)
		FROM departments d
		LEFT JOIN users u ON u.department_id = d.id AND u.is_active
		GROUP BY d.id
		ORDER BY d.name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var d department.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Description, &d.CreatedAt, &d.UpdatedAt, &d.EmployeeCount); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

// Update implements department.Repository.
func (r *departmentRepositoryImpl) Update(ctx context.Context, d department.Department) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE departments
		SET name = $1, description = $2, updated_at = NOW()
		WHERE id = $3
	`, d.Name, d.Description, d.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return department.ErrNameExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}
	return nil
}

// Delete implements department.Repository.
func (r *departmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return department.ErrDepartmentNotFound
	}
	return nil
}
