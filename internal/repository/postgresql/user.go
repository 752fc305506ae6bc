package postgresql

import (
	"context"
	"errors"

	"github.com/aiwa-ops/hrops-backend-go/internal/domain/user"
	"github.com/aiwa-ops/hrops-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.Repository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `
	u.id, u.full_name, u.email, u.password_hash, u.role, u.department_id,
	u.avatar_url, u.is_active, u.custom_start_time, u.custom_end_time,
	u.is_overtime_enabled, u.created_at, u.updated_at, d.name
`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.FullName,
		&u.Email,
		&u.PasswordHash,
		&u.Role,
		&u.DepartmentID,
		&u.AvatarURL,
		&u.IsActive,
		&u.CustomStartTime,
		&u.CustomEndTime,
		&u.IsOvertimeEnabled,
		&u.CreatedAt,
		&u.UpdatedAt,
		&u.DepartmentName,
	)
	return u, err
}

// Create implements user.Repository.
func (r *userRepositoryImpl) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO users (
			id, full_name, email, password_hash, role, department_id, avatar_url,
			is_active, custom_start_time, custom_end_time, is_overtime_enabled
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, insertQuery,
		u.ID, u.FullName, u.Email, u.PasswordHash, u.Role, u.DepartmentID,
		u.AvatarURL, u.IsActive, u.CustomStartTime, u.CustomEndTime, u.IsOvertimeEnabled,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, err
	}
	return u, nil
}

// GetByID implements user.Repository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users u
		LEFT JOIN departments d ON d.id = u.department_id
		WHERE u.id = $1
	`

	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

// GetByEmail implements user.Repository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users u
		LEFT JOIN departments d ON d.id = u.department_id
		WHERE LOWER(u.email) = LOWER($1)
	`

	u, err := scanUser(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

// List implements user.Repository.
func (r *userRepositoryImpl) List(ctx context.Context, departmentID *string) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userColumns + `
		FROM users u
		LEFT JOIN departments d ON d.id = u.department_id
		WHERE ($1::uuid IS NULL OR u.department_id = $1)
		ORDER BY u.full_name
	`

	rows, err := q.Query(ctx, query, departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Update implements user.Repository.
func (r *userRepositoryImpl) Update(ctx context.Context, u user.User) error {
	q := GetQuerier(ctx, r.db)

	updateQuery := `
		UPDATE users
		SET full_name = $1, email = $2, password_hash = $3, role = $4,
			department_id = $5, is_active = $6, custom_start_time = $7,
			custom_end_time = $8, updated_at = NOW()
		WHERE id = $9
	`

	tag, err := q.Exec(ctx, updateQuery,
		u.FullName, u.Email, u.PasswordHash, u.Role, u.DepartmentID,
		u.IsActive, u.CustomStartTime, u.CustomEndTime, u.ID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.ErrEmailExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// SetOvertimeEnabled implements user.Repository.
func (r *userRepositoryImpl) SetOvertimeEnabled(ctx context.Context, id string, enabled bool) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE users SET is_overtime_enabled = $1, updated_at = NOW() WHERE id = $2
	`, enabled, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

// Delete implements user.Repository.
func (r *userRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}
	return nil
}
