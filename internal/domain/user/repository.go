package user

import "context"

type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context, departmentID *string) ([]User, error)
	Update(ctx context.Context, u User) error
	SetOvertimeEnabled(ctx context.Context, id string, enabled bool) error
	Delete(ctx context.Context, id string) error
}
