package user

import "context"

// Service defines business logic for employee accounts.
type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	Get(ctx context.Context, id string) (UserResponse, error)
	List(ctx context.Context, departmentID *string) ([]UserResponse, error)
	Update(ctx context.Context, req UpdateUserRequest) error

	// SetOvertimeEnabled flips the per-employee overtime flag. Takes effect
	// on the next check-out.
	SetOvertimeEnabled(ctx context.Context, id string, enabled bool) error

	// Delete removes the account and its dependent rows.
	Delete(ctx context.Context, id string) error
}
