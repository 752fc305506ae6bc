package department

import "context"

type Repository interface {
	Create(ctx context.Context, d Department) (Department, error)
	GetByID(ctx context.Context, id string) (Department, error)
	List(ctx context.Context) ([]Department, error)
	Update(ctx context.Context, d Department) error
	// Delete removes the department; employees and their dependent rows
	// cascade at the database level.
	Delete(ctx context.Context, id string) error
}
