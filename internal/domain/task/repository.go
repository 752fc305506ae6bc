package task

import "context"

type Repository interface {
	Create(ctx context.Context, t Task) (Task, error)
	GetByID(ctx context.Context, id string) (Task, error)
	List(ctx context.Context) ([]Task, error)
	ListByAssignee(ctx context.Context, employeeID string) ([]Task, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	Delete(ctx context.Context, id string) error
	CountPending(ctx context.Context, employeeID string) (int, error)
}
