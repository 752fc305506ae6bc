package task

import "context"

// Service defines business logic for task assignment.
type Service interface {
	Create(ctx context.Context, req CreateTaskRequest) (TaskResponse, error)
	Get(ctx context.Context, id string) (TaskResponse, error)
	List(ctx context.Context) ([]TaskResponse, error)
	ListMine(ctx context.Context, employeeID string) (MyTasksResponse, error)
	UpdateStatus(ctx context.Context, req UpdateTaskStatusRequest) error
	Delete(ctx context.Context, id string) error
}
