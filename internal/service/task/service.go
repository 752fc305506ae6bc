package task

import (
	"context"
	"fmt"
	"time"

	"github.com/aiwa-ops/hrops-backend-go/internal/domain/task"
	"github.com/aiwa-ops/hrops-backend-go/internal/domain/user"
	"github.com/google/uuid"
)

type TaskServiceImpl struct {
	taskRepo task.Repository
	userRepo user.Repository
}

func NewTaskService(taskRepo task.Repository, userRepo user.Repository) task.Service {
	return &TaskServiceImpl{taskRepo: taskRepo, userRepo: userRepo}
}

// Create implements task.Service.
func (s *TaskServiceImpl) Create(ctx context.Context, req task.CreateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	// The assignee must exist before we store a reference to them.
	if _, err := s.userRepo.GetByID(ctx, req.AssignedToID); err != nil {
		return task.TaskResponse{}, err
	}

	t := task.Task{
		ID:           uuid.New().String(),
		Title:        req.Title,
		Description:  req.Description,
		AssignedToID: req.AssignedToID,
		Status:       task.StatusPending,
	}
	if req.DueDate != nil && *req.DueDate != "" {
		due, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return task.TaskResponse{}, fmt.Errorf("failed to parse due date: %w", err)
		}
		t.DueDate = &due
	}

	created, err := s.taskRepo.Create(ctx, t)
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to create task: %w", err)
	}
	return created.ToResponse(), nil
}

// Get implements task.Service.
func (s *TaskServiceImpl) Get(ctx context.Context, id string) (task.TaskResponse, error) {
	t, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return task.TaskResponse{}, err
	}
	return t.ToResponse(), nil
}

// List implements task.Service.
func (s *TaskServiceImpl) List(ctx context.Context) ([]task.TaskResponse, error) {
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return toResponses(tasks), nil
}

// ListMine implements task.Service.
func (s *TaskServiceImpl) ListMine(ctx context.Context, employeeID string) (task.MyTasksResponse, error) {
	tasks, err := s.taskRepo.ListByAssignee(ctx, employeeID)
	if err != nil {
		return task.MyTasksResponse{}, fmt.Errorf("failed to list tasks: %w", err)
	}
	pending, err := s.taskRepo.CountPending(ctx, employeeID)
	if err != nil {
		return task.MyTasksResponse{}, fmt.Errorf("failed to count pending tasks: %w", err)
	}
	return task.MyTasksResponse{Tasks: toResponses(tasks), PendingCount: pending}, nil
}

// UpdateStatus implements task.Service.
func (s *TaskServiceImpl) UpdateStatus(ctx context.Context, req task.UpdateTaskStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if _, err := s.taskRepo.GetByID(ctx, req.ID); err != nil {
		return err
	}
	return s.taskRepo.UpdateStatus(ctx, req.ID, req.Status)
}

// Delete implements task.Service.
func (s *TaskServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.taskRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.taskRepo.Delete(ctx, id)
}

func toResponses(tasks []task.Task) []task.TaskResponse {
	responses := make([]task.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, t.ToResponse())
	}
	return responses
}
