package task

import (
	"context"
	"testing"

	"github.com/aiwa-ops/hrops-backend-go/internal/domain/task"
	"github.com/aiwa-ops/hrops-backend-go/internal/domain/user"
	"github.com/aiwa-ops/hrops-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTaskRepo struct {
	tasks   map[string]task.Task
	created []task.Task
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{tasks: make(map[string]task.Task)}
}

func (r *stubTaskRepo) Create(ctx context.Context, t task.Task) (task.Task, error) {
	r.tasks[t.ID] = t
	r.created = append(r.created, t)
	return t, nil
}

func (r *stubTaskRepo) GetByID(ctx context.Context, id string) (task.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return task.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

func (r *stubTaskRepo) List(ctx context.Context) ([]task.Task, error) {
	var out []task.Task
	for _, t := range r.tasks {
		out = append(out, t)
	}
	return out, nil
}

func (r *stubTaskRepo) ListByAssignee(ctx context.Context, employeeID string) ([]task.Task, error) {
	var out []task.Task
	for _, t := range r.tasks {
		if t.AssignedToID == employeeID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *stubTaskRepo) UpdateStatus(ctx context.Context, id string, status task.Status) error {
	t, ok := r.tasks[id]
	if !ok {
		return task.ErrTaskNotFound
	}
	t.Status = status
	r.tasks[id] = t
	return nil
}

func (r *stubTaskRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.tasks[id]; !ok {
		return task.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *stubTaskRepo) CountPending(ctx context.Context, employeeID string) (int, error) {
	n := 0
	for _, t := range r.tasks {
		if t.AssignedToID == employeeID && t.Status != task.StatusDone {
			n++
		}
	}
	return n, nil
}

type stubUserRepo struct {
	users map[string]user.User
}

func (r *stubUserRepo) Create(ctx context.Context, u user.User) (user.User, error) { return u, nil }

func (r *stubUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}

func (r *stubUserRepo) List(ctx context.Context, departmentID *string) ([]user.User, error) {
	return nil, nil
}

func (r *stubUserRepo) Update(ctx context.Context, u user.User) error { return nil }

func (r *stubUserRepo) SetOvertimeEnabled(ctx context.Context, id string, enabled bool) error {
	return nil
}

func (r *stubUserRepo) Delete(ctx context.Context, id string) error { return nil }

func newTaskFixture() (task.Service, *stubTaskRepo) {
	taskRepo := newStubTaskRepo()
	userRepo := &stubUserRepo{users: map[string]user.User{
		"emp-1": {ID: "emp-1", FullName: "Aya", IsActive: true},
	}}
	return NewTaskService(taskRepo, userRepo), taskRepo
}

func TestCreateTask(t *testing.T) {
	svc, repo := newTaskFixture()

	due := "2025-04-01"
	resp, err := svc.Create(context.Background(), task.CreateTaskRequest{
		Title:        "Prep inventory count",
		AssignedToID: "emp-1",
		DueDate:      &due,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, task.StatusPending, resp.Status)
	require.Len(t, repo.created, 1)
	require.NotNil(t, repo.created[0].DueDate)
	assert.Equal(t, "2025-04-01", repo.created[0].DueDate.Format("2006-01-02"))
}

func TestCreateTask_UnknownAssignee(t *testing.T) {
	svc, repo := newTaskFixture()

	_, err := svc.Create(context.Background(), task.CreateTaskRequest{
		Title:        "Orphan task",
		AssignedToID: "ghost",
	})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
	assert.Empty(t, repo.created)
}

func TestCreateTask_ValidatesRequest(t *testing.T) {
	svc, _ := newTaskFixture()

	_, err := svc.Create(context.Background(), task.CreateTaskRequest{})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
}

func TestListMine_PendingCount(t *testing.T) {
	svc, repo := newTaskFixture()

	repo.tasks["t1"] = task.Task{ID: "t1", Title: "a", AssignedToID: "emp-1", Status: task.StatusPending}
	repo.tasks["t2"] = task.Task{ID: "t2", Title: "b", AssignedToID: "emp-1", Status: task.StatusInProgress}
	repo.tasks["t3"] = task.Task{ID: "t3", Title: "c", AssignedToID: "emp-1", Status: task.StatusDone}
	repo.tasks["t4"] = task.Task{ID: "t4", Title: "d", AssignedToID: "emp-2", Status: task.StatusPending}

	resp, err := svc.ListMine(context.Background(), "emp-1")
	require.NoError(t, err)

	assert.Len(t, resp.Tasks, 3)
	assert.Equal(t, 2, resp.PendingCount)
}

func TestUpdateStatus_UnknownTask(t *testing.T) {
	svc, _ := newTaskFixture()

	err := svc.UpdateStatus(context.Background(), task.UpdateTaskStatusRequest{ID: "missing", Status: task.StatusDone})
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
}
