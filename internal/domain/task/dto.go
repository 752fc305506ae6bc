package task

import (
	"time"

	"github.com/aiwa-ops/hrops-backend-go/internal/pkg/validator"
)

type CreateTaskRequest struct {
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	AssignedToID string  `json:"assigned_to_id"`
	DueDate      *string `json:"due_date"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if validator.IsEmpty(r.AssignedToID) {
		errs = append(errs, validator.ValidationError{Field: "assigned_to_id", Message: "assigned_to_id is required"})
	}
	if r.DueDate != nil && *r.DueDate != "" {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "due_date", Message: "must be a YYYY-MM-DD date"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTaskStatusRequest struct {
	ID     string `json:"-"`
	Status Status `json:"status"`
}

func (r *UpdateTaskStatusRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be PENDING, IN_PROGRESS or DONE"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TaskResponse struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	AssignedToID string  `json:"assigned_to_id"`
	AssigneeName string  `json:"assignee_name,omitempty"`
	Status       Status  `json:"status"`
	DueDate      *string `json:"due_date"`
	CreatedAt    string  `json:"created_at"`
}

func (t Task) ToResponse() TaskResponse {
	resp := TaskResponse{
		ID:           t.ID,
		Title:        t.Title,
		Description:  t.Description,
		AssignedToID: t.AssignedToID,
		Status:       t.Status,
		CreatedAt:    t.CreatedAt.Format(time.RFC3339),
	}
	if t.DueDate != nil {
		s := t.DueDate.Format("2006-01-02")
		resp.DueDate = &s
	}
	if t.AssigneeName != nil {
		resp.AssigneeName = *t.AssigneeName
	}
	return resp
}

// MyTasksResponse is the employee's own task list plus the pending-count
// shown as the dashboard badge.
type MyTasksResponse struct {
	Tasks        []TaskResponse `json:"tasks"`
	PendingCount int            `json:"pending_count"`
}
