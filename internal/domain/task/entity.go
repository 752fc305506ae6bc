package task

import "time"

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone:
		return true
	}
	return false
}

type Task struct {
	ID           string
	Title        string
	Description  *string
	AssignedToID string
	Status       Status
	DueDate      *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	AssigneeName *string
}
