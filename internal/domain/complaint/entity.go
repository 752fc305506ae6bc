package complaint

import "time"

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusResolved   Status = "RESOLVED"
	StatusRejected   Status = "REJECTED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved, StatusRejected:
		return true
	}
	return false
}

// Complaint is a customer-submitted issue routed to an employee.
type Complaint struct {
	ID             string
	SubmissionType string
	ServiceType    string
	OrderNumber    *string
	ClientType     string
	ClientName     string
	Phone          string
	Email          string
	Content        string
	Status         Status
	AdminNote      *string
	AssignedToID   *string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	AssigneeName *string
	Attachments  []Attachment
}

type Attachment struct {
	ID          string
	ComplaintID string
	FileName    string
	FileType    string
	FilePath    string
	CreatedAt   time.Time
}
