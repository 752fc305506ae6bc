package complaint

import "context"

type Repository interface {
	Create(ctx context.Context, c Complaint) (Complaint, error)
	GetByID(ctx context.Context, id string) (Complaint, error)
	List(ctx context.Context) ([]Complaint, error)
	ListByAssignee(ctx context.Context, employeeID string) ([]Complaint, error)
	UpdateStatus(ctx context.Context, id string, status Status, adminNote *string) error
	Assign(ctx context.Context, id string, employeeID string) error
	AddAttachment(ctx context.Context, a Attachment) (Attachment, error)
	ListAttachments(ctx context.Context, complaintID string) ([]Attachment, error)
}
