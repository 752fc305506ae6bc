package complaint

import "context"

// Service defines business logic for customer complaints.
type Service interface {
	// Submit stores a public complaint together with its uploaded
	// attachments. No authentication is required to call it.
	Submit(ctx context.Context, req SubmitComplaintRequest) (ComplaintResponse, error)

	Get(ctx context.Context, id string) (ComplaintResponse, error)
	List(ctx context.Context) ([]ComplaintResponse, error)
	ListMine(ctx context.Context, employeeID string) ([]ComplaintResponse, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) error
	Assign(ctx context.Context, req AssignRequest) error
}
