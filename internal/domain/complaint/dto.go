package complaint

import (
	"mime/multipart"
	"time"

	"github.com/aiwa-ops/hrops-backend-go/internal/pkg/validator"
)

type SubmitComplaintRequest struct {
	SubmissionType string `json:"submission_type"`
	ServiceType    string `json:"service_type"`
	OrderNumber    string `json:"order_number"`
	ClientType     string `json:"client_type"`
	ClientName     string `json:"client_name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Content        string `json:"content"`

	Files []*multipart.FileHeader `json:"-"`
}

func (r *SubmitComplaintRequest) Validate() error {
	var errs validator.ValidationErrors

	required := map[string]string{
		"submission_type": r.SubmissionType,
		"service_type":    r.ServiceType,
		"client_type":     r.ClientType,
		"client_name":     r.ClientName,
	}
	for field, value := range required {
		if validator.IsEmpty(value) {
			errs = append(errs, validator.ValidationError{Field: field, Message: field + " is required"})
		}
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}
	if !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "a valid phone number is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	ID        string  `json:"-"`
	Status    Status  `json:"status"`
	AdminNote *string `json:"admin_note"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be PENDING, IN_PROGRESS, RESOLVED or REJECTED"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignRequest struct {
	ID         string `json:"-"`
	EmployeeID string `json:"employee_id"`
}

func (r *AssignRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttachmentResponse struct {
	ID       string `json:"id"`
	FileName string `json:"file_name"`
	FileType string `json:"file_type"`
	FileURL  string `json:"file_url"`
}

type ComplaintResponse struct {
	ID             string               `json:"id"`
	SubmissionType string               `json:"submission_type"`
	ServiceType    string               `json:"service_type"`
	OrderNumber    *string              `json:"order_number"`
	ClientType     string               `json:"client_type"`
	ClientName     string               `json:"client_name"`
	Phone          string               `json:"phone"`
	Email          string               `json:"email"`
	Content        string               `json:"content"`
	Status         Status               `json:"status"`
	AdminNote      *string              `json:"admin_note"`
	AssignedToID   *string              `json:"assigned_to_id"`
	AssigneeName   string               `json:"assignee_name,omitempty"`
	Attachments    []AttachmentResponse `json:"attachments,omitempty"`
	CreatedAt      string               `json:"created_at"`
}

func (c Complaint) ToResponse() ComplaintResponse {
	resp := ComplaintResponse{
		ID:             c.ID,
		SubmissionType: c.SubmissionType,
		ServiceType:    c.ServiceType,
		OrderNumber:    c.OrderNumber,
		ClientType:     c.ClientType,
		ClientName:     c.ClientName,
		Phone:          c.Phone,
		Email:          c.Email,
		Content:        c.Content,
		Status:         c.Status,
		AdminNote:      c.AdminNote,
		AssignedToID:   c.AssignedToID,
		CreatedAt:      c.CreatedAt.Format(time.RFC3339),
	}
	if c.AssigneeName != nil {
		resp.AssigneeName = *c.AssigneeName
	}
	for _, a := range c.Attachments {
		resp.Attachments = append(resp.Attachments, AttachmentResponse{
			ID:       a.ID,
			FileName: a.FileName,
			FileType: a.FileType,
			FileURL:  a.FilePath,
		})
	}
	return resp
}
