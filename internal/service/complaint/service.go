package complaint

import (
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"
	"path/filepath"

	"github.com/aiwa-ops/hrops-backend-go/internal/domain/complaint"
	"github.com/aiwa-ops/hrops-backend-go/internal/domain/user"
	"github.com/aiwa-ops/hrops-backend-go/internal/pkg/database"
	"github.com/aiwa-ops/hrops-backend-go/internal/pkg/storage"
	"github.com/aiwa-ops/hrops-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
)

type ComplaintServiceImpl struct {
	db            *database.DB
	complaintRepo complaint.Repository
	userRepo      user.Repository
	files         storage.FileStorage
}

func NewComplaintService(db *database.DB, complaintRepo complaint.Repository, userRepo user.Repository, files storage.FileStorage) complaint.Service {
	return &ComplaintServiceImpl{
		db:            db,
		complaintRepo: complaintRepo,
		userRepo:      userRepo,
		files:         files,
	}
}

// Submit implements complaint.Service. Files go to storage first; the
// complaint row and its attachment rows are then written in one transaction,
// so a half-recorded complaint never becomes visible.
func (s *ComplaintServiceImpl) Submit(ctx context.Context, req complaint.SubmitComplaintRequest) (complaint.ComplaintResponse, error) {
	if err := req.Validate(); err != nil {
		return complaint.ComplaintResponse{}, err
	}

	c := complaint.Complaint{
		ID:             uuid.New().String(),
		SubmissionType: req.SubmissionType,
		ServiceType:    req.ServiceType,
		ClientType:     req.ClientType,
		ClientName:     req.ClientName,
		Phone:          req.Phone,
		Email:          req.Email,
		Content:        req.Content,
		Status:         complaint.StatusPending,
	}
	if req.OrderNumber != "" {
		c.OrderNumber = &req.OrderNumber
	}

	attachments, storedKeys, err := s.uploadFiles(ctx, c.ID, req.Files)
	if err != nil {
		return complaint.ComplaintResponse{}, err
	}

	var created complaint.Complaint
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var txErr error
		created, txErr = s.complaintRepo.Create(txCtx, c)
		if txErr != nil {
			return fmt.Errorf("failed to create complaint: %w", txErr)
		}
		for _, a := range attachments {
			saved, txErr := s.complaintRepo.AddAttachment(txCtx, a)
			if txErr != nil {
				return fmt.Errorf("failed to record attachment: %w", txErr)
			}
			created.Attachments = append(created.Attachments, saved)
		}
		return nil
	})
	if err != nil {
		s.cleanupFiles(ctx, storedKeys)
		return complaint.ComplaintResponse{}, err
	}

	return created.ToResponse(), nil
}

func (s *ComplaintServiceImpl) uploadFiles(ctx context.Context, complaintID string, files []*multipart.FileHeader) ([]complaint.Attachment, []string, error) {
	var attachments []complaint.Attachment
	var storedKeys []string

	for _, fh := range files {
		src, err := fh.Open()
		if err != nil {
			s.cleanupFiles(ctx, storedKeys)
			return nil, nil, fmt.Errorf("failed to open upload %s: %w", fh.Filename, err)
		}

		key := fmt.Sprintf("complaints/%s/%s%s", complaintID, uuid.New().String(), filepath.Ext(fh.Filename))
		stored, err := s.files.Upload(ctx, src, key)
		src.Close()
		if err != nil {
			s.cleanupFiles(ctx, storedKeys)
			return nil, nil, fmt.Errorf("failed to upload attachment %s: %w", fh.Filename, err)
		}
		storedKeys = append(storedKeys, stored)

		attachments = append(attachments, complaint.Attachment{
			ID:          uuid.New().String(),
			ComplaintID: complaintID,
			FileName:    fh.Filename,
			FileType:    fh.Header.Get("Content-Type"),
			FilePath:    s.files.URL(stored),
		})
	}
	return attachments, storedKeys, nil
}

func (s *ComplaintServiceImpl) cleanupFiles(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := s.files.Delete(ctx, key); err != nil {
			slog.Error("failed to clean up attachment", "key", key, "error", err)
		}
	}
}

// Get implements complaint.Service.
func (s *ComplaintServiceImpl) Get(ctx context.Context, id string) (complaint.ComplaintResponse, error) {
	c, err := s.complaintRepo.GetByID(ctx, id)
	if err != nil {
		return complaint.ComplaintResponse{}, err
	}
	attachments, err := s.complaintRepo.ListAttachments(ctx, id)
	if err != nil {
		return complaint.ComplaintResponse{}, fmt.Errorf("failed to list attachments: %w", err)
	}
	c.Attachments = attachments
	return c.ToResponse(), nil
}

// List implements complaint.Service.
func (s *ComplaintServiceImpl) List(ctx context.Context) ([]complaint.ComplaintResponse, error) {
	complaints, err := s.complaintRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	return toResponses(complaints), nil
}

// ListMine implements complaint.Service.
func (s *ComplaintServiceImpl) ListMine(ctx context.Context, employeeID string) ([]complaint.ComplaintResponse, error) {
	complaints, err := s.complaintRepo.ListByAssignee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	return toResponses(complaints), nil
}

// UpdateStatus implements complaint.Service.
func (s *ComplaintServiceImpl) UpdateStatus(ctx context.Context, req complaint.UpdateStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if _, err := s.complaintRepo.GetByID(ctx, req.ID); err != nil {
		return err
	}
	return s.complaintRepo.UpdateStatus(ctx, req.ID, req.Status, req.AdminNote)
}

// Assign implements complaint.Service.
func (s *ComplaintServiceImpl) Assign(ctx context.Context, req complaint.AssignRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if _, err := s.complaintRepo.GetByID(ctx, req.ID); err != nil {
		return err
	}
	if _, err := s.userRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return err
	}
	return s.complaintRepo.Assign(ctx, req.ID, req.EmployeeID)
}

func toResponses(complaints []complaint.Complaint) []complaint.ComplaintResponse {
	responses := make([]complaint.ComplaintResponse, 0, len(complaints))
	for _, c := range complaints {
		responses = append(responses, c.ToResponse())
	}
	return responses
}
