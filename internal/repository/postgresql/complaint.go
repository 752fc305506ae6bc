package postgresql

import (
	"context"
	"errors"

	"github.com/aiwa-ops/hrops-backend-go/internal/domain/complaint"
	"github.com/aiwa-ops/hrops-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type complaintRepositoryImpl struct {
	db *database.DB
}

func NewComplaintRepository(db *database.DB) complaint.Repository {
	return &complaintRepositoryImpl{db: db}
}

const complaintColumns = `
	c.id, c.submission_type, c.service_type, c.order_number, c.client_type,
	c.client_name, c.phone, c.email, c.content, c.status, c.admin_note,
	c.assigned_to_id, c.created_at, c.updated_at, u.full_name
`

func scanComplaint(row pgx.Row) (complaint.Complaint, error) {
	var c complaint.Complaint
	err := row.Scan(
		&c.ID,
		&c.SubmissionType,
		&c.ServiceType,
		&c.OrderNumber,
		&c.ClientType,
		&c.ClientName,
		&c.Phone,
		&c.Email,
		&c.Content,
		&c.Status,
		&c.AdminNote,
		&c.AssignedToID,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.AssigneeName,
	)
	return c, err
}

// Create implements complaint.Repository.
func (r *complaintRepositoryImpl) Create(ctx context.Context, c complaint.Complaint) (complaint.Complaint, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		INSERT INTO complaints (
			id, submission_type, service_type, order_number, client_type,
			client_name, phone, email, content, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`, c.ID, c.SubmissionType, c.ServiceType, c.OrderNumber, c.ClientType,
		c.ClientName, c.Phone, c.Email, c.Content, c.Status).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return complaint.Complaint{}, err
	}
	return c, nil
}

// GetByID implements complaint.Repository.
func (r *complaintRepositoryImpl) GetByID(ctx context.Context, id string) (complaint.Complaint, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + complaintColumns + `
		FROM complaints c
		LEFT JOIN users u ON u.id = c.assigned_to_id
		WHERE c.id = $1
	`

	c, err := scanComplaint(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return complaint.Complaint{}, complaint.ErrComplaintNotFound
		}
		return complaint.Complaint{}, err
	}
	return c, nil
}

// List implements complaint.Repository.
func (r *complaintRepositoryImpl) List(ctx context.Context) ([]complaint.Complaint, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + complaintColumns + `
		FROM complaints c
		LEFT JOIN users u ON u.id = c.assigned_to_id
		ORDER BY c.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectComplaints(rows)
}

// ListByAssignee implements complaint.Repository.
func (r *complaintRepositoryImpl) ListByAssignee(ctx context.Context, employeeID string) ([]complaint.Complaint, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + complaintColumns + `
		FROM complaints c
		LEFT JOIN users u ON u.id = c.assigned_to_id
		WHERE c.assigned_to_id = $1
		ORDER BY c.created_at DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectComplaints(rows)
}

// UpdateStatus implements complaint.Repository.
func (r *complaintRepositoryImpl) UpdateStatus(ctx context.Context, id string, status complaint.Status, adminNote *string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE complaints
		SET status = $1, admin_note = COALESCE($2, admin_note), updated_at = NOW()
		WHERE id = $3
	`, status, adminNote, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return complaint.ErrComplaintNotFound
	}
	return nil
}

// Assign implements complaint.Repository. Assignment moves a pending
// complaint to in-progress.
func (r *complaintRepositoryImpl) Assign(ctx context.Context, id string, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE complaints
		SET assigned_to_id = $1,
			status = CASE WHEN status = 'PENDING' THEN 'IN_PROGRESS' ELSE status END,
			updated_at = NOW()
		WHERE id = $2
	`, employeeID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return complaint.ErrComplaintNotFound
	}
	return nil
}

// AddAttachment implements complaint.Repository.
func (r *complaintRepositoryImpl) AddAttachment(ctx context.Context, a complaint.Attachment) (complaint.Attachment, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		INSERT INTO complaint_attachments (id, complaint_id, file_name, file_type, file_path)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, a.ID, a.ComplaintID, a.FileName, a.FileType, a.FilePath).
		Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return complaint.Attachment{}, err
	}
	return a, nil
}

// ListAttachments implements complaint.Repository.
func (r *complaintRepositoryImpl) ListAttachments(ctx context.Context, complaintID string) ([]complaint.Attachment, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, complaint_id, file_name, file_type, file_path, created_at
		FROM complaint_attachments
		WHERE complaint_id = $1
		ORDER BY created_at
	`, complaintID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var attachments []complaint.Attachment
	for rows.Next() {
		var a complaint.Attachment
		if err := rows.Scan(&a.ID, &a.ComplaintID, &a.FileName, &a.FileType, &a.FilePath, &a.CreatedAt); err != nil {
			return nil, err
		}
		attachments = append(attachments, a)
	}
	return attachments, rows.Err()
}

func collectComplaints(rows pgx.Rows) ([]complaint.Complaint, error) {
	var complaints []complaint.Complaint
	for rows.Next() {
		c, err := scanComplaint(rows)
		if err != nil {
			return nil, err
		}
		complaints = append(complaints, c)
	}
	return complaints, rows.Err()
}
