package http

import (
	"encoding/json"
	"net/http"

	"github.com/aiwa-ops/hrops-backend-go/internal/domain/auth"
	"github.com/aiwa-ops/hrops-backend-go/internal/domain/complaint"
	"github.com/aiwa-ops/hrops-backend-go/internal/handler/http/middleware"
	"github.com/aiwa-ops/hrops-backend-go/internal/handler/http/response"
	"github.com/aiwa-ops/hrops-backend-go/internal/pkg/i18n"
	"github.com/go-chi/chi/v5"
)

// maxComplaintUploadBytes bounds a multipart complaint submission.
const maxComplaintUploadBytes = 20 << 20

type ComplaintHandler interface {
	SubmitComplaint(w http.ResponseWriter, r *http.Request)
	GetComplaint(w http.ResponseWriter, r *http.Request)
	ListComplaints(w http.ResponseWriter, r *http.Request)
	ListMyComplaints(w http.ResponseWriter, r *http.Request)
	UpdateComplaintStatus(w http.ResponseWriter, r *http.Request)
	AssignComplaint(w http.ResponseWriter, r *http.Request)
}

type complaintHandlerImpl struct {
	complaintService complaint.Service
}

func NewComplaintHandler(complaintService complaint.Service) ComplaintHandler {
	return &complaintHandlerImpl{complaintService: complaintService}
}

// SubmitComplaint implements ComplaintHandler. Accepts multipart form data so
// clients can attach files; the endpoint is public.
func (h *complaintHandlerImpl) SubmitComplaint(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxComplaintUploadBytes); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	req := complaint.SubmitComplaintRequest{
		SubmissionType: r.FormValue("submission_type"),
		ServiceType:    r.FormValue("service_type"),
		OrderNumber:    r.FormValue("order_number"),
		ClientType:     r.FormValue("client_type"),
		ClientName:     r.FormValue("client_name"),
		Phone:          r.FormValue("phone"),
		Email:          r.FormValue("email"),
		Content:        r.FormValue("content"),
	}
	if r.MultipartForm != nil {
		req.Files = r.MultipartForm.File["files"]
	}

	result, err := h.complaintService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	response.Created(w, i18n.T(r.Context(), "complaint.submitted"), result)
}

// GetComplaint implements ComplaintHandler.
func (h *complaintHandlerImpl) GetComplaint(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Complaint ID is required", nil)
		return
	}

	result, err := h.complaintService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	response.Success(w, result)
}

// ListComplaints implements ComplaintHandler.
func (h *complaintHandlerImpl) ListComplaints(w http.ResponseWriter, r *http.Request) {
	results, err := h.complaintService.List(r.Context())
	if err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	response.Success(w, results)
}

// ListMyComplaints implements ComplaintHandler.
func (h *complaintHandlerImpl) ListMyComplaints(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.UserID(r.Context())
	if !ok {
		response.HandleError(r.Context(), w, auth.ErrInvalidToken)
		return
	}

	results, err := h.complaintService.ListMine(r.Context(), employeeID)
	if err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	response.Success(w, results)
}

// UpdateComplaintStatus implements ComplaintHandler.
func (h *complaintHandlerImpl) UpdateComplaintStatus(w http.ResponseWriter, r *http.Request) {
	var req complaint.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.complaintService.UpdateStatus(r.Context(), req); err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	response.SuccessWithMessage(w, i18n.T(r.Context(), "complaint.status_updated"), nil)
}

// AssignComplaint implements ComplaintHandler.
func (h *complaintHandlerImpl) AssignComplaint(w http.ResponseWriter, r *http.Request) {
	var req complaint.AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.complaintService.Assign(r.Context(), req); err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	response.SuccessWithMessage(w, i18n.T(r.Context(), "complaint.assigned"), nil)
}
