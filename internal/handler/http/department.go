package http

import (
	"encoding/json"
	"net/http"

	"github.com/aiwa-ops/hrops-backend-go/internal/domain/department"
	"github.com/aiwa-ops/hrops-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type DepartmentHandler interface {
	CreateDepartment(w http.ResponseWriter, r *http.Request)
	GetDepartment(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
	UpdateDepartment(w http.ResponseWriter, r *http.Request)
	DeleteDepartment(w http.ResponseWriter, r *http.Request)
}

type departmentHandlerImpl struct {
	departmentService department.Service
}

func NewDepartmentHandler(departmentService department.Service) DepartmentHandler {
	return &departmentHandlerImpl{departmentService: departmentService}
}

// CreateDepartment implements DepartmentHandler.
func (h *departmentHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req department.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.departmentService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	response.Created(w, "Department created", result)
}

// GetDepartment implements DepartmentHandler.
func (h *departmentHandlerImpl) GetDepartment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Department ID is required", nil)
		return
	}

	result, err := h.departmentService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	response.Success(w, result)
}

// ListDepartments implements DepartmentHandler.
func (h *departmentHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	results, err := h.departmentService.List(r.Context())
	if err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	response.Success(w, results)
}

// UpdateDepartment implements DepartmentHandler.
func (h *departmentHandlerImpl) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	var req department.UpdateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.departmentService.Update(r.Context(), req); err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	response.SuccessWithMessage(w, "Department updated", nil)
}

// DeleteDepartment implements DepartmentHandler.
func (h *departmentHandlerImpl) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Department ID is required", nil)
		return
	}

	if err := h.departmentService.Delete(r.Context(), id); err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	response.SuccessWithMessage(w, "Department deleted", nil)
}
