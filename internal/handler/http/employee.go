package http

import (
	"encoding/json"
	"net/http"

	"github.com/aiwa-ops/hrops-backend-go/internal/domain/user"
	"github.com/aiwa-ops/hrops-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EmployeeHandler interface {
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	SetOvertime(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService user.Service
}

func NewEmployeeHandler(employeeService user.Service) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: employeeService}
}

// CreateEmployee implements EmployeeHandler.
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req user.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	response.Created(w, "Employee created", result)
}

// GetEmployee implements EmployeeHandler.
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	result, err := h.employeeService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	response.Success(w, result)
}

// ListEmployees implements EmployeeHandler. Optionally filtered by
// department_id.
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	var departmentID *string
	if d := r.URL.Query().Get("department_id"); d != "" {
		departmentID = &d
	}

	results, err := h.employeeService.List(r.Context(), departmentID)
	if err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	response.Success(w, results)
}

// UpdateEmployee implements EmployeeHandler.
func (h *employeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req user.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.employeeService.Update(r.Context(), req); err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated", nil)
}

// SetOvertime implements EmployeeHandler.
func (h *employeeHandlerImpl) SetOvertime(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	var body struct {
		Enabled bool `json:"enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.employeeService.SetOvertimeEnabled(r.Context(), id, body.Enabled); err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime setting updated", nil)
}

// DeleteEmployee implements EmployeeHandler.
func (h *employeeHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	if err := h.employeeService.Delete(r.Context(), id); err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted", nil)
}
