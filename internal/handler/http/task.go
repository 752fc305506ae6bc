package http

import (
	"encoding/json"
	"net/http"

	"github.com/aiwa-ops/hrops-backend-go/internal/domain/auth"
	"github.com/aiwa-ops/hrops-backend-go/internal/domain/task"
	"github.com/aiwa-ops/hrops-backend-go/internal/handler/http/middleware"
	"github.com/aiwa-ops/hrops-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TaskHandler interface {
	CreateTask(w http.ResponseWriter, r *http.Request)
	GetTask(w http.ResponseWriter, r *http.Request)
	ListTasks(w http.ResponseWriter, r *http.Request)
	ListMyTasks(w http.ResponseWriter, r *http.Request)
	UpdateTaskStatus(w http.ResponseWriter, r *http.Request)
	DeleteTask(w http.ResponseWriter, r *http.Request)
}

type taskHandlerImpl struct {
	taskService task.Service
}

func NewTaskHandler(taskService task.Service) TaskHandler {
	return &taskHandlerImpl{taskService: taskService}
}

// CreateTask implements TaskHandler.
func (h *taskHandlerImpl) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req task.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.taskService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	response.Created(w, "Task created", result)
}

// GetTask implements TaskHandler.
func (h *taskHandlerImpl) GetTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Task ID is required", nil)
		return
	}

	result, err := h.taskService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	response.Success(w, result)
}

// ListTasks implements TaskHandler.
func (h *taskHandlerImpl) ListTasks(w http.ResponseWriter, r *http.Request) {
	results, err := h.taskService.List(r.Context())
	if err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	response.Success(w, results)
}

// ListMyTasks implements TaskHandler.
func (h *taskHandlerImpl) ListMyTasks(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.UserID(r.Context())
	if !ok {
		response.HandleError(r.Context(), w, auth.ErrInvalidToken)
		return
	}

	results, err := h.taskService.ListMine(r.Context(), employeeID)
	if err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	response.Success(w, results)
}

// UpdateTaskStatus implements TaskHandler.
func (h *taskHandlerImpl) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	var req task.UpdateTaskStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.taskService.UpdateStatus(r.Context(), req); err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	response.SuccessWithMessage(w, "Task status updated", nil)
}

// DeleteTask implements TaskHandler.
func (h *taskHandlerImpl) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Task ID is required", nil)
		return
	}

	if err := h.taskService.Delete(r.Context(), id); err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	response.SuccessWithMessage(w, "Task deleted", nil)
}
