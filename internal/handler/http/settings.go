package http

import (
	"encoding/json"
	"net/http"

	"github.com/aiwa-ops/hrops-backend-go/internal/domain/settings"
	"github.com/aiwa-ops/hrops-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type SettingsHandler interface {
	GetWorkSettings(w http.ResponseWriter, r *http.Request)
	UpdateWorkSettings(w http.ResponseWriter, r *http.Request)
	GetEvaluationSettings(w http.ResponseWriter, r *http.Request)
	UpdateEvaluationSettings(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	settingsService settings.Service
}

func NewSettingsHandler(settingsService settings.Service) SettingsHandler {
	return &settingsHandlerImpl{settingsService: settingsService}
}

// GetWorkSettings implements SettingsHandler.
func (h *settingsHandlerImpl) GetWorkSettings(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingsService.GetWorkSettings(r.Context())
	if err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	response.Success(w, result)
}

// UpdateWorkSettings implements SettingsHandler. Closed attendance records
// keep the values they were computed with.
func (h *settingsHandlerImpl) UpdateWorkSettings(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateWorkSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.settingsService.UpdateWorkSettings(r.Context(), req)
	if err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	response.SuccessWithMessage(w, "Work settings saved", result)
}

// GetEvaluationSettings implements SettingsHandler.
func (h *settingsHandlerImpl) GetEvaluationSettings(w http.ResponseWriter, r *http.Request) {
	departmentID := chi.URLParam(r, "departmentID")
	if departmentID == "" {
		response.BadRequest(w, "Department ID is required", nil)
		return
	}

	result, err := h.settingsService.GetEvaluationSettings(r.Context(), departmentID)
	if err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	response.Success(w, result)
}

// UpdateEvaluationSettings implements SettingsHandler.
func (h *settingsHandlerImpl) UpdateEvaluationSettings(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateEvaluationSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.settingsService.UpdateEvaluationSettings(r.Context(), req)
	if err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	response.SuccessWithMessage(w, "Evaluation settings saved", result)
}
