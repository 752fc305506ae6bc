package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/aiwa-ops/hrops-backend-go/internal/domain/evaluation"
	"github.com/aiwa-ops/hrops-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type EvaluationHandler interface {
	SaveEvaluation(w http.ResponseWriter, r *http.Request)
	GetEvaluation(w http.ResponseWriter, r *http.Request)
	ListByDate(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
}

type evaluationHandlerImpl struct {
	evaluationService evaluation.Service
}

func NewEvaluationHandler(evaluationService evaluation.Service) EvaluationHandler {
	return &evaluationHandlerImpl{evaluationService: evaluationService}
}

// SaveEvaluation implements EvaluationHandler.
func (h *evaluationHandlerImpl) SaveEvaluation(w http.ResponseWriter, r *http.Request) {
	var req evaluation.SaveEvaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.evaluationService.Save(r.Context(), req)
	if err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	response.SuccessWithMessage(w, "Evaluation saved", result)
}

// GetEvaluation implements EvaluationHandler.
func (h *evaluationHandlerImpl) GetEvaluation(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	date, err := time.Parse("2006-01-02", r.URL.Query().Get("date"))
	if err != nil {
		response.BadRequest(w, "date must be a YYYY-MM-DD date", nil)
		return
	}

	result, err := h.evaluationService.GetByEmployeeAndDate(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	response.Success(w, result)
}

// ListByDate implements EvaluationHandler. Defaults to today.
func (h *evaluationHandlerImpl) ListByDate(w http.ResponseWriter, r *http.Request) {
	date := time.Now()
	if d := r.URL.Query().Get("date"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			response.BadRequest(w, "date must be a YYYY-MM-DD date", nil)
			return
		}
		date = parsed
	}

	results, err := h.evaluationService.ListByDate(r.Context(), date)
	if err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	response.Success(w, results)
}

// ListByEmployee implements EvaluationHandler.
func (h *evaluationHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	from, to, err := parseRange(r)
	if err != nil {
		response.BadRequest(w, "from and to must be YYYY-MM-DD dates", nil)
		return
	}

	results, err := h.evaluationService.ListByEmployee(r.Context(), employeeID, from, to)
	if err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	response.Success(w, results)
}
