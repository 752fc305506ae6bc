package http

import (
	"net/http"
	"time"

	"github.com/aiwa-ops/hrops-backend-go/internal/domain/attendance"
	"github.com/aiwa-ops/hrops-backend-go/internal/domain/auth"
	"github.com/aiwa-ops/hrops-backend-go/internal/handler/http/middleware"
	"github.com/aiwa-ops/hrops-backend-go/internal/handler/http/response"
	"github.com/aiwa-ops/hrops-backend-go/internal/pkg/i18n"
)

type AttendanceHandler interface {
	Toggle(w http.ResponseWriter, r *http.Request)
	GetToday(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListByDate(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// Toggle implements AttendanceHandler. One endpoint serves both check-in and
// check-out; the service decides which transition applies.
func (h *attendanceHandlerImpl) Toggle(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.UserID(r.Context())
	if !ok {
		response.HandleError(r.Context(), w, auth.ErrInvalidToken)
		return
	}

	result, err := h.attendanceService.Toggle(r.Context(), employeeID)
	if err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	response.SuccessWithMessage(w, toggleMessage(r, result), result)
}

func toggleMessage(r *http.Request, result attendance.ToggleResponse) string {
	ctx := r.Context()
	switch result.Status {
	case attendance.ToggleCheckedIn:
		if result.Rating == attendance.RatingLate {
			return i18n.T(ctx, "attendance.checked_in_late", map[string]any{"Delay": result.DelayMinutes})
		}
		return i18n.T(ctx, "attendance.checked_in_on_time")
	case attendance.ToggleCheckedOut:
		return i18n.T(ctx, "attendance.checked_out")
	default:
		return i18n.T(ctx, "attendance.day_complete")
	}
}

// GetToday implements AttendanceHandler.
func (h *attendanceHandlerImpl) GetToday(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.UserID(r.Context())
	if !ok {
		response.HandleError(r.Context(), w, auth.ErrInvalidToken)
		return
	}

	result, err := h.attendanceService.GetToday(r.Context(), employeeID)
	if err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	response.Success(w, result)
}

// ListMine implements AttendanceHandler. Defaults to the last 30 days.
func (h *attendanceHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.UserID(r.Context())
	if !ok {
		response.HandleError(r.Context(), w, auth.ErrInvalidToken)
		return
	}

	from, to, err := parseRange(r)
	if err != nil {
		response.BadRequest(w, "from and to must be YYYY-MM-DD dates", nil)
		return
	}

	results, err := h.attendanceService.ListMine(r.Context(), employeeID, from, to)
	if err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	response.Success(w, results)
}

// ListByDate implements AttendanceHandler. Defaults to today.
func (h *attendanceHandlerImpl) ListByDate(w http.ResponseWriter, r *http.Request) {
	date := time.Now()
	if d := r.URL.Query().Get("date"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			response.BadRequest(w, "date must be a YYYY-MM-DD date", nil)
			return
		}
		date = parsed
	}

	results, err := h.attendanceService.ListByDate(r.Context(), date)
	if err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	response.Success(w, results)
}

func parseRange(r *http.Request) (time.Time, time.Time, error) {
	to := time.Now()
	from := to.AddDate(0, 0, -30)

	if f := r.URL.Query().Get("from"); f != "" {
		parsed, err := time.Parse("2006-01-02", f)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}
	if t := r.URL.Query().Get("to"); t != "" {
		parsed, err := time.Parse("2006-01-02", t)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed
	}
	return from, to, nil
}
