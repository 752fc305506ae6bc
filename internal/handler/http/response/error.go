package response

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aiwa-ops/hrops-backend-go/internal/domain/attendance"
	"github.com/aiwa-ops/hrops-backend-go/internal/domain/auth"
	"github.com/aiwa-ops/hrops-backend-go/internal/domain/complaint"
	"github.com/aiwa-ops/hrops-backend-go/internal/domain/department"
	"github.com/aiwa-ops/hrops-backend-go/internal/domain/evaluation"
	"github.com/aiwa-ops/hrops-backend-go/internal/domain/settings"
	"github.com/aiwa-ops/hrops-backend-go/internal/domain/task"
	"github.com/aiwa-ops/hrops-backend-go/internal/domain/user"
	"github.com/aiwa-ops/hrops-backend-go/internal/pkg/i18n"
	"github.com/aiwa-ops/hrops-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Messages shown to the
// user are localized from the request context.
func HandleError(ctx context.Context, w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Attendance rule rejections carry the shift boundary for the message.
	var notStarted *attendance.ShiftNotStartedError
	if errors.As(err, &notStarted) {
		UnprocessableEntity(w, "SHIFT_NOT_STARTED",
			i18n.T(ctx, "attendance.shift_not_started", map[string]any{"Time": notStarted.StartsAt}))
		return
	}
	var earlyCheckout *attendance.EarlyCheckoutError
	if errors.As(err, &earlyCheckout) {
		UnprocessableEntity(w, "EARLY_CHECKOUT",
			i18n.T(ctx, "attendance.early_checkout", map[string]any{"Time": earlyCheckout.EndsAt}))
		return
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "Account is inactive")

	case errors.Is(err, settings.ErrNotConfigured):
		UnprocessableEntity(w, "NOT_CONFIGURED", i18n.T(ctx, "attendance.not_configured"))
	case errors.Is(err, settings.ErrEvaluationSettingsNotFound):
		NotFound(w, "Evaluation settings not found for this department")

	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrNameExists):
		Conflict(w, "A department with this name already exists")

	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	case errors.Is(err, task.ErrTaskNotFound):
		NotFound(w, "Task not found")

	case errors.Is(err, complaint.ErrComplaintNotFound):
		NotFound(w, "Complaint not found")

	case errors.Is(err, evaluation.ErrEvaluationNotFound):
		NotFound(w, "Evaluation not found")

	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
