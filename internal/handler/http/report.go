package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/aiwa-ops/hrops-backend-go/internal/domain/report"
	"github.com/aiwa-ops/hrops-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Leaderboard(w http.ResponseWriter, r *http.Request)
	OvertimeReport(w http.ResponseWriter, r *http.Request)
	AttendanceSheet(w http.ResponseWriter, r *http.Request)
	AttendanceSheetPDF(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// month reads the month query parameter ("YYYY-MM"), defaulting to now.
func month(r *http.Request) (time.Time, error) {
	m := r.URL.Query().Get("month")
	if m == "" {
		return time.Now(), nil
	}
	return time.Parse("2006-01", m)
}

// Leaderboard implements ReportHandler.
func (h *reportHandlerImpl) Leaderboard(w http.ResponseWriter, r *http.Request) {
	m, err := month(r)
	if err != nil {
		response.BadRequest(w, "month must be a YYYY-MM value", nil)
		return
	}

	limit := 0
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	results, err := h.reportService.Leaderboard(r.Context(), m, limit)
	if err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	response.Success(w, results)
}

// OvertimeReport implements ReportHandler.
func (h *reportHandlerImpl) OvertimeReport(w http.ResponseWriter, r *http.Request) {
	m, err := month(r)
	if err != nil {
		response.BadRequest(w, "month must be a YYYY-MM value", nil)
		return
	}

	results, err := h.reportService.OvertimeReport(r.Context(), m)
	if err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	response.Success(w, results)
}

// AttendanceSheet implements ReportHandler.
func (h *reportHandlerImpl) AttendanceSheet(w http.ResponseWriter, r *http.Request) {
	m, err := month(r)
	if err != nil {
		response.BadRequest(w, "month must be a YYYY-MM value", nil)
		return
	}

	results, err := h.reportService.AttendanceSheet(r.Context(), m)
	if err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	response.Success(w, results)
}

// AttendanceSheetPDF implements ReportHandler. Streams the month's sheet as a
// downloadable PDF.
func (h *reportHandlerImpl) AttendanceSheetPDF(w http.ResponseWriter, r *http.Request) {
	m, err := month(r)
	if err != nil {
		response.BadRequest(w, "month must be a YYYY-MM value", nil)
		return
	}

	data, err := h.reportService.AttendanceSheetPDF(r.Context(), m)
	if err != nil {
		response.HandleError(r.Context(), w, err)
		return
	}

	filename := fmt.Sprintf("attendance-%s.pdf", m.Format("2006-01"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	_, _ = w.Write(data)
}
