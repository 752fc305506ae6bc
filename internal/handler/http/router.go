package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/aiwa-ops/hrops-backend-go/internal/handler/http/middleware"
	"github.com/aiwa-ops/hrops-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// RouterConfig carries the environment-dependent pieces of the HTTP surface.
type RouterConfig struct {
	AppEnv         string
	AllowedOrigins []string
	// UploadsDir is served under /uploads for complaint attachments.
	UploadsDir string
}

type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Employee   EmployeeHandler
	Department DepartmentHandler
	Settings   SettingsHandler
	Task       TaskHandler
	Complaint  ComplaintHandler
	Evaluation EvaluationHandler
	Report     ReportHandler
}

func NewRouter(cfg RouterConfig, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrops-backend"),
		slog.String("env", cfg.AppEnv),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Language", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.AllowContentEncoding("gzip"))
	r.Use(chiMiddleware.Heartbeat("/healthz"))
	r.Use(middleware.Locale)

	if cfg.UploadsDir != "" {
		fileServer := http.FileServer(http.Dir(cfg.UploadsDir))
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", fileServer))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", h.Auth.Login)

		// Complaints come from the public site; no token required to file one.
		r.Post("/complaints", h.Complaint.SubmitComplaint)

		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/toggle", h.Attendance.Toggle)
				r.Get("/today", h.Attendance.GetToday)
				r.Get("/me", h.Attendance.ListMine)
				r.With(middleware.RequireSupervisor).Get("/", h.Attendance.ListByDate)
			})

			r.Route("/employees", func(r chi.Router) {
				r.With(middleware.RequireSupervisor).Get("/", h.Employee.ListEmployees)
				r.With(middleware.RequireSupervisor).Get("/{id}", h.Employee.GetEmployee)
				r.With(middleware.RequireManager).Post("/", h.Employee.CreateEmployee)
				r.With(middleware.RequireManager).Put("/{id}", h.Employee.UpdateEmployee)
				r.With(middleware.RequireManager).Patch("/{id}/overtime", h.Employee.SetOvertime)
				r.With(middleware.RequireManager).Delete("/{id}", h.Employee.DeleteEmployee)
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", h.Department.ListDepartments)
				r.Get("/{id}", h.Department.GetDepartment)
				r.With(middleware.RequireManager).Post("/", h.Department.CreateDepartment)
				r.With(middleware.RequireManager).Put("/{id}", h.Department.UpdateDepartment)
				r.With(middleware.RequireManager).Delete("/{id}", h.Department.DeleteDepartment)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Get("/work", h.Settings.GetWorkSettings)
				r.Put("/work", h.Settings.UpdateWorkSettings)
				r.Get("/evaluation/{departmentID}", h.Settings.GetEvaluationSettings)
				r.Put("/evaluation", h.Settings.UpdateEvaluationSettings)
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/me", h.Task.ListMyTasks)
				r.Put("/{id}/status", h.Task.UpdateTaskStatus)
				r.With(middleware.RequireSupervisor).Get("/", h.Task.ListTasks)
				r.With(middleware.RequireSupervisor).Get("/{id}", h.Task.GetTask)
				r.With(middleware.RequireSupervisor).Post("/", h.Task.CreateTask)
				r.With(middleware.RequireSupervisor).Delete("/{id}", h.Task.DeleteTask)
			})

			r.Route("/complaints", func(r chi.Router) {
				r.Get("/me", h.Complaint.ListMyComplaints)
				r.With(middleware.RequireSupervisor).Get("/", h.Complaint.ListComplaints)
				r.With(middleware.RequireSupervisor).Get("/{id}", h.Complaint.GetComplaint)
				r.With(middleware.RequireSupervisor).Patch("/{id}/status", h.Complaint.UpdateComplaintStatus)
				r.With(middleware.RequireSupervisor).Post("/{id}/assign", h.Complaint.AssignComplaint)
			})

			r.Route("/evaluations", func(r chi.Router) {
				r.Use(middleware.RequireSupervisor)
				r.Post("/", h.Evaluation.SaveEvaluation)
				r.Get("/", h.Evaluation.ListByDate)
				r.Get("/{employeeID}", h.Evaluation.GetEvaluation)
				r.Get("/{employeeID}/history", h.Evaluation.ListByEmployee)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/leaderboard", h.Report.Leaderboard)
				r.With(middleware.RequireManager).Get("/overtime", h.Report.OvertimeReport)
				r.With(middleware.RequireManager).Get("/attendance", h.Report.AttendanceSheet)
				r.With(middleware.RequireManager).Get("/attendance/pdf", h.Report.AttendanceSheetPDF)
			})
		})
	})

	return r
}
