package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aiwa-ops/hrops-backend-go/internal/config"
	appHTTP "github.com/aiwa-ops/hrops-backend-go/internal/handler/http"
	"github.com/aiwa-ops/hrops-backend-go/internal/pkg/clock"
	"github.com/aiwa-ops/hrops-backend-go/internal/pkg/cron"
	"github.com/aiwa-ops/hrops-backend-go/internal/pkg/database"
	"github.com/aiwa-ops/hrops-backend-go/internal/pkg/i18n"
	"github.com/aiwa-ops/hrops-backend-go/internal/pkg/jwt"
	"github.com/aiwa-ops/hrops-backend-go/internal/pkg/storage"
	"github.com/aiwa-ops/hrops-backend-go/internal/repository/postgresql"
	attendanceService "github.com/aiwa-ops/hrops-backend-go/internal/service/attendance"
	authService "github.com/aiwa-ops/hrops-backend-go/internal/service/auth"
	complaintService "github.com/aiwa-ops/hrops-backend-go/internal/service/complaint"
	departmentService "github.com/aiwa-ops/hrops-backend-go/internal/service/department"
	employeeService "github.com/aiwa-ops/hrops-backend-go/internal/service/employee"
	evaluationService "github.com/aiwa-ops/hrops-backend-go/internal/service/evaluation"
	reportService "github.com/aiwa-ops/hrops-backend-go/internal/service/report"
	settingsService "github.com/aiwa-ops/hrops-backend-go/internal/service/settings"
	taskService "github.com/aiwa-ops/hrops-backend-go/internal/service/task"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	i18n.Init(cfg.App.DefaultLocale)

	loc, err := clock.LoadLocation(cfg.Attendance.Timezone)
	if err != nil {
		return fmt.Errorf("load attendance timezone: %w", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	complaintRepo := postgresql.NewComplaintRepository(db)
	evaluationRepo := postgresql.NewEvaluationRepository(db)
	reportRepo := postgresql.NewReportRepository(db, cfg.Attendance.Timezone)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(userRepo)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	settingsSvc := settingsService.NewSettingsService(settingsRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, userRepo, settingsRepo, clock.System(), loc)
	taskSvc := taskService.NewTaskService(taskRepo, userRepo)
	complaintSvc := complaintService.NewComplaintService(db, complaintRepo, userRepo, fileStorage)
	evaluationSvc := evaluationService.NewEvaluationService(evaluationRepo, userRepo, settingsRepo)
	reportSvc := reportService.NewReportService(reportRepo, loc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AppEnv:         cfg.App.Env,
			AllowedOrigins: cfg.App.AllowedOrigins,
			UploadsDir:     cfg.Storage.BasePath,
		},
		jwtService,
		appHTTP.Handlers{
			Auth:       appHTTP.NewAuthHandler(authSvc),
			Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
			Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
			Department: appHTTP.NewDepartmentHandler(departmentSvc),
			Settings:   appHTTP.NewSettingsHandler(settingsSvc),
			Task:       appHTTP.NewTaskHandler(taskSvc),
			Complaint:  appHTTP.NewComplaintHandler(complaintSvc),
			Evaluation: appHTTP.NewEvaluationHandler(evaluationSvc),
			Report:     appHTTP.NewReportHandler(reportSvc),
		},
	)

	autoCloseInterval, err := time.ParseDuration(cfg.Attendance.AutoCloseInterval)
	if err != nil {
		return fmt.Errorf("invalid ATTENDANCE_AUTO_CLOSE_INTERVAL: %w", err)
	}
	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(attendanceSvc)
	scheduler.AddJob("close-stale-attendance", autoCloseInterval, attendanceJobs.CloseStaleSessions)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", "port", cfg.App.Port, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		slog.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
