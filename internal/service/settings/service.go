package settings

import (
	"context"
	"fmt"

	"github.com/aiwa-ops/hrops-backend-go/internal/domain/settings"
)

type SettingsServiceImpl struct {
	settingsRepo settings.Repository
}

func NewSettingsService(settingsRepo settings.Repository) settings.Service {
	return &SettingsServiceImpl{settingsRepo: settingsRepo}
}

// GetWorkSettings implements settings.Service.
func (s *SettingsServiceImpl) GetWorkSettings(ctx context.Context) (settings.WorkSettingsResponse, error) {
	ws, err := s.settingsRepo.GetWorkSettings(ctx)
	if err != nil {
		return settings.WorkSettingsResponse{}, err
	}
	return ws.ToResponse(), nil
}

// UpdateWorkSettings implements settings.Service.
func (s *SettingsServiceImpl) UpdateWorkSettings(ctx context.Context, req settings.UpdateWorkSettingsRequest) (settings.WorkSettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.WorkSettingsResponse{}, err
	}

	ws, err := s.settingsRepo.UpsertWorkSettings(ctx, settings.WorkSettings{
		WorkStartTime:         req.WorkStartTime,
		WorkEndTime:           req.WorkEndTime,
		LateThresholdMinutes:  req.LateThresholdMinutes,
		EarlyAllowanceMinutes: req.EarlyAllowanceMinutes,
	})
	if err != nil {
		return settings.WorkSettingsResponse{}, fmt.Errorf("failed to save work settings: %w", err)
	}
	return ws.ToResponse(), nil
}

// GetEvaluationSettings implements settings.Service.
func (s *SettingsServiceImpl) GetEvaluationSettings(ctx context.Context, departmentID string) (settings.EvaluationSettingsResponse, error) {
	es, err := s.settingsRepo.GetEvaluationSettings(ctx, departmentID)
	if err != nil {
		return settings.EvaluationSettingsResponse{}, err
	}
	return es.ToResponse(), nil
}

// UpdateEvaluationSettings implements settings.Service.
func (s *SettingsServiceImpl) UpdateEvaluationSettings(ctx context.Context, req settings.UpdateEvaluationSettingsRequest) (settings.EvaluationSettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.EvaluationSettingsResponse{}, err
	}

	es, err := s.settingsRepo.UpsertEvaluationSettings(ctx, settings.EvaluationSettings{
		DepartmentID:     req.DepartmentID,
		SpeedWeight:      req.SpeedWeight,
		AccuracyWeight:   req.AccuracyWeight,
		QualityWeight:    req.QualityWeight,
		DisciplineWeight: req.DisciplineWeight,
		DailyTarget:      req.DailyTarget,
	})
	if err != nil {
		return settings.EvaluationSettingsResponse{}, fmt.Errorf("failed to save evaluation settings: %w", err)
	}
	return es.ToResponse(), nil
}
