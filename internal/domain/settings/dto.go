package settings

import (
	"github.com/aiwa-ops/hrops-backend-go/internal/pkg/clock"
	"github.com/aiwa-ops/hrops-backend-go/internal/pkg/validator"
)

type UpdateWorkSettingsRequest struct {
	WorkStartTime         string `json:"work_start_time"`
	WorkEndTime           string `json:"work_end_time"`
	LateThresholdMinutes  int    `json:"late_threshold_minutes"`
	EarlyAllowanceMinutes int    `json:"early_allowance_minutes"`
}

func (r *UpdateWorkSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	start, err := clock.ParseClock(r.WorkStartTime)
	if err != nil {
		errs = append(errs, validator.ValidationError{Field: "work_start_time", Message: "must be a valid HH:MM time"})
	}
	end, err := clock.ParseClock(r.WorkEndTime)
	if err != nil {
		errs = append(errs, validator.ValidationError{Field: "work_end_time", Message: "must be a valid HH:MM time"})
	}
	if len(errs) == 0 && end <= start {
		errs = append(errs, validator.ValidationError{Field: "work_end_time", Message: "must be after work_start_time"})
	}
	if r.LateThresholdMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "late_threshold_minutes", Message: "must not be negative"})
	}
	if r.EarlyAllowanceMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "early_allowance_minutes", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEvaluationSettingsRequest struct {
	DepartmentID     string `json:"department_id"`
	SpeedWeight      int    `json:"speed_weight"`
	AccuracyWeight   int    `json:"accuracy_weight"`
	QualityWeight    int    `json:"quality_weight"`
	DisciplineWeight int    `json:"discipline_weight"`
	DailyTarget      int    `json:"daily_target"`
}

func (r *UpdateEvaluationSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{Field: "department_id", Message: "department_id is required"})
	}
	sum := r.SpeedWeight + r.AccuracyWeight + r.QualityWeight + r.DisciplineWeight
	if sum != 100 {
		errs = append(errs, validator.ValidationError{Field: "weights", Message: "speed, accuracy, quality and discipline weights must sum to exactly 100"})
	}
	if r.DailyTarget < 0 {
		errs = append(errs, validator.ValidationError{Field: "daily_target", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkSettingsResponse struct {
	WorkStartTime         string `json:"work_start_time"`
	WorkEndTime           string `json:"work_end_time"`
	LateThresholdMinutes  int    `json:"late_threshold_minutes"`
	EarlyAllowanceMinutes int    `json:"early_allowance_minutes"`
}

func (ws WorkSettings) ToResponse() WorkSettingsResponse {
	return WorkSettingsResponse{
		WorkStartTime:         ws.WorkStartTime,
		WorkEndTime:           ws.WorkEndTime,
		LateThresholdMinutes:  ws.LateThresholdMinutes,
		EarlyAllowanceMinutes: ws.EarlyAllowanceMinutes,
	}
}

type EvaluationSettingsResponse struct {
	DepartmentID     string `json:"department_id"`
	SpeedWeight      int    `json:"speed_weight"`
	AccuracyWeight   int    `json:"accuracy_weight"`
	QualityWeight    int    `json:"quality_weight"`
	DisciplineWeight int    `json:"discipline_weight"`
	DailyTarget      int    `json:"daily_target"`
}

func (es EvaluationSettings) ToResponse() EvaluationSettingsResponse {
	return EvaluationSettingsResponse{
		DepartmentID:     es.DepartmentID,
		SpeedWeight:      es.SpeedWeight,
		AccuracyWeight:   es.AccuracyWeight,
		QualityWeight:    es.QualityWeight,
		DisciplineWeight: es.DisciplineWeight,
		DailyTarget:      es.DailyTarget,
	}
}
