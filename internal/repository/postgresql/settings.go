package postgresql

import (
	"context"
	"errors"

	"github.com/aiwa-ops/hrops-backend-go/internal/domain/settings"
	"github.com/aiwa-ops/hrops-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type settingsRepositoryImpl struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.Repository {
	return &settingsRepositoryImpl{db: db}
}

// GetWorkSettings implements settings.Repository.
func (r *settingsRepositoryImpl) GetWorkSettings(ctx context.Context) (settings.WorkSettings, error) {
	q := GetQuerier(ctx, r.db)

	var ws settings.WorkSettings
	err := q.QueryRow(ctx, `
		SELECT id, work_start_time, work_end_time, late_threshold_minutes,
			   early_allowance_minutes, updated_at
		FROM work_settings
		LIMIT 1
	`).Scan(&ws.ID, &ws.WorkStartTime, &ws.WorkEndTime, &ws.LateThresholdMinutes,
		&ws.EarlyAllowanceMinutes, &ws.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.WorkSettings{}, settings.ErrNotConfigured
		}
		return settings.WorkSettings{}, err
	}
	return ws, nil
}

// UpsertWorkSettings implements settings.Repository. The table holds a single
// row keyed by a constant id.
func (r *settingsRepositoryImpl) UpsertWorkSettings(ctx context.Context, ws settings.WorkSettings) (settings.WorkSettings, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		INSERT INTO work_settings (
			id, work_start_time, work_end_time, late_threshold_minutes, early_allowance_minutes
		)
		VALUES ('default', $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET work_start_time = EXCLUDED.work_start_time,
			work_end_time = EXCLUDED.work_end_time,
			late_threshold_minutes = EXCLUDED.late_threshold_minutes,
			early_allowance_minutes = EXCLUDED.early_allowance_minutes,
			updated_at = NOW()
		RETURNING id, updated_at
	`, ws.WorkStartTime, ws.WorkEndTime, ws.LateThresholdMinutes, ws.EarlyAllowanceMinutes).
		Scan(&ws.ID, &ws.UpdatedAt)
	if err != nil {
		return settings.WorkSettings{}, err
	}
	return ws, nil
}

// GetEvaluationSettings implements settings.Repository.
func (r *settingsRepositoryImpl) GetEvaluationSettings(ctx context.Context, departmentID string) (settings.EvaluationSettings, error) {
	q := GetQuerier(ctx, r.db)

	var es settings.EvaluationSettings
	err := q.QueryRow(ctx, `
		SELECT id, department_id, speed_weight, accuracy_weight, quality_weight,
			   discipline_weight, daily_target, updated_at
		FROM evaluation_settings
		WHERE department_id = $1
	`, departmentID).Scan(&es.ID, &es.DepartmentID, &es.SpeedWeight, &es.AccuracyWeight,
		&es.QualityWeight, &es.DisciplineWeight, &es.DailyTarget, &es.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.EvaluationSettings{}, settings.ErrEvaluationSettingsNotFound
		}
		return settings.EvaluationSettings{}, err
	}
	return es, nil
}

// UpsertEvaluationSettings implements settings.Repository.
func (r *settingsRepositoryImpl) UpsertEvaluationSettings(ctx context.Context, es settings.EvaluationSettings) (settings.EvaluationSettings, error) {
	q := GetQuerier(ctx, r.db)

	err := q.QueryRow(ctx, `
		INSERT INTO evaluation_settings (
			id, department_id, speed_weight, accuracy_weight, quality_weight,
			discipline_weight, daily_target
		)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6)
		ON CONFLICT (department_id) DO UPDATE
		SET speed_weight = EXCLUDED.speed_weight,
			accuracy_weight = EXCLUDED.accuracy_weight,
			quality_weight = EXCLUDED.quality_weight,
			discipline_weight = EXCLUDED.discipline_weight,
			daily_target = EXCLUDED.daily_target,
			updated_at = NOW()
		RETURNING id, updated_at
	`, es.DepartmentID, es.SpeedWeight, es.AccuracyWeight, es.QualityWeight,
		es.DisciplineWeight, es.DailyTarget).Scan(&es.ID, &es.UpdatedAt)
	if err != nil {
		return settings.EvaluationSettings{}, err
	}
	return es, nil
}
