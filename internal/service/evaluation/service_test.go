package evaluation

import (
	"context"
	"testing"
	"time"

	"github.com/aiwa-ops/hrops-backend-go/internal/domain/evaluation"
	"github.com/aiwa-ops/hrops-backend-go/internal/domain/settings"
	"github.com/aiwa-ops/hrops-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpeedScore(t *testing.T) {
	tests := []struct {
		name        string
		volume      int
		dailyTarget int
		want        int
	}{
		{name: "at target", volume: 50, dailyTarget: 50, want: 100},
		{name: "half target", volume: 25, dailyTarget: 50, want: 50},
		{name: "over target capped", volume: 80, dailyTarget: 50, want: 100},
		{name: "zero volume", volume: 0, dailyTarget: 50, want: 0},
		{name: "zero target", volume: 30, dailyTarget: 0, want: 0},
		{name: "rounds to nearest", volume: 1, dailyTarget: 3, want: 33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SpeedScore(tt.volume, tt.dailyTarget))
		})
	}
}

func TestWeightedScore(t *testing.T) {
	even := settings.EvaluationSettings{
		SpeedWeight: 25, AccuracyWeight: 25, QualityWeight: 25, DisciplineWeight: 25,
	}
	speedHeavy := settings.EvaluationSettings{
		SpeedWeight: 70, AccuracyWeight: 10, QualityWeight: 10, DisciplineWeight: 10,
	}

	assert.Equal(t, 100, WeightedScore(100, 100, 100, 100, even))
	assert.Equal(t, 75, WeightedScore(100, 100, 100, 0, even))
	assert.Equal(t, 85, WeightedScore(80, 90, 80, 90, even))
	assert.Equal(t, 93, WeightedScore(100, 80, 80, 70, speedHeavy))
	assert.Equal(t, 0, WeightedScore(0, 0, 0, 0, even))
}

type stubEvalRepo struct {
	saved *evaluation.Evaluation
}

func (s *stubEvalRepo) Upsert(ctx context.Context, e evaluation.Evaluation) (evaluation.Evaluation, error) {
	s.saved = &e
	return e, nil
}
func (s *stubEvalRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (evaluation.Evaluation, error) {
	return evaluation.Evaluation{}, evaluation.ErrEvaluationNotFound
}
func (s *stubEvalRepo) ListByDate(ctx context.Context, date time.Time) ([]evaluation.Evaluation, error) {
	return nil, nil
}
func (s *stubEvalRepo) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]evaluation.Evaluation, error) {
	return nil, nil
}

type stubUserRepo struct {
	u user.User
}

func (s *stubUserRepo) Create(ctx context.Context, u user.User) (user.User, error) { return u, nil }
func (s *stubUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	if id == s.u.ID {
		return s.u, nil
	}
	return user.User{}, user.ErrUserNotFound
}
func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (s *stubUserRepo) List(ctx context.Context, departmentID *string) ([]user.User, error) {
	return nil, nil
}
func (s *stubUserRepo) Update(ctx context.Context, u user.User) error { return nil }
func (s *stubUserRepo) SetOvertimeEnabled(ctx context.Context, id string, enabled bool) error {
	return nil
}
func (s *stubUserRepo) Delete(ctx context.Context, id string) error { return nil }

type stubSettingsRepo struct {
	es   settings.EvaluationSettings
	some bool
}

func (s *stubSettingsRepo) GetWorkSettings(ctx context.Context) (settings.WorkSettings, error) {
	return settings.WorkSettings{}, settings.ErrNotConfigured
}
func (s *stubSettingsRepo) UpsertWorkSettings(ctx context.Context, ws settings.WorkSettings) (settings.WorkSettings, error) {
	return ws, nil
}
func (s *stubSettingsRepo) GetEvaluationSettings(ctx context.Context, departmentID string) (settings.EvaluationSettings, error) {
	if !s.some {
		return settings.EvaluationSettings{}, settings.ErrEvaluationSettingsNotFound
	}
	return s.es, nil
}
func (s *stubSettingsRepo) UpsertEvaluationSettings(ctx context.Context, es settings.EvaluationSettings) (settings.EvaluationSettings, error) {
	return es, nil
}

func TestSave_WeightsFromDepartmentSettings(t *testing.T) {
	dept := "dept-1"
	kitchen := "Kitchen"
	evalRepo := &stubEvalRepo{}
	svc := NewEvaluationService(
		evalRepo,
		&stubUserRepo{u: user.User{ID: "emp-1", DepartmentID: &dept, DepartmentName: &kitchen}},
		&stubSettingsRepo{
			some: true,
			es: settings.EvaluationSettings{
				DepartmentID: dept,
				SpeedWeight:  40, AccuracyWeight: 30, QualityWeight: 20, DisciplineWeight: 10,
				DailyTarget: 40,
			},
		},
	)

	resp, err := svc.Save(context.Background(), evaluation.SaveEvaluationRequest{
		EmployeeID:      "emp-1",
		Date:            "2025-03-10",
		Volume:          40,
		TimeMetric:      12,
		AccuracyScore:   90,
		QualityScore:    80,
		DisciplineScore: 100,
	})
	require.NoError(t, err)

	// speed 100*0.40 + 90*0.30 + 80*0.20 + 100*0.10 = 93
	assert.Equal(t, 93, resp.Score)
	assert.Equal(t, evaluation.RatingExcellent, resp.Rating)
	assert.Equal(t, 100, resp.SpeedScore)

	require.NotNil(t, evalRepo.saved)
	assert.Equal(t, 40, evalRepo.saved.OrdersPrepared, "kitchen volume counts as orders")
	assert.Equal(t, 12, evalRepo.saved.AvgPrepTime)
	assert.Zero(t, evalRepo.saved.CallsCount)
}

func TestSave_CallDepartmentCounters(t *testing.T) {
	dept := "dept-2"
	cs := "Customer Service"
	evalRepo := &stubEvalRepo{}
	svc := NewEvaluationService(
		evalRepo,
		&stubUserRepo{u: user.User{ID: "emp-2", DepartmentID: &dept, DepartmentName: &cs}},
		&stubSettingsRepo{},
	)

	_, err := svc.Save(context.Background(), evaluation.SaveEvaluationRequest{
		EmployeeID:      "emp-2",
		Date:            "2025-03-10",
		Volume:          25,
		TimeMetric:      3,
		AccuracyScore:   70,
		QualityScore:    70,
		DisciplineScore: 70,
	})
	require.NoError(t, err)

	require.NotNil(t, evalRepo.saved)
	assert.Equal(t, 25, evalRepo.saved.CallsCount)
	assert.Equal(t, 3, evalRepo.saved.AvgResponseTime)
	assert.Zero(t, evalRepo.saved.OrdersPrepared)
}

func TestSave_DefaultWeightsWhenUnconfigured(t *testing.T) {
	dept := "dept-3"
	kitchen := "Kitchen"
	evalRepo := &stubEvalRepo{}
	svc := NewEvaluationService(
		evalRepo,
		&stubUserRepo{u: user.User{ID: "emp-3", DepartmentID: &dept, DepartmentName: &kitchen}},
		&stubSettingsRepo{},
	)

	resp, err := svc.Save(context.Background(), evaluation.SaveEvaluationRequest{
		EmployeeID:      "emp-3",
		Date:            "2025-03-10",
		Volume:          50, // default daily target
		AccuracyScore:   60,
		QualityScore:    60,
		DisciplineScore: 60,
	})
	require.NoError(t, err)

	// Even 25/25/25/25 split: (100+60+60+60)/4 = 70.
	assert.Equal(t, 70, resp.Score)
	assert.Equal(t, evaluation.RatingGood, resp.Rating)
}

func TestSave_UnknownEmployee(t *testing.T) {
	svc := NewEvaluationService(&stubEvalRepo{}, &stubUserRepo{}, &stubSettingsRepo{})

	_, err := svc.Save(context.Background(), evaluation.SaveEvaluationRequest{
		EmployeeID: "ghost",
		Date:       "2025-03-10",
	})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
