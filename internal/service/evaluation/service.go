package evaluation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/aiwa-ops/hrops-backend-go/internal/domain/evaluation"
	"github.com/aiwa-ops/hrops-backend-go/internal/domain/settings"
	"github.com/aiwa-ops/hrops-backend-go/internal/domain/user"
	"github.com/google/uuid"
)

// Departments without their own weight configuration score with an even
// split.
var defaultWeights = settings.EvaluationSettings{
	SpeedWeight:      25,
	AccuracyWeight:   25,
	QualityWeight:    25,
	DisciplineWeight: 25,
	DailyTarget:      50,
}

type EvaluationServiceImpl struct {
	evaluationRepo evaluation.Repository
	userRepo       user.Repository
	settingsRepo   settings.Repository
}

func NewEvaluationService(
	evaluationRepo evaluation.Repository,
	userRepo user.Repository,
	settingsRepo settings.Repository,
) evaluation.Service {
	return &EvaluationServiceImpl{
		evaluationRepo: evaluationRepo,
		userRepo:       userRepo,
		settingsRepo:   settingsRepo,
	}
}

// Save implements evaluation.Service.
func (s *EvaluationServiceImpl) Save(ctx context.Context, req evaluation.SaveEvaluationRequest) (evaluation.EvaluationResponse, error) {
	if err := req.Validate(); err != nil {
		return evaluation.EvaluationResponse{}, err
	}

	emp, err := s.userRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return evaluation.EvaluationResponse{}, err
	}

	weights := defaultWeights
	if emp.DepartmentID != nil {
		es, err := s.settingsRepo.GetEvaluationSettings(ctx, *emp.DepartmentID)
		switch {
		case err == nil:
			weights = es
		case !errors.Is(err, settings.ErrEvaluationSettingsNotFound):
			return evaluation.EvaluationResponse{}, fmt.Errorf("failed to load evaluation settings: %w", err)
		}
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return evaluation.EvaluationResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	speed := SpeedScore(req.Volume, weights.DailyTarget)
	score := WeightedScore(speed, req.AccuracyScore, req.QualityScore, req.DisciplineScore, weights)

	e := evaluation.Evaluation{
		ID:              uuid.New().String(),
		EmployeeID:      req.EmployeeID,
		Date:            date,
		Score:           score,
		Rating:          evaluation.BandScore(score),
		SpeedScore:      speed,
		AccuracyScore:   req.AccuracyScore,
		QualityScore:    req.QualityScore,
		DisciplineScore: req.DisciplineScore,
	}

	// Kitchen-style departments count prepared orders; service desks count
	// handled calls.
	if isCallDepartment(emp.DepartmentName) {
		e.CallsCount = req.Volume
		e.AvgResponseTime = req.TimeMetric
	} else {
		e.OrdersPrepared = req.Volume
		e.AvgPrepTime = req.TimeMetric
	}

	saved, err := s.evaluationRepo.Upsert(ctx, e)
	if err != nil {
		return evaluation.EvaluationResponse{}, fmt.Errorf("failed to save evaluation: %w", err)
	}
	return saved.ToResponse(), nil
}

// GetByEmployeeAndDate implements evaluation.Service.
func (s *EvaluationServiceImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (evaluation.EvaluationResponse, error) {
	e, err := s.evaluationRepo.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return evaluation.EvaluationResponse{}, err
	}
	return e.ToResponse(), nil
}

// ListByDate implements evaluation.Service.
func (s *EvaluationServiceImpl) ListByDate(ctx context.Context, date time.Time) ([]evaluation.EvaluationResponse, error) {
	evals, err := s.evaluationRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	return toResponses(evals), nil
}

// ListByEmployee implements evaluation.Service.
func (s *EvaluationServiceImpl) ListByEmployee(ctx context.Context, employeeID string, from, to time.Time) ([]evaluation.EvaluationResponse, error) {
	evals, err := s.evaluationRepo.ListByEmployee(ctx, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}
	return toResponses(evals), nil
}

// SpeedScore grades volume against the department's daily target, capped at
// 100. A zero target means speed cannot be graded and scores zero.
func SpeedScore(volume, dailyTarget int) int {
	if dailyTarget <= 0 {
		return 0
	}
	score := int(math.Round(float64(volume) / float64(dailyTarget) * 100))
	if score > 100 {
		return 100
	}
	return score
}

// WeightedScore combines the four component scores using the department's
// weights. Weights sum to 100, so the result stays on a 0-100 scale.
func WeightedScore(speed, accuracy, quality, discipline int, w settings.EvaluationSettings) int {
	total := speed*w.SpeedWeight + accuracy*w.AccuracyWeight + quality*w.QualityWeight + discipline*w.DisciplineWeight
	return int(math.Round(float64(total) / 100))
}

func isCallDepartment(name *string) bool {
	if name == nil {
		return false
	}
	lower := strings.ToLower(*name)
	return strings.Contains(lower, "service") || strings.Contains(lower, "call") || strings.Contains(lower, "support")
}

func toResponses(evals []evaluation.Evaluation) []evaluation.EvaluationResponse {
	responses := make([]evaluation.EvaluationResponse, 0, len(evals))
	for _, e := range evals {
		responses = append(responses, e.ToResponse())
	}
	return responses
}
