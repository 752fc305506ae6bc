package evaluation

import "github.com/aiwa-ops/hrops-backend-go/internal/pkg/validator"

type SaveEvaluationRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`

	// Volume is orders prepared or calls handled, depending on department;
	// TimeMetric is the matching average handling time in minutes.
	Volume     int `json:"volume"`
	TimeMetric int `json:"time_metric"`

	AccuracyScore   int `json:"accuracy_score"`
	QualityScore    int `json:"quality_score"`
	DisciplineScore int `json:"discipline_score"`
}

func (r *SaveEvaluationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a YYYY-MM-DD date"})
	}
	if r.Volume < 0 {
		errs = append(errs, validator.ValidationError{Field: "volume", Message: "must not be negative"})
	}
	for field, score := range map[string]int{
		"accuracy_score":   r.AccuracyScore,
		"quality_score":    r.QualityScore,
		"discipline_score": r.DisciplineScore,
	} {
		if score < 0 || score > 100 {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be between 0 and 100"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EvaluationResponse struct {
	ID              string       `json:"id"`
	EmployeeID      string       `json:"employee_id"`
	EmployeeName    string       `json:"employee_name,omitempty"`
	Date            string       `json:"date"`
	Score           int          `json:"score"`
	Rating          VerbalRating `json:"rating"`
	SpeedScore      int          `json:"speed_score"`
	AccuracyScore   int          `json:"accuracy_score"`
	QualityScore    int          `json:"quality_score"`
	DisciplineScore int          `json:"discipline_score"`
	OrdersPrepared  int          `json:"orders_prepared"`
	AvgPrepTime     int          `json:"avg_prep_time"`
	CallsCount      int          `json:"calls_count"`
	AvgResponseTime int          `json:"avg_response_time"`
}

func (e Evaluation) ToResponse() EvaluationResponse {
	resp := EvaluationResponse{
		ID:              e.ID,
		EmployeeID:      e.EmployeeID,
		Date:            e.Date.Format("2006-01-02"),
		Score:           e.Score,
		Rating:          e.Rating,
		SpeedScore:      e.SpeedScore,
		AccuracyScore:   e.AccuracyScore,
		QualityScore:    e.QualityScore,
		DisciplineScore: e.DisciplineScore,
		OrdersPrepared:  e.OrdersPrepared,
		AvgPrepTime:     e.AvgPrepTime,
		CallsCount:      e.CallsCount,
		AvgResponseTime: e.AvgResponseTime,
	}
	if e.EmployeeName != nil {
		resp.EmployeeName = *e.EmployeeName
	}
	return resp
}
