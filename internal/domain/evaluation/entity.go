package evaluation

import "time"

// VerbalRating bands a weighted score for display.
type VerbalRating string

const (
	RatingExcellent VerbalRating = "EXCELLENT"
	RatingVeryGood  VerbalRating = "VERY_GOOD"
	RatingGood      VerbalRating = "GOOD"
	RatingFair      VerbalRating = "FAIR"
	RatingPoor      VerbalRating = "POOR"
)

// BandScore maps a final weighted score to its verbal rating.
func BandScore(score int) VerbalRating {
	switch {
	case score >= 90:
		return RatingExcellent
	case score >= 80:
		return RatingVeryGood
	case score >= 70:
		return RatingGood
	case score >= 50:
		return RatingFair
	default:
		return RatingPoor
	}
}

// Evaluation is one employee-day of weighted performance scoring, upserted by
// a supervisor. Speed is derived from volume against the department's daily
// target; the remaining scores are entered manually.
type Evaluation struct {
	ID         string
	EmployeeID string
	Date       time.Time

	Score  int
	Rating VerbalRating

	SpeedScore      int
	AccuracyScore   int
	QualityScore    int
	DisciplineScore int

	// Operational counters, split by department kind.
	OrdersPrepared  int
	AvgPrepTime     int
	CallsCount      int
	AvgResponseTime int

	CreatedAt time.Time
	UpdatedAt time.Time

	EmployeeName *string
}
