package attendance

import "time"

// ToggleStatus tells the caller which transition the toggle performed.
type ToggleStatus string

const (
	ToggleCheckedIn  ToggleStatus = "CHECKED_IN"
	ToggleCheckedOut ToggleStatus = "CHECKED_OUT"
	// ToggleDayComplete means the day was already closed; nothing was written.
	ToggleDayComplete ToggleStatus = "DAY_COMPLETE"
)

type ToggleResponse struct {
	Status        ToggleStatus `json:"status"`
	Rating        Rating       `json:"rating,omitempty"`
	DelayMinutes  int          `json:"delay_minutes"`
	Score         int          `json:"score,omitempty"`
	WorkHours     float64      `json:"work_hours,omitempty"`
	OvertimeHours float64      `json:"overtime_hours,omitempty"`
	Department    string       `json:"department,omitempty"`
}

type RecordResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name,omitempty"`
	Department    string  `json:"department,omitempty"`
	Date          string  `json:"date"`
	CheckIn       *string `json:"check_in"`
	CheckOut      *string `json:"check_out"`
	DelayMinutes  int     `json:"delay_minutes"`
	WorkHours     float64 `json:"work_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	Score         int     `json:"score"`
	Rating        Rating  `json:"rating"`
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02 15:04:05")
	return &s
}

// ToResponse maps a Record to its transport shape.
func (r Record) ToResponse() RecordResponse {
	resp := RecordResponse{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		Date:          r.Date.Format("2006-01-02"),
		CheckIn:       timePtrToString(r.CheckIn),
		CheckOut:      timePtrToString(r.CheckOut),
		DelayMinutes:  r.DelayMinutes,
		WorkHours:     r.WorkHours,
		OvertimeHours: r.OvertimeHours,
		Score:         r.Score,
		Rating:        r.Rating,
	}
	if r.EmployeeName != nil {
		resp.EmployeeName = *r.EmployeeName
	}
	if r.DepartmentName != nil {
		resp.Department = *r.DepartmentName
	}
	return resp
}
