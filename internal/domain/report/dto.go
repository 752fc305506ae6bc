package report

// LeaderboardEntry is one row of the monthly top-employees board.
type LeaderboardEntry struct {
	Rank       int    `json:"rank"`
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	AvatarURL  string `json:"avatar_url,omitempty"`
	Department string `json:"department,omitempty"`
	// Score is the month's average evaluation score, rounded.
	Score int `json:"score"`
	// Production is total orders prepared plus calls handled in the month.
	Production int `json:"production"`
}

// OvertimeEntry summarizes one employee's overtime for a month.
type OvertimeEntry struct {
	EmployeeID    string  `json:"employee_id"`
	Name          string  `json:"name"`
	Department    string  `json:"department,omitempty"`
	OvertimeHours float64 `json:"overtime_hours"`
	DaysWorked    int     `json:"days_worked"`
}

// AttendanceSheetRow is one employee-day line of the monthly attendance
// sheet, also rendered into the PDF export.
type AttendanceSheetRow struct {
	Date          string  `json:"date"`
	EmployeeName  string  `json:"employee_name"`
	Department    string  `json:"department,omitempty"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	DelayMinutes  int     `json:"delay_minutes"`
	WorkHours     float64 `json:"work_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	Rating        string  `json:"rating"`
}
