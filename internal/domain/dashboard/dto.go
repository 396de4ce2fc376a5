package dashboard

// RecentActivity is one row of the dashboard's recent check-in feed.
type RecentActivity struct {
	EmployeeName string  `json:"employee_name"`
	Action       string  `json:"action"`
	Time         *string `json:"time"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
}

// TypeBreakdown totals the current month's expenses for one classified type.
type TypeBreakdown struct {
	ExpenseType string  `json:"expense_type"`
	Total       float64 `json:"total"`
}

// Summary is the aggregate dashboard payload. Degraded marks the typed
// zero-value fallback served when the database is unreachable.
type Summary struct {
	TotalEmployees   int64            `json:"total_employees"`
	PresentToday     int64            `json:"present_today"`
	LateToday        int64            `json:"late_today"`
	AbsentToday      int64            `json:"absent_today"`
	TotalExpenses    float64          `json:"total_expenses"`
	RecentAttendance []RecentActivity `json:"recent_attendance"`
	ExpenseBreakdown []TypeBreakdown  `json:"expense_breakdown"`
	Degraded         bool             `json:"degraded,omitempty"`
}
