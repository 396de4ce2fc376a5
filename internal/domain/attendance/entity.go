package attendance

import (
	"time"
)

// Status values for a day's attendance record.
const (
	StatusPresent = "Present"
	StatusLate    = "Late"
	StatusAbsent  = "Absent"
)

// Attendance is one canonical record per (employee, date). Shift times are
// clock-time strings ("HH:MM"); a nil shift field means no punch was recorded.
type Attendance struct {
	ID         int64
	EmployeeID int64
	Date       time.Time
	Shift1In   *string
	Shift1Out  *string
	Shift2In   *string
	Shift2Out  *string
	TotalHours float64
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
}
