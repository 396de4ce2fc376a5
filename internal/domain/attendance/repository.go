package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Upsert atomically inserts or updates the record for the
	// (employee_id, date) pair and reports whether a new row was created.
	// The statement relies on the table's unique constraint, so concurrent
	// submissions for the same pair can never produce two rows.
	Upsert(ctx context.Context, att Attendance) (Attendance, bool, error)

	// GetByEmployeeAndDate retrieves the record for one employee on one date
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (*Attendance, error)

	// List retrieves attendance records with filters, joined with employee names
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)

	// Delete removes an attendance record by ID
	Delete(ctx context.Context, id int64) error
}
