package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// Reconcile derives total hours and status from a day's punches and
	// persists exactly one record per (employee, date)
	Reconcile(ctx context.Context, req UpsertAttendanceRequest) (UpsertAttendanceResponse, error)

	// ListAttendance retrieves attendance records with filters
	ListAttendance(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)

	// DeleteAttendance removes an attendance record by ID
	DeleteAttendance(ctx context.Context, id int64) error
}
