package dashboard

import (
	"context"
	"time"
)

// DashboardRepository aggregates counts for the dashboard read.
type DashboardRepository interface {
	// CountEmployees returns the total number of employees
	CountEmployees(ctx context.Context) (int64, error)

	// CountAttendanceStatuses returns today's Present/Late/Absent counts
	CountAttendanceStatuses(ctx context.Context, date time.Time) (present, late, absent int64, err error)

	// SumApprovedExpensesSince totals Approved expenses dated on or after from
	SumApprovedExpensesSince(ctx context.Context, from time.Time) (float64, error)

	// RecentAttendance returns the latest check-in rows, newest first
	RecentAttendance(ctx context.Context, limit int) ([]RecentActivity, error)

	// ExpensesSince returns raw expense rows dated on or after from, for
	// type classification in the service layer
	ExpensesSince(ctx context.Context, from time.Time) ([]ExpenseRow, error)
}

// ExpenseRow is the minimal projection the breakdown needs.
type ExpenseRow struct {
	Category    string
	Description *string
	ExpenseType *string
	Amount      float64
}
