package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/dashboard"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

// CountEmployees implements dashboard.DashboardRepository.
func (d *dashboardRepository) CountEmployees(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, d.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return total, nil
}

// CountAttendanceStatuses implements dashboard.DashboardRepository.
func (d *dashboardRepository) CountAttendanceStatuses(ctx context.Context, date time.Time) (int64, int64, int64, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'Present') AS present,
			COUNT(*) FILTER (WHERE status = 'Late') AS late,
			COUNT(*) FILTER (WHERE status = 'Absent') AS absent
		FROM attendance
		WHERE date = $1
	`

	var present, late, absent int64
	if err := q.QueryRow(ctx, query, date).Scan(&present, &late, &absent); err != nil {
		return 0, 0, 0, fmt.Errorf("failed to count attendance statuses: %w", err)
	}

	return present, late, absent, nil
}

// SumApprovedExpensesSince implements dashboard.DashboardRepository.
func (d *dashboardRepository) SumApprovedExpensesSince(ctx context.Context, from time.Time) (float64, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE date >= $1
		  AND status = 'Approved'
	`

	var total float64
	if err := q.QueryRow(ctx, query, from).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum approved expenses: %w", err)
	}

	return total, nil
}

// RecentAttendance implements dashboard.DashboardRepository.
func (d *dashboardRepository) RecentAttendance(ctx context.Context, limit int) ([]dashboard.RecentActivity, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT e.name, a.shift1_in, a.date, a.status
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		ORDER BY a.date DESC, a.shift1_in DESC NULLS LAST
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent attendance: %w", err)
	}
	defer rows.Close()

	var activities []dashboard.RecentActivity
	for rows.Next() {
		var act dashboard.RecentActivity
		var date time.Time
		if err := rows.Scan(&act.EmployeeName, &act.Time, &date, &act.Status); err != nil {
			return nil, fmt.Errorf("failed to scan recent attendance: %w", err)
		}
		act.Action = "Check In"
		act.Date = date.Format("2006-01-02")
		activities = append(activities, act)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recent attendance rows: %w", err)
	}

	return activities, nil
}

// ExpensesSince implements dashboard.DashboardRepository.
func (d *dashboardRepository) ExpensesSince(ctx context.Context, from time.Time) ([]dashboard.ExpenseRow, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT category, description, expense_type, amount
		FROM expenses
		WHERE date >= $1
	`

	rows, err := q.Query(ctx, query, from)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses for breakdown: %w", err)
	}
	defer rows.Close()

	var expenses []dashboard.ExpenseRow
	for rows.Next() {
		var row dashboard.ExpenseRow
		if err := rows.Scan(&row.Category, &row.Description, &row.ExpenseType, &row.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expense breakdown rows: %w", err)
	}

	return expenses, nil
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}
