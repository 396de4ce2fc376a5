package dashboard

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/dashboard"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/expense"
)

const (
	recentActivityLimit = 10

	// queryTimeout bounds the multi-query aggregation so a stalled
	// database surfaces as a timeout instead of hanging the request.
	queryTimeout = 10 * time.Second
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
}

func NewDashboardService(dashboardRepo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{DashboardRepository: dashboardRepo}
}

// GetSummary implements dashboard.DashboardService. Any aggregation failure
// degrades to a typed zero-value payload; the dashboard never hangs or 500s
// on a dead database.
func (d *DashboardServiceImpl) GetSummary(ctx context.Context) (dashboard.Summary, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	totalEmployees, err := d.DashboardRepository.CountEmployees(ctx)
	if err != nil {
		slog.Error("dashboard degraded to fallback payload", "error", err)
		return degradedSummary(), nil
	}

	present, late, absent, err := d.DashboardRepository.CountAttendanceStatuses(ctx, today)
	if err != nil {
		slog.Error("dashboard degraded to fallback payload", "error", err)
		return degradedSummary(), nil
	}

	totalExpenses, err := d.DashboardRepository.SumApprovedExpensesSince(ctx, monthStart)
	if err != nil {
		slog.Error("dashboard degraded to fallback payload", "error", err)
		return degradedSummary(), nil
	}

	recent, err := d.DashboardRepository.RecentAttendance(ctx, recentActivityLimit)
	if err != nil {
		slog.Error("dashboard degraded to fallback payload", "error", err)
		return degradedSummary(), nil
	}
	if recent == nil {
		recent = []dashboard.RecentActivity{}
	}

	rows, err := d.DashboardRepository.ExpensesSince(ctx, monthStart)
	if err != nil {
		slog.Error("dashboard degraded to fallback payload", "error", err)
		return degradedSummary(), nil
	}

	return dashboard.Summary{
		TotalEmployees:   totalEmployees,
		PresentToday:     present,
		LateToday:        late,
		AbsentToday:      absent,
		TotalExpenses:    totalExpenses,
		RecentAttendance: recent,
		ExpenseBreakdown: breakdownByType(rows),
	}, nil
}

// breakdownByType buckets raw expense rows by classified type, largest first.
func breakdownByType(rows []dashboard.ExpenseRow) []dashboard.TypeBreakdown {
	totals := map[string]float64{}
	for _, row := range rows {
		expenseType := expense.Classify(row.ExpenseType, row.Category, row.Description)
		totals[expenseType] += row.Amount
	}

	breakdown := make([]dashboard.TypeBreakdown, 0, len(totals))
	for expenseType, total := range totals {
		breakdown = append(breakdown, dashboard.TypeBreakdown{
			ExpenseType: expenseType,
			Total:       total,
		})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		return breakdown[i].Total > breakdown[j].Total
	})

	return breakdown
}

func degradedSummary() dashboard.Summary {
	return dashboard.Summary{
		RecentAttendance: []dashboard.RecentActivity{},
		ExpenseBreakdown: []dashboard.TypeBreakdown{},
		Degraded:         true,
	}
}
