package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/dashboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDashboardRepo struct {
	countErr    error
	deadlineSet bool
}

func (s *stubDashboardRepo) CountEmployees(ctx context.Context) (int64, error) {
	_, s.deadlineSet = ctx.Deadline()
	if s.countErr != nil {
		return 0, s.countErr
	}
	return 3, nil
}

func (s *stubDashboardRepo) CountAttendanceStatuses(ctx context.Context, date time.Time) (int64, int64, int64, error) {
	return 2, 1, 0, nil
}

func (s *stubDashboardRepo) SumApprovedExpensesSince(ctx context.Context, from time.Time) (float64, error) {
	return 150.50, nil
}

func (s *stubDashboardRepo) RecentAttendance(ctx context.Context, limit int) ([]dashboard.RecentActivity, error) {
	return []dashboard.RecentActivity{}, nil
}

func (s *stubDashboardRepo) ExpensesSince(ctx context.Context, from time.Time) ([]dashboard.ExpenseRow, error) {
	return []dashboard.ExpenseRow{}, nil
}

func TestGetSummary_BoundsQueriesWithDeadline(t *testing.T) {
	repo := &stubDashboardRepo{}
	svc := NewDashboardService(repo)

	summary, err := svc.GetSummary(context.Background())

	require.NoError(t, err)
	assert.True(t, repo.deadlineSet, "aggregation queries must run under a deadline")
	assert.False(t, summary.Degraded)
	assert.Equal(t, int64(3), summary.TotalEmployees)
	assert.Equal(t, int64(2), summary.PresentToday)
	assert.Equal(t, int64(1), summary.LateToday)
	assert.Equal(t, 150.50, summary.TotalExpenses)
}

func TestGetSummary_DegradesOnRepositoryFailure(t *testing.T) {
	repo := &stubDashboardRepo{countErr: errors.New("connection refused")}
	svc := NewDashboardService(repo)

	summary, err := svc.GetSummary(context.Background())

	require.NoError(t, err)
	assert.True(t, summary.Degraded)
	assert.Zero(t, summary.TotalEmployees)
	assert.NotNil(t, summary.RecentAttendance)
	assert.NotNil(t, summary.ExpenseBreakdown)
}
