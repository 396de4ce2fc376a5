package report

import (
	"context"
	"testing"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/expense"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The stubs embed their interfaces so only the methods a report actually
// loads need implementations.

type stubAttendanceRepo struct {
	attendance.AttendanceRepository
	records     []attendance.Attendance
	deadlineSet bool
}

func (s *stubAttendanceRepo) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, error) {
	_, s.deadlineSet = ctx.Deadline()
	return s.records, nil
}

type stubExpenseRepo struct {
	expense.ExpenseRepository
	expenses []expense.Expense
}

func (s *stubExpenseRepo) List(ctx context.Context, filter expense.ExpenseFilter) ([]expense.Expense, error) {
	return s.expenses, nil
}

func strPtr(s string) *string {
	return &s
}

func TestGeneratePrintable_BoundsQueriesWithDeadline(t *testing.T) {
	attendanceRepo := &stubAttendanceRepo{
		records: []attendance.Attendance{
			{
				Date:         time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
				EmployeeName: strPtr("Jane Roe"),
				Shift1In:     strPtr("09:00"),
				Shift1Out:    strPtr("17:00"),
				TotalHours:   8,
				Status:       attendance.StatusPresent,
			},
		},
	}
	svc := NewReportService(attendanceRepo, &stubExpenseRepo{}, nil, nil)

	doc, err := svc.GeneratePrintable(context.Background(), report.ReportRequest{Type: report.TypeAttendance})

	require.NoError(t, err)
	assert.True(t, attendanceRepo.deadlineSet, "report data loading must run under a deadline")
	assert.Equal(t, "text/html; charset=utf-8", doc.ContentType)
	assert.Equal(t, "attendance-report.html", doc.Filename)
	assert.Contains(t, string(doc.Body), "Jane Roe")
}

func TestGeneratePrintable_UnknownType(t *testing.T) {
	svc := NewReportService(&stubAttendanceRepo{}, &stubExpenseRepo{}, nil, nil)

	_, err := svc.GeneratePrintable(context.Background(), report.ReportRequest{Type: "payroll"})

	assert.ErrorIs(t, err, report.ErrUnknownReportType)
}

func TestGenerateWorkbook_TravelFiltersClassifiedRows(t *testing.T) {
	expenseRepo := &stubExpenseRepo{
		expenses: []expense.Expense{
			{
				EmployeeName: strPtr("Jane Roe"),
				Category:     "Taxi to client site",
				Amount:       40,
				Date:         time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
				Status:       expense.StatusApproved,
			},
			{
				EmployeeName: strPtr("Jane Roe"),
				Category:     "Team lunch",
				Amount:       25,
				Date:         time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
				Status:       expense.StatusApproved,
			},
		},
	}
	svc := NewReportService(&stubAttendanceRepo{}, expenseRepo, nil, nil)

	doc, err := svc.GenerateWorkbook(context.Background(), report.ReportRequest{Type: report.TypeTravel})

	require.NoError(t, err)
	assert.Equal(t, "travel-report.xlsx", doc.Filename)
	assert.NotEmpty(t, doc.Body)
}
