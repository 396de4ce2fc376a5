package report

import (
	"context"
	"fmt"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/expense"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/report"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/settings"
)

// workingDaysPerMonth converts a monthly salary into an hourly rate together
// with the configured working hours per day.
const workingDaysPerMonth = 22

// queryTimeout bounds report data loading so a stalled database surfaces as
// a timeout instead of hanging the request.
const queryTimeout = 10 * time.Second

type ReportServiceImpl struct {
	attendance.AttendanceRepository
	expense.ExpenseRepository
	employee.EmployeeRepository
	settings.SettingsRepository
}

func NewReportService(
	attendanceRepo attendance.AttendanceRepository,
	expenseRepo expense.ExpenseRepository,
	employeeRepo employee.EmployeeRepository,
	settingsRepo settings.SettingsRepository,
) report.ReportService {
	return &ReportServiceImpl{
		AttendanceRepository: attendanceRepo,
		ExpenseRepository:    expenseRepo,
		EmployeeRepository:   employeeRepo,
		SettingsRepository:   settingsRepo,
	}
}

// table is the common shape every report renders to: a title, column
// headers, and stringly-typed rows.
type table struct {
	Title     string
	Period    string
	Columns   []string
	Rows      [][]string
	Generated string
}

// GeneratePrintable implements report.ReportService.
func (r *ReportServiceImpl) GeneratePrintable(ctx context.Context, req report.ReportRequest) (report.Document, error) {
	data, err := r.buildTable(ctx, req)
	if err != nil {
		return report.Document{}, err
	}

	body, err := renderPrintable(data)
	if err != nil {
		return report.Document{}, fmt.Errorf("%w: %v", report.ErrGenerationFailed, err)
	}

	return report.Document{
		ContentType: "text/html; charset=utf-8",
		Filename:    fmt.Sprintf("%s-report.html", req.Type),
		Body:        body,
	}, nil
}

// GenerateWorkbook implements report.ReportService.
func (r *ReportServiceImpl) GenerateWorkbook(ctx context.Context, req report.ReportRequest) (report.Document, error) {
	data, err := r.buildTable(ctx, req)
	if err != nil {
		return report.Document{}, err
	}

	body, err := renderWorkbook(data)
	if err != nil {
		return report.Document{}, fmt.Errorf("%w: %v", report.ErrGenerationFailed, err)
	}

	return report.Document{
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Filename:    fmt.Sprintf("%s-report.xlsx", req.Type),
		Body:        body,
	}, nil
}

func (r *ReportServiceImpl) buildTable(ctx context.Context, req report.ReportRequest) (table, error) {
	if err := req.Validate(); err != nil {
		return table{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var (
		data table
		err  error
	)
	switch req.Type {
	case report.TypeAttendance:
		data, err = r.attendanceTable(ctx, req)
	case report.TypeExpense:
		data, err = r.expenseTable(ctx, req, "")
	case report.TypeTravel:
		data, err = r.expenseTable(ctx, req, expense.TypeTravel)
	case report.TypeSalary:
		data, err = r.salaryTable(ctx, req)
	default:
		return table{}, report.ErrUnknownReportType
	}
	if err != nil {
		return table{}, err
	}

	data.Period = periodLabel(req)
	data.Generated = time.Now().Format("2006-01-02 15:04")
	return data, nil
}

func periodLabel(req report.ReportRequest) string {
	switch {
	case req.StartDate != "" && req.EndDate != "":
		return req.StartDate + " to " + req.EndDate
	case req.StartDate != "":
		return "from " + req.StartDate
	case req.EndDate != "":
		return "until " + req.EndDate
	default:
		return "all time"
	}
}

func rangeFilter(req report.ReportRequest) (start, end *string) {
	if req.StartDate != "" {
		start = &req.StartDate
	}
	if req.EndDate != "" {
		end = &req.EndDate
	}
	return start, end
}

func (r *ReportServiceImpl) attendanceTable(ctx context.Context, req report.ReportRequest) (table, error) {
	start, end := rangeFilter(req)
	records, err := r.AttendanceRepository.List(ctx, attendance.AttendanceFilter{
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return table{}, fmt.Errorf("failed to load attendance for report: %w", err)
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			rec.Date.Format("2006-01-02"),
			strOrDash(rec.EmployeeName),
			strOrDash(rec.Shift1In),
			strOrDash(rec.Shift1Out),
			strOrDash(rec.Shift2In),
			strOrDash(rec.Shift2Out),
			fmt.Sprintf("%.2f", rec.TotalHours),
			rec.Status,
		})
	}

	return table{
		Title:   "Attendance Report",
		Columns: []string{"Date", "Employee", "Shift 1 In", "Shift 1 Out", "Shift 2 In", "Shift 2 Out", "Total Hours", "Status"},
		Rows:    rows,
	}, nil
}

func (r *ReportServiceImpl) expenseTable(ctx context.Context, req report.ReportRequest, onlyType string) (table, error) {
	start, end := rangeFilter(req)
	expenses, err := r.ExpenseRepository.List(ctx, expense.ExpenseFilter{
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return table{}, fmt.Errorf("failed to load expenses for report: %w", err)
	}

	title := "Expense Report"
	if onlyType == expense.TypeTravel {
		title = "Travel Expense Report"
	}

	var total float64
	rows := make([][]string, 0, len(expenses))
	for _, exp := range expenses {
		expenseType := expense.ClassifyExpense(exp)
		if onlyType != "" && expenseType != onlyType {
			continue
		}
		rows = append(rows, []string{
			exp.Date.Format("2006-01-02"),
			strOrDash(exp.EmployeeName),
			exp.Category,
			expenseType,
			strOrDash(exp.Description),
			fmt.Sprintf("%.2f", exp.Amount),
			exp.Status,
		})
		total += exp.Amount
	}
	rows = append(rows, []string{"", "", "", "", "Total", fmt.Sprintf("%.2f", total), ""})

	return table{
		Title:   title,
		Columns: []string{"Date", "Employee", "Category", "Type", "Description", "Amount", "Status"},
		Rows:    rows,
	}, nil
}

func (r *ReportServiceImpl) salaryTable(ctx context.Context, req report.ReportRequest) (table, error) {
	employees, err := r.EmployeeRepository.List(ctx)
	if err != nil {
		return table{}, fmt.Errorf("failed to load employees for salary report: %w", err)
	}

	cfg, err := r.SettingsRepository.Get(ctx)
	if err != nil {
		cfg = settings.Defaults()
	}

	start, end := rangeFilter(req)
	rows := make([][]string, 0, len(employees))
	for _, emp := range employees {
		records, err := r.AttendanceRepository.List(ctx, attendance.AttendanceFilter{
			EmployeeID: &emp.ID,
			StartDate:  start,
			EndDate:    end,
		})
		if err != nil {
			return table{}, fmt.Errorf("failed to load attendance for salary report: %w", err)
		}

		var totalHours float64
		daysPresent := 0
		for _, rec := range records {
			totalHours += rec.TotalHours
			if rec.Status != attendance.StatusAbsent {
				daysPresent++
			}
		}

		var pay float64
		if emp.Salary != nil && cfg.WorkingHours > 0 {
			hourlyRate := *emp.Salary / (cfg.WorkingHours * workingDaysPerMonth)
			pay = totalHours * hourlyRate
		}

		rows = append(rows, []string{
			emp.Name,
			fmt.Sprintf("%d", daysPresent),
			fmt.Sprintf("%.2f", totalHours),
			floatOrDash(emp.Salary),
			fmt.Sprintf("%.2f", pay),
		})
	}

	return table{
		Title:   "Salary Report",
		Columns: []string{"Employee", "Days Present", "Total Hours", "Monthly Salary", "Earned Pay"},
		Rows:    rows,
	}, nil
}

func strOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func floatOrDash(f *float64) string {
	if f == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *f)
}
