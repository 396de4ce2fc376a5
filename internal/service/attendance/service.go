package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/settings"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	employee.EmployeeRepository
	settings.SettingsRepository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	settingsRepo settings.SettingsRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		SettingsRepository:   settingsRepo,
	}
}

// Reconcile implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Reconcile(ctx context.Context, req attendance.UpsertAttendanceRequest) (attendance.UpsertAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.UpsertAttendanceResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return attendance.UpsertAttendanceResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	// Resolve the employee first so a bad ID surfaces as not-found rather
	// than a constraint violation.
	emp, err := a.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.UpsertAttendanceResponse{}, err
	}

	// Malformed punches degrade to "no punch"; the form never breaks on them.
	shift1In := SanitizePunch(req.Shift1In)
	shift1Out := SanitizePunch(req.Shift1Out)
	shift2In := SanitizePunch(req.Shift2In)
	shift2Out := SanitizePunch(req.Shift2Out)

	totalHours := TotalHours(shift1In, shift1Out, shift2In, shift2Out)

	status := ""
	if req.Status != nil && *req.Status != "" {
		// A manual status selection always wins over the derived value.
		status = *req.Status
	} else {
		cfg, err := a.SettingsRepository.Get(ctx)
		if err != nil {
			slog.Error("falling back to default settings for status derivation", "error", err)
			cfg = settings.Defaults()
		}
		status = DeriveStatus(shift1In, cfg.WorkStart, cfg.LateThresholdMinutes)
	}

	record := attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Shift1In:   shift1In,
		Shift1Out:  shift1Out,
		Shift2In:   shift2In,
		Shift2Out:  shift2Out,
		TotalHours: totalHours,
		Status:     status,
	}

	result, created, err := a.AttendanceRepository.Upsert(ctx, record)
	if err != nil {
		return attendance.UpsertAttendanceResponse{}, fmt.Errorf("failed to reconcile attendance: %w", err)
	}
	result.EmployeeName = &emp.Name

	message := "Attendance record updated"
	if created {
		message = "Attendance record created"
	}

	return attendance.UpsertAttendanceResponse{
		Attendance: attendance.ToResponse(result),
		Message:    message,
	}, nil
}

// ListAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, attendance.ToResponse(record))
	}

	return attendance.ListAttendanceResponse{Attendance: responses}, nil
}

// DeleteAttendance implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id int64) error {
	return a.AttendanceRepository.Delete(ctx, id)
}
