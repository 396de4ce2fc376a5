package attendance

import (
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

// UpsertAttendanceRequest carries a day's punches for one employee. Shift
// fields are optional free-form punches; malformed times are treated as
// absent during reconciliation rather than rejected here, so the form never
// breaks on a bad punch. The identifying pair is always required.
type UpsertAttendanceRequest struct {
	EmployeeID int64   `json:"employee_id"`
	Date       string  `json:"date"`
	Shift1In   *string `json:"shift1_in"`
	Shift1Out  *string `json:"shift1_out"`
	Shift2In   *string `json:"shift2_in"`
	Shift2Out  *string `json:"shift2_out"`
	Status     *string `json:"status"`
}

func (r *UpsertAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.Status != nil && *r.Status != "" &&
		!validator.IsInSlice(*r.Status, []string{StatusPresent, StatusLate, StatusAbsent}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of Present, Late, Absent",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceFilter struct {
	EmployeeID *int64
	Date       *string
	StartDate  *string
	EndDate    *string
	Status     *string
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	for field, value := range map[string]*string{
		"date":       f.Date,
		"start_date": f.StartDate,
		"end_date":   f.EndDate,
	} {
		if value != nil && *value != "" {
			if _, ok := validator.IsValidDate(*value); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: field + " must be in YYYY-MM-DD format",
				})
			}
		}
	}

	if f.Status != nil && *f.Status != "" &&
		!validator.IsInSlice(*f.Status, []string{StatusPresent, StatusLate, StatusAbsent}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of Present, Late, Absent",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID           int64   `json:"id"`
	EmployeeID   int64   `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Date         string  `json:"date"`
	Shift1In     *string `json:"shift1_in"`
	Shift1Out    *string `json:"shift1_out"`
	Shift2In     *string `json:"shift2_in"`
	Shift2Out    *string `json:"shift2_out"`
	TotalHours   float64 `json:"total_hours"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		Date:         a.Date.Format("2006-01-02"),
		Shift1In:     a.Shift1In,
		Shift1Out:    a.Shift1Out,
		Shift2In:     a.Shift2In,
		Shift2Out:    a.Shift2Out,
		TotalHours:   a.TotalHours,
		Status:       a.Status,
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    a.UpdatedAt.Format(time.RFC3339),
	}
}

type ListAttendanceResponse struct {
	Attendance []AttendanceResponse `json:"attendance"`
}

// UpsertAttendanceResponse reports which way the reconciliation went.
type UpsertAttendanceResponse struct {
	Attendance AttendanceResponse `json:"attendance"`
	Message    string             `json:"message"`
}
