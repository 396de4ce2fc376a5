package report

import (
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

// Report types accepted by the generators.
const (
	TypeAttendance = "attendance"
	TypeExpense    = "expense"
	TypeTravel     = "travel"
	TypeSalary     = "salary"
)

type ReportRequest struct {
	Type      string
	StartDate string
	EndDate   string
}

// Validate checks the date range only. An unrecognized type is reported by
// the generators as ErrUnknownReportType so it surfaces as a bad request
// rather than a field validation failure.
func (r *ReportRequest) Validate() error {
	var errs validator.ValidationErrors

	for field, value := range map[string]string{
		"start_date": r.StartDate,
		"end_date":   r.EndDate,
	} {
		if value != "" {
			if _, ok := validator.IsValidDate(value); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: field + " must be in YYYY-MM-DD format",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Document is a rendered report ready to stream to the client.
type Document struct {
	ContentType string
	Filename    string
	Body        []byte
}
