package employee

import (
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name       string   `json:"name"`
	Position   *string  `json:"position"`
	Department *string  `json:"department"`
	Email      *string  `json:"email"`
	Phone      *string  `json:"phone"`
	HireDate   *string  `json:"hire_date"`
	Salary     *float64 `json:"salary"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if r.HireDate != nil && *r.HireDate != "" {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Salary != nil && *r.Salary < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID         int64    `json:"-"`
	Name       string   `json:"name"`
	Position   *string  `json:"position"`
	Department *string  `json:"department"`
	Email      *string  `json:"email"`
	Phone      *string  `json:"phone"`
	HireDate   *string  `json:"hire_date"`
	Salary     *float64 `json:"salary"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	create := CreateEmployeeRequest{
		Name:     r.Name,
		Email:    r.Email,
		HireDate: r.HireDate,
		Salary:   r.Salary,
	}
	return create.Validate()
}

type EmployeeResponse struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Position   *string  `json:"position,omitempty"`
	Department *string  `json:"department,omitempty"`
	Email      *string  `json:"email,omitempty"`
	Phone      *string  `json:"phone,omitempty"`
	HireDate   *string  `json:"hire_date,omitempty"`
	Salary     *float64 `json:"salary,omitempty"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Position:   e.Position,
		Department: e.Department,
		Email:      e.Email,
		Phone:      e.Phone,
		Salary:     e.Salary,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  e.UpdatedAt.Format(time.RFC3339),
	}
	if e.HireDate != nil {
		hireDate := e.HireDate.Format("2006-01-02")
		resp.HireDate = &hireDate
	}
	return resp
}

// ListEmployeesResponse is the wire shape of GET /api/employees. Degraded is
// set when the database was unreachable and the list is an empty fallback.
type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Degraded  bool               `json:"degraded,omitempty"`
}

type SingleEmployeeResponse struct {
	Employee EmployeeResponse `json:"employee"`
}
