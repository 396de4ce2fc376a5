package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// ListEmployees returns all employees; degrades to an empty list with
	// the Degraded flag set when the database is unreachable
	ListEmployees(ctx context.Context) (ListEmployeesResponse, error)

	// GetEmployee retrieves one employee by ID
	GetEmployee(ctx context.Context, id int64) (SingleEmployeeResponse, error)

	// CreateEmployee creates a new employee
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (SingleEmployeeResponse, error)

	// UpdateEmployee updates an existing employee
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (SingleEmployeeResponse, error)

	// DeleteEmployee removes an employee and all owned records
	DeleteEmployee(ctx context.Context, id int64) (string, error)
}
