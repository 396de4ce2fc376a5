package employee

import (
	"context"
)

// EmployeeRepository defines data access methods for employee records.
type EmployeeRepository interface {
	// Create creates a new employee and returns it with its generated identity
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id int64) (Employee, error)

	// List retrieves all employees ordered by name
	List(ctx context.Context) ([]Employee, error)

	// Update updates an existing employee
	Update(ctx context.Context, emp Employee) (Employee, error)

	// Delete hard-deletes an employee; attendance and expenses cascade
	Delete(ctx context.Context, id int64) error
}
