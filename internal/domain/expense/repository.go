package expense

import (
	"context"
)

// ExpenseRepository defines data access methods for expense records.
type ExpenseRepository interface {
	// Create creates a new expense and returns it with its generated identity
	Create(ctx context.Context, exp Expense) (Expense, error)

	// GetByID retrieves an expense by ID, joined with the employee name
	GetByID(ctx context.Context, id int64) (Expense, error)

	// List retrieves expenses with filters, joined with employee names,
	// newest first
	List(ctx context.Context, filter ExpenseFilter) ([]Expense, error)

	// Update updates an existing expense
	Update(ctx context.Context, exp Expense) (Expense, error)

	// Delete removes an expense by ID
	Delete(ctx context.Context, id int64) error
}
