package expense

import (
	"context"
)

// ExpenseService defines business logic for expense operations
type ExpenseService interface {
	// ListExpenses retrieves expenses with filters, classified by type
	ListExpenses(ctx context.Context, filter ExpenseFilter) (ListExpensesResponse, error)

	// CreateExpense creates an expense; travel amounts may be derived from
	// kilometers at the configured rate
	CreateExpense(ctx context.Context, req CreateExpenseRequest) (SingleExpenseResponse, error)

	// UpdateExpense updates an existing expense
	UpdateExpense(ctx context.Context, req UpdateExpenseRequest) (SingleExpenseResponse, error)

	// DeleteExpense removes an expense by ID
	DeleteExpense(ctx context.Context, id int64) error

	// Summary totals all expenses partitioned by classified type
	Summary(ctx context.Context) (SummaryResponse, error)
}
