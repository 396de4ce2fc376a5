package expense

import (
	"time"
)

// Approval status values for an expense.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

type Expense struct {
	ID            int64
	EmployeeID    int64
	Category      string
	Description   *string
	Amount        float64
	Date          time.Time
	Status        string
	Kilometers    *float64
	ExpenseType   *string
	ReceiptNumber *string
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// DTO
	EmployeeName *string
}
