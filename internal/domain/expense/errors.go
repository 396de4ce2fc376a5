package expense

import "errors"

// Expense domain errors
var (
	ErrExpenseNotFound  = errors.New("expense not found")
	ErrEmployeeNotFound = errors.New("employee not found for expense")
)
