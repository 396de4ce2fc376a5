package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/expense"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

type expenseRepository struct {
	db *database.DB
}

// Create implements expense.ExpenseRepository.
func (e *expenseRepository) Create(ctx context.Context, newExpense expense.Expense) (expense.Expense, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO expenses (
			employee_id, category, description, amount, date, status,
			kilometers, expense_type, receipt_number, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newExpense.EmployeeID,
		newExpense.Category,
		newExpense.Description,
		newExpense.Amount,
		newExpense.Date,
		newExpense.Status,
		newExpense.Kilometers,
		newExpense.ExpenseType,
		newExpense.ReceiptNumber,
		newExpense.Notes,
	).Scan(&newExpense.ID, &newExpense.CreatedAt, &newExpense.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return expense.Expense{}, expense.ErrEmployeeNotFound
		}
		return expense.Expense{}, fmt.Errorf("failed to create expense: %w", err)
	}

	return newExpense, nil
}

// GetByID implements expense.ExpenseRepository.
func (e *expenseRepository) GetByID(ctx context.Context, id int64) (expense.Expense, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT x.id, x.employee_id, x.category, x.description, x.amount, x.date,
			   x.status, x.kilometers, x.expense_type, x.receipt_number, x.notes,
			   x.created_at, x.updated_at,
			   e.name AS employee_name
		FROM expenses x
		JOIN employees e ON e.id = x.employee_id
		WHERE x.id = $1
	`

	var exp expense.Expense
	err := q.QueryRow(ctx, query, id).Scan(
		&exp.ID, &exp.EmployeeID, &exp.Category, &exp.Description, &exp.Amount, &exp.Date,
		&exp.Status, &exp.Kilometers, &exp.ExpenseType, &exp.ReceiptNumber, &exp.Notes,
		&exp.CreatedAt, &exp.UpdatedAt,
		&exp.EmployeeName,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return expense.Expense{}, expense.ErrExpenseNotFound
		}
		return expense.Expense{}, fmt.Errorf("failed to get expense by ID: %w", err)
	}

	return exp, nil
}

// List implements expense.ExpenseRepository.
func (e *expenseRepository) List(ctx context.Context, filter expense.ExpenseFilter) ([]expense.Expense, error) {
	q := GetQuerier(ctx, e.db)

	// Build WHERE clause. expense_type filtering happens in the service
	// layer, where the classifier re-derives missing types.
	baseWhere := "1 = 1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		baseWhere += fmt.Sprintf(" AND x.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND x.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND x.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND x.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	selectQuery := fmt.Sprintf(`
		SELECT x.id, x.employee_id, x.category, x.description, x.amount, x.date,
			   x.status, x.kilometers, x.expense_type, x.receipt_number, x.notes,
			   x.created_at, x.updated_at,
			   e.name AS employee_name
		FROM expenses x
		JOIN employees e ON e.id = x.employee_id
		WHERE %s
		ORDER BY x.date DESC, x.id DESC
	`, baseWhere)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []expense.Expense
	for rows.Next() {
		var exp expense.Expense
		err := rows.Scan(
			&exp.ID, &exp.EmployeeID, &exp.Category, &exp.Description, &exp.Amount, &exp.Date,
			&exp.Status, &exp.Kilometers, &exp.ExpenseType, &exp.ReceiptNumber, &exp.Notes,
			&exp.CreatedAt, &exp.UpdatedAt,
			&exp.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, exp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expense rows: %w", err)
	}

	return expenses, nil
}

// Update implements expense.ExpenseRepository.
func (e *expenseRepository) Update(ctx context.Context, exp expense.Expense) (expense.Expense, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE expenses
		SET category = $1, description = $2, amount = $3, date = $4, status = $5,
			kilometers = $6, expense_type = $7, receipt_number = $8, notes = $9,
			updated_at = NOW()
		WHERE id = $10
		RETURNING employee_id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		exp.Category,
		exp.Description,
		exp.Amount,
		exp.Date,
		exp.Status,
		exp.Kilometers,
		exp.ExpenseType,
		exp.ReceiptNumber,
		exp.Notes,
		exp.ID,
	).Scan(&exp.EmployeeID, &exp.CreatedAt, &exp.UpdatedAt)

	if err != nil {
		if err == pgx.ErrNoRows {
			return expense.Expense{}, expense.ErrExpenseNotFound
		}
		return expense.Expense{}, fmt.Errorf("failed to update expense: %w", err)
	}

	return exp, nil
}

// Delete implements expense.ExpenseRepository.
func (e *expenseRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, e.db)

	query := `DELETE FROM expenses WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return expense.ErrExpenseNotFound
	}

	return nil
}

func NewExpenseRepository(db *database.DB) expense.ExpenseRepository {
	return &expenseRepository{db: db}
}
