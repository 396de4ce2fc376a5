package expense

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/expense"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/settings"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

type ExpenseServiceImpl struct {
	db *database.DB
	expense.ExpenseRepository
	settings.SettingsRepository
}

func NewExpenseService(
	db *database.DB,
	expenseRepo expense.ExpenseRepository,
	settingsRepo settings.SettingsRepository,
) expense.ExpenseService {
	return &ExpenseServiceImpl{
		db:                 db,
		ExpenseRepository:  expenseRepo,
		SettingsRepository: settingsRepo,
	}
}

// ListExpenses implements expense.ExpenseService. Type filtering happens
// here rather than in SQL because rows without a stored expense_type are
// classified on the fly.
func (e *ExpenseServiceImpl) ListExpenses(ctx context.Context, filter expense.ExpenseFilter) (expense.ListExpensesResponse, error) {
	if err := filter.Validate(); err != nil {
		return expense.ListExpensesResponse{}, err
	}

	expenses, err := e.ExpenseRepository.List(ctx, filter)
	if err != nil {
		return expense.ListExpensesResponse{}, fmt.Errorf("failed to list expenses: %w", err)
	}

	responses := make([]expense.ExpenseResponse, 0, len(expenses))
	for _, exp := range expenses {
		resp := expense.ToResponse(exp)
		if filter.ExpenseType != nil && *filter.ExpenseType != "" && resp.ExpenseType != *filter.ExpenseType {
			continue
		}
		responses = append(responses, resp)
	}

	return expense.ListExpensesResponse{Expenses: responses}, nil
}

// CreateExpense implements expense.ExpenseService.
func (e *ExpenseServiceImpl) CreateExpense(ctx context.Context, req expense.CreateExpenseRequest) (expense.SingleExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return expense.SingleExpenseResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return expense.SingleExpenseResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	amount := req.Amount
	if amount == 0 && req.Kilometers != nil && *req.Kilometers > 0 {
		// Travel amount derived from distance at the configured rate.
		cfg, err := e.SettingsRepository.Get(ctx)
		if err != nil {
			cfg = settings.Defaults()
		}
		amount = math.Round(*req.Kilometers*cfg.TravelRate*100) / 100
	}

	status := expense.StatusPending
	if req.Status != nil && *req.Status != "" {
		status = *req.Status
	}

	receiptNumber := req.ReceiptNumber
	if receiptNumber == nil || *receiptNumber == "" {
		generated := "RCPT-" + strings.ToUpper(uuid.NewString()[:8])
		receiptNumber = &generated
	}

	exp := expense.Expense{
		EmployeeID:    req.EmployeeID,
		Category:      req.Category,
		Description:   req.Description,
		Amount:        amount,
		Date:          date,
		Status:        status,
		Kilometers:    req.Kilometers,
		ExpenseType:   req.ExpenseType,
		ReceiptNumber: receiptNumber,
		Notes:         req.Notes,
	}

	created, err := e.ExpenseRepository.Create(ctx, exp)
	if err != nil {
		return expense.SingleExpenseResponse{}, err
	}

	return expense.SingleExpenseResponse{Expense: expense.ToResponse(created)}, nil
}

// UpdateExpense implements expense.ExpenseService.
func (e *ExpenseServiceImpl) UpdateExpense(ctx context.Context, req expense.UpdateExpenseRequest) (expense.SingleExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return expense.SingleExpenseResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return expense.SingleExpenseResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	status := expense.StatusPending
	if req.Status != nil && *req.Status != "" {
		status = *req.Status
	}

	exp := expense.Expense{
		ID:            req.ID,
		Category:      req.Category,
		Description:   req.Description,
		Amount:        req.Amount,
		Date:          date,
		Status:        status,
		Kilometers:    req.Kilometers,
		ExpenseType:   req.ExpenseType,
		ReceiptNumber: req.ReceiptNumber,
		Notes:         req.Notes,
	}

	updated, err := e.ExpenseRepository.Update(ctx, exp)
	if err != nil {
		return expense.SingleExpenseResponse{}, err
	}

	// Re-read the row so the response carries the employee name join, the
	// same shape list and create responses have.
	refreshed, err := e.ExpenseRepository.GetByID(ctx, updated.ID)
	if err != nil {
		return expense.SingleExpenseResponse{}, err
	}

	return expense.SingleExpenseResponse{Expense: expense.ToResponse(refreshed)}, nil
}

// DeleteExpense implements expense.ExpenseService.
func (e *ExpenseServiceImpl) DeleteExpense(ctx context.Context, id int64) error {
	return e.ExpenseRepository.Delete(ctx, id)
}

// Summary implements expense.ExpenseService.
func (e *ExpenseServiceImpl) Summary(ctx context.Context) (expense.SummaryResponse, error) {
	expenses, err := e.ExpenseRepository.List(ctx, expense.ExpenseFilter{})
	if err != nil {
		return expense.SummaryResponse{}, fmt.Errorf("failed to load expenses for summary: %w", err)
	}

	var summary expense.SummaryResponse
	for _, exp := range expenses {
		switch expense.ClassifyExpense(exp) {
		case expense.TypeTravel:
			summary.TravelTotal += exp.Amount
		case expense.TypeFood:
			summary.FoodTotal += exp.Amount
		case expense.TypeOffice:
			summary.OfficeTotal += exp.Amount
		default:
			summary.GeneralTotal += exp.Amount
		}
	}

	return summary, nil
}
