package expense

import (
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type CreateExpenseRequest struct {
	EmployeeID    int64    `json:"employee_id"`
	Category      string   `json:"category"`
	Description   *string  `json:"description"`
	Amount        float64  `json:"amount"`
	Date          string   `json:"date"`
	Status        *string  `json:"status"`
	Kilometers    *float64 `json:"kilometers"`
	ExpenseType   *string  `json:"expense_type"`
	ReceiptNumber *string  `json:"receipt_number"`
	Notes         *string  `json:"notes"`
}

func (r *CreateExpenseRequest) Validate() error {
	return r.validate(true)
}

func (r *CreateExpenseRequest) validate(requireEmployee bool) error {
	var errs validator.ValidationErrors

	if requireEmployee && r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is required",
		})
	}

	// An amount may be derived from kilometers at the configured travel
	// rate, so zero is acceptable only when kilometers are supplied.
	if r.Amount < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must not be negative",
		})
	} else if r.Amount == 0 && (r.Kilometers == nil || *r.Kilometers <= 0) {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount is required unless kilometers are provided",
		})
	}

	if r.Kilometers != nil && *r.Kilometers < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "kilometers",
			Message: "kilometers must not be negative",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.Status != nil && *r.Status != "" &&
		!validator.IsInSlice(*r.Status, []string{StatusPending, StatusApproved, StatusRejected}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of Pending, Approved, Rejected",
		})
	}

	if r.ExpenseType != nil && *r.ExpenseType != "" &&
		!validator.IsInSlice(*r.ExpenseType, ValidTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "expense_type",
			Message: "expense_type must be one of General, Food, Office, Travel",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateExpenseRequest struct {
	ID int64 `json:"-"`
	CreateExpenseRequest
}

// Validate skips the employee_id requirement: an update never reassigns the
// owning employee, so the field is not part of the update contract.
func (r *UpdateExpenseRequest) Validate() error {
	return r.validate(false)
}

type ExpenseFilter struct {
	EmployeeID  *int64
	ExpenseType *string
	Status      *string
	StartDate   *string
	EndDate     *string
}

func (f *ExpenseFilter) Validate() error {
	var errs validator.ValidationErrors

	for field, value := range map[string]*string{
		"start_date": f.StartDate,
		"end_date":   f.EndDate,
	} {
		if value != nil && *value != "" {
			if _, ok := validator.IsValidDate(*value); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: field + " must be in YYYY-MM-DD format",
				})
			}
		}
	}

	if f.Status != nil && *f.Status != "" &&
		!validator.IsInSlice(*f.Status, []string{StatusPending, StatusApproved, StatusRejected}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of Pending, Approved, Rejected",
		})
	}

	if f.ExpenseType != nil && *f.ExpenseType != "" &&
		!validator.IsInSlice(*f.ExpenseType, ValidTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "expense_type",
			Message: "expense_type must be one of General, Food, Office, Travel",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ExpenseResponse struct {
	ID            int64    `json:"id"`
	EmployeeID    int64    `json:"employee_id"`
	EmployeeName  *string  `json:"employee_name,omitempty"`
	Category      string   `json:"category"`
	Description   *string  `json:"description,omitempty"`
	Amount        float64  `json:"amount"`
	Date          string   `json:"date"`
	Status        string   `json:"status"`
	Kilometers    *float64 `json:"kilometers,omitempty"`
	ExpenseType   string   `json:"expense_type"`
	ReceiptNumber *string  `json:"receipt_number,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

func ToResponse(e Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:            e.ID,
		EmployeeID:    e.EmployeeID,
		EmployeeName:  e.EmployeeName,
		Category:      e.Category,
		Description:   e.Description,
		Amount:        e.Amount,
		Date:          e.Date.Format("2006-01-02"),
		Status:        e.Status,
		Kilometers:    e.Kilometers,
		ExpenseType:   ClassifyExpense(e),
		ReceiptNumber: e.ReceiptNumber,
		Notes:         e.Notes,
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     e.UpdatedAt.Format(time.RFC3339),
	}
}

type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

type SingleExpenseResponse struct {
	Expense ExpenseResponse `json:"expense"`
}

// SummaryResponse totals expenses by classified type.
type SummaryResponse struct {
	TravelTotal  float64 `json:"travel_total"`
	FoodTotal    float64 `json:"food_total"`
	OfficeTotal  float64 `json:"office_total"`
	GeneralTotal float64 `json:"general_total"`
}
