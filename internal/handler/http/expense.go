package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/expense"
	"github.com/staffdesk/staffdesk-backend-go/internal/handler/http/response"
)

type ExpenseHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type expenseHandlerImpl struct {
	expenseService expense.ExpenseService
}

func NewExpenseHandler(expenseService expense.ExpenseService) ExpenseHandler {
	return &expenseHandlerImpl{
		expenseService: expenseService,
	}
}

// List implements ExpenseHandler.
func (h *expenseHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := expense.ExpenseFilter{}

	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		id, err := strconv.ParseInt(employeeID, 10, 64)
		if err != nil {
			response.BadRequest(w, "Invalid employee_id", nil)
			return
		}
		filter.EmployeeID = &id
	}

	if expenseType := r.URL.Query().Get("expense_type"); expenseType != "" {
		filter.ExpenseType = &expenseType
	}

	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}

	if startDate := r.URL.Query().Get("start_date"); startDate != "" {
		filter.StartDate = &startDate
	}

	if endDate := r.URL.Query().Get("end_date"); endDate != "" {
		filter.EndDate = &endDate
	}

	results, err := h.expenseService.ListExpenses(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, results)
}

// Create implements ExpenseHandler.
func (h *expenseHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req expense.CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.expenseService.CreateExpense(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, result)
}

// Update implements ExpenseHandler.
func (h *expenseHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid expense ID", nil)
		return
	}

	var req expense.UpdateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.expenseService.UpdateExpense(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, result)
}

// Delete implements ExpenseHandler.
func (h *expenseHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		response.BadRequest(w, "Invalid expense ID", nil)
		return
	}

	if err := h.expenseService.DeleteExpense(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Message(w, "Expense deleted")
}

// Summary implements ExpenseHandler.
func (h *expenseHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	result, err := h.expenseService.Summary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, result)
}
