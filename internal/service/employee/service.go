package employee

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
}

func NewEmployeeService(db *database.DB, employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepo,
	}
}

// ListEmployees implements employee.EmployeeService. A connectivity failure
// degrades to an empty list with the Degraded flag set so the admin UI never
// blocks on a dead database; the cause is logged, not swallowed.
func (e *EmployeeServiceImpl) ListEmployees(ctx context.Context) (employee.ListEmployeesResponse, error) {
	employees, err := e.EmployeeRepository.List(ctx)
	if err != nil {
		slog.Error("employee list degraded to empty fallback", "error", err)
		return employee.ListEmployeesResponse{
			Employees: []employee.EmployeeResponse{},
			Degraded:  true,
		}, nil
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}

	return employee.ListEmployeesResponse{Employees: responses}, nil
}

// GetEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) GetEmployee(ctx context.Context, id int64) (employee.SingleEmployeeResponse, error) {
	emp, err := e.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.SingleEmployeeResponse{}, err
	}

	return employee.SingleEmployeeResponse{Employee: employee.ToResponse(emp)}, nil
}

// CreateEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.SingleEmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.SingleEmployeeResponse{}, err
	}

	emp := employee.Employee{
		Name:       req.Name,
		Position:   req.Position,
		Department: req.Department,
		Email:      req.Email,
		Phone:      req.Phone,
		Salary:     req.Salary,
	}

	if req.HireDate != nil && *req.HireDate != "" {
		hireDate, err := time.Parse("2006-01-02", *req.HireDate)
		if err != nil {
			return employee.SingleEmployeeResponse{}, fmt.Errorf("failed to parse hire_date: %w", err)
		}
		emp.HireDate = &hireDate
	}

	created, err := e.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		return employee.SingleEmployeeResponse{}, err
	}

	return employee.SingleEmployeeResponse{Employee: employee.ToResponse(created)}, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.SingleEmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.SingleEmployeeResponse{}, err
	}

	emp := employee.Employee{
		ID:         req.ID,
		Name:       req.Name,
		Position:   req.Position,
		Department: req.Department,
		Email:      req.Email,
		Phone:      req.Phone,
		Salary:     req.Salary,
	}

	if req.HireDate != nil && *req.HireDate != "" {
		hireDate, err := time.Parse("2006-01-02", *req.HireDate)
		if err != nil {
			return employee.SingleEmployeeResponse{}, fmt.Errorf("failed to parse hire_date: %w", err)
		}
		emp.HireDate = &hireDate
	}

	updated, err := e.EmployeeRepository.Update(ctx, emp)
	if err != nil {
		return employee.SingleEmployeeResponse{}, err
	}

	return employee.SingleEmployeeResponse{Employee: employee.ToResponse(updated)}, nil
}

// DeleteEmployee implements employee.EmployeeService.
func (e *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id int64) (string, error) {
	emp, err := e.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	if err := e.EmployeeRepository.Delete(ctx, id); err != nil {
		return "", err
	}

	return fmt.Sprintf("Employee %q and all related records removed", emp.Name), nil
}
