package expense

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(f float64) *float64 { return &f }

func TestCreateExpenseRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateExpenseRequest
		wantErr bool
	}{
		{"valid", CreateExpenseRequest{
			EmployeeID: 1, Category: "Office supplies", Amount: 20, Date: "2025-03-10",
		}, false},
		{"missing employee", CreateExpenseRequest{
			Category: "Office supplies", Amount: 20, Date: "2025-03-10",
		}, true},
		{"zero amount without kilometers", CreateExpenseRequest{
			EmployeeID: 1, Category: "Taxi", Date: "2025-03-10",
		}, true},
		{"zero amount with kilometers", CreateExpenseRequest{
			EmployeeID: 1, Category: "Taxi", Date: "2025-03-10", Kilometers: floatPtr(12),
		}, false},
		{"negative amount", CreateExpenseRequest{
			EmployeeID: 1, Category: "Taxi", Amount: -5, Date: "2025-03-10",
		}, true},
		{"bad date", CreateExpenseRequest{
			EmployeeID: 1, Category: "Taxi", Amount: 20, Date: "10-03-2025",
		}, true},
		{"bad status", CreateExpenseRequest{
			EmployeeID: 1, Category: "Taxi", Amount: 20, Date: "2025-03-10",
			Status: strPtr("Settled"),
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// An update never reassigns the owning employee, so a body without
// employee_id must pass validation.
func TestUpdateExpenseRequest_Validate_NoEmployeeRequired(t *testing.T) {
	req := UpdateExpenseRequest{
		ID: 7,
		CreateExpenseRequest: CreateExpenseRequest{
			Category: "Office supplies",
			Amount:   35,
			Date:     "2025-03-10",
		},
	}

	assert.NoError(t, req.Validate())
}

func TestUpdateExpenseRequest_Validate_StillChecksFields(t *testing.T) {
	req := UpdateExpenseRequest{
		ID: 7,
		CreateExpenseRequest: CreateExpenseRequest{
			Category: "",
			Amount:   -1,
			Date:     "bad",
		},
	}

	assert.Error(t, req.Validate())
}
