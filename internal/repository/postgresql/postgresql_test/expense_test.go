package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/expense"
	"github.com/staffdesk/staffdesk-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpenseRepository_GetByID_JoinsEmployeeName(t *testing.T) {
	db := requireTestDB(t)
	defer cleanupTestData(t, db)
	cleanupTestData(t, db)

	ctx := context.Background()
	emp := createTestEmployee(t, ctx, db)
	repo := postgresql.NewExpenseRepository(db)

	created, err := repo.Create(ctx, expense.Expense{
		EmployeeID: emp.ID,
		Category:   "Taxi to airport",
		Amount:     45,
		Date:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:     expense.StatusPending,
	})
	require.NoError(t, err)

	stored, err := repo.GetByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, stored.ID)
	assert.Equal(t, emp.ID, stored.EmployeeID)
	require.NotNil(t, stored.EmployeeName)
	assert.Equal(t, "Jane Roe", *stored.EmployeeName)
}

func TestExpenseRepository_Update_ThenGetByIDReflectsChanges(t *testing.T) {
	db := requireTestDB(t)
	defer cleanupTestData(t, db)
	cleanupTestData(t, db)

	ctx := context.Background()
	emp := createTestEmployee(t, ctx, db)
	repo := postgresql.NewExpenseRepository(db)

	created, err := repo.Create(ctx, expense.Expense{
		EmployeeID: emp.ID,
		Category:   "Team lunch",
		Amount:     30,
		Date:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:     expense.StatusPending,
	})
	require.NoError(t, err)

	created.Amount = 42.50
	created.Status = expense.StatusApproved

	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, emp.ID, updated.EmployeeID)

	refreshed, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 42.50, refreshed.Amount)
	assert.Equal(t, expense.StatusApproved, refreshed.Status)
	require.NotNil(t, refreshed.EmployeeName)
	assert.Equal(t, "Jane Roe", *refreshed.EmployeeName)
}

func TestExpenseRepository_GetByID_NotFound(t *testing.T) {
	db := requireTestDB(t)
	defer cleanupTestData(t, db)
	cleanupTestData(t, db)

	ctx := context.Background()
	repo := postgresql.NewExpenseRepository(db)

	_, err := repo.GetByID(ctx, 999999)

	assert.ErrorIs(t, err, expense.ErrExpenseNotFound)
}
