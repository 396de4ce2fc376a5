package postgresql_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
	"github.com/staffdesk/staffdesk-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testDB     *database.DB
	testDBOnce sync.Once
	testDBErr  error
)

// requireTestDB connects once per run and skips when no test database is
// configured, so the suite stays runnable on machines without PostgreSQL.
func requireTestDB(t *testing.T) *database.DB {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	testDBOnce.Do(func() {
		testDB, testDBErr = database.NewPostgreSQLDB(dsn, 4, 1)
	})
	if testDBErr != nil {
		t.Fatalf("failed to connect to test database: %v", testDBErr)
	}
	return testDB
}

func cleanupTestData(t *testing.T, db *database.DB) {
	ctx := context.Background()

	_, err := db.Exec(ctx, "TRUNCATE TABLE attendance CASCADE")
	require.NoError(t, err)

	_, err = db.Exec(ctx, "TRUNCATE TABLE employees CASCADE")
	require.NoError(t, err)
}

func createTestEmployee(t *testing.T, ctx context.Context, db *database.DB) employee.Employee {
	repo := postgresql.NewEmployeeRepository(db)

	email := "jane.roe@example.com"
	created, err := repo.Create(ctx, employee.Employee{
		Name:  "Jane Roe",
		Email: &email,
	})
	require.NoError(t, err)
	return created
}

func strPtr(s string) *string {
	return &s
}

func TestAttendanceRepository_Upsert_CreatesThenUpdates(t *testing.T) {
	db := requireTestDB(t)
	defer cleanupTestData(t, db)
	cleanupTestData(t, db)

	ctx := context.Background()
	emp := createTestEmployee(t, ctx, db)
	repo := postgresql.NewAttendanceRepository(db)

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	record := attendance.Attendance{
		EmployeeID: emp.ID,
		Date:       date,
		Shift1In:   strPtr("09:00"),
		Shift1Out:  strPtr("13:00"),
		TotalHours: 4,
		Status:     attendance.StatusPresent,
	}

	first, created, err := repo.Upsert(ctx, record)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotZero(t, first.ID)

	// Submitting the same pair again must update in place, not add a row.
	record.Shift2In = strPtr("14:00")
	record.Shift2Out = strPtr("18:00")
	record.TotalHours = 8

	second, created, err := repo.Upsert(ctx, record)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	stored, err := repo.GetByEmployeeAndDate(ctx, emp.ID, date)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, 8.0, stored.TotalHours)
	require.NotNil(t, stored.Shift2In)
	assert.Equal(t, "14:00", *stored.Shift2In)
}

func TestAttendanceRepository_Upsert_ConcurrentSameDay(t *testing.T) {
	db := requireTestDB(t)
	defer cleanupTestData(t, db)
	cleanupTestData(t, db)

	ctx := context.Background()
	emp := createTestEmployee(t, ctx, db)
	repo := postgresql.NewAttendanceRepository(db)

	date := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, _, errs[n] = repo.Upsert(ctx, attendance.Attendance{
				EmployeeID: emp.ID,
				Date:       date,
				Shift1In:   strPtr("09:00"),
				Shift1Out:  strPtr("17:00"),
				TotalHours: 8,
				Status:     attendance.StatusPresent,
			})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}

	var count int
	err := db.QueryRow(ctx,
		"SELECT COUNT(*) FROM attendance WHERE employee_id = $1 AND date = $2",
		emp.ID, date,
	).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAttendanceRepository_Upsert_UnknownEmployee(t *testing.T) {
	db := requireTestDB(t)
	defer cleanupTestData(t, db)
	cleanupTestData(t, db)

	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(db)

	_, _, err := repo.Upsert(ctx, attendance.Attendance{
		EmployeeID: 999999,
		Date:       time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		Status:     attendance.StatusAbsent,
	})

	assert.ErrorIs(t, err, attendance.ErrEmployeeNotFound)
}

func TestAttendanceRepository_GetByEmployeeAndDate_Missing(t *testing.T) {
	db := requireTestDB(t)
	defer cleanupTestData(t, db)
	cleanupTestData(t, db)

	ctx := context.Background()
	emp := createTestEmployee(t, ctx, db)
	repo := postgresql.NewAttendanceRepository(db)

	stored, err := repo.GetByEmployeeAndDate(ctx, emp.ID, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	assert.NoError(t, err)
	assert.Nil(t, stored)
}
