package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/config"
	appHTTP "github.com/staffdesk/staffdesk-backend-go/internal/handler/http"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
	"github.com/staffdesk/staffdesk-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffdesk/staffdesk-backend-go/internal/service/attendance"
	dashboardService "github.com/staffdesk/staffdesk-backend-go/internal/service/dashboard"
	employeeService "github.com/staffdesk/staffdesk-backend-go/internal/service/employee"
	expenseService "github.com/staffdesk/staffdesk-backend-go/internal/service/expense"
	reportService "github.com/staffdesk/staffdesk-backend-go/internal/service/report"
	settingsService "github.com/staffdesk/staffdesk-backend-go/internal/service/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, int32(cfg.Database.MaxConns), int32(cfg.Database.MinConns))
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	expenseRepo := postgresql.NewExpenseRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)

	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo, settingsRepo)
	expenseSvc := expenseService.NewExpenseService(db, expenseRepo, settingsRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)
	settingsSvc := settingsService.NewSettingsService(db, settingsRepo)
	reportSvc := reportService.NewReportService(attendanceRepo, expenseRepo, employeeRepo, settingsRepo)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	expenseHandler := appHTTP.NewExpenseHandler(expenseSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	settingsHandler := appHTTP.NewSettingsHandler(settingsSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		cfg.App.CORSOrigin,
		employeeHandler,
		attendanceHandler,
		expenseHandler,
		dashboardHandler,
		settingsHandler,
		reportHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	fmt.Printf("Server running at http://localhost%s\n", addr)
	if err := server.ListenAndServe(); err != nil {
		fmt.Println("Server error:", err)
	}
}
