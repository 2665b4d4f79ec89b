package main

import (
	"fmt"
	"net/http"

	"github.com/planillapa/planilla-backend-go/internal/config"
	appHTTP "github.com/planillapa/planilla-backend-go/internal/handler/http"
	"github.com/planillapa/planilla-backend-go/internal/pkg/cron"
	"github.com/planillapa/planilla-backend-go/internal/pkg/database"
	"github.com/planillapa/planilla-backend-go/internal/pkg/jwt"
	"github.com/planillapa/planilla-backend-go/internal/repository/postgresql"
	companyService "github.com/planillapa/planilla-backend-go/internal/service/company"
	decimoService "github.com/planillapa/planilla-backend-go/internal/service/decimo"
	employeeService "github.com/planillapa/planilla-backend-go/internal/service/employee"
	legalService "github.com/planillapa/planilla-backend-go/internal/service/legal"
	payrollService "github.com/planillapa/planilla-backend-go/internal/service/payroll"
	sipeService "github.com/planillapa/planilla-backend-go/internal/service/sipe"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	companyRepo := postgresql.NewCompanyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	legalRepo := postgresql.NewLegalRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	decimoRepo := postgresql.NewDecimoRepository(db)
	sipeRepo := postgresql.NewSIPERepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	scheduler := cron.NewScheduler()
	cron.NewRemittanceJobs(companyRepo, sipeRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	companySvc := companyService.NewCompanyService(db, companyRepo, legalRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	legalSvc := legalService.NewLegalService(legalRepo)
	payrollSvc := payrollService.NewPayrollService(db, payrollRepo, employeeRepo, legalRepo)
	decimoSvc := decimoService.NewDecimoService(db, decimoRepo, employeeRepo, payrollRepo, legalRepo)
	sipeSvc := sipeService.NewSIPEService(sipeRepo, employeeRepo, payrollRepo, legalRepo)

	companyHandler := appHTTP.NewCompanyHandler(companySvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	legalHandler := appHTTP.NewLegalHandler(legalSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	decimoHandler := appHTTP.NewDecimoHandler(decimoSvc)
	sipeHandler := appHTTP.NewSIPEHandler(sipeSvc)

	router := appHTTP.NewRouter(
		JWTService,
		companyHandler,
		employeeHandler,
		legalHandler,
		payrollHandler,
		decimoHandler,
		sipeHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
