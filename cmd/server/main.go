package main

import (
	"context"
	"database/sql"
	"flag"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	httpapi "desqworx-backend/internal/api/http"
	"desqworx-backend/internal/config"
	"desqworx-backend/internal/jobs"
	"desqworx-backend/internal/logger"
	"desqworx-backend/internal/repository/postgres"
	"desqworx-backend/internal/scheduler"
	"desqworx-backend/internal/security"
	"desqworx-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// .env is optional; environment overrides the YAML file either way.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting DesqWorx backend server", "config", *configPath)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to open database connection", "error", err)
		panic(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		panic(err)
	}
	logger.Info("Connected to database", "host", cfg.Database.Host, "database", cfg.Database.Database)

	store := postgres.NewStore(db)

	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
	)

	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	authSvc := service.NewAuthService(store.UserRepository, store.CompanyRepository, tokenManager, service.BootstrapAdmin{
		FullName: cfg.Bootstrap.AdminName,
		Email:    cfg.Bootstrap.AdminEmail,
		Password: cfg.Bootstrap.AdminPassword,
	})
	companySvc := service.NewCompanyService(store.CompanyRepository)
	employeeSvc := service.NewEmployeeService(store.EmployeeRepository, store.CompanyRepository)
	creditSvc := service.NewCreditService(store.CreditRepository, store.CompanyRepository, store.UserRepository, emailSvc)
	attendanceSvc := service.NewAttendanceService(store.AttendanceRepository, store.CompanyRepository,
		store.EmployeeRepository, store.CreditRepository, store.UserRepository, emailSvc)
	bookingSvc := service.NewBookingService(store.BookingRepository, store.CompanyRepository)
	dashboardSvc := service.NewDashboardService(store.StatsRepository, store.CompanyRepository)
	visitorSvc := service.NewVisitorService(store.VisitorRepository)

	if err := authSvc.EnsureSuperAdmin(context.Background()); err != nil {
		logger.Error("Failed to ensure super admin account", "error", err)
		panic(err)
	}

	handlers := httpapi.Handlers{
		Auth:       httpapi.NewAuthHandler(authSvc),
		Company:    httpapi.NewCompanyHandler(companySvc),
		Credit:     httpapi.NewCreditHandler(creditSvc),
		Employee:   httpapi.NewEmployeeHandler(employeeSvc),
		Attendance: httpapi.NewAttendanceHandler(attendanceSvc),
		Booking:    httpapi.NewBookingHandler(bookingSvc),
		Dashboard:  httpapi.NewDashboardHandler(dashboardSvc),
		Visitor:    httpapi.NewVisitorHandler(visitorSvc),
	}
	router := httpapi.NewRouter(handlers, tokenManager)

	jobRunner := jobs.NewJobRunner(store, &jobs.Services{
		Email:     emailSvc,
		Dashboard: dashboardSvc,
	}, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	addr := cfg.GetServerAddress()
	logger.Info("HTTP server listening", "address", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("HTTP server stopped", "error", err)
		panic(err)
	}
}
