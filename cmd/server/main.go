package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	httpapi "timing-rental-backend/internal/api/http"
	"timing-rental-backend/internal/config"
	"timing-rental-backend/internal/jobs"
	"timing-rental-backend/internal/logger"
	"timing-rental-backend/internal/repository/postgres"
	"timing-rental-backend/internal/scheduler"
	"timing-rental-backend/internal/security"
	"timing-rental-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Local development convenience; silently absent in production.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Timing Rental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	svcs := httpapi.Services{
		Auth:         service.NewAuthService(store.Users(), tokenManager),
		Users:        service.NewUserService(store.Users()),
		Clients:      service.NewClientService(store.Clients()),
		Devices:      service.NewDeviceService(store.Devices(), store.Clients()),
		Products:     service.NewProductService(store.Products()),
		ProductUnits: service.NewProductUnitService(store.ProductUnits()),
		ChipTypes:    service.NewChipTypeService(store.ChipTypes()),
		Rentals:      service.NewRentalService(store),
	}

	// Start the in-process scheduler when enabled; the cronjob binary covers
	// deployments that run jobs out of process.
	if cfg.Scheduler.Enabled {
		jobRunner := jobs.NewJobRunner(store, emailSvc, cfg)
		sched := scheduler.NewScheduler(jobRunner)
		sched.Start()
		defer sched.Stop()
	}

	router := httpapi.NewRouter(svcs, tokenManager)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server failed", "error", err)
		log.Fatalf("HTTP server failed: %v", err)
	}
}
