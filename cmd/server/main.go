package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "gympoint-backend/internal/api/http"
	"gympoint-backend/internal/clock"
	"gympoint-backend/internal/config"
	"gympoint-backend/internal/db"
	"gympoint-backend/internal/events"
	"gympoint-backend/internal/logger"
	"gympoint-backend/internal/repository/postgres"
	"gympoint-backend/internal/security"
	"gympoint-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	migrationsDir := flag.String("migrations", "migrations", "Path to migrations directory (empty to skip)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Gympoint Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database and apply migrations
	conn, err := db.Open(cfg.GetDatabaseConnectionString(), *migrationsDir)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer conn.Close()
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(conn)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Event Publisher
	publisher := events.NewNopPublisher()
	if cfg.Kafka.Enabled {
		publisher, err = events.NewSaramaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			logger.Error("Failed to connect to Kafka", "error", err)
			log.Fatalf("Failed to connect to Kafka: %v", err)
		}
		logger.Info("Kafka event feed enabled", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	}
	defer publisher.Close()

	clk := clock.NewSystem()

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	customerSvc := service.NewCustomerService(store.CustomerRepository)
	catalogSvc := service.NewCatalogService(store.EquipmentRepository, store.PlanRepository)
	rentalSvc := service.NewRentalService(
		store.RentalRepository,
		store.EquipmentRepository,
		store.CustomerRepository,
		store.NotificationRepository,
		emailSvc,
		publisher,
		clk,
		cfg.Rental.MaxRentalDays,
	)
	inscriptionSvc := service.NewInscriptionService(
		store.InscriptionRepository,
		store.PlanRepository,
		store.CustomerRepository,
		store.NotificationRepository,
		emailSvc,
		publisher,
		clk,
	)
	receiptSvc := service.NewReceiptService(store.ReceiptRepository, store.CustomerRepository)
	noteSvc := service.NewNotificationService(store.NotificationRepository)

	// Initialize HTTP Router
	router := httpapi.NewRouter(httpapi.Services{
		Auth:          authSvc,
		Customers:     customerSvc,
		Catalog:       catalogSvc,
		Rentals:       rentalSvc,
		Inscriptions:  inscriptionSvc,
		Receipts:      receiptSvc,
		Notifications: noteSvc,
	}, tokenManager)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}
	logger.Info("Server stopped")
}
