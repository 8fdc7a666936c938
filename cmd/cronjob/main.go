package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"gympoint-backend/internal/clock"
	"gympoint-backend/internal/config"
	"gympoint-backend/internal/db"
	"gympoint-backend/internal/events"
	"gympoint-backend/internal/jobs"
	"gympoint-backend/internal/logger"
	"gympoint-backend/internal/scheduler"
	"gympoint-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'mark-overdue-rentals', 'expire-inscriptions', 'send-overdue-notices', 'all-nightly')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Gympoint Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Database; the server owns migrations, jobs just connect
	conn, err := db.Open(cfg.GetDatabaseConnectionString(), "")
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer conn.Close()
	logger.Info("Database connection established")

	// Initialize Event Publisher
	publisher := events.NewNopPublisher()
	if cfg.Kafka.Enabled {
		publisher, err = events.NewSaramaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			logger.Error("Failed to connect to Kafka", "error", err)
			log.Fatalf("Failed to connect to Kafka: %v", err)
		}
	}
	defer publisher.Close()

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	runner := jobs.NewJobRunner(conn, emailSvc, publisher, clock.NewSystem())

	// Run-once mode for manual invocation and container cron
	if *runOnce != "" {
		runSingleJob(runner, *runOnce)
		return
	}

	// Scheduled mode
	sched := scheduler.New(runner, cfg.Scheduler)
	if err := sched.Start(); err != nil {
		logger.Error("Failed to start scheduler", "error", err)
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	logger.Info("Scheduler started, waiting for jobs...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sched.Stop()
}

func runSingleJob(runner *jobs.JobRunner, name string) {
	ctx := context.Background()

	switch name {
	case "mark-overdue-rentals":
		if err := runner.MarkOverdueRentals(ctx); err != nil {
			log.Fatalf("Job failed: %v", err)
		}
	case "expire-inscriptions":
		if err := runner.ExpireInscriptions(ctx); err != nil {
			log.Fatalf("Job failed: %v", err)
		}
	case "send-overdue-notices":
		if err := runner.SendOverdueNotices(ctx); err != nil {
			log.Fatalf("Job failed: %v", err)
		}
	case "all-nightly":
		runner.RunAllNightlyJobs(ctx)
	default:
		log.Fatalf("Unknown job: %s", name)
	}
}
