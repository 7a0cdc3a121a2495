package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	httpapi "hireflow-backend/internal/api/http"
	calmirror "hireflow-backend/internal/calendar"
	"hireflow-backend/internal/config"
	"hireflow-backend/internal/logger"
	"hireflow-backend/internal/meeting"
	"hireflow-backend/internal/repository/postgres"
	"hireflow-backend/internal/security"
	"hireflow-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load .env if present; real env vars still win
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Hireflow Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
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
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)

	providerTimeout := time.Duration(cfg.Providers.TimeoutSeconds) * time.Second

	// The Google calendar service backs both the Meet-style gateway and the
	// calendar mirror. Unconfigured integrations are simply not registered;
	// scheduling still works without them.
	var gcalSvc *calendar.Service
	if cfg.Providers.Google.CredentialsFile != "" {
		gcalSvc, err = calendar.NewService(context.Background(),
			option.WithCredentialsFile(cfg.Providers.Google.CredentialsFile),
			option.WithScopes(calendar.CalendarEventsScope),
		)
		if err != nil {
			logger.Error("Failed to initialize Google calendar client", "error", err)
			log.Fatalf("Failed to initialize Google calendar client: %v", err)
		}
	}

	// Initialize meeting provider gateways
	var gateways []meeting.Gateway
	if cfg.Providers.Zoom.AccountID != "" {
		gateways = append(gateways, meeting.NewZoomGateway(cfg.Providers.Zoom, providerTimeout))
		logger.Info("Registered meeting provider", "provider", "zoom")
	}
	if cfg.Providers.Teams.TenantID != "" {
		gateways = append(gateways, meeting.NewTeamsGateway(cfg.Providers.Teams, providerTimeout))
		logger.Info("Registered meeting provider", "provider", "teams")
	}
	if gcalSvc != nil {
		gateways = append(gateways, meeting.NewMeetGateway(gcalSvc, cfg.Providers.Google.CalendarID, providerTimeout))
		logger.Info("Registered meeting provider", "provider", "meet")
	}
	registry := meeting.NewRegistry(gateways...)

	// Initialize calendar mirror
	var mirror calmirror.Mirror
	if cfg.Calendar.Enabled && gcalSvc != nil {
		mirror = calmirror.NewGoogleMirror(gcalSvc, cfg.Providers.Google.CalendarID,
			time.Duration(cfg.Calendar.TimeoutSeconds)*time.Second)
		logger.Info("Calendar mirroring enabled", "calendar_id", cfg.Providers.Google.CalendarID)
	}

	// Initialize Services
	notifier := service.NewSendGridNotifier(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	resolver := service.NewAttendeeResolver(store.DirectoryRepository, store.CandidateRepository)
	dispatcher := service.NewDispatcher(
		notifier,
		store.ActivityRepository,
		store.NotificationRepository,
		time.Duration(cfg.Dispatch.TimeoutSeconds)*time.Second,
	)
	interviewSvc := service.NewInterviewService(
		store.InterviewRepository,
		store.ScorecardRepository,
		resolver,
		registry,
		mirror,
		dispatcher,
		providerTimeout,
	)

	// Initialize HTTP handlers and router
	interviewHandler := httpapi.NewInterviewHandler(interviewSvc)
	notificationHandler := httpapi.NewNotificationHandler(service.NewNotificationService(store.NotificationRepository))
	router := httpapi.NewRouter(interviewHandler, notificationHandler, tokenManager, db)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown: stop accepting requests, then drain in-flight
	// side-effect dispatches before exiting.
	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	dispatcher.Wait()
	logger.Info("Server stopped. Goodbye!")
}
