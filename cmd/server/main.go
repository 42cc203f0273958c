package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/udyogsetu/udyogsetu-backend/config"
	"github.com/udyogsetu/udyogsetu-backend/internal/app/controller"
	"github.com/udyogsetu/udyogsetu-backend/internal/app/repository"
	"github.com/udyogsetu/udyogsetu-backend/internal/app/service"
	"github.com/udyogsetu/udyogsetu-backend/internal/db"
	"github.com/udyogsetu/udyogsetu-backend/internal/middleware"
	"github.com/udyogsetu/udyogsetu-backend/internal/router"
	"github.com/udyogsetu/udyogsetu-backend/internal/scheduler"
	"github.com/udyogsetu/udyogsetu-backend/internal/storage"
	"github.com/udyogsetu/udyogsetu-backend/pkg/logger"
	"github.com/udyogsetu/udyogsetu-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting UdyogSetu Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Redis backs logout token revocation; the server runs without it.
	if cfg.Redis.Enabled {
		if err := redis.Init(&cfg.Redis); err != nil {
			logger.Warn("Redis unavailable; token revocation disabled", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			defer redis.Close()
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	profileRepo := repository.NewProfileRepository(db.GetDB())
	documentRepo := repository.NewDocumentRepository(db.GetDB())
	notificationReadRepo := repository.NewNotificationReadRepository(db.GetDB())
	passwordResetRepo := repository.NewPasswordResetRepository(db.GetDB())

	// Optional S3 byte storage for uploaded documents
	var documentStore service.DocumentStore
	if cfg.S3.Enabled {
		documentStore = storage.NewS3Storage(
			cfg.S3.Region,
			cfg.S3.Bucket,
			cfg.S3.AccessKeyID,
			cfg.S3.SecretAccessKey,
		)
		logger.Info("S3 document storage enabled", map[string]interface{}{
			"bucket": cfg.S3.Bucket,
			"region": cfg.S3.Region,
		})
	}

	// Initialize services
	authService := service.NewAuthService(
		userRepo,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	passwordResetService := service.NewPasswordResetService(
		passwordResetRepo,
		userRepo,
		cfg.JWT.ResetTokenExpiry,
	)
	profileService := service.NewProfileService(profileRepo)
	reportService := service.NewReportService(profileService)
	documentService := service.NewDocumentService(documentRepo, profileRepo, documentStore, cfg.Upload.MaxSizeBytes)
	notificationService := service.NewNotificationService(profileRepo, documentRepo, notificationReadRepo)
	schemeService := service.NewSchemeService(profileRepo)

	// Initialize controllers
	authController := controller.NewAuthController(authService, passwordResetService, cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	profileController := controller.NewProfileController(profileService, reportService)
	documentController := controller.NewDocumentController(documentService)
	notificationController := controller.NewNotificationController(notificationService)
	schemeController := controller.NewSchemeController(schemeService)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Expired reset tokens are purged hourly
	resetScheduler := scheduler.NewResetTokenScheduler(passwordResetService)
	if err := resetScheduler.Start(); err != nil {
		logger.Error("Failed to start reset token scheduler", err)
	}
	defer resetScheduler.Stop()

	// Setup router
	r := router.NewRouter(
		authController,
		profileController,
		documentController,
		notificationController,
		schemeController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
