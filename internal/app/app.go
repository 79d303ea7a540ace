package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recruit_backend/internal/config"
	"recruit_backend/internal/database"
	"recruit_backend/internal/email"
	"recruit_backend/internal/handlers"
	"recruit_backend/internal/logger"
	"recruit_backend/internal/middleware"
	"recruit_backend/internal/routes"
	"recruit_backend/internal/services"
	"recruit_backend/internal/storage"
	"recruit_backend/internal/validator"
	"recruit_backend/internal/workers"
	"recruit_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const shutdownTimeout = 5 * time.Second

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	apperrors.SetDebug(cfg.IsDevelopment())
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver, "host", cfg.Database.Host)
	gormDB, err := database.Open(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer func() {
		if err := database.Close(gormDB); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(ctx, gormDB, cfg.Database.Driver); err != nil {
			logger.Fatal("Failed to apply migrations", "error", err)
		}
	}

	images, err := storage.NewImageStore(ctx, StorageConfig(cfg))
	if err != nil {
		logger.Fatal("Failed to initialize image store", "error", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := images.Close(closeCtx); err != nil {
			logger.Error("Failed to close image store", "error", err)
		}
	}()
	if err := images.Ping(ctx); err != nil {
		// не фатально: без хранилища анкеты сохраняются с NoImage
		logger.Warn("Image store is not reachable", "type", cfg.DocStore.Type, "error", err)
	}
	logger.Info("Image store initialized", "type", cfg.DocStore.Type)

	notifier := initializeNotifier(ctx, cfg)

	ginRouter := SetupRouter(cfg, gormDB, images, notifier)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    address,
		Handler: ginRouter,
	}

	go func() {
		logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}
	logger.Info("Server stopped")
}

// SetupRouter собирает gin.Engine со всеми сервисами и хэндлерами.
// notifier может быть nil.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, images storage.ImageStore, notifier services.Notifier) *gin.Engine {
	// 1. Сервисы
	serviceContainer := services.NewServiceContainer(images, notifier, cfg.Submission.CleanupOrphans)

	// 2. Хэндлеры
	appHandlers := initializeHandlers(cfg, serviceContainer)

	// 3. Gin
	ginRouter := initializeGinRouter(cfg, gormDB)

	// 4. Маршруты
	routes.RegisterRoutes(ginRouter, appHandlers, cfg.Server.Swagger)

	return ginRouter
}

// StorageConfig переводит секцию docstore в storage.Config.
func StorageConfig(cfg *config.Config) storage.Config {
	return storage.Config{
		Type:       cfg.DocStore.Type,
		URI:        cfg.DocStore.URI,
		Database:   cfg.DocStore.Database,
		Collection: cfg.DocStore.Collection,
		Bucket:     cfg.DocStore.Bucket,
		Region:     cfg.DocStore.Region,
		Endpoint:   cfg.DocStore.Endpoint,
		AccessKey:  cfg.DocStore.AccessKey,
		SecretKey:  cfg.DocStore.SecretKey,
		Prefix:     cfg.DocStore.Prefix,
		BasePath:   cfg.DocStore.BasePath,
	}
}

// initializeNotifier запускает воркер уведомлений. Без SMTP в development
// письма уходят в MockProvider, в остальных окружениях уведомления отключены.
func initializeNotifier(ctx context.Context, cfg *config.Config) services.Notifier {
	var provider email.Provider

	switch {
	case cfg.EmailEnabled():
		renderer, err := email.NewDefaultTemplateManager()
		if err != nil {
			logger.Fatal("Failed to parse email templates", "error", err)
		}
		provider = email.NewSMTPProvider(&email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
		}, renderer)
		logger.Info("Email notifications enabled", "smtp_host", cfg.Email.SMTPHost)
	case cfg.IsDevelopment() && cfg.Email.AdminEmail != "":
		logger.Warn("SMTP is not configured. Using MOCK email provider.")
		provider = &email.MockProvider{}
	default:
		logger.Info("Email notifications disabled")
		return nil
	}

	if err := provider.Validate(); err != nil {
		logger.Warn("Email provider misconfigured, notifications disabled", "error", err)
		return nil
	}

	worker := workers.NewNotificationWorker(provider, cfg.Email.AdminEmail, cfg.Email.QueueSize)
	worker.Start(ctx)
	return worker
}

func initializeHandlers(cfg *config.Config, svc *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		NoticeHandler:     handlers.NewNoticeHandler(baseHandler, svc.NoticeService),
		AdminHandler:      handlers.NewAdminHandler(baseHandler, svc.NoticeService, svc.ApplicantService, svc.InquiryService),
		SubmissionHandler: handlers.NewSubmissionHandler(baseHandler, svc.SubmissionService, svc.InquiryService),
		ImageHandler:      handlers.NewImageHandler(baseHandler, svc.ImageService),
		SystemHandler:     handlers.NewSystemHandler(baseHandler, svc.SystemService),
		StaticHandler:     handlers.NewStaticHandler(cfg.Server.StaticDir),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	if cfg.Upload.MaxMemory > 0 {
		router.MaxMultipartMemory = cfg.Upload.MaxMemory
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
