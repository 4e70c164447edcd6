package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	_ "github.com/johnquangdev/meeting-action-assistant/docs"
	"github.com/johnquangdev/meeting-action-assistant/internal/adapter/handler"
	"github.com/johnquangdev/meeting-action-assistant/internal/infrastructure/cleanup"
	"github.com/johnquangdev/meeting-action-assistant/internal/infrastructure/storage"
	aiuse "github.com/johnquangdev/meeting-action-assistant/internal/usecase/ai"
	"github.com/johnquangdev/meeting-action-assistant/pkg/config"
	pkgvalidator "github.com/johnquangdev/meeting-action-assistant/pkg/validator"
)

// @title           Meeting Action Assistant API
// @version         1.0
// @description     Uploads meeting recordings, transcribes them and extracts a summary with action items.

// @host      localhost:3001
// @BasePath  /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HTTPErrorHandler = handler.NewHTTPErrorHandler(logger)
	e.HideBanner = true
	e.HidePort = false
	e.Server.ReadHeaderTimeout = 10 * time.Second

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.Server.AllowedOrigin},
		AllowMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		// empty AllowHeaders reflects the preflight's requested headers
		AllowCredentials: true,
	}))

	log.Println("🔧 Initializing dependencies...")
	ctx := context.Background()

	log.Printf("📦 Initializing %s scratch store...", cfg.Storage.Type)
	store, err := newScratchStore(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize scratch store: %v", err)
	}

	log.Println("🤖 Initializing AI providers...")
	transcriber, err := newTranscriber(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize transcription provider: %v", err)
	}
	completer, err := newChatCompleter(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize language model provider: %v", err)
	}
	if !transcriber.Configured() {
		log.Printf("⚠️  %s is not set; transcription requests will report a configuration error", transcriber.CredentialEnv())
	}
	if !completer.Configured() {
		log.Printf("⚠️  %s is not set; extraction requests will report a configuration error", completer.CredentialEnv())
	}

	queue := cleanup.NewQueue(store, cfg.Cleanup.Workers, cfg.Cleanup.Buffer, logger)
	if err := queue.Start(); err != nil {
		log.Fatalf("Failed to start cleanup queue: %v", err)
	}

	svc := aiuse.NewAIService(
		store,
		transcriber,
		completer,
		aiuse.NewParser(pkgvalidator.New()),
		aiuse.SystemClock{},
		aiuse.Options{
			MaxUploadSize:       cfg.Upload.MaxSize,
			MaxTranscriptLength: cfg.Upload.MaxTranscriptLength,
		},
		logger,
	)
	aiController := handler.NewAIController(svc, queue, handler.Limits{
		MaxUploadSize:       cfg.Upload.MaxSize,
		MaxTranscriptLength: cfg.Upload.MaxTranscriptLength,
	}, logger)

	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, aiController)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.GetServerAddr()
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
	if err := queue.Stop(shutdownCtx); err != nil {
		logger.Warn("cleanup queue did not drain", zap.Error(err))
	}

	log.Println("✅ Server stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// newScratchStore builds the store selected by STORAGE_TYPE
func newScratchStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (aiuse.ScratchStore, error) {
	switch cfg.Storage.Type {
	case config.StorageTypeLocal:
		return storage.NewLocalStore(cfg.Upload.Dir, logger)
	case config.StorageTypeMinIO:
		return storage.NewMinIOStore(ctx, &cfg.Storage, logger)
	default:
		return nil, fmt.Errorf("unknown STORAGE_TYPE %q", cfg.Storage.Type)
	}
}
