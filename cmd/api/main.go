package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/sales-copilot/internal/adapter/handler"
	"github.com/johnquangdev/sales-copilot/internal/adapter/repository"
	"github.com/johnquangdev/sales-copilot/internal/domain/repositories"
	"github.com/johnquangdev/sales-copilot/internal/infrastructure/database"
	"github.com/johnquangdev/sales-copilot/internal/infrastructure/supabase"
	aiuse "github.com/johnquangdev/sales-copilot/internal/usecase/ai"
	"github.com/johnquangdev/sales-copilot/internal/usecase/analysis"
	"github.com/johnquangdev/sales-copilot/internal/usecase/feed"
	pkgai "github.com/johnquangdev/sales-copilot/pkg/ai"
	"github.com/johnquangdev/sales-copilot/pkg/config"
	"github.com/johnquangdev/sales-copilot/pkg/middleware"
	pkgvalidator "github.com/johnquangdev/sales-copilot/pkg/validator"
)

// @title        Sales Copilot API
// @version      1.0
// @description  Reviews sales-call transcripts and generates LinkedIn icebreakers with a hosted LLM, and serves a merged feed of past results.
// @BasePath     /

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
	defer logger.Sync() //nolint:errcheck

	// Initialize Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Validator = pkgvalidator.New()
	middleware.Register(e, &cfg.Server, logger)

	// Initialize repositories
	transcriptRepo, icebreakerRepo, closeStore, err := newRepositories(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize record store", zap.String("driver", cfg.Database.Driver), zap.Error(err))
	}
	defer closeStore()

	// Initialize model gateway
	if !cfg.HasGroqKey() {
		logger.Warn("GROQ_API_KEY not set; analyses will be stored with a configuration error")
	}
	groqClient := pkgai.NewGroqClient(&cfg.Groq)
	gateway := aiuse.NewGatewayForConfig(&cfg.Groq, groqClient, logger)

	// Initialize use cases and handlers
	analysisService := analysis.NewAnalysisService(gateway, transcriptRepo, icebreakerRepo, logger)
	feedService := feed.NewFeedService(transcriptRepo, icebreakerRepo, logger)

	router := handler.NewRouter(
		handler.NewAnalysisHandler(analysisService, logger),
		handler.NewFeedHandler(feedService, logger),
	)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.GetServerAddr()
		logger.Info("starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
			zap.String("store", cfg.Database.Driver),
		)

		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("server stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// newRepositories builds the record store selected by STORE_DRIVER.
// The returned func releases its resources.
func newRepositories(cfg *config.Config, logger *zap.Logger) (
	repositories.TranscriptRepository,
	repositories.IcebreakerRepository,
	func(),
	error,
) {
	switch cfg.Database.Driver {
	case config.StoreDriverPostgres:
		db, err := database.NewPostgresDB(&cfg.Database, cfg.IsProduction(), logger)
		if err != nil {
			return nil, nil, nil, err
		}
		closeDB := func() {
			if err := database.CloseDB(db); err != nil {
				logger.Error("failed to close database", zap.Error(err))
			}
		}
		return repository.NewTranscriptRepository(db), repository.NewIcebreakerRepository(db), closeDB, nil

	case config.StoreDriverMemory:
		logger.Warn("using in-memory record store; records are lost on restart")
		return repository.NewMemoryTranscriptRepository(), repository.NewMemoryIcebreakerRepository(), func() {}, nil

	default:
		client, err := supabase.NewClient(&cfg.Supabase)
		if err != nil {
			return nil, nil, nil, err
		}
		return repository.NewSupabaseTranscriptRepository(client), repository.NewSupabaseIcebreakerRepository(client), func() {}, nil
	}
}
