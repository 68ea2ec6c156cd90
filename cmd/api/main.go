package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"alfredoptarigan/smart-ats/internal/config"
	"alfredoptarigan/smart-ats/internal/handlers"
	"alfredoptarigan/smart-ats/internal/logger"
	"alfredoptarigan/smart-ats/internal/repositories"
	"alfredoptarigan/smart-ats/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Setup(cfg.Server.Env)
	log := logger.Component("main")

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log.Info("config loaded", "env", cfg.Server.Env, "provider", cfg.LLM.Provider, "model", cfg.LLM.Model)

	// Optional analysis ledger
	ledger, err := newLedger(cfg)
	if err != nil {
		log.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	log.Info("analysis ledger", "enabled", ledger.Enabled())

	// Completion client is built once and shared by every submission
	ctx := context.Background()
	completion, err := services.NewCompletionClient(ctx, cfg.LLM, logger.Component("llm"))
	if err != nil {
		log.Error("failed to initialize completion client", "error", err)
		os.Exit(1)
	}

	submissions := services.NewSubmissionService(
		services.NewUploadService(cfg.Storage.MaxFileSize),
		services.NewPDFParserService(logger.Component("extractor")),
		services.NewAnalysisClient(services.NewPromptBuilder(), completion),
		services.NewInFlightGuard(),
		ledger,
		logger.Component("submission"),
	)
	log.Info("services initialized")

	app := handlers.NewApp(handlers.AppDeps{
		Config:      cfg,
		Submissions: submissions,
		Ledger:      ledger,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			log.Error("server forced to shutdown", "error", err)
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info("server starting", "addr", addr)

	if err := app.Listen(addr); err != nil {
		log.Error("failed to start server", "error", err)
		os.Exit(1)
	}
}

// newLedger connects the analysis ledger when DB_HOST is set.
func newLedger(cfg *config.Config) (services.Ledger, error) {
	if !cfg.LedgerEnabled() {
		return services.NewNoopLedger(), nil
	}
	db, err := config.InitDatabase(cfg)
	if err != nil {
		return nil, err
	}
	return services.NewLedger(repositories.NewAnalysisRepository(db), logger.Component("ledger")), nil
}
