package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/slidegen/slidegen-api/internal/config"
	"github.com/slidegen/slidegen-api/internal/generation"
	"github.com/slidegen/slidegen-api/internal/platform/gemini"
	"github.com/slidegen/slidegen-api/internal/platform/postgres"
	"github.com/slidegen/slidegen-api/internal/platform/scraper"
	"github.com/slidegen/slidegen-api/internal/platform/unsplash"
	"github.com/slidegen/slidegen-api/internal/service"
	"github.com/slidegen/slidegen-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	presentationStore store.PresentationStore

	// Generation pipeline
	generator generation.Generator

	// Services
	presentationService *service.PresentationService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize stores
	app.presentationStore = postgres.NewPostgresPresentationStore(db, logger)

	// Build the generation pipeline: scraper fetches the source URL, Gemini
	// synthesizes the deck, Unsplash resolves slide images.
	backend, err := gemini.NewGeminiBackend(ctx, logger, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini backend: %w", err)
	}
	logger.Info("Gemini completion backend initialized",
		slog.String("model", cfg.LLM.ModelName))

	imageSearcher := unsplash.NewClient(cfg.Unsplash.AccessKey, logger)
	enricher := generation.NewImageEnricher(imageSearcher, logger)
	synthesizer := gemini.NewSynthesizer(backend, enricher, logger)
	fetcher := scraper.NewFetcher(logger)

	app.generator = generation.NewPipeline(fetcher, synthesizer, logger)

	// Initialize the presentation service
	app.presentationService = service.NewPresentationService(
		app.generator,
		app.presentationStore,
		logger,
	)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	err := app.startHTTPServer(ctx, router)
	if err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
