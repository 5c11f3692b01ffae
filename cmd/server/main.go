// Package main implements the entry point for the slidegen API server,
// which turns a source URL into a themed slide presentation using an LLM
// and serves the result over HTTP.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/slidegen/slidegen-api/internal/config"
	"github.com/slidegen/slidegen-api/internal/platform/logger"
)

func main() {
	ctx := context.Background()

	if err := run(ctx); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// run loads configuration, wires all dependencies, and starts the HTTP
// server. It blocks until shutdown.
func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel))

	if cfg.Unsplash.AccessKey == "" {
		appLogger.Warn("Unsplash access key not configured, slides will have no images")
	}

	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	app, err := newApplication(ctx, cfg, appLogger, db)
	if err != nil {
		// Close the database directly since the application never finished wiring
		if closeErr := db.Close(); closeErr != nil {
			appLogger.Error("Error closing database connection", "error", closeErr)
		}
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	if err := app.Run(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
