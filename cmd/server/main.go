// Package main implements the entry point for the pulsecheck API server,
// which records wellness self-assessments and derives recommendations and
// monthly reports from them.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/pulsecheck-app/pulsecheck-api/internal/config"
	"github.com/pulsecheck-app/pulsecheck-api/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

// run loads configuration, wires the application and serves HTTP until a
// shutdown signal arrives.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)
	appLogger.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel))

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.cleanup()

	if err := app.runMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	return app.startHTTPServer(context.Background(), app.setupRouter())
}
