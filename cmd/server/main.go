// Package main implements the entry point for the forcard server, which
// hosts a single flashcard study session over HTTP.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/flakeychalk/forcard/internal/config"
)

// main is the entry point for the forcard server.
// It loads configuration, sets up logging, wires the session and its
// handlers, and serves until SIGINT or SIGTERM.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatalf("forcard: %v", err)
	}
}

func run(ctx context.Context) error {
	cfg, logger, err := initializeApp()
	if err != nil {
		return err
	}

	app, err := newApplication(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}

// initializeApp loads configuration and sets up logging.
// Returns the loaded config and the configured logger.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := loadAppConfig()
	if err != nil {
		return nil, nil, err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger, nil
}
