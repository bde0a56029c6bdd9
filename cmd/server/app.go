package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/flakeychalk/forcard/internal/config"
	"github.com/flakeychalk/forcard/internal/events"
	"github.com/flakeychalk/forcard/internal/form"
	"github.com/flakeychalk/forcard/internal/session"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Event system
	eventEmitter *events.InMemoryEventEmitter

	// The study session served by every handler
	session *session.Session
}

// newApplication creates a new application instance with all dependencies initialized.
// When a seed file is configured its cards are appended before the server starts.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config: cfg,
		logger: logger,
	}

	// Initialize event emitter
	app.eventEmitter = events.NewInMemoryEventEmitter(logger)

	policy := form.PreserveDraft
	if cfg.Deck.ResetDraftOnDismiss {
		policy = form.ResetDraft
	}

	app.session = session.New(session.Options{
		DismissPolicy: policy,
		Emitter:       app.eventEmitter,
		Logger:        logger,
	})

	if cfg.Deck.SeedFile != "" {
		cards, err := session.LoadSeedFile(cfg.Deck.SeedFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load seed deck: %w", err)
		}
		added := app.session.Seed(ctx, cards)
		logger.Info("Seed deck loaded",
			"path", cfg.Deck.SeedFile,
			"cards", added)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	// Set up router using the application dependencies
	router := app.setupRouter()

	// Start the HTTP server
	err := app.startHTTPServer(ctx, router)
	if err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed",
		"cards", app.session.Len(),
		"open_streams", app.eventEmitter.HandlerCount())
}
