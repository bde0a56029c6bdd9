package main

import (
	"fmt"
	"log/slog"

	"github.com/flakeychalk/forcard/internal/config"
)

// loadAppConfig loads the application configuration from environment variables or config file.
// Returns the loaded config and any loading error.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Log basic configuration details after successful loading
	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	slog.Debug("Deck configuration",
		"page_size", cfg.Deck.PageSize,
		"max_page_size", cfg.Deck.MaxPageSize,
		"reset_draft_on_dismiss", cfg.Deck.ResetDraftOnDismiss,
		"seed_file_present", cfg.Deck.SeedFile != "")

	return cfg, nil
}
