package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/flakeychalk/forcard/internal/config"
	"github.com/stretchr/testify/require"
)

// testConfig returns a valid configuration using the package defaults.
func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:                   config.DefaultPort,
			LogLevel:               "debug",
			ShutdownTimeoutSeconds: 2,
		},
		Deck: config.DeckConfig{
			PageSize:    config.DefaultPageSize,
			MaxPageSize: config.DefaultMaxPageSize,
		},
		Events: config.EventsConfig{
			SubscriberBuffer: config.DefaultSubscriberBuffer,
		},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestApplication builds an application from cfg or fails the test.
func newTestApplication(t *testing.T, cfg *config.Config) *application {
	t.Helper()
	require.NoError(t, config.Validate(cfg))

	app, err := newApplication(context.Background(), cfg, discardLogger())
	require.NoError(t, err)
	return app
}
