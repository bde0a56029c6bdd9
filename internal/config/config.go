package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Deck   DeckConfig   `mapstructure:"deck" validate:"required"`
	Events EventsConfig `mapstructure:"events" validate:"required"`
	CORS   CORSConfig   `mapstructure:"cors"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port                   int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel               string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"required,gt=0"`
}

// DeckConfig contains settings for the study session.
type DeckConfig struct {
	// PageSize is the number of cards rendered when a request names no limit.
	PageSize int `mapstructure:"page_size" validate:"required,gt=0,ltefield=MaxPageSize"`
	// MaxPageSize caps the limit a client may request.
	MaxPageSize int `mapstructure:"max_page_size" validate:"required,gt=0,lte=1000"`
	// ResetDraftOnDismiss clears the form draft when it is closed without
	// submitting. When false the draft is kept for the next open.
	ResetDraftOnDismiss bool `mapstructure:"reset_draft_on_dismiss"`
	// SeedFile optionally names a YAML file of cards appended at startup.
	SeedFile string `mapstructure:"seed_file"`
}

// EventsConfig contains settings for event streaming.
type EventsConfig struct {
	// SubscriberBuffer is the per-stream queue length before events are dropped.
	SubscriberBuffer int `mapstructure:"subscriber_buffer" validate:"required,gt=0"`
}

// CORSConfig lists the origins allowed to call the JSON API.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"dive,required"`
}
