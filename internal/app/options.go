package app

import (
	"log/slog"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger               *slog.Logger
	rejectDuplicateLinks bool
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithRejectDuplicateLinks refuses linking a sample to a variant twice
func WithRejectDuplicateLinks(reject bool) Option {
	return func(cfg *appConfig) {
		cfg.rejectDuplicateLinks = reject
	}
}
