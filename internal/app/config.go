package app

import (
	"errors"
	"fmt"
	"time"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	MarkupPath string
	// Stylesheets apply to every window, before the window's own
	// stylesheet attribute.
	Stylesheets []string
	// Name is the application name given to every window's build context.
	// Defaults to the markup file name without its extension.
	Name string

	LogFormat string
	LogLevel  string

	// FailFast stops at the first window that fails to build instead of
	// skipping it.
	FailFast bool
	// DumpPath, when set, receives a JSON snapshot of the opened windows.
	// "-" writes to the app's output.
	DumpPath string

	HealthcheckPort int
	// Hold keeps the headless runtime running until the context is done.
	Hold bool

	PreviewURL       string
	PreviewNamespace string
	PreviewTimeout   time.Duration
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.MarkupPath == "" {
		return nil, errors.New("MarkupPath is a required configuration field and cannot be empty")
	}
	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	if cfg.HealthcheckPort < 0 || cfg.HealthcheckPort > 65535 {
		return nil, fmt.Errorf("invalid healthcheck port %d", cfg.HealthcheckPort)
	}
	if cfg.PreviewTimeout < 0 {
		return nil, fmt.Errorf("invalid preview timeout %s", cfg.PreviewTimeout)
	}

	return &cfg, nil
}
