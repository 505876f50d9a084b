package logging

import (
	"log/slog"
	"os"
)

const (
	// KeyError is the attribute key used for error values.
	KeyError = "err"

	// KeyAppName is the attribute key used for the application name.
	KeyAppName = "app"

	// KeyHandler is the attribute key used for the handler that produced a log line.
	KeyHandler = "handler"
)

// Name is the name of the application that the logger is for.
type Name string

// Config is the configuration for a logger.
type Config struct {
	appName string
}

// NewConfig creates a new logger configuration.
func NewConfig(name Name) *Config {
	return &Config{
		appName: string(name),
	}
}

// CommonLogger creates the logger used across the application. Every
// line carries the application name.
func CommonLogger(c *Config) (*slog.Logger, error) {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	l := slog.New(h).With(slog.String(KeyAppName, c.appName))

	// Make the common logger the process default so that packages
	// logging through slog directly share the same handler.
	slog.SetDefault(l)

	return l, nil
}
