package logging

import (
	"fmt"
	"log/slog"
	"os"
)

// Name is the name of the application that the logger is for.
type Name string

// Config is the configuration for a logger.
type Config struct {
	// name is the name of the application.
	name Name

	// level is the minimum level that will be logged.
	level slog.Level
}

// NewConfig creates a new logging configuration.
func NewConfig(name Name) *Config {
	return &Config{
		name:  name,
		level: slog.LevelDebug,
	}
}

// CommonLogger creates the logger that is used throughout the application.
func CommonLogger(c *Config) (*slog.Logger, error) {
	if c == nil {
		return nil, fmt.Errorf("no logging config provided")
	}

	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: c.level,
	})

	l := slog.New(h).With(slog.String(KeyAppName, string(c.name)))
	slog.SetDefault(l)
	return l, nil
}
