// Package config provides configuration loading for the gx application.
// All settings come from environment variables; gx needs no config files,
// secrets or network access.
package config

import (
	"errors"
	"fmt"
	"os"
)

// Environment variable names.
const (
	// EnvLogLevel is the log level (debug, info, warn, error).
	EnvLogLevel = "LOG_LEVEL"

	// EnvLogAppName is the application name for log context.
	EnvLogAppName = "LOG_APP_NAME"

	// EnvNoColor disables ANSI styling when set to any non-empty value.
	// See https://no-color.org.
	EnvNoColor = "NO_COLOR"
)

// Default values.
const (
	DefaultLogLevel   = "info"
	DefaultLogAppName = "gx"
)

// ErrInvalidLogLevel indicates LOG_LEVEL is not one of the supported levels.
var ErrInvalidLogLevel = errors.New("invalid log level")

// validLogLevels are the levels accepted in LOG_LEVEL.
var validLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level (debug, info, warn, error).
	LogLevel string

	// LogAppName is the application name for log context.
	LogAppName string

	// NoColor disables ANSI styling of the listing output.
	NoColor bool
}

// Load loads the application configuration from environment variables.
// Returns ErrInvalidLogLevel if LOG_LEVEL is set to an unsupported value.
func Load() (*Config, error) {
	logLevel := os.Getenv(EnvLogLevel)
	if logLevel == "" {
		logLevel = DefaultLogLevel
	}
	if _, ok := validLogLevels[logLevel]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLogLevel, logLevel)
	}

	logAppName := os.Getenv(EnvLogAppName)
	if logAppName == "" {
		logAppName = DefaultLogAppName
	}

	return &Config{
		LogLevel:   logLevel,
		LogAppName: logAppName,
		NoColor:    os.Getenv(EnvNoColor) != "",
	}, nil
}
