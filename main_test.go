package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gx-cli/gx/internal/infrastructure/config"
)

func TestNewLogger(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "debug")
	t.Setenv(config.EnvLogAppName, "gx-test")

	log := newLogger()

	assert.NotNil(t, log)
	log.Debug(context.Background(), "smoke", nil)
}

func TestNewLogger_InvalidLevelFallsBackToNop(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "not-a-level")

	log := newLogger()

	assert.NotNil(t, log)
	// The no-op fallback must not panic on use.
	log.Info(context.Background(), "smoke", map[string]any{"k": "v"})
}
