package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		debugMode bool
		wantLevel slog.Level
	}{
		{
			name:      "debug mode enabled",
			debugMode: true,
			wantLevel: slog.LevelDebug,
		},
		{
			name:      "debug mode disabled",
			debugMode: false,
			wantLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupLogger(tt.debugMode)
			logger := slog.Default()
			assert.NotNil(t, logger)
			assert.Equal(t, tt.wantLevel <= slog.LevelDebug, logger.Enabled(context.Background(), slog.LevelDebug))
		})
	}
}

func TestNewRootCommand(t *testing.T) {
	cmd := newRootCommand()

	assert.Equal(t, "leitner", cmd.Use)
	assert.True(t, cmd.HasSubCommands())
	for _, name := range []string{"review", "seed", "stats", "list", "delete"} {
		sub, _, err := cmd.Find([]string{name})
		assert.NoError(t, err)
		assert.Equal(t, name, sub.Name())
	}
	for _, name := range []string{"config", "debug", "db"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}
