package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := context.Background()

	_, ok := RequestIDFromContext(ctx)
	assert.False(t, ok, "empty context should have no request ID")

	id := GenerateRequestID()
	assert.NotEmpty(t, id)

	ctx = WithRequestID(ctx, id)
	got, ok := RequestIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, id, got)
}

func TestFromContext(t *testing.T) {
	t.Run("returns default logger without request ID", func(t *testing.T) {
		log := FromContext(context.Background())
		assert.NotNil(t, log)
	})

	t.Run("returns logger with request ID attribute", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "test-id")
		log := FromContext(ctx)
		assert.NotNil(t, log)
	})
}

func TestConfigLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"INFO", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := Config{Level: tt.level}
			assert.Equal(t, tt.want, cfg.LogLevel())
		})
	}
}

func TestConfigIsJSON(t *testing.T) {
	assert.True(t, Config{Format: "json"}.IsJSON())
	assert.True(t, Config{Format: "JSON"}.IsJSON())
	assert.False(t, Config{Format: "text"}.IsJSON())
}

func TestBaseAttributes(t *testing.T) {
	cfg := ProductionConfig()
	attrs := cfg.BaseAttributes()
	assert.Len(t, attrs, 3)
	assert.Equal(t, AttrKeyService, attrs[0].Key)
}
