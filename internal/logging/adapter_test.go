package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

var _ Logger = (*SlogAdapter)(nil)

func TestNewSlogAdapter(t *testing.T) {
	t.Run("nil resolves to the default logger", func(t *testing.T) {
		adapter := NewSlogAdapter(nil)
		assert.Same(t, slog.Default(), adapter.Logger())
	})

	t.Run("keeps the given logger", func(t *testing.T) {
		logger := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
		assert.Same(t, logger, NewSlogAdapter(logger).Logger())
	})

	t.Run("DefaultLogger", func(t *testing.T) {
		assert.NotNil(t, DefaultLogger().Logger())
	})
}

func TestSlogAdapterLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	adapter := NewSlogAdapter(logger)

	tests := []struct {
		level string
		log   func(msg string, args ...interface{})
	}{
		{level: "DEBUG", log: adapter.Debug},
		{level: "INFO", log: adapter.Info},
		{level: "WARN", log: adapter.Warn},
		{level: "ERROR", log: adapter.Error},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			buf.Reset()
			tt.log("az invocation finished", KeyCommand, "repos list")

			output := buf.String()
			assert.Contains(t, output, `"level":"`+tt.level+`"`)
			assert.Contains(t, output, `"msg":"az invocation finished"`)
			assert.Contains(t, output, `"command":"repos list"`)
		})
	}
}
