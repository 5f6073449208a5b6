package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	t.Run("defaults to info", func(t *testing.T) {
		lg, err := NewLogger("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lg.Core().Enabled(zapcore.DebugLevel) || !lg.Core().Enabled(zapcore.InfoLevel) {
			t.Fatalf("expected info level")
		}
	})

	t.Run("warn level", func(t *testing.T) {
		lg, err := NewLogger("WARN")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lg.Core().Enabled(zapcore.InfoLevel) {
			t.Fatalf("expected info to be disabled")
		}
	})

	t.Run("debug", func(t *testing.T) {
		lg, err := NewLogger("debug")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !lg.Core().Enabled(zapcore.DebugLevel) {
			t.Fatalf("expected debug level")
		}
	})

	t.Run("invalid level", func(t *testing.T) {
		if _, err := NewLogger("loud"); err == nil {
			t.Fatalf("expected error")
		}
	})
}
