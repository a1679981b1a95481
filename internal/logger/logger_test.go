package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/YourNeshama/java-maze-game/internal/config"
)

// TestNew verifies the environment selects the logger level.
func TestNew(t *testing.T) {
	dev, err := New(&config.Config{Env: "local"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dev.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected development logger to enable debug")
	}

	prod, err := New(&config.Config{Env: "production"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prod.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected production logger to skip debug")
	}
}
