package gfxbridge

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

// TestLoggerDefault verifies that the default logger is silent but
// usable.
func TestLoggerDefault(t *testing.T) {
	SetLogger(nil)

	l := Logger()
	if l == nil {
		t.Fatal("Logger() = nil, want a logger")
	}
	// Must not panic.
	l.Info("test message")

	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled, want silent")
	}
}

// TestSetLogger verifies that a configured logger receives records and
// that passing nil restores the silent default.
func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	Logger().Info("translator registered", "name", "vulkan")
	if !strings.Contains(buf.String(), "translator registered") {
		t.Errorf("log output = %q, want it to contain the message", buf.String())
	}

	SetLogger(nil)
	buf.Reset()
	Logger().Info("should be discarded")
	if buf.Len() != 0 {
		t.Errorf("log output after SetLogger(nil) = %q, want empty", buf.String())
	}
}
