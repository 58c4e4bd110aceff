package blit

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
)

func TestLogger_DefaultIsSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled at every level")
	}
}

func TestSetLogger_RoundTrip(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	SetLogger(custom)

	if Logger() != custom {
		t.Error("Logger() did not return the configured logger")
	}

	Logger().Debug("probe")
	if buf.Len() == 0 {
		t.Error("configured logger produced no output")
	}
}

func TestSetLogger_NilRestoresSilent(t *testing.T) {
	SetLogger(slog.Default())
	SetLogger(nil)

	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}

func TestNew_LogsCreation(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	r := New(8, 8, PackARGB8888)
	defer r.Close()

	if buf.Len() == 0 {
		t.Error("New did not log renderer creation at debug level")
	}
}
