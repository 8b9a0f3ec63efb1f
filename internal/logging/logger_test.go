package logging

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestConsoleHandlerOutput(t *testing.T) {
	var sb strings.Builder
	handler := newConsoleHandler(&sb, slog.LevelInfo)
	logger := slog.New(handler).With(String(FieldComponent, "scanner"))

	logger.Info("scan complete", Int("tracks", 42), String("dir", "/tmp/my music"))

	line := sb.String()
	if !strings.Contains(line, "INFO scanner: scan complete") {
		t.Errorf("line missing component prefix: %q", line)
	}
	if !strings.Contains(line, "tracks=42") {
		t.Errorf("line missing int attr: %q", line)
	}
	if !strings.Contains(line, `dir="/tmp/my music"`) {
		t.Errorf("spaced value should be quoted: %q", line)
	}
	if !strings.HasSuffix(line, "\n") {
		t.Errorf("line not newline terminated: %q", line)
	}
}

func TestConsoleHandlerLevelFilter(t *testing.T) {
	var sb strings.Builder
	logger := slog.New(newConsoleHandler(&sb, slog.LevelWarn))

	logger.Info("hidden")
	logger.Warn("shown")

	if strings.Contains(sb.String(), "hidden") {
		t.Errorf("info record leaked past warn filter: %q", sb.String())
	}
	if !strings.Contains(sb.String(), "shown") {
		t.Errorf("warn record missing: %q", sb.String())
	}
}

func TestConsoleHandlerGroups(t *testing.T) {
	var sb strings.Builder
	logger := slog.New(newConsoleHandler(&sb, slog.LevelInfo)).WithGroup("match")

	logger.Info("done", Int("tier", 2))

	if !strings.Contains(sb.String(), "match.tier=2") {
		t.Errorf("group prefix missing: %q", sb.String())
	}
}

func TestErrorAttr(t *testing.T) {
	var sb strings.Builder
	logger := slog.New(newConsoleHandler(&sb, slog.LevelInfo))

	logger.Error("failed", Error(errors.New("boom")))
	if !strings.Contains(sb.String(), "error=boom") {
		t.Errorf("error attr not rendered: %q", sb.String())
	}

	sb.Reset()
	logger.Error("failed", Error(nil))
	if !strings.Contains(sb.String(), `error="<nil>"`) {
		t.Errorf("nil error attr not rendered: %q", sb.String())
	}
}

func TestNopLogger(t *testing.T) {
	logger := NewNop()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("nop logger should disable all levels")
	}
	logger.Error("ignored")
}

func TestWithComponentNil(t *testing.T) {
	logger := WithComponent(nil, "store")
	if logger == nil {
		t.Fatal("WithComponent(nil) returned nil")
	}
	logger.Info("ignored")
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestTimestampFormat(t *testing.T) {
	var sb strings.Builder
	handler := newConsoleHandler(&sb, slog.LevelInfo)
	record := slog.NewRecord(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), slog.LevelInfo, "msg", 0)
	if err := handler.Handle(context.Background(), record); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(sb.String(), "2026-03-01T12:00:00Z ") {
		t.Errorf("timestamp not RFC3339 UTC: %q", sb.String())
	}
}
