package console

import (
	"strings"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
}

func TestConsoleLoggerWritesFormattedEntry(t *testing.T) {
	var out strings.Builder
	minLevel := LevelDebug
	provider := NewProvider(Options{
		Writer:   &out,
		TimeFunc: fixedClock,
		MinLevel: &minLevel,
	})

	logger := provider.GetLogger("wppost.publish")
	logger.Info("publish.done", "action", "created", "post_id", 42)

	entry := out.String()
	if !strings.Contains(entry, "INFO publish.done") {
		t.Fatalf("expected level and message, got %q", entry)
	}
	if !strings.Contains(entry, "logger=wppost.publish") {
		t.Fatalf("expected logger name field, got %q", entry)
	}
	if !strings.Contains(entry, "action=created") || !strings.Contains(entry, "post_id=42") {
		t.Fatalf("expected key/value fields, got %q", entry)
	}
}

func TestConsoleLoggerFiltersBelowMinLevel(t *testing.T) {
	var out strings.Builder
	provider := NewProvider(Options{Writer: &out, TimeFunc: fixedClock})

	logger := provider.GetLogger("wppost")
	logger.Debug("hidden")
	logger.Trace("hidden too")

	if out.Len() != 0 {
		t.Fatalf("expected debug output suppressed at default level, got %q", out.String())
	}

	logger.Warn("visible")
	if !strings.Contains(out.String(), "WARN visible") {
		t.Fatalf("expected warn output, got %q", out.String())
	}
}

func TestConsoleLoggerWithFieldsAccumulates(t *testing.T) {
	var out strings.Builder
	provider := NewProvider(Options{Writer: &out, TimeFunc: fixedClock})

	base := provider.GetLogger("wppost")
	enriched := base.(*consoleLogger).WithFields(map[string]any{"run_id": "abc123"})
	enriched.Info("publish.start")

	if !strings.Contains(out.String(), "run_id=abc123") {
		t.Fatalf("expected inherited fields, got %q", out.String())
	}
}

func TestConsoleLoggerQuotesValuesWithSpaces(t *testing.T) {
	var out strings.Builder
	provider := NewProvider(Options{Writer: &out, TimeFunc: fixedClock})

	provider.GetLogger("wppost").Info("warned", "detail", "two words")

	if !strings.Contains(out.String(), `detail="two words"`) {
		t.Fatalf("expected quoted value, got %q", out.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"trace":   LevelTrace,
		"debug":   LevelDebug,
		"info":    LevelInfo,
		"warn":    LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"fatal":   LevelFatal,
		"":        LevelInfo,
		"bogus":   LevelInfo,
		" DEBUG ": LevelDebug,
	}
	for name, want := range cases {
		if got := ParseLevel(name); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", name, got, want)
		}
	}
}
