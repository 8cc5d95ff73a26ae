package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	for _, env := range []string{"production", "development"} {
		l, err := New(env, "debug")
		if err != nil {
			t.Fatalf("%s: %v", env, err)
		}
		if !l.Core().Enabled(zap.DebugLevel) {
			t.Fatalf("%s: debug level not applied", env)
		}
	}

	l, err := New("development", "not-a-level")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Core().Enabled(zap.DebugLevel) || !l.Core().Enabled(zap.InfoLevel) {
		t.Fatalf("unknown level must fall back to info")
	}
}

func TestLLMLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewLLMLogger(zap.New(core))

	l.Info("Flow completed", "feature", "hashtags", "prompt_tokens", 12)
	l.Error("Generation backend failed", "feature", "remix")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["feature"] != "hashtags" || fields["prompt_tokens"] != int64(12) {
		t.Fatalf("unexpected fields %v", fields)
	}
	if entries[1].Level != zap.ErrorLevel {
		t.Fatalf("unexpected level %v", entries[1].Level)
	}

	NewLLMLogger(nil).Debug("dropped")
}
