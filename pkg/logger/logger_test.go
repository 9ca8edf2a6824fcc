package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
)

func TestNewWithWriter_ServiceField(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("seeder", "info", &buf)
	l.Info("hello")

	var out map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}
	if got := out["service"]; got != "seeder" {
		t.Errorf("service = %v, want %q", got, "seeder")
	}
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("seeder", "warn", &buf)

	l.Info("filtered")
	if buf.Len() != 0 {
		t.Errorf("info line should be filtered at warn level, got %q", buf.String())
	}

	l.Warn("kept")
	if buf.Len() == 0 {
		t.Error("warn line should be written at warn level")
	}
}

func TestWithContext_RunID(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("seeder", "info", &buf)

	ctx := WithRunID(context.Background(), "run-123")
	cl := WithContext(ctx, l)
	cl.Info("hello")

	var out map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}
	if got := out["run_id"]; got != "run-123" {
		t.Errorf("run_id = %v, want %q", got, "run-123")
	}
}

func TestWithContext_NoRunID(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("seeder", "info", &buf)

	cl := WithContext(context.Background(), l)
	cl.Info("no run id")

	var out map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}
	if _, ok := out["run_id"]; ok {
		t.Error("run_id should not be present when not in context")
	}
}

func TestFromContext_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("seeder", "info", &buf)

	ctx := NewContext(context.Background(), l)
	got := FromContext(ctx)
	if got != l {
		t.Error("FromContext should return the logger stored via NewContext")
	}
}

func TestFromContext_WithoutLogger(t *testing.T) {
	got := FromContext(context.Background())
	if got == nil {
		t.Error("FromContext should return a non-nil fallback logger")
	}
}
