package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewWithWriter_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter("info", "text", &buf)

	logger.Info("test message", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("expected 'test message' in output, got: %s", output)
	}
	if !strings.Contains(output, "key=value") {
		t.Errorf("expected 'key=value' in output, got: %s", output)
	}
}

func TestNewWithWriter_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter("info", "json", &buf)

	logger.Info("test message", "key", "value")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["msg"] != "test message" {
		t.Errorf("msg = %v, want 'test message'", entry["msg"])
	}
	if entry["key"] != "value" {
		t.Errorf("key = %v, want 'value'", entry["key"])
	}
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter("error", "text", &buf)

	logger.Info("suppressed")
	logger.Error("kept")

	output := buf.String()
	if strings.Contains(output, "suppressed") {
		t.Error("info message should be filtered at error level")
	}
	if !strings.Contains(output, "kept") {
		t.Error("error message should pass at error level")
	}
}

func TestNewWithWriter_UnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter("bogus", "text", &buf)

	logger.Debug("hidden")
	logger.Info("shown")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Error("debug message should be filtered at default info level")
	}
	if !strings.Contains(output, "shown") {
		t.Error("info message should pass at default info level")
	}
}
