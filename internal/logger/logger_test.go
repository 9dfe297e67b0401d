package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{DEBUG, "DEBUG"},
		{INFO, "INFO"},
		{WARN, "WARN"},
		{ERROR, "ERROR"},
		{FATAL, "FATAL"},
		{LogLevel(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("LogLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: WARN, Format: TextFormat, Output: &buf})

	log.Debug("debug message")
	log.Info("info message")
	if buf.Len() != 0 {
		t.Errorf("Expected no output below WARN, got %q", buf.String())
	}

	log.Warn("warn message")
	if !strings.Contains(buf.String(), "warn message") {
		t.Errorf("Expected warn message in output, got %q", buf.String())
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: DEBUG, Format: JSONFormat, Output: &buf, Component: "test"})

	log.Info("hello", map[string]interface{}{"count": 3})

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Output is not valid JSON: %v (%q)", err, buf.String())
	}
	if entry.Level != "INFO" {
		t.Errorf("Expected level INFO, got %q", entry.Level)
	}
	if entry.Message != "hello" {
		t.Errorf("Expected message 'hello', got %q", entry.Message)
	}
	if entry.Component != "test" {
		t.Errorf("Expected component 'test', got %q", entry.Component)
	}
	if entry.Fields["count"] != float64(3) {
		t.Errorf("Expected field count=3, got %v", entry.Fields["count"])
	}
}

func TestTextFormatIncludesError(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: DEBUG, Format: TextFormat, Output: &buf})

	log.Error("load failed", errTest)

	out := buf.String()
	if !strings.Contains(out, "ERROR") || !strings.Contains(out, "load failed") {
		t.Errorf("Expected level and message in output, got %q", out)
	}
	if !strings.Contains(out, "error=boom") {
		t.Errorf("Expected error detail in output, got %q", out)
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: DEBUG, Format: TextFormat, Output: &buf})

	log.WithComponent("loader").Infof("loaded %d rows", 150)

	out := buf.String()
	if !strings.Contains(out, "[loader]") {
		t.Errorf("Expected component tag in output, got %q", out)
	}
	if !strings.Contains(out, "loaded 150 rows") {
		t.Errorf("Expected formatted message in output, got %q", out)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  LogLevel
	}{
		{"debug", DEBUG},
		{"INFO", INFO},
		{"Warning", WARN},
		{"error", ERROR},
		{"fatal", FATAL},
		{"nope", -1},
	}
	for _, tt := range tests {
		if got := parseLogLevel(tt.input); got != tt.want {
			t.Errorf("parseLogLevel(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestParseLogFormat(t *testing.T) {
	if got := parseLogFormat("json"); got != JSONFormat {
		t.Errorf("parseLogFormat(json) = %d, want JSONFormat", got)
	}
	if got := parseLogFormat("TEXT"); got != TextFormat {
		t.Errorf("parseLogFormat(TEXT) = %d, want TextFormat", got)
	}
	if got := parseLogFormat("yaml"); got != -1 {
		t.Errorf("parseLogFormat(yaml) = %d, want -1", got)
	}
}

var errTest = errBoom{}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }
