package utils

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestLoggerJSONLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithOptions(LogOptions{Level: "warn", Format: "json", Output: &buf})

	l.Info("[test] hidden %d", 1)
	l.Warn("[test] shown %d", 2)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 log line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["level"] != "warn" || entry["message"] != "[test] shown 2" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestLoggerWithAndDuration(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithOptions(LogOptions{Level: "debug", Format: "json", Output: &buf}).With("component", "api")

	l.Duration(time.Now().Add(-time.Second), "[test] done")

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["component"] != "api" {
		t.Errorf("component = %v; want api", entry["component"])
	}
	if _, ok := entry["elapsed"]; !ok {
		t.Errorf("elapsed field missing: %v", entry)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]string{
		"trace":   "trace",
		"DEBUG":   "debug",
		"warning": "warn",
		"error":   "error",
		"":        "info",
		"bogus":   "info",
	}
	for in, want := range tests {
		if got := parseLevel(in).String(); got != want {
			t.Errorf("parseLevel(%q) = %s; want %s", in, got, want)
		}
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	l := NewNopLogger()
	l.Error("[test] nothing %s", "here")
	l.With("k", "v").Info("still nothing")
}
