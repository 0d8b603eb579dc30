package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "test", "warn")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown", "key", 42)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "key=42") {
		t.Errorf("output = %q, expected warn message with fields", out)
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "", "loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "arkanoid.log")

	logger, closer, err := OpenFile(path, "arkanoid", "debug")
	if err != nil {
		t.Fatalf("OpenFile() error: %v", err)
	}
	logger.Debug("level loaded", "index", 3)
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if !strings.Contains(string(data), "level loaded") {
		t.Errorf("log file = %q", data)
	}
}

func TestOpenFileEmptyPathDiscards(t *testing.T) {
	logger, closer, err := OpenFile("", "", "")
	if err != nil {
		t.Fatalf("OpenFile() error: %v", err)
	}
	logger.Error("nowhere")
	if err := closer.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}
