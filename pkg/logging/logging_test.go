package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "daybook.log")
	logger, closer, err := Open(Options{Path: path, Level: "info"})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("journal loaded", "day", "2025-10-07")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "journal loaded") || !strings.Contains(out, "day=2025-10-07") {
		t.Fatalf("expected info record, got %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record must be filtered at info level")
	}
}

func TestOpenWithoutPathDiscards(t *testing.T) {
	logger, closer, err := Open(Options{})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	logger.Info("nowhere")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestOpenRejectsUnknownLevel(t *testing.T) {
	if _, _, err := Open(Options{Level: "chatty"}); err == nil {
		t.Fatal("expected unknown level error")
	}
}
