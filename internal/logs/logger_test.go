package logs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitialize_WritesToDebugLog(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")
	if err := Initialize(dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer Close()

	Logger.Printf("hello from test")

	data, err := os.ReadFile(filepath.Join(dir, "debug.log"))
	if err != nil {
		t.Fatalf("expected debug.log to exist: %v", err)
	}
	if !strings.Contains(string(data), "[committolearn] ") {
		t.Errorf("expected prefix in log output, got %q", string(data))
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("expected message in log output, got %q", string(data))
	}
}

func TestInitialize_EmptyDirIsNoop(t *testing.T) {
	if err := Initialize(""); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}

func TestClose_WithoutFile(t *testing.T) {
	if err := Close(); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
	Logger.Printf("discarded")
}
