package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestSetupDisabledByDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	log, f, err := Setup(false, dir)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if f != nil {
		t.Error("Expected nil log file when debug=false")
		f.Close()
	}
	if log.Logger.Out != io.Discard {
		t.Errorf("Expected output io.Discard, got %v", log.Logger.Out)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("Expected no log directory when debug=false")
	}
}

func TestSetupEnabledWithDebug(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	log, f, err := Setup(true, dir)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if f == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer f.Close()

	log.Debug("test message")

	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "test message") {
		t.Error("Expected debug entry in log file")
	}
	if !strings.Contains(content, "session=") {
		t.Error("Expected session field in log entries")
	}
}

func TestSetupSessionID(t *testing.T) {
	a, _, _ := Setup(false, "")
	b, _, _ := Setup(false, "")

	ida, ok := a.Data["session"].(string)
	if !ok {
		t.Fatal("Expected session field")
	}
	if _, err := uuid.Parse(ida); err != nil {
		t.Errorf("Session %q is not a uuid: %v", ida, err)
	}
	if ida == b.Data["session"] {
		t.Error("Expected distinct sessions per Setup")
	}
}

func TestSetupRotation(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, logFileName)

	// Write just over 10MB
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to create large log file: %v", err)
	}

	_, f, err := Setup(true, dir)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	defer f.Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected new log file smaller than %d bytes, got %d", maxLogSize, info.Size())
	}
}

func TestSetupNoStdoutStderr(t *testing.T) {
	log, f, err := Setup(true, t.TempDir())
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	defer f.Close()

	if log.Logger.Out == os.Stdout || log.Logger.Out == os.Stderr {
		t.Error("Log output should not be stdout or stderr")
	}
}
