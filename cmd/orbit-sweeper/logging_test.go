package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// useTempLogDir points logDir at a fresh directory and restores the default logger afterwards
func useTempLogDir(t *testing.T) string {
	t.Helper()
	prevDir, prevLogger := logDir, slog.Default()
	logDir = filepath.Join(t.TempDir(), "logs")
	t.Cleanup(func() {
		logDir = prevDir
		slog.SetDefault(prevLogger)
	})
	return logDir
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	dir := useTempLogDir(t)

	logFile := setupLogging(false)
	if logFile != nil {
		t.Error("Expected nil log file when debug=false")
		logFile.Close()
	}

	if slog.Default().Enabled(context.Background(), slog.LevelError) {
		t.Error("Expected logging to be discarded when debug=false")
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("Expected no logs directory when debug=false")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	dir := useTempLogDir(t)

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer logFile.Close()

	logPath := filepath.Join(dir, logFileName)
	if _, err := os.Stat(logPath); err != nil {
		t.Fatalf("Expected log file to be created: %v", err)
	}

	slog.Debug("test message", "component", "test")

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	dir := useTempLogDir(t)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}
	logPath := filepath.Join(dir, logFileName)

	// Write just over the rotation threshold
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0o644); err != nil {
		t.Fatalf("Failed to write large log file: %v", err)
	}

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
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
		t.Errorf("Expected new log file to be smaller than %d bytes, got %d", maxLogSize, info.Size())
	}
}

func TestSetupLogging_SmallFileNotRotated(t *testing.T) {
	dir := useTempLogDir(t)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, logFileName), []byte("previous run\n"), 0o644); err != nil {
		t.Fatalf("Failed to seed log file: %v", err)
	}

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer logFile.Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected a single log file, found %d entries", len(entries))
	}
}
