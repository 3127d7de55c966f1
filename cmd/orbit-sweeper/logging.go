package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	logFileName = "orbit-sweeper.log"
	maxLogSize  = 10 * 1024 * 1024
)

// logDir is relative to the working directory
var logDir = "logs"

// setupLogging routes slog to a file under logDir when debug is set, and discards it otherwise
// The terminal owns stdout and stderr while the game runs, so logs never go there
// Returns the open log file for the caller to close, nil when logging is off
func setupLogging(debug bool) *os.File {
	if !debug {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	rotateLog(logPath)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		slog.SetDefault(slog.New(slog.DiscardHandler))
		return nil
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	slog.Info("logging started", "pid", os.Getpid())
	return f
}

// rotateLog moves an oversized log aside with a timestamp suffix
func rotateLog(path string) {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	ext := filepath.Ext(path)
	rotated := fmt.Sprintf("%s-%s%s", path[:len(path)-len(ext)], time.Now().Format("20060102-150405"), ext)
	_ = os.Rename(path, rotated)
}
