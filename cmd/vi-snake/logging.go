package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

var (
	logFileName       = "vi-snake.log"
	maxLogSize  int64 = 10 * 1024 * 1024 // 10MB
)

// setupLogging redirects the standard logger to a file under dir when debug is set
// Otherwise all log output is discarded so the terminal UI stays clean
// Returns the open log file for the caller to close, nil when disabled
func setupLogging(debug bool, dir string) *os.File {
	if !debug || dir == "" {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(dir, logFileName)
	rotateLog(logPath)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("=== vi-snake started (pid %d) ===", os.Getpid())
	return f
}

// rotateLog renames an oversized log with a timestamp suffix
func rotateLog(logPath string) {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= maxLogSize {
		return
	}

	ext := filepath.Ext(logPath)
	base := logPath[:len(logPath)-len(ext)]
	rotated := fmt.Sprintf("%s.%s%s", base, time.Now().Format("20060102-150405"), ext)
	_ = os.Rename(logPath, rotated)
}
