// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package logger provides a package level slog logger for the panels
// application.  Since the terminal is owned by the user interface log
// records go to a file or are discarded if no file is configured.
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Config describes logger settings.
type Config struct {
	// Level is one of debug, info, warn or error; it defaults to info.
	Level string `yaml:"level,omitempty"`

	// File is the path of the log file; nothing is logged if empty.
	File string `yaml:"file,omitempty"`
}

// ErrFile is returned by Init if the log file can't be opened.
var ErrFile = errors.New("logger: can't open log file")

var (
	mu   sync.RWMutex
	base = slog.New(slog.NewTextHandler(io.Discard, nil))
	file *os.File
)

// Init replaces the package logger according to given configuration.
// A previously opened log file is closed.
func Init(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	closeFile()
	if cfg.File == "" {
		base = slog.New(slog.NewTextHandler(io.Discard, nil))
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
		return fmt.Errorf("%w: %v", ErrFile, err)
	}
	f, err := os.OpenFile(
		cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrFile, err)
	}
	file = f
	base = slog.New(slog.NewTextHandler(
		f, &slog.HandlerOptions{Level: parseLevel(cfg.Level)}))
	return nil
}

// SetOutput directs log records of given level and above to given
// writer.
func SetOutput(w io.Writer, level string) {
	mu.Lock()
	defer mu.Unlock()
	closeFile()
	base = slog.New(slog.NewTextHandler(
		w, &slog.HandlerOptions{Level: parseLevel(level)}))
}

// Close closes an opened log file and discards subsequent records.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	err := closeFile()
	base = slog.New(slog.NewTextHandler(io.Discard, nil))
	return err
}

func closeFile() error {
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	return err
}

// Debug logs a debug message.
func Debug(msg string, args ...any) { log(slog.LevelDebug, msg, args...) }

// Info logs an info message.
func Info(msg string, args ...any) { log(slog.LevelInfo, msg, args...) }

// Warn logs a warning message.
func Warn(msg string, args ...any) { log(slog.LevelWarn, msg, args...) }

// Error logs an error message.
func Error(msg string, args ...any) { log(slog.LevelError, msg, args...) }

func log(level slog.Level, msg string, args ...any) {
	mu.RLock()
	l := base
	mu.RUnlock()
	l.Log(context.Background(), level, msg, args...)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
