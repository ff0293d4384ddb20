// Package main provides the entry point for the Daybook TUI application.
//
// Daybook is a TUI task manager with a kanban board and a productivity
// dashboard, built on The Elm Architecture (TEA) via Bubbletea.
//
// Usage:
//
//	daybook
//
// Configuration is read from ~/.daybook.json; data lives under ~/.daybook.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwhitby/daybook/internal/app"
	"github.com/mwhitby/daybook/internal/config"
	"github.com/mwhitby/daybook/internal/services/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger(cfg.Log)
	defer closeLog()

	st, err := store.New(cfg.DataDir, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening data directory: %v\n", err)
		os.Exit(1)
	}

	model := app.New(cfg, st, logger)
	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

// newLogger opens the configured log file. Logging to stderr would corrupt
// the TUI, so failures fall back to a discard handler.
func newLogger(cfg config.LogConfig) (*slog.Logger, func()) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if cfg.File != "" {
		os.MkdirAll(filepath.Dir(cfg.File), 0755)
		if f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
			w = f
			closeFn = func() { f.Close() }
		}
	}

	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closeFn
}
