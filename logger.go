package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
)

var logger = newLogger(os.Stderr, slog.LevelWarn)

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// logLevel keeps an interactive terminal quiet unless verbose is asked
// for; redirected stderr gets the full trace.
func logLevel(verbose bool, fd uintptr) slog.Level {
	if verbose || !(isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)) {
		return slog.LevelInfo
	}
	return slog.LevelWarn
}

func setupLogger(f *os.File, verbose bool) {
	logger = newLogger(f, logLevel(verbose, f.Fd()))
}

// Log diagnostic logging, a combination of slog + fmt.Sprintf
func Log(msg string, args ...interface{}) {
	logger.Info(fmt.Sprintf(msg, args...))
}

// Warn same as Log for things that went wrong
func Warn(msg string, args ...interface{}) {
	logger.Warn(fmt.Sprintf(msg, args...))
}
