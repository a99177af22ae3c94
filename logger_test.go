package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogLevels(t *testing.T) {
	saved := logger
	defer func() { logger = saved }()

	var buf bytes.Buffer
	logger = newLogger(&buf, slog.LevelWarn)

	Log("open db %v", "x")
	require.Empty(t, buf.String())

	Warn("failed to record bet %v", 42)
	require.Contains(t, buf.String(), "level=WARN")
	require.Contains(t, buf.String(), "failed to record bet 42")
}

func TestLogLevelChoice(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "stderr.log"))
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, slog.LevelInfo, logLevel(true, f.Fd()))
	// a plain file is not a terminal
	require.Equal(t, slog.LevelInfo, logLevel(false, f.Fd()))
}
