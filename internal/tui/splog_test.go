package tui_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"zero.dev/zero/internal/tui"
)

func TestSplogConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	splog := tui.NewSplogWithWriter(&buf, false)

	splog.Info("plain %d", 1)
	splog.Status("Running AI Git Commit...")
	splog.Success("Successfully committed!")
	splog.Warn("careful")
	splog.Error("failed: %s", "boom")
	splog.Debug("hidden")
	splog.Page("chunk")
	splog.Newline()

	require.Equal(t,
		"plain 1\nRunning AI Git Commit...\nSuccessfully committed!\ncareful\nfailed: boom\nchunk\n",
		buf.String())
}

func TestSplogDebugAndQuiet(t *testing.T) {
	var buf bytes.Buffer
	splog := tui.NewSplogWithWriter(&buf, true)

	splog.Debug("visible")
	splog.SetQuiet(true)
	splog.Info("suppressed")
	splog.Page("suppressed")
	splog.SetQuiet(false)

	require.Equal(t, "visible\n", buf.String())
}

func TestSplogFileLogging(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "zero.log")
	splog, err := tui.NewSplogWithConfig(logPath, false)
	require.NoError(t, err)

	splog.SetQuiet(true)
	splog.Debug("debug goes to file")
	splog.Warn("warn goes to file")
	require.NoError(t, splog.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "debug goes to file")
	require.Contains(t, string(data), "level=WARN")
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv("ZERO_LOG_FILE", "/tmp/custom.log")
	require.Equal(t, "/tmp/custom.log", tui.GetLogFilePath())

	t.Setenv("ZERO_LOG_FILE", "")
	t.Setenv("HOME", "/home/test")
	require.Equal(t, filepath.Join("/home/test", ".zero", "logs", "zero.log"), tui.GetLogFilePath())
}
