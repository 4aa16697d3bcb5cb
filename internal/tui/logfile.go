package tui

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the path to the log file.
// If ZERO_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.zero/logs/zero.log
func GetLogFilePath() string {
	if customPath := os.Getenv("ZERO_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home dir
		return "zero.log"
	}

	return filepath.Join(homeDir, ".zero", "logs", "zero.log")
}
