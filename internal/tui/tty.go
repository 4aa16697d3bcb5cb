package tui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTTY returns true if both stdin and stdout are attached to a terminal
func IsTTY() bool {
	if os.Getenv("ZERO_TEST_NO_INTERACTIVE") != "" {
		return false
	}
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
