package tui

import (
	"errors"
	"io"
	"strings"
)

// Gate is the single checkpoint every side effect passes through.
type Gate struct {
	reader LineReader
}

// NewGate creates a Gate reading answers from reader
func NewGate(reader LineReader) *Gate {
	return &Gate{reader: reader}
}

// Confirm shows prompt and reads one answer. Only "y" approves; end of input
// is a decline. Interrupts are returned as errors.
func (g *Gate) Confirm(prompt string) (bool, error) {
	answer, err := g.reader.ReadLine(prompt)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}
	return IsAffirmative(answer), nil
}

// IsAffirmative reports whether answer approves an action.
func IsAffirmative(answer string) bool {
	return strings.TrimSpace(answer) == "y"
}
