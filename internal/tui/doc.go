// Package tui provides the terminal user interface for zero.
//
// It handles:
//   - Line input and the confirmation gate (using survey on terminals)
//   - Structured logging and status reporting (Splog)
//   - Terminal styling and colors (using lipgloss)
//   - Markdown rendering of model output (using glamour)
package tui
