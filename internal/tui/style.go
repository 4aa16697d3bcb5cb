package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Style colors console output. A Style bound to a non-terminal writer, or
// created while NO_COLOR is set, renders plain text.
type Style struct {
	red    lipgloss.Style
	yellow lipgloss.Style
	blue   lipgloss.Style
	green  lipgloss.Style
	bold   lipgloss.Style
	plain  bool
}

// NewStyle creates a Style whose color profile is detected from w.
func NewStyle(w io.Writer) *Style {
	renderer := lipgloss.NewRenderer(w)
	if termenv.EnvNoColor() {
		renderer.SetColorProfile(termenv.Ascii)
	}
	return newStyle(renderer)
}

// PlainStyle creates a Style that never emits escape sequences.
func PlainStyle() *Style {
	renderer := lipgloss.NewRenderer(io.Discard)
	renderer.SetColorProfile(termenv.Ascii)
	return newStyle(renderer)
}

func newStyle(r *lipgloss.Renderer) *Style {
	return &Style{
		red:    r.NewStyle().Foreground(lipgloss.Color("1")),
		yellow: r.NewStyle().Foreground(lipgloss.Color("3")),
		blue:   r.NewStyle().Foreground(lipgloss.Color("4")),
		green:  r.NewStyle().Foreground(lipgloss.Color("2")),
		bold:   r.NewStyle().Bold(true),
		plain:  r.ColorProfile() == termenv.Ascii,
	}
}

// Red colors text red
func (s *Style) Red(text string) string { return s.red.Render(text) }

// Yellow colors text yellow
func (s *Style) Yellow(text string) string { return s.yellow.Render(text) }

// Blue colors text blue
func (s *Style) Blue(text string) string { return s.blue.Render(text) }

// Green colors text green
func (s *Style) Green(text string) string { return s.green.Render(text) }

// Bold makes text bold
func (s *Style) Bold(text string) string { return s.bold.Render(text) }

// Plain reports whether the Style emits no escape sequences
func (s *Style) Plain() bool { return s.plain }
