package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// defaultWrapWidth is the word wrap used when rendering markdown
const defaultWrapWidth = 100

// RenderMarkdown renders markdown for the terminal. Styles are fixed rather
// than auto-detected so no terminal queries are issued; with colors disabled
// the notty style is used. On renderer failure the input is returned unchanged.
func RenderMarkdown(content string, style *Style) string {
	styleName := "dark"
	if style == nil || style.Plain() {
		styleName = "notty"
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styleName),
		glamour.WithWordWrap(defaultWrapWidth),
	)
	if err != nil {
		return content
	}

	out, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(out, "\n") + "\n"
}
