package commitmsg

import "strings"

// Clean normalises model output into a commit message: surrounding markdown
// code fences, backticks and quotes are removed. An all-whitespace answer
// cleans to "".
func Clean(message string) string {
	message = stripMarkdownCodeBlocks(message)
	message = strings.Trim(message, `"'`)
	return strings.TrimSpace(message)
}

// stripMarkdownCodeBlocks removes markdown code blocks from the output
func stripMarkdownCodeBlocks(text string) string {
	text = strings.TrimSpace(text)

	// Remove opening ```language or just ```
	if strings.HasPrefix(text, "```") {
		firstNewline := strings.Index(text, "\n")
		if firstNewline > 0 {
			text = text[firstNewline+1:]
		} else {
			text = strings.TrimPrefix(text, "```")
		}
	}

	text = strings.TrimSuffix(text, "```")

	// Also handle single backticks that might wrap the entire message
	text = strings.Trim(text, "`")

	return strings.TrimSpace(text)
}
