package commitmsg

import (
	"fmt"
	"strings"
)

// Fallback builds a deterministic commit message for when the model returns
// nothing: a "<type>: Update N file(s)" subject followed by the file list.
func Fallback(t Type, files []string) string {
	noun := "files"
	if len(files) == 1 {
		noun = "file"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s: Update %d %s", t, len(files), noun)
	if len(files) > 0 {
		b.WriteString("\n")
		for _, f := range files {
			fmt.Fprintf(&b, "\n- %s", f)
		}
	}
	return b.String()
}
