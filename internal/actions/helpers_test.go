package actions_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"zero.dev/zero/internal/ai"
	"zero.dev/zero/internal/config"
	"zero.dev/zero/internal/runtime"
	"zero.dev/zero/internal/tui"
)

// newTestContext builds a runtime context whose answers come from input and
// whose output is captured in the returned buffer.
func newTestContext(t *testing.T, input string) (*runtime.Context, *bytes.Buffer) {
	t.Helper()
	return newTestContextWithReader(t, tui.NewBufferedReader(strings.NewReader(input), io.Discard))
}

func newTestContextWithReader(t *testing.T, reader tui.LineReader) (*runtime.Context, *bytes.Buffer) {
	t.Helper()

	prompts, err := ai.LoadPrompts("")
	require.NoError(t, err)

	var out bytes.Buffer
	splog := tui.NewSplogWithWriter(&out, false)
	cfg := &config.Config{
		Shell: config.ShellConfig{
			ModelRepo: "acme/tiny-model",
			ModelFile: "tiny.gguf",
			ModelDir:  t.TempDir(),
		},
	}
	return runtime.NewContext(context.Background(), splog, cfg, prompts, reader), &out
}

// scriptedReader returns canned answers and errors in order, then io.EOF.
type scriptedReader struct {
	answers []scriptedAnswer
	prompts []string
}

type scriptedAnswer struct {
	line string
	err  error
}

func (r *scriptedReader) ReadLine(prompt string) (string, error) {
	r.prompts = append(r.prompts, prompt)
	if len(r.answers) == 0 {
		return "", io.EOF
	}
	next := r.answers[0]
	r.answers = r.answers[1:]
	return next.line, next.err
}
