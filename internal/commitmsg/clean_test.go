package commitmsg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "no markdown", input: "feat: add new feature", expected: "feat: add new feature"},
		{name: "with code block", input: "```\nfeat: add new feature\n```", expected: "feat: add new feature"},
		{name: "with language in code block", input: "```text\nfeat: add new feature\n```", expected: "feat: add new feature"},
		{name: "with single backticks", input: "`feat: add new feature`", expected: "feat: add new feature"},
		{name: "quoted", input: "\"fix: handle nil config\"", expected: "fix: handle nil config"},
		{name: "multiline body kept", input: "```\nfix: enhance error reporting\n\nwith detailed output\n```", expected: "fix: enhance error reporting\n\nwith detailed output"},
		{name: "whitespace only", input: "  \n\t ", expected: ""},
		{name: "empty fence", input: "```\n```", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Clean(tt.input))
		})
	}
}
