package commitmsg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFallback(t *testing.T) {
	t.Run("single file is singular", func(t *testing.T) {
		msg := Fallback(Fix, []string{"auth.go"})
		require.Equal(t, "fix: Update 1 file\n\n- auth.go", msg)
		require.NotContains(t, strings.SplitN(msg, "\n", 2)[0], "files")
	})

	t.Run("several files are plural and listed", func(t *testing.T) {
		msg := Fallback(Chore, []string{"go.mod", "go.sum", "Makefile"})
		require.Equal(t, "chore: Update 3 files\n\n- go.mod\n- go.sum\n- Makefile", msg)
	})

	t.Run("no files", func(t *testing.T) {
		require.Equal(t, "refactor: Update 0 files", Fallback(Refactor, nil))
	})
}
