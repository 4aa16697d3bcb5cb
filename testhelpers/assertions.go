package testhelpers

import (
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value. Useful in test setup where errors are not expected.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectCommits asserts that the newest commit subjects on HEAD match expected.
func ExpectCommits(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	cmd := exec.Command("git", "-C", repo.Dir, "log", "--format=%s", "HEAD")
	output, err := cmd.Output()
	require.NoError(t, err, "Failed to list commits")

	var subjects []string
	for _, line := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			subjects = append(subjects, line)
		}
	}

	if len(subjects) < len(expected) {
		require.Fail(t, "Not enough commits", "Expected %d commits, got %d", len(expected), len(subjects))
		return
	}
	require.Equal(t, expected, subjects[:len(expected)], "Commits do not match")
}

// ExpectNoCommits asserts that the repository has no commits yet.
func ExpectNoCommits(t *testing.T, repo *GitRepo) {
	t.Helper()

	err := repo.RunGitCommand("rev-parse", "--verify", "HEAD")
	require.Error(t, err, "expected an unborn HEAD")
}
