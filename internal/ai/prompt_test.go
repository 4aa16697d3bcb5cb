package ai_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"zero.dev/zero/internal/ai"
)

func TestLoadPromptsDefaults(t *testing.T) {
	prompts, err := ai.LoadPrompts("")
	require.NoError(t, err)
	require.Contains(t, prompts.Shell, "shell command")
	require.Contains(t, prompts.Commit, "Conventional Commits")
	require.Contains(t, prompts.Analyze, "README")
}

func TestLoadPromptsFromDir(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		ai.ShellPromptFile:   "shell",
		ai.CommitPromptFile:  "commit",
		ai.AnalyzePromptFile: "analyze",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0600))
	}

	prompts, err := ai.LoadPrompts(dir)
	require.NoError(t, err)
	require.Equal(t, &ai.Prompts{Shell: "shell", Commit: "commit", Analyze: "analyze"}, prompts)

	require.NoError(t, os.Remove(filepath.Join(dir, ai.AnalyzePromptFile)))
	_, err = ai.LoadPrompts(dir)
	require.ErrorContains(t, err, ai.AnalyzePromptFile)
}

func TestBuildCommitUserPrompt(t *testing.T) {
	prompt := ai.BuildCommitUserPrompt(ai.CommitPromptInput{
		Diff:      "diff --git a/x b/x\n+new",
		Branch:    "fix/login",
		RecentLog: "abc1234 initial commit",
		Files:     []string{"x"},
		TypeHint:  "fix",
	}, ai.DefaultMaxDiff)

	require.Contains(t, prompt, "Branch: fix/login")
	require.Contains(t, prompt, "Suggested type: fix")
	require.Contains(t, prompt, "- x")
	require.Contains(t, prompt, "abc1234 initial commit")
	require.True(t, strings.HasSuffix(prompt, "+new"))
}

func TestTruncateDiff(t *testing.T) {
	diff := strings.Repeat("a", 20)
	require.Equal(t, diff, ai.TruncateDiff(diff, 20))
	require.Equal(t, "aaaaa\n... (diff truncated)", ai.TruncateDiff(diff, 5))
	require.Equal(t, diff, ai.TruncateDiff(diff, 0))

	accented := strings.Repeat("é", 20)
	require.Equal(t, accented, ai.TruncateDiff(accented, 20))
	truncated := ai.TruncateDiff("+日本語のテキスト", 4)
	require.Equal(t, "+日本語\n... (diff truncated)", truncated)
	require.True(t, utf8.ValidString(truncated))
}

func TestBuildAnalysisUserPrompt(t *testing.T) {
	t.Run("full data", func(t *testing.T) {
		prompt := ai.BuildAnalysisUserPrompt(ai.RepoSummary{
			Name:        "repo",
			Description: "A thing",
			Languages:   map[string]int{"Go": 10, "Shell": 2},
			Stars:       7,
			License:     "MIT License",
			Readme:      strings.Repeat("r", 10),
		}, 4)

		require.Contains(t, prompt, "Repository Name: repo\n")
		require.Contains(t, prompt, "Description: A thing\n")
		require.Contains(t, prompt, "Languages: {\n  \"Go\": 10,\n  \"Shell\": 2\n}\n")
		require.Contains(t, prompt, "Stars: 7\n")
		require.Contains(t, prompt, "License: MIT License\n")
		require.True(t, strings.HasSuffix(prompt, "rrrr\n... (README truncated)"))
	})

	t.Run("readme limit counts characters", func(t *testing.T) {
		readme := strings.Repeat("é", 2000)
		prompt := ai.BuildAnalysisUserPrompt(ai.RepoSummary{Readme: readme}, 3000)
		require.NotContains(t, prompt, "README truncated")
		require.True(t, strings.HasSuffix(prompt, readme))

		prompt = ai.BuildAnalysisUserPrompt(ai.RepoSummary{Readme: readme}, 3)
		require.True(t, strings.HasSuffix(prompt, "ééé\n... (README truncated)"))
		require.True(t, utf8.ValidString(prompt))
	})

	t.Run("missing fields", func(t *testing.T) {
		prompt := ai.BuildAnalysisUserPrompt(ai.RepoSummary{Readme: "No README file found."}, ai.DefaultMaxReadme)
		require.Contains(t, prompt, "Repository Name: N/A\n")
		require.Contains(t, prompt, "Description: N/A\n")
		require.Contains(t, prompt, "Stars: N/A\n")
		require.Contains(t, prompt, "License: N/A\n")
		require.Contains(t, prompt, "Languages: {}\n")
		require.True(t, strings.HasSuffix(prompt, "No README file found."))
	})
}

func TestCleanCommand(t *testing.T) {
	tests := map[string]string{
		"ls -la":             "ls -la",
		"  `ls -la`\n":       "ls -la",
		"```\nls -la\n```":   "ls -la",
		"\n \n":              "",
		"echo 'keep quotes'": "echo 'keep quotes'",
	}
	for in, want := range tests {
		require.Equal(t, want, ai.CleanCommand(in), "input %q", in)
	}
}
