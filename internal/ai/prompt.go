package ai

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Prompt template file names, shared by the embedded defaults and prompts.dir
const (
	ShellPromptFile   = "shell_prompt.txt"
	CommitPromptFile  = "git_commit_prompt.txt"
	AnalyzePromptFile = "analyze_repo_prompt.txt"
)

const (
	// DefaultMaxDiff is the number of diff characters sent to the model
	DefaultMaxDiff = 10000

	// DefaultMaxReadme is the number of README characters sent to the model
	DefaultMaxReadme = 3000

	notAvailable = "N/A"
)

//go:embed prompts/*.txt
var defaultPrompts embed.FS

// Prompts holds the system prompt of each tool
type Prompts struct {
	Shell   string
	Commit  string
	Analyze string
}

// LoadPrompts reads the three templates from dir. An empty dir selects the
// built-in templates. Any unreadable template is an error.
func LoadPrompts(dir string) (*Prompts, error) {
	read := func(name string) (string, error) {
		if dir == "" {
			data, err := defaultPrompts.ReadFile("prompts/" + name)
			return string(data), err
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return "", fmt.Errorf("prompt template %q not found in %s: %w", name, dir, err)
		}
		return string(data), nil
	}

	var p Prompts
	for _, item := range []struct {
		name   string
		target *string
	}{
		{ShellPromptFile, &p.Shell},
		{CommitPromptFile, &p.Commit},
		{AnalyzePromptFile, &p.Analyze},
	} {
		text, err := read(item.name)
		if err != nil {
			return nil, err
		}
		*item.target = text
	}
	return &p, nil
}

// CommitPromptInput is the repository state a commit message is written from
type CommitPromptInput struct {
	Diff      string
	Branch    string
	RecentLog string
	Files     []string
	TypeHint  string
}

// BuildCommitUserPrompt builds the user message for commit generation. The
// diff is cut to maxDiff characters.
func BuildCommitUserPrompt(in CommitPromptInput, maxDiff int) string {
	var sections []string

	sections = append(sections, "Based on this diff, write the commit message.")

	var info []string
	info = append(info, "## Context")
	if in.Branch != "" {
		info = append(info, fmt.Sprintf("- Branch: %s", in.Branch))
	}
	if in.TypeHint != "" {
		info = append(info, fmt.Sprintf("- Suggested type: %s", in.TypeHint))
	}
	sections = append(sections, strings.Join(info, "\n"))

	if len(in.Files) > 0 {
		lines := make([]string, 0, len(in.Files)+1)
		lines = append(lines, "## Changed Files")
		for _, f := range in.Files {
			lines = append(lines, "- "+f)
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if in.RecentLog != "" {
		sections = append(sections, "## Recent Commits\n"+in.RecentLog)
	}

	sections = append(sections, "## Diff\n"+TruncateDiff(in.Diff, maxDiff))

	return strings.Join(sections, "\n\n")
}

// TruncateDiff cuts diff to max characters, marking the cut. max <= 0 disables truncation.
func TruncateDiff(diff string, max int) string {
	return truncate(diff, max, "\n... (diff truncated)")
}

// RepoSummary is the repository data an analysis is written from
type RepoSummary struct {
	Name        string
	Description string
	Languages   map[string]int
	Stars       int
	License     string
	Readme      string
}

// BuildAnalysisUserPrompt builds the user message for repository analysis.
// Missing fields render as N/A and the README is cut to maxReadme characters.
func BuildAnalysisUserPrompt(s RepoSummary, maxReadme int) string {
	languages := "{}"
	if len(s.Languages) > 0 {
		if data, err := json.MarshalIndent(s.Languages, "", "  "); err == nil {
			languages = string(data)
		}
	}

	stars := notAvailable
	if s.Stars > 0 {
		stars = strconv.Itoa(s.Stars)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Repository Name: %s\n", orNA(s.Name))
	fmt.Fprintf(&b, "Description: %s\n", orNA(s.Description))
	fmt.Fprintf(&b, "Languages: %s\n", languages)
	fmt.Fprintf(&b, "Stars: %s\n", stars)
	fmt.Fprintf(&b, "License: %s\n", orNA(s.License))
	b.WriteString("\n--- README.md Content ---\n")
	b.WriteString(truncate(s.Readme, maxReadme, "\n... (README truncated)"))
	return b.String()
}

// CleanCommand strips the spaces, newlines and backticks models wrap commands in
func CleanCommand(output string) string {
	return strings.Trim(output, " \n`")
}

// truncate cuts text to max characters, never inside a rune
func truncate(text string, max int, marker string) string {
	if max <= 0 || utf8.RuneCountInString(text) <= max {
		return text
	}
	return string([]rune(text)[:max]) + marker
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}
	return s
}
