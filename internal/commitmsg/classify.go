package commitmsg

import (
	"path"
	"strings"
)

// rule maps a branch/file predicate to a commit type.
type rule struct {
	name  string
	match func(branch string, files []string) bool
	typ   Type
}

var docExtensions = []string{".md", ".mdx", ".rst", ".adoc"}

var testDirs = []string{"test/", "tests/", "__tests__/", "spec/"}

var choreFiles = map[string]bool{
	"go.mod":            true,
	"go.sum":            true,
	"package.json":      true,
	"package-lock.json": true,
	"yarn.lock":         true,
	"pnpm-lock.yaml":    true,
	"requirements.txt":  true,
	"pyproject.toml":    true,
	"Pipfile":           true,
	"Pipfile.lock":      true,
	"poetry.lock":       true,
	"Cargo.toml":        true,
	"Cargo.lock":        true,
	"Gemfile":           true,
	"Gemfile.lock":      true,
	"Makefile":          true,
	"Dockerfile":        true,
	".gitignore":        true,
}

// rules is evaluated top to bottom; the first match wins.
var rules = []rule{
	{
		name: "fix branch",
		match: func(branch string, _ []string) bool {
			return branchContains(branch, "fix/", "bug/")
		},
		typ: Fix,
	},
	{
		name: "feature branch",
		match: func(branch string, _ []string) bool {
			return branchContains(branch, "feat/", "feature/")
		},
		typ: Feat,
	},
	{
		name: "documentation",
		match: func(branch string, files []string) bool {
			return branchContains(branch, "docs/") || anyFile(files, isDocFile)
		},
		typ: Docs,
	},
	{
		name: "tests",
		match: func(_ string, files []string) bool {
			return anyFile(files, isTestFile)
		},
		typ: Test,
	},
	{
		name: "dependencies and tooling",
		match: func(_ string, files []string) bool {
			return anyFile(files, isChoreFile)
		},
		typ: Chore,
	},
}

// Classify infers a commit type from the branch name and the staged files.
// It is total: when no rule matches the result is Refactor.
func Classify(branch string, files []string) Type {
	t, _ := Explain(branch, files)
	return t
}

// Explain is Classify that also names the rule that decided the type.
func Explain(branch string, files []string) (Type, string) {
	for _, r := range rules {
		if r.match(branch, files) {
			return r.typ, r.name
		}
	}
	return Refactor, "default"
}

func branchContains(branch string, needles ...string) bool {
	lower := strings.ToLower(branch)
	for _, needle := range needles {
		if strings.Contains(lower, needle) {
			return true
		}
	}
	return false
}

func anyFile(files []string, pred func(string) bool) bool {
	for _, f := range files {
		if pred(f) {
			return true
		}
	}
	return false
}

func isDocFile(file string) bool {
	ext := strings.ToLower(path.Ext(file))
	for _, docExt := range docExtensions {
		if ext == docExt {
			return true
		}
	}
	return false
}

func isTestFile(file string) bool {
	p := "/" + strings.ToLower(file)
	for _, dir := range testDirs {
		if strings.Contains(p, "/"+dir) {
			return true
		}
	}

	base := path.Base(p)
	stem := strings.TrimSuffix(base, path.Ext(base))
	return strings.HasSuffix(stem, "_test") ||
		strings.HasPrefix(base, "test_") ||
		strings.HasSuffix(stem, ".test") ||
		strings.HasSuffix(stem, ".spec")
}

func isChoreFile(file string) bool {
	if strings.HasPrefix(file, ".github/workflows/") || strings.Contains(file, "/.github/workflows/") {
		return true
	}
	return choreFiles[path.Base(file)]
}
