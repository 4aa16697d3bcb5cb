// Package commitmsg holds the local commit-message heuristics: commit type
// inference from branch and file names, the deterministic fallback message,
// and cleanup of model-generated text.
package commitmsg

// Type is a conventional-commit category.
type Type int

// The closed set of commit types. Refactor is the fallback.
const (
	Refactor Type = iota
	Fix
	Feat
	Docs
	Test
	Chore
)

var typeNames = map[Type]string{
	Fix:      "fix",
	Feat:     "feat",
	Docs:     "docs",
	Test:     "test",
	Chore:    "chore",
	Refactor: "refactor",
}

// String returns the conventional-commit token for t.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return typeNames[Refactor]
}

// AllTypes returns every commit type.
func AllTypes() []Type {
	return []Type{Fix, Feat, Docs, Test, Chore, Refactor}
}
