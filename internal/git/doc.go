// Package git provides low-level Git operations.
//
// It wraps git command execution and go-git for:
//   - Repository discovery and the current branch
//   - Repo state queries (staged diff, staged files, recent log)
//   - Creating commits
//
// This package should be the only place where direct git commands are executed.
package git
