// Package errors provides sentinel errors and custom error types for the zero application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"

	crdb "github.com/cockroachdb/errors"
)

// Sentinel errors for common conditions
var (
	// ErrNotARepository indicates that the working directory is not inside a git repository
	ErrNotARepository = errors.New("not a git repository")

	// ErrNothingStaged indicates that there are no staged changes to work on.
	// It is a clean terminal state, not a failure.
	ErrNothingStaged = errors.New("no staged changes")

	// ErrSecretDetected indicates that the staged diff matched a credential pattern
	ErrSecretDetected = errors.New("potential secret detected")

	// ErrBackend indicates that the model backend could not produce a response
	ErrBackend = errors.New("model backend error")

	// ErrEmptyResult indicates that the model backend answered with no text
	ErrEmptyResult = errors.New("model returned an empty result")

	// ErrCancelled indicates that the user declined a confirmation prompt
	ErrCancelled = errors.New("cancelled")

	// ErrInterrupted indicates that the user interrupted an input prompt
	ErrInterrupted = errors.New("interrupted")

	// ErrInvalidRepoURL indicates that a repository reference could not be parsed
	ErrInvalidRepoURL = errors.New("invalid GitHub repository URL")

	// ErrRepoNotFound indicates that GitHub answered 404 for a repository
	ErrRepoNotFound = errors.New("repository not found")

	// ErrRateLimited indicates that GitHub answered 403 because of rate limiting
	ErrRateLimited = errors.New("GitHub API rate limit exceeded")
)

// SecretDetectedError carries the description of the pattern that matched.
type SecretDetectedError struct {
	Description string
}

func (e *SecretDetectedError) Error() string {
	return fmt.Sprintf("potential secret detected in staged changes: %s", e.Description)
}

// Is returns true if the target error is ErrSecretDetected
func (e *SecretDetectedError) Is(target error) bool {
	return target == ErrSecretDetected
}

// NewSecretDetectedError creates a new SecretDetectedError
func NewSecretDetectedError(description string) *SecretDetectedError {
	return &SecretDetectedError{Description: description}
}

// BackendError represents a failure talking to a model backend
type BackendError struct {
	Backend string
	Err     error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s backend failed: %v", e.Backend, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// Is returns true if the target error is ErrBackend
func (e *BackendError) Is(target error) bool {
	return target == ErrBackend
}

// NewBackendError creates a new BackendError
func NewBackendError(backend string, err error) *BackendError {
	return &BackendError{Backend: backend, Err: err}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

// WithHint attaches a user-facing hint that is printed below the error message.
func WithHint(err error, hint string) error {
	return crdb.WithHint(err, hint)
}

// Hints returns every hint attached to err, outermost first.
func Hints(err error) []string {
	return crdb.GetAllHints(err)
}

// Wrapf wraps err with a formatted message, keeping errors.Is semantics.
func Wrapf(err error, format string, args ...interface{}) error {
	return crdb.Wrapf(err, format, args...)
}

// IsCleanExit reports whether err ends an invocation without being a failure.
func IsCleanExit(err error) bool {
	return err == nil || errors.Is(err, ErrNothingStaged) || errors.Is(err, ErrCancelled) || errors.Is(err, ErrInterrupted)
}
