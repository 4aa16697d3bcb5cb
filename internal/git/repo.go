package git

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	zeroerrors "zero.dev/zero/internal/errors"
)

// Repo is the version-control surface the commit pipeline depends on.
type Repo interface {
	StagedDiff(ctx context.Context) (string, error)
	CurrentBranch(ctx context.Context) (string, error)
	RecentLog(ctx context.Context, n int) (string, error)
	StagedFileNames(ctx context.Context) ([]string, error)
	Commit(ctx context.Context, message string) (CommitResult, error)
}

// CommitResult is the captured output of git commit.
type CommitResult struct {
	Stdout string
	Stderr string
}

var _ Repo = (*Repository)(nil)

// Repository wraps a go-git repository and a git CLI runner rooted at its worktree
type Repository struct {
	repo   *gogit.Repository
	root   string
	runner *CommandRunner
}

// Open finds the repository containing dir, walking up to the .git directory.
func Open(dir string) (*Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", zeroerrors.ErrNotARepository, dir, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get worktree: %v", zeroerrors.ErrNotARepository, err)
	}

	root := worktree.Filesystem.Root()
	return &Repository{
		repo:   repo,
		root:   root,
		runner: NewCommandRunner(root),
	}, nil
}

// Root returns the worktree root directory
func (r *Repository) Root() string {
	return r.root
}

// CurrentBranch returns the branch HEAD points at. It works on a branch with
// no commits yet and returns "" for a detached HEAD.
func (r *Repository) CurrentBranch(_ context.Context) (string, error) {
	head, err := r.repo.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD: %w", err)
	}

	if head.Type() == plumbing.SymbolicReference {
		return head.Target().Short(), nil
	}
	return "", nil
}

// RecentLog returns up to n commits reachable from HEAD, one "<short sha> <subject>" per line.
// A branch without commits has an empty log.
func (r *Repository) RecentLog(_ context.Context, n int) (string, error) {
	if n <= 0 {
		return "", nil
	}

	head, err := r.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	iter, err := r.repo.Log(&gogit.LogOptions{From: head.Hash()})
	if err != nil {
		return "", fmt.Errorf("failed to read log: %w", err)
	}
	defer iter.Close()

	lines := make([]string, 0, n)
	err = iter.ForEach(func(c *object.Commit) error {
		if len(lines) >= n {
			return storer.ErrStop
		}
		subject := strings.SplitN(strings.TrimSpace(c.Message), "\n", 2)[0]
		lines = append(lines, fmt.Sprintf("%s %s", c.Hash.String()[:7], subject))
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to iterate log: %w", err)
	}

	return strings.Join(lines, "\n"), nil
}

// StagedDiff returns the unified diff of staged changes
func (r *Repository) StagedDiff(ctx context.Context) (string, error) {
	output, err := r.runner.RunRaw(ctx, "diff", "--staged", "--no-color", "--no-ext-diff")
	if err != nil {
		return "", fmt.Errorf("failed to get staged diff: %w", err)
	}
	return output, nil
}

// StagedFileNames returns the paths of staged files, in git's order
func (r *Repository) StagedFileNames(ctx context.Context) ([]string, error) {
	files, err := r.runner.RunLines(ctx, "diff", "--staged", "--name-only")
	if err != nil {
		return nil, fmt.Errorf("failed to list staged files: %w", err)
	}
	return files, nil
}

// Commit creates a commit with the given message and returns git's output.
func (r *Repository) Commit(ctx context.Context, message string) (CommitResult, error) {
	stdout, stderr, err := r.runner.RunCaptured(ctx, "commit", "-m", message)
	result := CommitResult{
		Stdout: strings.TrimSpace(stdout),
		Stderr: strings.TrimSpace(stderr),
	}
	if err != nil {
		return result, fmt.Errorf("failed to commit: %w", err)
	}
	return result, nil
}
