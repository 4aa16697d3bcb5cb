package actions

import (
	"context"
	"fmt"

	"zero.dev/zero/internal/ai"
	"zero.dev/zero/internal/commitmsg"
	zeroerrors "zero.dev/zero/internal/errors"
	"zero.dev/zero/internal/git"
	"zero.dev/zero/internal/runtime"
	"zero.dev/zero/internal/secrets"
)

// secretHint is shown when the secret scan aborts a commit
const secretHint = "Remove the credential from the staged changes (or unstage the file) and try again."

// CommitOptions contains options for the commit tool
type CommitOptions struct {
	Repo    git.Repo
	Backend ai.Backend
	// Scanner defaults to the built-in credential rules
	Scanner *secrets.Scanner
	// MaxDiff is the number of diff characters sent to the model
	MaxDiff int
	// LogCount is the number of recent commits included as context
	LogCount int
}

// CommitReport describes how a commit run ended
type CommitReport struct {
	State    CommitState
	Proposal *ProposedAction
	Result   git.CommitResult
}

// CollectRepositoryContext gathers staged changes, branch, recent log and
// staged file names. The diff is checked first; when it is empty the other
// queries are skipped and an empty context is returned.
func CollectRepositoryContext(ctx context.Context, repo git.Repo, logCount int) (*RepositoryContext, error) {
	diff, err := repo.StagedDiff(ctx)
	if err != nil {
		return nil, notARepository(err)
	}
	if diff == "" {
		return &RepositoryContext{}, nil
	}

	branch, err := repo.CurrentBranch(ctx)
	if err != nil {
		return nil, notARepository(err)
	}

	recentLog, err := repo.RecentLog(ctx, logCount)
	if err != nil {
		return nil, notARepository(err)
	}

	files, err := repo.StagedFileNames(ctx)
	if err != nil {
		return nil, notARepository(err)
	}

	return &RepositoryContext{
		Diff:      diff,
		Branch:    branch,
		RecentLog: recentLog,
		Files:     files,
	}, nil
}

// notARepository tags a failed repository query with ErrNotARepository and
// keeps the git error in the chain
func notARepository(err error) error {
	return fmt.Errorf("%w: %w", zeroerrors.ErrNotARepository, err)
}

// CommitAction proposes a commit message for the staged changes and commits
// after confirmation. The model is called at most once and git commit at most
// once. Every terminal state other than StateDone is reported both in the
// report and as an error; ErrNothingStaged and ErrCancelled are clean exits.
func CommitAction(ctx *runtime.Context, opts CommitOptions) (*CommitReport, error) {
	splog := ctx.Splog
	report := &CommitReport{State: StateFailed}

	splog.Status("Running AI Git Commit...")

	rc, err := CollectRepositoryContext(ctx.Context, opts.Repo, opts.LogCount)
	if err != nil {
		return report, zeroerrors.Wrapf(err, "failed to read repository state")
	}
	if rc.Diff == "" {
		splog.Warn("No staged changes found. Please `git add` files to commit.")
		report.State = StateNothingStaged
		return report, zeroerrors.ErrNothingStaged
	}

	scanner := opts.Scanner
	if scanner == nil {
		scanner = secrets.NewScanner(secrets.DefaultRules)
	}
	if finding := scanner.Scan(rc.Diff); !finding.Safe {
		report.State = StateAborted
		return report, zeroerrors.WithHint(zeroerrors.NewSecretDetectedError(finding.Description), secretHint)
	}

	commitType, reason := commitmsg.Explain(rc.Branch, rc.Files)
	splog.Debug("Commit type hint: %s (%s)", commitType, reason)

	proposal, err := proposeCommit(ctx, opts, rc, commitType)
	if err != nil {
		return report, err
	}
	report.Proposal = proposal

	splog.Newline()
	splog.Warn("Suggested commit message:")
	splog.Success("%s", proposal.Message)
	splog.Newline()

	confirmed, err := ctx.Gate.Confirm("Commit with this message? [y/N]: ")
	if err != nil {
		report.State = StateCancelled
		return report, err
	}
	if !confirmed {
		splog.Status("   Commit cancelled.")
		report.State = StateCancelled
		return report, zeroerrors.ErrCancelled
	}

	splog.Status("Executing commit...")
	result, err := opts.Repo.Commit(ctx.Context, proposal.Message)
	report.Result = result
	if err != nil {
		return report, err
	}

	if result.Stderr != "" {
		splog.Warn("%s", result.Stderr)
	}
	splog.Success("Successfully committed!")
	if result.Stdout != "" {
		splog.Info("%s", result.Stdout)
	}
	report.State = StateDone
	return report, nil
}

// proposeCommit asks the model for a message, falling back to a generated
// one when the cleaned response is empty.
func proposeCommit(ctx *runtime.Context, opts CommitOptions, rc *RepositoryContext, commitType commitmsg.Type) (*ProposedAction, error) {
	if opts.Backend == nil {
		return nil, fmt.Errorf("no model backend configured")
	}

	ctx.Splog.Status("Analyzing diff... (This may take a moment)")
	text, err := ai.Complete(ctx.Context, opts.Backend, ai.Request{
		System: ctx.Prompts.Commit,
		User: ai.BuildCommitUserPrompt(ai.CommitPromptInput{
			Diff:      rc.Diff,
			Branch:    rc.Branch,
			RecentLog: rc.RecentLog,
			Files:     rc.Files,
			TypeHint:  commitType.String(),
		}, opts.MaxDiff),
		Options: ai.CommitOptions,
	})
	if err != nil {
		return nil, err
	}

	if message := commitmsg.Clean(text); message != "" {
		return &ProposedAction{Message: message, Type: commitType, Origin: OriginModel}, nil
	}

	ctx.Splog.Debug("%v, using the fallback message", zeroerrors.ErrEmptyResult)
	return &ProposedAction{
		Message: commitmsg.Fallback(commitType, rc.Files),
		Type:    commitType,
		Origin:  OriginFallback,
	}, nil
}

// GitTasks lists the tasks accepted by --git
var GitTasks = []string{"commit"}

// ValidateGitTask reports an unknown --git task
func ValidateGitTask(task string) error {
	for _, known := range GitTasks {
		if task == known {
			return nil
		}
	}
	return fmt.Errorf("Unknown git task: '%s'. Did you mean 'commit'?", task)
}

// RunGitTask routes a --git task to its action
func RunGitTask(ctx *runtime.Context, task string, opts CommitOptions) error {
	if err := ValidateGitTask(task); err != nil {
		return err
	}
	_, err := CommitAction(ctx, opts)
	return err
}
