package cli

import (
	"net/http"
	"os"
	"time"

	"zero.dev/zero/internal/actions"
	"zero.dev/zero/internal/ai"
	"zero.dev/zero/internal/config"
	"zero.dev/zero/internal/git"
	"zero.dev/zero/internal/github"
	"zero.dev/zero/internal/runtime"
)

// shellBreakerCooldown is how long the shell stops calling a failing local server
const shellBreakerCooldown = 30 * time.Second

// newModelBackend creates the hosted backend used by the commit and analysis tools
func newModelBackend(cfg *config.Config) (ai.Backend, error) {
	return ai.New(ai.BackendConfig{
		Provider:      cfg.Model.Provider,
		BaseURL:       cfg.Model.BaseURL,
		Model:         cfg.Model.Name,
		APIKey:        cfg.Model.APIKey,
		Timeout:       cfg.Model.Timeout,
		RequireAPIKey: true,
	})
}

// newShellBackend creates the backend for the local shell model server
func newShellBackend(cfg *config.Config) ai.Backend {
	backend := ai.NewOpenAIBackend(cfg.Shell.BaseURL, cfg.Shell.Model, "", &http.Client{Timeout: cfg.Model.Timeout})
	return ai.WithBreaker(backend, shellBreakerCooldown)
}

func runShell(ctx *runtime.Context) error {
	ctx.Splog.Debug("Using shell model %s at %s", ctx.Config.Shell.Model, ctx.Config.Shell.BaseURL)
	return actions.ShellAction(ctx, actions.ShellOptions{
		Backend:  newShellBackend(ctx.Config),
		Executor: &actions.ShellExecutor{},
	})
}

func runGitTask(ctx *runtime.Context, task string) error {
	if err := actions.ValidateGitTask(task); err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	repo, err := git.Open(cwd)
	if err != nil {
		return err
	}

	backend, err := newModelBackend(ctx.Config)
	if err != nil {
		return err
	}

	return actions.RunGitTask(ctx, task, actions.CommitOptions{
		Repo:     repo,
		Backend:  backend,
		MaxDiff:  ctx.Config.Commit.MaxDiff,
		LogCount: ctx.Config.Commit.LogCount,
	})
}

func runAnalyze(ctx *runtime.Context, url string) error {
	if _, _, err := github.ParseRepoURL(url); err != nil {
		return err
	}

	fetcher, err := github.NewClient(ctx.Context, github.ResolveToken(ctx.Config.GitHub.Token), ctx.Config.GitHub.BaseURL)
	if err != nil {
		return err
	}

	backend, err := newModelBackend(ctx.Config)
	if err != nil {
		return err
	}

	_, err = actions.AnalyzeAction(ctx, actions.AnalyzeOptions{
		Fetcher:   fetcher,
		Backend:   backend,
		URL:       url,
		MaxReadme: ctx.Config.Analyze.MaxReadme,
		Render:    ctx.Config.Analyze.Render,
	})
	return err
}
