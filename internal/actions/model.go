package actions

import (
	"context"
	"os"

	"zero.dev/zero/internal/ai"
	"zero.dev/zero/internal/runtime"
)

// Downloader fetches the local shell model
type Downloader interface {
	Ensure(ctx context.Context, spec ai.ModelSpec) (string, bool, error)
}

// ModelSpecFromConfig returns where the configured shell model lives
func ModelSpecFromConfig(ctx *runtime.Context) ai.ModelSpec {
	return ai.ModelSpec{
		Repo: ctx.Config.Shell.ModelRepo,
		File: ctx.Config.Shell.ModelFile,
		Dir:  ctx.Config.Shell.ModelDir,
	}
}

// ModelPullAction downloads the shell model unless it is already present
func ModelPullAction(ctx *runtime.Context, downloader Downloader) (string, error) {
	spec := ModelSpecFromConfig(ctx)
	splog := ctx.Splog

	if path := spec.Path(); fileExists(path) {
		splog.Success("Found model locally at: %s", path)
		return path, nil
	}

	splog.Status("Model not found. Downloading from '%s'...", spec.Repo)
	path, _, err := downloader.Ensure(ctx.Context, spec)
	if err != nil {
		return "", err
	}
	splog.Success("Download complete! Model is at: %s", path)
	return path, nil
}

// ModelPathAction prints where the shell model is expected
func ModelPathAction(ctx *runtime.Context) string {
	path := ModelSpecFromConfig(ctx).Path()
	ctx.Splog.Info("%s", path)
	return path
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
