package actions_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"zero.dev/zero/internal/actions"
	"zero.dev/zero/internal/ai"
)

type fakeDownloader struct {
	specs []ai.ModelSpec
	err   error
}

func (d *fakeDownloader) Ensure(_ context.Context, spec ai.ModelSpec) (string, bool, error) {
	d.specs = append(d.specs, spec)
	if d.err != nil {
		return "", false, d.err
	}
	if err := os.MkdirAll(spec.Dir, 0o755); err != nil {
		return "", false, err
	}
	return spec.Path(), true, os.WriteFile(spec.Path(), []byte("gguf"), 0o644)
}

func TestModelPullAction(t *testing.T) {
	t.Run("downloads a missing model", func(t *testing.T) {
		ctx, out := newTestContext(t, "")
		downloader := &fakeDownloader{}

		path, err := actions.ModelPullAction(ctx, downloader)
		require.NoError(t, err)
		require.Equal(t, filepath.Join(ctx.Config.Shell.ModelDir, "tiny.gguf"), path)
		require.Len(t, downloader.specs, 1)
		require.Equal(t, "acme/tiny-model", downloader.specs[0].Repo)
		require.Contains(t, out.String(), "Model not found. Downloading from 'acme/tiny-model'...")
		require.Contains(t, out.String(), "Download complete! Model is at: "+path)
	})

	t.Run("reuses a local model", func(t *testing.T) {
		ctx, out := newTestContext(t, "")
		path := filepath.Join(ctx.Config.Shell.ModelDir, "tiny.gguf")
		require.NoError(t, os.WriteFile(path, []byte("gguf"), 0o644))
		downloader := &fakeDownloader{}

		got, err := actions.ModelPullAction(ctx, downloader)
		require.NoError(t, err)
		require.Equal(t, path, got)
		require.Empty(t, downloader.specs)
		require.Contains(t, out.String(), "Found model locally at: "+path)
	})

	t.Run("returns download errors", func(t *testing.T) {
		ctx, out := newTestContext(t, "")
		downloader := &fakeDownloader{err: errors.New("404 Not Found")}

		_, err := actions.ModelPullAction(ctx, downloader)
		require.EqualError(t, err, "404 Not Found")
		require.NotContains(t, out.String(), "Download complete!")
	})
}

func TestModelPathAction(t *testing.T) {
	ctx, out := newTestContext(t, "")
	path := actions.ModelPathAction(ctx)
	require.Equal(t, filepath.Join(ctx.Config.Shell.ModelDir, "tiny.gguf"), path)
	require.Contains(t, out.String(), path)
}
