package ai

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// DefaultHubURL is the Hugging Face hub the local shell model is fetched from
const DefaultHubURL = "https://huggingface.co"

// ModelSpec locates the local shell model on the hub and on disk
type ModelSpec struct {
	Repo string // e.g. Sanjayyy06/zero-nl2cmds-v1
	File string // e.g. zero-nl2cmds-v1.Q4_K_M.gguf
	Dir  string
}

// Path returns where the model file lives locally
func (s ModelSpec) Path() string {
	return filepath.Join(s.Dir, s.File)
}

// ModelDownloader fetches model files from a Hugging Face compatible hub
type ModelDownloader struct {
	HubURL string
	HTTP   *http.Client
}

// NewModelDownloader creates a downloader for the public hub, or for the
// mirror named by HF_ENDPOINT
func NewModelDownloader() *ModelDownloader {
	hub := os.Getenv("HF_ENDPOINT")
	if hub == "" {
		hub = DefaultHubURL
	}
	return &ModelDownloader{HubURL: hub, HTTP: http.DefaultClient}
}

// Ensure makes sure the model file exists locally, downloading it when absent.
// It returns the local path and whether a download happened. Partial
// downloads never replace the target file.
func (d *ModelDownloader) Ensure(ctx context.Context, spec ModelSpec) (string, bool, error) {
	path := spec.Path()
	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	}

	if err := os.MkdirAll(spec.Dir, 0750); err != nil {
		return "", false, fmt.Errorf("failed to create model directory: %w", err)
	}

	src := fmt.Sprintf("%s/%s/resolve/main/%s",
		strings.TrimSuffix(d.HubURL, "/"), spec.Repo, url.PathEscape(spec.File))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return "", false, err
	}
	if token := os.Getenv("HF_TOKEN"); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := d.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", false, fmt.Errorf("failed to download model: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", false, fmt.Errorf("failed to download model from %s: %s", src, resp.Status)
	}

	tmp, err := os.CreateTemp(spec.Dir, spec.File+".*.part")
	if err != nil {
		return "", false, fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		_ = tmp.Close()
		return "", false, fmt.Errorf("failed to download model: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", false, err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", false, fmt.Errorf("failed to move model into place: %w", err)
	}
	return path, true, nil
}
