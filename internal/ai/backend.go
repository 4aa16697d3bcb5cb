// Package ai talks to language-model backends and builds the prompts sent to them.
package ai

import (
	"context"
	"fmt"
	"net/http"
	"time"

	zeroerrors "zero.dev/zero/internal/errors"
)

// Options controls a single generation call.
type Options struct {
	Temperature float64
	MaxTokens   int
	Stream      bool
}

// Generation options per tool.
var (
	CommitOptions   = Options{Temperature: 0.2, MaxTokens: 150}
	AnalysisOptions = Options{Temperature: 0.2, MaxTokens: 1024, Stream: true}
	ShellOptions    = Options{Temperature: 0.1, MaxTokens: 100}
)

// Request is a system and user prompt pair plus generation options.
type Request struct {
	System  string
	User    string
	Options Options
}

// Backend generates text from a model. A successful call whose stream yields
// no text is an empty result, not an error.
type Backend interface {
	Name() string
	Generate(ctx context.Context, req Request) (Stream, error)
}

// Provider names accepted by New
const (
	ProviderOpenAI      = "openai"
	ProviderCursorAgent = "cursor-agent"
)

// BackendConfig selects and configures a backend
type BackendConfig struct {
	Provider string
	BaseURL  string
	Model    string
	APIKey   string
	Timeout  time.Duration
	// RequireAPIKey rejects an openai backend without a key
	RequireAPIKey bool
}

// New creates the backend named by cfg.Provider.
func New(cfg BackendConfig) (Backend, error) {
	switch cfg.Provider {
	case ProviderOpenAI, "":
		if cfg.RequireAPIKey && cfg.APIKey == "" {
			return nil, zeroerrors.WithHint(
				fmt.Errorf("no API key configured for %s", cfg.BaseURL),
				"Make sure 'GROQ_API_KEY' is in your .env file.")
		}
		return NewOpenAIBackend(cfg.BaseURL, cfg.Model, cfg.APIKey, &http.Client{Timeout: cfg.Timeout}), nil
	case ProviderCursorAgent:
		return NewCursorAgentBackend()
	default:
		return nil, fmt.Errorf("unknown model provider %q (expected %q or %q)", cfg.Provider, ProviderOpenAI, ProviderCursorAgent)
	}
}

// Complete runs a request and returns the full text, draining streamed responses.
func Complete(ctx context.Context, backend Backend, req Request) (string, error) {
	stream, err := backend.Generate(ctx, req)
	if err != nil {
		return "", err
	}
	return Drain(stream, nil)
}
