package ai_test

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"zero.dev/zero/internal/ai"
	zeroerrors "zero.dev/zero/internal/errors"
	"zero.dev/zero/testhelpers"
)

func TestOpenAIBackendNonStreamed(t *testing.T) {
	server := testhelpers.NewMockChatServer(t, "feat: add login")
	backend := ai.NewOpenAIBackend(server.BaseURL()+"/", "openai/gpt-oss-20b", "secret", nil)

	text, err := ai.Complete(context.Background(), backend, ai.Request{
		System:  "system prompt",
		User:    "user prompt",
		Options: ai.CommitOptions,
	})
	require.NoError(t, err)
	require.Equal(t, "feat: add login", text)

	reqs := server.Requests()
	require.Len(t, reqs, 1)
	require.Equal(t, "openai/gpt-oss-20b", reqs[0].Model)
	require.InDelta(t, 0.2, reqs[0].Temperature, 1e-9)
	require.Equal(t, 150, reqs[0].MaxTokens)
	require.False(t, reqs[0].Stream)
	require.Equal(t, []testhelpers.ChatMessage{
		{Role: "system", Content: "system prompt"},
		{Role: "user", Content: "user prompt"},
	}, reqs[0].Messages)
	require.Equal(t, []string{"Bearer secret"}, server.Authorizations())
}

func TestOpenAIBackendWithoutKeySendsNoAuthorization(t *testing.T) {
	server := testhelpers.NewMockChatServer(t, "ls -la")
	backend := ai.NewOpenAIBackend(server.BaseURL(), "local", "", nil)

	_, err := ai.Complete(context.Background(), backend, ai.Request{Options: ai.ShellOptions})
	require.NoError(t, err)
	require.Equal(t, []string{""}, server.Authorizations())
}

func TestOpenAIBackendStreamed(t *testing.T) {
	server := testhelpers.NewMockChatServer(t, "")
	server.SetChunks("## Purpose\n", "A CLI ", "tool.")
	backend := ai.NewOpenAIBackend(server.BaseURL(), "m", "k", nil)

	stream, err := backend.Generate(context.Background(), ai.Request{Options: ai.AnalysisOptions})
	require.NoError(t, err)

	var sink bytes.Buffer
	text, err := ai.Drain(stream, &sink)
	require.NoError(t, err)
	require.Equal(t, "## Purpose\nA CLI tool.", text)
	require.Equal(t, text, sink.String())
	require.True(t, server.Requests()[0].Stream)
}

func TestOpenAIBackendEmptyResultIsNotAnError(t *testing.T) {
	server := testhelpers.NewMockChatServer(t, "")
	backend := ai.NewOpenAIBackend(server.BaseURL(), "m", "k", nil)

	text, err := ai.Complete(context.Background(), backend, ai.Request{Options: ai.CommitOptions})
	require.NoError(t, err)
	require.Empty(t, text)
}

func TestOpenAIBackendErrors(t *testing.T) {
	t.Run("http status", func(t *testing.T) {
		server := testhelpers.NewMockChatServer(t, "")
		server.SetStatus(http.StatusUnauthorized)
		backend := ai.NewOpenAIBackend(server.BaseURL(), "m", "bad", nil)

		_, err := backend.Generate(context.Background(), ai.Request{Options: ai.CommitOptions})
		require.ErrorIs(t, err, zeroerrors.ErrBackend)
		require.Contains(t, err.Error(), "401")
	})

	t.Run("transport", func(t *testing.T) {
		backend := ai.NewOpenAIBackend("http://127.0.0.1:1", "m", "k", nil)
		_, err := backend.Generate(context.Background(), ai.Request{Options: ai.CommitOptions})
		require.ErrorIs(t, err, zeroerrors.ErrBackend)
	})
}

func TestNew(t *testing.T) {
	t.Run("openai is the default", func(t *testing.T) {
		backend, err := ai.New(ai.BackendConfig{BaseURL: "http://localhost", APIKey: "k"})
		require.NoError(t, err)
		require.Equal(t, "openai", backend.Name())
	})

	t.Run("missing key carries a hint", func(t *testing.T) {
		_, err := ai.New(ai.BackendConfig{Provider: ai.ProviderOpenAI, RequireAPIKey: true})
		require.Error(t, err)
		require.Equal(t, []string{"Make sure 'GROQ_API_KEY' is in your .env file."}, zeroerrors.Hints(err))
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := ai.New(ai.BackendConfig{Provider: "llama"})
		require.ErrorContains(t, err, "unknown model provider")
	})
}
