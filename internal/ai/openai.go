package ai

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	zeroerrors "zero.dev/zero/internal/errors"
)

// maxErrorBody bounds how much of a failed response is quoted in errors
const maxErrorBody = 4096

// OpenAIBackend calls an OpenAI-compatible chat completions endpoint, such as
// Groq or a local llama.cpp server.
type OpenAIBackend struct {
	baseURL string
	model   string
	apiKey  string
	http    *http.Client
}

// NewOpenAIBackend creates a backend for baseURL (e.g. https://api.groq.com/openai/v1)
func NewOpenAIBackend(baseURL, model, apiKey string, client *http.Client) *OpenAIBackend {
	if client == nil {
		client = http.DefaultClient
	}
	return &OpenAIBackend{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		model:   model,
		apiKey:  apiKey,
		http:    client,
	}
}

// Name identifies the backend in errors
func (b *OpenAIBackend) Name() string {
	return "openai"
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Stream      bool          `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
		Delta   chatMessage `json:"delta"`
	} `json:"choices"`
}

// Generate sends req and returns its response as a stream. Non-streamed
// responses are wrapped in a single-chunk stream.
func (b *OpenAIBackend) Generate(ctx context.Context, req Request) (Stream, error) {
	payload, err := json.Marshal(chatRequest{
		Model: b.model,
		Messages: []chatMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
		Temperature: req.Options.Temperature,
		MaxTokens:   req.Options.MaxTokens,
		Stream:      req.Options.Stream,
	})
	if err != nil {
		return nil, zeroerrors.NewBackendError(b.Name(), fmt.Errorf("failed to encode request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, zeroerrors.NewBackendError(b.Name(), err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if b.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+b.apiKey)
	}
	if req.Options.Stream {
		httpReq.Header.Set("Accept", "text/event-stream")
	}

	resp, err := b.http.Do(httpReq)
	if err != nil {
		return nil, zeroerrors.NewBackendError(b.Name(), err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, zeroerrors.NewBackendError(b.Name(),
			fmt.Errorf("%s: %s", resp.Status, strings.TrimSpace(string(body))))
	}

	if req.Options.Stream {
		return newSSEStream(b.Name(), resp.Body), nil
	}

	defer resp.Body.Close()
	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, zeroerrors.NewBackendError(b.Name(), fmt.Errorf("failed to decode response: %w", err))
	}
	if len(decoded.Choices) == 0 {
		return NewTextStream(""), nil
	}
	return NewTextStream(decoded.Choices[0].Message.Content), nil
}

// sseStream reads "data: {...}" server-sent events until "data: [DONE]"
type sseStream struct {
	backend string
	body    io.ReadCloser
	scanner *bufio.Scanner
	chunk   string
	err     error
	done    bool
}

func newSSEStream(backend string, body io.ReadCloser) *sseStream {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &sseStream{backend: backend, body: body, scanner: scanner}
}

func (s *sseStream) Next() bool {
	if s.done {
		return false
	}

	for s.scanner.Scan() {
		line := strings.TrimSpace(s.scanner.Text())
		data, ok := strings.CutPrefix(line, "data:")
		if !ok {
			continue
		}
		data = strings.TrimSpace(data)
		if data == "[DONE]" {
			s.done = true
			return false
		}

		var event chatResponse
		if err := json.Unmarshal([]byte(data), &event); err != nil {
			s.err = zeroerrors.NewBackendError(s.backend, fmt.Errorf("malformed stream event: %w", err))
			s.done = true
			return false
		}
		if len(event.Choices) == 0 || event.Choices[0].Delta.Content == "" {
			continue
		}
		s.chunk = event.Choices[0].Delta.Content
		return true
	}

	if err := s.scanner.Err(); err != nil {
		s.err = zeroerrors.NewBackendError(s.backend, err)
	}
	s.done = true
	return false
}

func (s *sseStream) Chunk() string { return s.chunk }
func (s *sseStream) Err() error    { return s.err }
func (s *sseStream) Close() error  { return s.body.Close() }
