package testhelpers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// ChatRequest is the subset of a chat completions request the mock records.
type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	Stream      bool          `json:"stream"`
}

// ChatMessage is a single chat message.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// MockChatServer is an OpenAI-compatible chat completions server for tests.
type MockChatServer struct {
	*httptest.Server

	mu       sync.Mutex
	reply    string
	chunks   []string
	status   int
	requests []ChatRequest
	auth     []string
}

// NewMockChatServer starts a mock chat completions server answering with reply.
func NewMockChatServer(t *testing.T, reply string) *MockChatServer {
	m := &MockChatServer{reply: reply}
	mux := http.NewServeMux()
	mux.HandleFunc("/chat/completions", m.handle)
	m.Server = httptest.NewServer(mux)
	t.Cleanup(m.Close)
	return m
}

// SetReply changes the non-streamed reply.
func (m *MockChatServer) SetReply(reply string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reply = reply
}

// SetChunks sets the deltas sent for streamed requests. When unset the reply
// is sent as a single delta.
func (m *MockChatServer) SetChunks(chunks ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chunks = chunks
}

// SetStatus forces the server to fail with status.
func (m *MockChatServer) SetStatus(status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status = status
}

// Requests returns the decoded requests received so far.
func (m *MockChatServer) Requests() []ChatRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ChatRequest, len(m.requests))
	copy(out, m.requests)
	return out
}

// Authorizations returns the Authorization headers received so far.
func (m *MockChatServer) Authorizations() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.auth))
	copy(out, m.auth)
	return out
}

func (m *MockChatServer) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	var req ChatRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.auth = append(m.auth, r.Header.Get("Authorization"))
	status, reply := m.status, m.reply
	chunks := append([]string(nil), m.chunks...)
	m.mu.Unlock()

	if status != 0 {
		writeJSON(w, status, map[string]interface{}{"error": map[string]string{"message": "mock failure"}})
		return
	}

	if !req.Stream {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"choices": []map[string]interface{}{
				{"index": 0, "message": map[string]string{"role": "assistant", "content": reply}},
			},
		})
		return
	}

	if len(chunks) == 0 {
		chunks = []string{reply}
	}
	w.Header().Set("Content-Type", "text/event-stream")
	flusher, _ := w.(http.Flusher)
	for _, c := range chunks {
		payload, _ := json.Marshal(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"index": 0, "delta": map[string]string{"content": c}},
			},
		})
		_, _ = fmt.Fprintf(w, "data: %s\n\n", payload)
		if flusher != nil {
			flusher.Flush()
		}
	}
	_, _ = io.WriteString(w, "data: [DONE]\n\n")
}

// LastUserPrompt returns the user message of the most recent request.
func (m *MockChatServer) LastUserPrompt() string {
	reqs := m.Requests()
	if len(reqs) == 0 {
		return ""
	}
	for _, msg := range reqs[len(reqs)-1].Messages {
		if msg.Role == "user" {
			return msg.Content
		}
	}
	return ""
}

// BaseURL returns the server URL usable as a model base URL.
func (m *MockChatServer) BaseURL() string {
	return strings.TrimSuffix(m.URL, "/")
}
