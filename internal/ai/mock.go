package ai

import (
	"context"
	"fmt"
	"sync"
)

// MockBackend is a Backend for tests. It returns predefined text or errors
// and records every request without making network calls.
type MockBackend struct {
	mu        sync.Mutex
	responses []string
	chunks    []string
	err       error
	requests  []Request
}

// NewMockBackend creates a new MockBackend instance.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Name identifies the backend in errors
func (m *MockBackend) Name() string {
	return "mock"
}

// Generate implements Backend. Responses are consumed in order; the last one
// is repeated once the queue is exhausted.
func (m *MockBackend) Generate(_ context.Context, req Request) (Stream, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.requests = append(m.requests, req)

	if m.err != nil {
		return nil, m.err
	}
	if m.chunks != nil {
		return &sliceStream{chunks: append([]string(nil), m.chunks...)}, nil
	}
	if len(m.responses) == 0 {
		return nil, fmt.Errorf("no mock response set, use SetResponse()")
	}

	text := m.responses[0]
	if len(m.responses) > 1 {
		m.responses = m.responses[1:]
	}
	return NewTextStream(text), nil
}

// SetResponse queues the responses returned by successive calls.
func (m *MockBackend) SetResponse(texts ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = texts
	m.chunks = nil
	m.err = nil
}

// SetChunks makes every call return a stream of the given chunks.
func (m *MockBackend) SetChunks(chunks ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.chunks = chunks
	m.err = nil
}

// SetError makes every call fail with err.
func (m *MockBackend) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// CallCount returns the number of times Generate has been called.
func (m *MockBackend) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// LastRequest returns the last request passed to Generate.
func (m *MockBackend) LastRequest() Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return Request{}
	}
	return m.requests[len(m.requests)-1]
}

// Requests returns all requests passed to Generate.
func (m *MockBackend) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request(nil), m.requests...)
}

type sliceStream struct {
	chunks []string
	cur    string
}

func (s *sliceStream) Next() bool {
	if len(s.chunks) == 0 {
		return false
	}
	s.cur, s.chunks = s.chunks[0], s.chunks[1:]
	return true
}

func (s *sliceStream) Chunk() string { return s.cur }
func (s *sliceStream) Err() error    { return nil }
func (s *sliceStream) Close() error  { return nil }
