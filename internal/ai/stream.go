package ai

import (
	"io"
	"strings"
)

// Stream is a finite, single-pass sequence of text chunks.
//
//	for s.Next() { use(s.Chunk()) }
//	if err := s.Err(); err != nil { ... }
type Stream interface {
	Next() bool
	Chunk() string
	Err() error
	Close() error
}

// textStream yields one chunk holding a complete response
type textStream struct {
	text string
	done bool
}

// NewTextStream returns a stream with text as its only chunk. Empty text
// yields no chunks.
func NewTextStream(text string) Stream {
	return &textStream{text: text, done: text == ""}
}

func (s *textStream) Next() bool {
	if s.done {
		return false
	}
	s.done = true
	return true
}

func (s *textStream) Chunk() string { return s.text }
func (s *textStream) Err() error    { return nil }
func (s *textStream) Close() error  { return nil }

// Drain reads the stream to the end, forwarding each chunk to sink when it is
// non-nil, and returns the concatenated text. The stream is always closed.
func Drain(s Stream, sink io.Writer) (string, error) {
	defer func() { _ = s.Close() }()

	var b strings.Builder
	for s.Next() {
		chunk := s.Chunk()
		b.WriteString(chunk)
		if sink != nil {
			if _, err := io.WriteString(sink, chunk); err != nil {
				return b.String(), err
			}
		}
	}
	return b.String(), s.Err()
}
