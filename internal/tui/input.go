package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	zeroerrors "zero.dev/zero/internal/errors"
)

// LineReader reads one line of user input after showing a prompt.
// It returns io.EOF when input is exhausted and ErrInterrupted on Ctrl-C.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// NewLineReader returns a survey-backed reader when running on a terminal
// and a buffered reader over in otherwise.
func NewLineReader(in io.Reader, out io.Writer) LineReader {
	if in == os.Stdin && IsTTY() {
		return &surveyReader{}
	}
	return NewBufferedReader(in, out)
}

// BufferedReader reads newline-terminated lines from any reader
type BufferedReader struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewBufferedReader creates a BufferedReader that echoes prompts to out
func NewBufferedReader(in io.Reader, out io.Writer) *BufferedReader {
	return &BufferedReader{reader: bufio.NewReader(in), out: out}
}

// ReadLine prints prompt and returns the next line without its terminator.
// A final line without a newline is still returned.
func (r *BufferedReader) ReadLine(prompt string) (string, error) {
	if r.out != nil && prompt != "" {
		_, _ = fmt.Fprint(r.out, prompt)
	}

	line, err := r.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

type surveyReader struct{}

func (r *surveyReader) ReadLine(prompt string) (string, error) {
	var answer string
	err := survey.AskOne(&survey.Input{Message: strings.TrimSpace(prompt)}, &answer)
	switch {
	case err == nil:
		return answer, nil
	case errors.Is(err, terminal.InterruptErr):
		return "", zeroerrors.ErrInterrupted
	case errors.Is(err, io.EOF):
		return "", io.EOF
	default:
		return "", fmt.Errorf("failed to read input: %w", err)
	}
}
