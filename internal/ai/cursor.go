package ai

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	zeroerrors "zero.dev/zero/internal/errors"
)

// CursorAgentBackend runs prompts through the cursor-agent CLI
type CursorAgentBackend struct {
	binary string
}

// NewCursorAgentBackend creates a backend using cursor-agent from PATH
func NewCursorAgentBackend() (*CursorAgentBackend, error) {
	return newCursorAgentBackend("cursor-agent")
}

func newCursorAgentBackend(binary string) (*CursorAgentBackend, error) {
	if err := exec.Command(binary, "--version").Run(); err != nil {
		return nil, fmt.Errorf("%s CLI not available in PATH", binary)
	}
	return &CursorAgentBackend{binary: binary}, nil
}

// Name identifies the backend in errors
func (c *CursorAgentBackend) Name() string {
	return "cursor-agent"
}

// Generate runs cursor-agent non-interactively. The CLI does not stream, so
// the response is always a single chunk. Sampling options are not supported
// by the CLI and are ignored.
func (c *CursorAgentBackend) Generate(ctx context.Context, req Request) (Stream, error) {
	prompt := req.System + "\n\n" + req.User

	// The -p flag runs in non-interactive mode
	cmd := exec.CommandContext(ctx, c.binary, "-p", prompt)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound) {
			return nil, zeroerrors.NewBackendError(c.Name(), fmt.Errorf("%s not found in PATH", c.binary))
		}

		var msg strings.Builder
		msg.WriteString("exited with error")
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintf(&msg, " (exit code %d)", exitErr.ExitCode())
		}
		if s := strings.TrimSpace(stderr.String()); s != "" {
			msg.WriteString(": ")
			msg.WriteString(s)
		}
		return nil, zeroerrors.NewBackendError(c.Name(), errors.New(msg.String()))
	}

	return NewTextStream(strings.TrimSpace(stdout.String())), nil
}
