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
	zeroerrors "zero.dev/zero/internal/errors"
)

// recordingExecutor records commands instead of running them
type recordingExecutor struct {
	commands []string
	result   actions.ExecResult
	err      error
}

func (e *recordingExecutor) Execute(_ context.Context, command string) (actions.ExecResult, error) {
	e.commands = append(e.commands, command)
	return e.result, e.err
}

func TestShellAction(t *testing.T) {
	t.Run("runs a confirmed command", func(t *testing.T) {
		backend := ai.NewMockBackend()
		backend.SetResponse("`ls -la`\n")
		executor := &recordingExecutor{result: actions.ExecResult{Stdout: "total 0\n"}}
		ctx, out := newTestContext(t, "list all files\ny\nexit\n")

		err := actions.ShellAction(ctx, actions.ShellOptions{Backend: backend, Executor: executor})
		require.NoError(t, err)
		require.Equal(t, []string{"ls -la"}, executor.commands)
		require.Contains(t, out.String(), "Welcome to Zero AI Terminal")
		require.Contains(t, out.String(), "Suggested command: ls -la")
		require.Contains(t, out.String(), "total 0")

		req := backend.LastRequest()
		require.Equal(t, "list all files", req.User)
		require.Equal(t, ctx.Prompts.Shell, req.System)
		require.Equal(t, ai.ShellOptions, req.Options)
	})

	t.Run("declined command is not run", func(t *testing.T) {
		backend := ai.NewMockBackend()
		backend.SetResponse("rm -rf build")
		executor := &recordingExecutor{}
		ctx, out := newTestContext(t, "clean up\nY\nquit\n")

		require.NoError(t, actions.ShellAction(ctx, actions.ShellOptions{Backend: backend, Executor: executor}))
		require.Empty(t, executor.commands)
		require.Contains(t, out.String(), "Execution cancelled.")
	})

	t.Run("empty lines are skipped", func(t *testing.T) {
		backend := ai.NewMockBackend()
		backend.SetResponse("pwd")
		ctx, _ := newTestContext(t, "\n   \nEXIT\n")

		require.NoError(t, actions.ShellAction(ctx, actions.ShellOptions{Backend: backend, Executor: &recordingExecutor{}}))
		require.Equal(t, 0, backend.CallCount())
	})

	t.Run("end of input exits", func(t *testing.T) {
		backend := ai.NewMockBackend()
		ctx, out := newTestContext(t, "")

		require.NoError(t, actions.ShellAction(ctx, actions.ShellOptions{Backend: backend, Executor: &recordingExecutor{}}))
		require.Contains(t, out.String(), "Exiting...")
	})

	t.Run("interrupt exits", func(t *testing.T) {
		reader := &scriptedReader{answers: []scriptedAnswer{{err: zeroerrors.ErrInterrupted}}}
		ctx, out := newTestContextWithReader(t, reader)

		require.NoError(t, actions.ShellAction(ctx, actions.ShellOptions{Backend: ai.NewMockBackend(), Executor: &recordingExecutor{}}))
		require.Contains(t, out.String(), "Exiting...")
	})

	t.Run("backend errors keep the loop running", func(t *testing.T) {
		backend := ai.NewMockBackend()
		backend.SetError(zeroerrors.WithHint(zeroerrors.NewBackendError("openai", errors.New("connection refused")), "start the server"))
		executor := &recordingExecutor{}
		ctx, out := newTestContext(t, "first\nsecond\nexit\n")

		require.NoError(t, actions.ShellAction(ctx, actions.ShellOptions{Backend: backend, Executor: executor}))
		require.Equal(t, 2, backend.CallCount())
		require.Contains(t, out.String(), "An error occurred:")
		require.Contains(t, out.String(), "start the server")
		require.Empty(t, executor.commands)
	})

	t.Run("empty suggestion is reported", func(t *testing.T) {
		backend := ai.NewMockBackend()
		backend.SetResponse(" `` \n")
		executor := &recordingExecutor{}
		ctx, out := newTestContext(t, "do nothing\nexit\n")

		require.NoError(t, actions.ShellAction(ctx, actions.ShellOptions{Backend: backend, Executor: executor}))
		require.Contains(t, out.String(), "Sorry, I couldn't generate a command.")
		require.Empty(t, executor.commands)
	})

	t.Run("command stderr is shown", func(t *testing.T) {
		backend := ai.NewMockBackend()
		backend.SetResponse("cat missing")
		executor := &recordingExecutor{result: actions.ExecResult{Stderr: "cat: missing: No such file\n", ExitCode: 1}}
		ctx, out := newTestContext(t, "show missing\ny\n")

		require.NoError(t, actions.ShellAction(ctx, actions.ShellOptions{Backend: backend, Executor: executor}))
		require.Contains(t, out.String(), "cat: missing: No such file")
	})
}

func TestShellExecutor(t *testing.T) {
	ctx := context.Background()

	t.Run("captures output and exit status", func(t *testing.T) {
		executor := &actions.ShellExecutor{}
		result, err := executor.Execute(ctx, "echo out; echo err >&2; exit 3")
		require.NoError(t, err)
		require.Equal(t, "out\n", result.Stdout)
		require.Equal(t, "err\n", result.Stderr)
		require.Equal(t, 3, result.ExitCode)
	})

	t.Run("runs in the configured directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "marker"), []byte("here\n"), 0o644))

		executor := &actions.ShellExecutor{Dir: dir}
		result, err := executor.Execute(ctx, `read -r line < marker; echo "$line"`)
		require.NoError(t, err)
		require.Equal(t, "here\n", result.Stdout)
		require.Equal(t, 0, result.ExitCode)
	})

	t.Run("rejects unparsable input", func(t *testing.T) {
		executor := &actions.ShellExecutor{}
		_, err := executor.Execute(ctx, "echo 'unterminated")
		require.Error(t, err)
	})
}
