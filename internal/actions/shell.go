package actions

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"

	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"

	"zero.dev/zero/internal/ai"
	zeroerrors "zero.dev/zero/internal/errors"
	"zero.dev/zero/internal/runtime"
)

// ExecResult is the captured outcome of a shell command
type ExecResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Executor runs a confirmed shell command
type Executor interface {
	Execute(ctx context.Context, command string) (ExecResult, error)
}

// ShellExecutor runs commands with an in-process POSIX shell interpreter.
// A non-zero exit status is reported in the result, not as an error.
type ShellExecutor struct {
	// Dir is the working directory; empty means the current directory
	Dir string
}

// Execute parses and runs command, capturing both output streams
func (e *ShellExecutor) Execute(ctx context.Context, command string) (ExecResult, error) {
	file, err := syntax.NewParser().Parse(strings.NewReader(command), "")
	if err != nil {
		return ExecResult{}, zeroerrors.Wrapf(err, "failed to parse command")
	}

	var stdout, stderr bytes.Buffer
	opts := []interp.RunnerOption{interp.StdIO(nil, &stdout, &stderr)}
	if e.Dir != "" {
		opts = append(opts, interp.Dir(e.Dir))
	}
	runner, err := interp.New(opts...)
	if err != nil {
		return ExecResult{}, err
	}

	result := ExecResult{}
	runErr := runner.Run(ctx, file)
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()

	if status, ok := interp.IsExitStatus(runErr); ok {
		result.ExitCode = int(status)
		return result, nil
	}
	return result, runErr
}

// ShellOptions contains options for the interactive shell
type ShellOptions struct {
	Backend  ai.Backend
	Executor Executor
}

// ShellAction runs the read, suggest, confirm, execute loop until the user
// types exit or quit, or input ends. Model and execution failures are
// reported and the loop continues.
func ShellAction(ctx *runtime.Context, opts ShellOptions) error {
	splog := ctx.Splog
	style := splog.Style()

	executor := opts.Executor
	if executor == nil {
		executor = &ShellExecutor{}
	}

	splog.Success("Welcome to Zero AI Terminal. Type 'exit' or 'quit' to end.")

	for {
		if err := ctx.Context.Err(); err != nil {
			splog.Newline()
			splog.Status("Exiting...")
			return nil
		}

		line, err := ctx.Input.ReadLine(">> ")
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, zeroerrors.ErrInterrupted) {
				splog.Newline()
				splog.Status("Exiting...")
				return nil
			}
			return err
		}

		request := strings.TrimSpace(line)
		if request == "" {
			continue
		}
		if lower := strings.ToLower(request); lower == "exit" || lower == "quit" {
			return nil
		}

		text, err := ai.Complete(ctx.Context, opts.Backend, ai.Request{
			System:  ctx.Prompts.Shell,
			User:    request,
			Options: ai.ShellOptions,
		})
		if err != nil {
			splog.Error("An error occurred: %v", err)
			for _, hint := range zeroerrors.Hints(err) {
				splog.Tip("%s", hint)
			}
			continue
		}

		command := ai.CleanCommand(text)
		if command == "" {
			splog.Error("Sorry, I couldn't generate a command.")
			continue
		}

		splog.Info("%s%s", style.Blue("   Suggested command: "), style.Green(command))

		confirmed, err := ctx.Gate.Confirm("   Execute? [y/N]: ")
		if err != nil {
			splog.Newline()
			splog.Status("Exiting...")
			return nil
		}
		if !confirmed {
			splog.Warn("   Execution cancelled.")
			continue
		}

		splog.Status("   Executing...")
		result, err := executor.Execute(ctx.Context, command)
		if err != nil {
			splog.Error("An error occurred: %v", err)
			continue
		}
		if result.Stdout != "" {
			splog.Info("%s", strings.TrimRight(result.Stdout, "\n"))
		}
		if result.Stderr != "" {
			splog.Error("%s", strings.TrimRight(result.Stderr, "\n"))
		}
		if result.ExitCode != 0 {
			splog.Debug("Command exited with status %d", result.ExitCode)
		}
	}
}
