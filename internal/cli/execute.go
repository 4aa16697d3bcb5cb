package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	zeroerrors "zero.dev/zero/internal/errors"
	"zero.dev/zero/internal/tui"
)

// Execute runs cmd and returns the process exit code. Errors are printed
// once, followed by their hints. Nothing staged, a declined confirmation and
// an interrupt exit with 0.
func Execute(ctx context.Context, cmd *cobra.Command) int {
	err := cmd.ExecuteContext(ctx)
	if err != nil && ctx.Err() != nil && errors.Is(err, context.Canceled) {
		err = zeroerrors.ErrInterrupted
	}

	if zeroerrors.IsCleanExit(err) {
		if errors.Is(err, zeroerrors.ErrInterrupted) {
			fmt.Fprintln(cmd.ErrOrStderr(), "\nInterrupted.")
		}
		return 0
	}

	printError(cmd.ErrOrStderr(), err)
	return 1
}

func printError(w io.Writer, err error) {
	style := tui.NewStyle(w)
	fmt.Fprintln(w, style.Red("Error: "+err.Error()))
	for _, hint := range zeroerrors.Hints(err) {
		fmt.Fprintln(w, style.Yellow("Hint: ")+hint)
	}
}
