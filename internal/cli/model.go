package cli

import (
	"github.com/spf13/cobra"

	"zero.dev/zero/internal/actions"
	"zero.dev/zero/internal/ai"
	"zero.dev/zero/internal/cli/helpers"
	"zero.dev/zero/internal/runtime"
)

// newModelCmd creates the model command
func newModelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "model",
		Short: "Manage the local shell model",
		Long: `Manage the GGUF model served to the interactive shell.

The model is downloaded from Hugging Face (or the mirror in HF_ENDPOINT) into
shell.model_dir.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "pull",
		Short: "Download the shell model unless it is already present",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				_, err := actions.ModelPullAction(ctx, ai.NewModelDownloader())
				return err
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print where the shell model is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				actions.ModelPathAction(ctx)
				return nil
			})
		},
	})

	return cmd
}
