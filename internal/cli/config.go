package cli

import (
	"github.com/spf13/cobra"

	"zero.dev/zero/internal/actions"
	"zero.dev/zero/internal/cli/helpers"
	"zero.dev/zero/internal/runtime"
)

// newConfigCmd creates the config command
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the effective configuration",
		Long: `Inspect the effective configuration.

Configuration is read from defaults, the config file, ZERO_* environment
variables (plus GROQ_API_KEY and GITHUB_TOKEN) and flags, in that order.

Examples:
  zero config show
  zero config path`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration with secrets masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, actions.ConfigShowAction)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				actions.ConfigPathAction(ctx)
				return nil
			})
		},
	})

	return cmd
}
