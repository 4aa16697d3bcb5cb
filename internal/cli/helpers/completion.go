package helpers

import (
	"github.com/spf13/cobra"

	"zero.dev/zero/internal/actions"
	"zero.dev/zero/internal/ai"
)

// CompleteGitTasks is a helper for RegisterFlagCompletionFunc that returns the
// tasks accepted by --git.
func CompleteGitTasks(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return actions.GitTasks, cobra.ShellCompDirectiveNoFileComp
}

// CompleteProviders returns the model providers accepted by --provider.
func CompleteProviders(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{ai.ProviderOpenAI, ai.ProviderCursorAgent}, cobra.ShellCompDirectiveNoFileComp
}
