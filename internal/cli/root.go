package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"zero.dev/zero/internal/ai"
	"zero.dev/zero/internal/cli/helpers"
	"zero.dev/zero/internal/config"
	"zero.dev/zero/internal/runtime"
	"zero.dev/zero/internal/tui"
)

// dotEnvFile is loaded from the working directory before configuration is read
const dotEnvFile = ".env"

// rootFlags holds the flags of the root command
type rootFlags struct {
	analyze    string
	gitTask    string
	configFile string
	debug      bool
}

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "zero",
		Short: "Zero turns plain English into shell commands, commit messages and repository summaries",
		Long: `Zero is a natural-language assistant for the terminal.

Without flags it starts an interactive shell that suggests a command for each
request and runs it after you confirm.

Examples:
  zero
  zero --git commit
  zero --analyze https://github.com/owner/repo`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			rc, err := newRuntimeContext(cmd, flags)
			if err != nil {
				return err
			}
			cmd.SetContext(runtime.WithContext(cmd.Context(), rc))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if rc, err := runtime.GetContext(cmd.Context()); err == nil {
				return rc.Splog.Close()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				switch {
				case flags.analyze != "":
					return runAnalyze(ctx, flags.analyze)
				case flags.gitTask != "":
					return runGitTask(ctx, flags.gitTask)
				default:
					return runShell(ctx)
				}
			})
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("zero version %s (commit %s, built %s)\n", version, commit, date))

	rootCmd.Flags().StringVarP(&flags.analyze, "analyze", "a", "", "Analyze a GitHub repository by URL")
	rootCmd.Flags().StringVarP(&flags.gitTask, "git", "g", "", "Perform an AI-powered git task (e.g., 'commit')")
	rootCmd.Flags().Bool("render", false, "Render the analysis as markdown instead of streaming it")
	rootCmd.MarkFlagsMutuallyExclusive("analyze", "git")
	_ = rootCmd.RegisterFlagCompletionFunc("git", helpers.CompleteGitTasks)

	rootCmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "Config file (default ~/.config/zero/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "Print debug output")
	rootCmd.PersistentFlags().String("provider", "", "Model provider for commit and analysis (openai or cursor-agent)")
	rootCmd.PersistentFlags().String("model", "", "Model name for commit and analysis")
	_ = rootCmd.RegisterFlagCompletionFunc("provider", helpers.CompleteProviders)

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newModelCmd())

	return rootCmd
}

// flagBindings maps config keys to the flags that override them
var flagBindings = map[string]string{
	"model.provider": "provider",
	"model.name":     "model",
	"analyze.render": "render",
}

// newRuntimeContext loads configuration and prompts and sets up output and input
func newRuntimeContext(cmd *cobra.Command, flags *rootFlags) (*runtime.Context, error) {
	bound := make(map[string]*pflag.Flag, len(flagBindings))
	for key, name := range flagBindings {
		if flag := cmd.Flags().Lookup(name); flag != nil {
			bound[key] = flag
		}
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: flags.configFile,
		DotEnv:     dotEnvFile,
		Flags:      bound,
	})
	if err != nil {
		return nil, err
	}

	prompts, err := ai.LoadPrompts(cfg.Prompts.Dir)
	if err != nil {
		return nil, err
	}

	debug := flags.debug || os.Getenv("DEBUG") != ""
	splog := newSplog(cmd.OutOrStdout(), debug)
	splog.Debug("Loaded configuration from %q", cfg.Source)

	input := tui.NewLineReader(cmd.InOrStdin(), cmd.OutOrStdout())
	return runtime.NewContext(cmd.Context(), splog, cfg, prompts, input), nil
}

// newSplog logs to the terminal and the log file when writing to stdout,
// and only to out otherwise
func newSplog(out io.Writer, debug bool) *tui.Splog {
	if f, ok := out.(*os.File); ok && f == os.Stdout {
		splog, err := tui.NewSplogWithConfig(tui.GetLogFilePath(), debug)
		if err == nil {
			return splog
		}
		splog, _ = tui.NewSplogWithConfig("", debug)
		splog.Debug("File logging disabled: %v", err)
		return splog
	}
	return tui.NewSplogWithWriter(out, debug)
}
