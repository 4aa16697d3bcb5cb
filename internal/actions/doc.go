// Package actions provides the business logic behind zero's commands.
//
// Each action corresponds to a tool (commit, shell, analyze, model, config)
// and orchestrates the git, ai, github and tui packages.
//
// Key patterns:
//   - Actions accept runtime.Context which provides Splog, Config, Prompts and input
//   - Side effects (git commit, running a shell command) only happen after runtime.Context.Gate approves
//   - Collaborators (git.Repo, ai.Backend, github.MetadataFetcher, Executor) are passed in options
package actions
