// Package config loads zero's configuration.
//
// Values are resolved, lowest precedence first, from:
//   - Built-in defaults
//   - The YAML config file (~/.config/zero/config.yaml or --config)
//   - ZERO_* environment variables, plus GROQ_API_KEY, OPENAI_API_KEY and GITHUB_TOKEN
//   - Command-line flags
//
// A .env file in the working directory is loaded first and never overrides
// variables that are already set.
package config
