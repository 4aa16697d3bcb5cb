package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"zero.dev/zero/internal/config"
)

// isolate points HOME and XDG_CONFIG_HOME at an empty directory and clears
// variables that would leak into the configuration.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, ".config"))
	for _, name := range []string{
		"GROQ_API_KEY", "OPENAI_API_KEY", "GITHUB_TOKEN",
		"ZERO_MODEL_API_KEY", "ZERO_MODEL_NAME", "ZERO_MODEL_PROVIDER", "ZERO_GITHUB_TOKEN",
	} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load(config.LoadOptions{})
	require.NoError(t, err)
	require.Equal(t, "openai", cfg.Model.Provider)
	require.Equal(t, "https://api.groq.com/openai/v1", cfg.Model.BaseURL)
	require.Equal(t, "openai/gpt-oss-20b", cfg.Model.Name)
	require.Equal(t, 60*time.Second, cfg.Model.Timeout)
	require.Equal(t, "http://localhost:8080/v1", cfg.Shell.BaseURL)
	require.Equal(t, "Sanjayyy06/zero-nl2cmds-v1", cfg.Shell.ModelRepo)
	require.Equal(t, "zero-nl2cmds-v1.Q4_K_M.gguf", cfg.Shell.ModelFile)
	require.Equal(t, "models", cfg.Shell.ModelDir)
	require.Equal(t, 3000, cfg.Analyze.MaxReadme)
	require.Equal(t, 10000, cfg.Commit.MaxDiff)
	require.Equal(t, 5, cfg.Commit.LogCount)
	require.Empty(t, cfg.Source)
}

func TestLoadPrecedence(t *testing.T) {
	dir := isolate(t)

	configPath := filepath.Join(dir, ".config", "zero", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(configPath), 0750))
	require.NoError(t, os.WriteFile(configPath, []byte(`
model:
  name: file-model
  timeout: 30s
commit:
  log_count: 2
`), 0600))

	t.Setenv("ZERO_COMMIT_LOG_COUNT", "3")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("model", "", "")
	require.NoError(t, flags.Parse([]string{"--model", "flag-model"}))

	cfg, err := config.Load(config.LoadOptions{
		Flags: map[string]*pflag.Flag{"model.name": flags.Lookup("model")},
	})
	require.NoError(t, err)
	require.Equal(t, configPath, cfg.Source)
	require.Equal(t, "flag-model", cfg.Model.Name, "flags beat the file")
	require.Equal(t, 30*time.Second, cfg.Model.Timeout, "file beats defaults")
	require.Equal(t, 3, cfg.Commit.LogCount, "env beats the file")
}

func TestLoadAPIKeyAliases(t *testing.T) {
	isolate(t)
	t.Setenv("GROQ_API_KEY", "gsk_from_env")
	t.Setenv("GITHUB_TOKEN", "ghp_from_env")

	cfg, err := config.Load(config.LoadOptions{})
	require.NoError(t, err)
	require.Equal(t, "gsk_from_env", cfg.Model.APIKey)
	require.Equal(t, "ghp_from_env", cfg.GitHub.Token)

	t.Setenv("ZERO_MODEL_API_KEY", "zero_key")
	cfg, err = config.Load(config.LoadOptions{})
	require.NoError(t, err)
	require.Equal(t, "zero_key", cfg.Model.APIKey, "ZERO_ variable wins over aliases")
}

func TestLoadDotEnv(t *testing.T) {
	dir := isolate(t)
	dotenv := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte("GROQ_API_KEY=from_dotenv\nZERO_MODEL_NAME=dotenv-model\n"), 0600))
	t.Setenv("ZERO_MODEL_NAME", "already-set")

	cfg, err := config.Load(config.LoadOptions{DotEnv: dotenv})
	require.NoError(t, err)
	require.Equal(t, "from_dotenv", cfg.Model.APIKey)
	require.Equal(t, "already-set", cfg.Model.Name, ".env never overrides the environment")

	_, err = config.Load(config.LoadOptions{DotEnv: filepath.Join(dir, "missing.env")})
	require.NoError(t, err)
}

func TestLoadErrors(t *testing.T) {
	dir := isolate(t)

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := config.Load(config.LoadOptions{ConfigFile: filepath.Join(dir, "nope.yaml")})
		require.ErrorContains(t, err, "failed to read config file")
	})

	t.Run("invalid provider", func(t *testing.T) {
		t.Setenv("ZERO_MODEL_PROVIDER", "llama")
		_, err := config.Load(config.LoadOptions{})
		require.ErrorContains(t, err, "invalid configuration")
	})
}

func TestYAMLMasksSecrets(t *testing.T) {
	isolate(t)
	t.Setenv("GROQ_API_KEY", "gsk_abcdefghijklmnop")

	cfg, err := config.Load(config.LoadOptions{})
	require.NoError(t, err)

	out, err := cfg.YAML()
	require.NoError(t, err)
	require.NotContains(t, string(out), "gsk_abcdefghijklmnop")

	var decoded map[string]map[string]interface{}
	require.NoError(t, yaml.Unmarshal(out, &decoded))
	require.Equal(t, "gsk_****", decoded["model"]["api_key"])
	require.Equal(t, "1m0s", decoded["model"]["timeout"])
}
