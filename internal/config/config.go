package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variables mapped onto config keys
const EnvPrefix = "ZERO"

// Config is the effective configuration of one invocation
type Config struct {
	Model   ModelConfig   `mapstructure:"model" yaml:"model"`
	Shell   ShellConfig   `mapstructure:"shell" yaml:"shell"`
	Prompts PromptsConfig `mapstructure:"prompts" yaml:"prompts"`
	GitHub  GitHubConfig  `mapstructure:"github" yaml:"github"`
	Analyze AnalyzeConfig `mapstructure:"analyze" yaml:"analyze"`
	Commit  CommitConfig  `mapstructure:"commit" yaml:"commit"`

	// Source is the config file that was read, empty when none was found
	Source string `mapstructure:"-" yaml:"-"`
}

// ModelConfig selects the hosted backend used by the commit and analysis tools
type ModelConfig struct {
	Provider string        `mapstructure:"provider" yaml:"provider" validate:"oneof=openai cursor-agent"`
	BaseURL  string        `mapstructure:"base_url" yaml:"base_url" validate:"omitempty,url"`
	Name     string        `mapstructure:"name" yaml:"name"`
	APIKey   string        `mapstructure:"api_key" yaml:"api_key"`
	Timeout  time.Duration `mapstructure:"timeout" yaml:"timeout" validate:"gt=0"`
}

// ShellConfig selects the local model server used by the interactive shell
type ShellConfig struct {
	BaseURL   string `mapstructure:"base_url" yaml:"base_url" validate:"required,url"`
	Model     string `mapstructure:"model" yaml:"model"`
	ModelRepo string `mapstructure:"model_repo" yaml:"model_repo" validate:"required"`
	ModelFile string `mapstructure:"model_file" yaml:"model_file" validate:"required"`
	ModelDir  string `mapstructure:"model_dir" yaml:"model_dir" validate:"required"`
}

// PromptsConfig locates prompt templates; an empty Dir uses the built-in ones
type PromptsConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// GitHubConfig configures repository metadata access
type GitHubConfig struct {
	Token   string `mapstructure:"token" yaml:"token"`
	BaseURL string `mapstructure:"base_url" yaml:"base_url" validate:"omitempty,url"`
}

// AnalyzeConfig tunes the repository analysis tool
type AnalyzeConfig struct {
	MaxReadme int  `mapstructure:"max_readme" yaml:"max_readme" validate:"gte=0"`
	Render    bool `mapstructure:"render" yaml:"render"`
}

// CommitConfig tunes the commit tool
type CommitConfig struct {
	MaxDiff  int `mapstructure:"max_diff" yaml:"max_diff" validate:"gte=0"`
	LogCount int `mapstructure:"log_count" yaml:"log_count" validate:"gte=0"`
}

var defaults = map[string]interface{}{
	"model.provider":     "openai",
	"model.base_url":     "https://api.groq.com/openai/v1",
	"model.name":         "openai/gpt-oss-20b",
	"model.api_key":      "",
	"model.timeout":      60 * time.Second,
	"shell.base_url":     "http://localhost:8080/v1",
	"shell.model":        "zero-nl2cmds-v1",
	"shell.model_repo":   "Sanjayyy06/zero-nl2cmds-v1",
	"shell.model_file":   "zero-nl2cmds-v1.Q4_K_M.gguf",
	"shell.model_dir":    "models",
	"prompts.dir":        "",
	"github.token":       "",
	"github.base_url":    "",
	"analyze.max_readme": 3000,
	"analyze.render":     false,
	"commit.max_diff":    10000,
	"commit.log_count":   5,
}

// extraEnv lists the conventional variables accepted besides ZERO_*
var extraEnv = map[string][]string{
	"model.api_key": {"GROQ_API_KEY", "OPENAI_API_KEY"},
	"github.token":  {"GITHUB_TOKEN"},
}

// LoadOptions controls where configuration is read from
type LoadOptions struct {
	// ConfigFile overrides the default config path; it must exist when set
	ConfigFile string
	// DotEnv is the .env file to load; missing files are ignored
	DotEnv string
	// Flags maps config keys to the flags that override them
	Flags map[string]*pflag.Flag
}

// Load resolves the configuration
func Load(opts LoadOptions) (*Config, error) {
	if opts.DotEnv != "" {
		if err := godotenv.Load(opts.DotEnv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", opts.DotEnv, err)
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, names := range extraEnv {
		envNames := append([]string{EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))}, names...)
		if err := v.BindEnv(append([]string{key}, envNames...)...); err != nil {
			return nil, fmt.Errorf("failed to bind environment for %s: %w", key, err)
		}
	}

	for key, flag := range opts.Flags {
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("failed to bind flag --%s: %w", flag.Name, err)
		}
	}

	configFile := opts.ConfigFile
	if configFile == "" {
		if path := DefaultPath(); path != "" {
			if _, err := os.Stat(path); err == nil {
				configFile = path
			}
		}
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	cfg.Source = v.ConfigFileUsed()

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// DefaultPath returns ~/.config/zero/config.yaml, honoring XDG_CONFIG_HOME
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "zero", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "zero", "config.yaml")
}

// YAML renders the configuration with secrets masked
func (c *Config) YAML() ([]byte, error) {
	masked := *c
	masked.Model.APIKey = mask(c.Model.APIKey)
	masked.GitHub.Token = mask(c.GitHub.Token)
	return yaml.Marshal(&masked)
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 8 {
		return "****"
	}
	return secret[:4] + "****"
}
