package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Activity sources selectable with --source.
const (
	SourceGraphQL = "graphql"
	SourceEvents  = "events"
)

// tokenEnvVars is the lookup order for a GitHub token.
var tokenEnvVars = []string{"GITSTREAK_TOKEN", "GH_TOKEN", "GITHUB_TOKEN"}

type Config struct {
	User   string `mapstructure:"user"`
	Output string `mapstructure:"output"`
	Source string `mapstructure:"source"`
}

func Default() *Config {
	return &Config{
		Output: "streak.svg",
		Source: SourceGraphQL,
	}
}

// Load reads configuration from an optional YAML file and GITSTREAK_*
// environment variables. A missing default config file is fine; a
// missing explicitly named file is an error. Flag values are applied
// by the caller on top of the loaded config.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("user", "")
	v.SetDefault("output", "streak.svg")
	v.SetDefault("source", SourceGraphQL)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".gitstreak")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix("GITSTREAK")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration names a user and a known source.
func (c *Config) Validate() error {
	if c.User == "" {
		return fmt.Errorf("no user configured: pass --user or set GITSTREAK_USER")
	}
	switch c.Source {
	case SourceGraphQL, SourceEvents:
	default:
		return fmt.Errorf("unknown source %q (valid: %s, %s)", c.Source, SourceGraphQL, SourceEvents)
	}
	return nil
}

// Token returns the first non-empty GitHub token among the supported
// environment variables, or empty when none is set.
func Token() string {
	for _, key := range tokenEnvVars {
		if tok := strings.TrimSpace(os.Getenv(key)); tok != "" {
			return tok
		}
	}
	return ""
}
