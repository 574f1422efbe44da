// Package config loads the optional ragplan configuration. A missing config
// file is not an error: the generator's contract is to run with no input, so
// absence of configuration yields pure defaults.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/ragplan/internal/plan"
)

// Config represents the application configuration
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Exports ExportsConfig `yaml:"exports"`
	Journal JournalConfig `yaml:"journal"`
}

// OutputConfig controls where the document artifact is written
type OutputConfig struct {
	Directory string `yaml:"directory,omitempty"`
	Filename  string `yaml:"filename,omitempty"`
}

// ExportsConfig enables the optional companion renditions
type ExportsConfig struct {
	Markdown bool `yaml:"markdown,omitempty"`
	HTML     bool `yaml:"html,omitempty"`
}

// JournalConfig controls the opt-in generation journal
type JournalConfig struct {
	Enabled bool   `yaml:"enabled,omitempty"`
	Path    string `yaml:"path,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from the specified file. A nonexistent file
// yields defaults; a present but malformed file is an error.
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	loadEnvFile()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Debug("No configuration file, using defaults", "path", configPath)
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.applyDefaults()
	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Output.Directory == "" {
		c.Output.Directory = "."
	}
	if c.Output.Filename == "" {
		c.Output.Filename = plan.OutputFilename
	}
	if c.Journal.Path == "" {
		c.Journal.Path = ".ragplan/history.db"
	}
}

// loadEnvFile loads environment variables from .env files when present.
func loadEnvFile() {
	for _, envPath := range []string{".env", ".env.local"} {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err != nil {
			slog.Warn("Failed to load env file", "path", envPath, "error", err)
			continue
		}
		slog.Debug("Loaded environment variables", "path", envPath)
	}
}
