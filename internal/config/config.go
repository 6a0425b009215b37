package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/vfsh/pkg/vfsh"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound);
// a missing file is not fatal, defaults apply.
var ErrConfigNotFound = errors.New("config file not found")

// ConfigFileName is the per-directory config file vfsh looks for at startup.
const ConfigFileName = "vfsh.yaml"

// ShellConfig controls the presentation layer of a session. The virtual
// tree itself carries no configuration.
type ShellConfig struct {
	// Prompt is rendered before each interactive command.
	Prompt string `yaml:"prompt"`
	// HistorySize caps the interactive input history.
	HistorySize int `yaml:"history_size"`
	// NoColor disables styled output even on a capable terminal.
	NoColor bool `yaml:"no_color"`
}

// Default returns the configuration used when no file and no overrides are
// present.
func Default() *ShellConfig {
	return &ShellConfig{
		Prompt:      vfsh.DefaultPrompt,
		HistorySize: vfsh.DefaultHistorySize,
	}
}

// Load reads vfsh.yaml from dir and merges it over the defaults.
// Returns ErrConfigNotFound when the file is absent.
func Load(dir string) (*ShellConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", configPath, err, vfsh.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	return cfg, nil
}

// ApplyEnv overlays environment variables over the loaded values.
// VFSH_PROMPT replaces the prompt; NO_COLOR (any value) disables color.
func (c *ShellConfig) ApplyEnv() {
	if prompt := os.Getenv("VFSH_PROMPT"); prompt != "" {
		c.Prompt = prompt
	}
	if os.Getenv("NO_COLOR") != "" {
		c.NoColor = true
	}
}

// Validate checks field ranges.
func (c *ShellConfig) Validate() error {
	if c.HistorySize < 0 {
		return fmt.Errorf("history_size must not be negative: %w", vfsh.ErrInvalidConfig)
	}
	if c.HistorySize == 0 {
		c.HistorySize = vfsh.DefaultHistorySize
	}
	if c.Prompt == "" {
		c.Prompt = vfsh.DefaultPrompt
	}
	return nil
}
