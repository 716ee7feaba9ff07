// =============================================================================
// Grocery Receipt - Configuration Module
// =============================================================================
//
// This module loads the optional application configuration file. The file
// only tunes ambient behaviour (logging and how prompts are shown). The tax
// rate and receipt layout are fixed and cannot be configured.
//
// EXAMPLE (receipt.yaml):
//   log_level: debug
//   log_file: ./logs/receipt.log
//   prompt_style: plain
//
// A missing file is not an error; defaults are used instead.
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Prompt styles.
const (
	// PromptAuto uses the terminal UI when stdin is a terminal.
	PromptAuto = "auto"

	// PromptPlain always reads answers line by line.
	PromptPlain = "plain"

	// PromptTUI always uses the terminal UI.
	PromptTUI = "tui"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the application configuration.
type MainConfig struct {
	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls the verbosity of the structured log.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "error"
	LogLevel string `yaml:"log_level"`

	// LogFile is the path of the structured log. Empty logs to stderr.
	// Default: ""
	LogFile string `yaml:"log_file"`

	// =========================================================================
	// PROMPT SETTINGS
	// =========================================================================

	// PromptStyle selects how the input and output paths are asked for.
	// Valid values: "auto", "plain", "tui"
	// Default: "auto"
	PromptStyle string `yaml:"prompt_style"`
}

// Default returns a configuration with every default applied.
func Default() *MainConfig {
	cfg := &MainConfig{}
	applyMainConfigDefaults(cfg)
	return cfg
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// LoadMainConfig loads the configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file. May not exist.
//
// RETURNS:
//   - The configuration, with defaults for anything unset.
//   - An error if the file exists but cannot be read, parsed, or validated.
func LoadMainConfig(configPath string) (*MainConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config MainConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyMainConfigDefaults(&config)

	if err := validateMainConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// applyMainConfigDefaults sets default values for any unset option.
func applyMainConfigDefaults(config *MainConfig) {
	if config.LogLevel == "" {
		config.LogLevel = "error"
	}
	if config.PromptStyle == "" {
		config.PromptStyle = PromptAuto
	}
	config.LogLevel = strings.ToLower(config.LogLevel)
	config.PromptStyle = strings.ToLower(config.PromptStyle)
}

// validateMainConfig rejects unknown option values.
func validateMainConfig(config *MainConfig) error {
	switch config.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error (got %q)", config.LogLevel)
	}

	switch config.PromptStyle {
	case PromptAuto, PromptPlain, PromptTUI:
	default:
		return fmt.Errorf("prompt_style must be one of auto, plain, tui (got %q)", config.PromptStyle)
	}

	return nil
}
