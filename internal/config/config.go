// Package config loads optional Wisp CLI/REPL settings from a YAML file,
// keeping the ambient configuration surface (prompt text, color, call
// depth setting) out of the command-line flag set.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds settings read from .wisprc.yaml or the file named by
// $WISP_CONFIG. Every field has a sane zero-value default, so a missing
// or empty file behaves the same as no file at all.
type Config struct {
	// Prompt overrides the REPL prompt (default "wisp> ").
	Prompt string `yaml:"prompt"`
	// Color disables ANSI color output in the CLI and REPL when false.
	Color *bool `yaml:"color"`
	// MaxCallDepth is read from the file but nothing in the evaluator
	// consults it: recursion depth is bounded only by the host's call
	// stack whatever its value.
	MaxCallDepth int `yaml:"max_call_depth"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	enabled := true
	return Config{Prompt: "wisp> ", Color: &enabled, MaxCallDepth: 0}
}

// Load reads configuration from $WISP_CONFIG if set, otherwise from
// .wisprc.yaml in the current directory. A missing file is not an error:
// it just yields Default().
func Load() (Config, error) {
	cfg := Default()

	path := os.Getenv("WISP_CONFIG")
	if path == "" {
		path = ".wisprc.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Color == nil {
		enabled := true
		cfg.Color = &enabled
	}
	return cfg, nil
}

// ColorEnabled reports whether ANSI color output should be used.
func (c Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}
