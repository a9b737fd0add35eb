// Package cmd wires up the wisp CLI's subcommands with cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wisplang/wisp/internal/config"
)

var (
	// Version is overridden at build time via -ldflags.
	Version = "0.1.0-dev"

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "wisp",
	Short: "Wisp scripting language interpreter",
	Long: `wisp is a tree-walking interpreter for the Wisp scripting language:
integers, floats, strings, arrays and first-class (but non-closing)
functions, evaluated over a recursive-descent parsed AST.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
		if !cfg.ColorEnabled() {
			color.NoColor = true
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func exitWithError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
