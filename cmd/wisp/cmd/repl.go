package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/wisplang/wisp/eval"
	"github.com/wisplang/wisp/repl"
)

const banner = `
 __      __ _____ _____ _____
 \ \ /\ / /|_   _/ ____|  __ \
  \ V  V /   | | | (___ | |__) |
   \_/\_/    |_|  \_____|  ___/
                         | |
                         |_|
`

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive Wisp REPL",
	RunE: func(cmd *cobra.Command, args []string) error {
		r := repl.New(banner, Version, "------------------------------------", cfg.Prompt)
		r.Start(os.Stdout, eval.New())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
