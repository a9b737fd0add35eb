package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the wisp version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("wisp " + Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
