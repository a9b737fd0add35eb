// Command wisp is the CLI front end for the Wisp scripting language: it
// runs scripts, drives the interactive REPL, serves REPL sessions over
// TCP, and offers a small utility that dumps a script's parsed AST.
package main

import (
	"fmt"
	"os"

	"github.com/wisplang/wisp/cmd/wisp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
