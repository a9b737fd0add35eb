package cmd

import (
	"fmt"
	"net"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wisplang/wisp/eval"
	"github.com/wisplang/wisp/repl"
)

var serverCmd = &cobra.Command{
	Use:   "server [port]",
	Short: "Serve a Wisp REPL session over TCP",
	Long: `Listens on the given port and gives each incoming connection its own
REPL session with its own Evaluator, so concurrent clients never share
bindings.`,
	Args: cobra.ExactArgs(1),
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serverCmd)
}

func runServer(_ *cobra.Command, args []string) error {
	port := args[0]
	cyan := color.New(color.FgCyan)
	red := color.New(color.FgRed)

	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("starting server on port %s: %w", port, err)
	}
	defer listener.Close()
	cyan.Printf("wisp REPL server listening on :%s\n", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			red.Fprintf(os.Stderr, "[SERVER ERROR] accept: %v\n", err)
			continue
		}
		go handleClient(conn, cyan)
	}
}

func handleClient(conn net.Conn, cyan *color.Color) {
	defer conn.Close()
	cyan.Printf("client connected from %s\n", conn.RemoteAddr())
	r := repl.New(banner, Version, "------------------------------------", cfg.Prompt)
	r.Start(conn, eval.New())
	cyan.Printf("client disconnected from %s\n", conn.RemoteAddr())
}
