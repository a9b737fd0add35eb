package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wisplang/wisp/eval"
	"github.com/wisplang/wisp/objects"
	"github.com/wisplang/wisp/parser"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Wisp script file or inline expression",
	Long: `Execute a Wisp program from a file or an inline expression.

Examples:
  wisp run factorial.wisp
  wisp run -e "println(1 + 2)"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline source instead of reading a file")
}

func runScript(_ *cobra.Command, args []string) error {
	source, err := sourceFor(evalExpr, args)
	if err != nil {
		return err
	}

	red := color.New(color.FgRed)
	if !cfg.ColorEnabled() {
		color.NoColor = true
	}

	stmts, err := parser.Parse(source)
	if err != nil {
		red.Fprintf(os.Stderr, "%s\n", err)
		return fmt.Errorf("parsing failed")
	}

	ev := eval.New()
	result, err := runProgramWithRecovery(ev, stmts)
	if err != nil {
		red.Fprintf(os.Stderr, "%s\n", err)
		return fmt.Errorf("execution failed")
	}
	if _, isUnit := result.(*objects.Unit); !isUnit {
		fmt.Println(result.String())
	}
	return nil
}

// runProgramWithRecovery guards a top-level script run the way the
// teacher's executeFileWithRecovery guards main(): a panic anywhere in
// the evaluator (an unhandled index edge case, a nil dereference) is
// caught here and turned into an ordinary error instead of crashing the
// process, so runScript's existing red-stderr reporting and cobra's own
// non-zero-exit path both fire exactly as they would for any other
// runtime error.
func runProgramWithRecovery(ev *eval.Evaluator, stmts []parser.Statement) (result objects.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("[RUNTIME ERROR] %v", r)
		}
	}()
	return ev.RunProgram(stmts)
}

func sourceFor(evalExpr string, args []string) (string, error) {
	if evalExpr != "" {
		return evalExpr, nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(content), nil
	}
	return "", fmt.Errorf("provide a file path or use -e for inline source")
}
