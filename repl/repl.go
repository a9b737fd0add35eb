// Package repl implements Wisp's interactive Read-Eval-Print Loop: one
// Evaluator persists across lines, so a `let` on one line is visible to
// the next (spec §6 "the interactive shell depends on this pattern").
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/wisplang/wisp/eval"
	"github.com/wisplang/wisp/objects"
	"github.com/wisplang/wisp/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration of an interactive session; none
// of it affects evaluation semantics.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
}

// New builds a Repl with the given banner, version string, separator
// line and prompt.
func New(banner, version, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "wisp "+r.Version)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintln(w, "Type an expression and press enter. Type .exit to quit.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the REPL loop against w, using ev as the persistent
// evaluator state. Input is read via readline regardless of what is
// passed as reader - a network connection works as well as a terminal,
// which is what the server subcommand relies on.
func (r *Repl) Start(w io.Writer, ev *eval.Evaluator) {
	r.printBanner(w)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(w, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	ev.Out = w

	for {
		line, err := rl.Readline()
		if err != nil {
			w.Write([]byte("Good bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			w.Write([]byte("Good bye!\n"))
			return
		}

		rl.SaveHistory(line)
		r.evalLine(w, ev, line)
	}
}

// evalLine parses and runs one line of input against ev, printing the
// result or diagnostic. Errors never terminate the session - the user
// stays at the prompt to try again. A panic is caught the same way, so
// one bad line can never take the whole session down.
func (r *Repl) evalLine(w io.Writer, ev *eval.Evaluator, line string) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(w, "[RUNTIME ERROR] %v\n", rec)
		}
	}()

	stmts, err := parser.Parse(line)
	if err != nil {
		redColor.Fprintf(w, "%s\n", err)
		return
	}

	result, err := ev.RunProgram(stmts)
	if err != nil {
		redColor.Fprintf(w, "%s\n", err)
		return
	}
	if _, isUnit := result.(*objects.Unit); !isUnit {
		yellowColor.Fprintf(w, "%s\n", result.String())
	}
}
