// Package function holds the runtime representation of a user-defined
// Wisp function. Functions are global by construction (spec §4.2,
// §9 "Functions are global") and capture no enclosing scope: calling one
// only ever sees its own parameters and the global function table.
package function

import (
	"strings"

	"github.com/wisplang/wisp/objects"
	"github.com/wisplang/wisp/parser"
)

// Function is the runtime value produced by a `fn` declaration.
type Function struct {
	Name   string
	Params []string
	Body   []parser.Statement
}

func (f *Function) Kind() objects.Kind { return objects.FunctionKind }

func (f *Function) String() string {
	return "<function(" + strings.Join(f.Params, ", ") + ")>"
}

func (f *Function) Inspect() string {
	return "function " + f.Name + "(" + strings.Join(f.Params, ", ") + ")"
}
