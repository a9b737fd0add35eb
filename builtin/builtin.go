// Package builtin implements Wisp's fixed built-in function registry
// (print, println, sin, cos, sqrt, abs, floor, len, clear, sleep). Each
// entry is checked before user functions during a Call (spec §4.3).
package builtin

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/wisplang/wisp/objects"
)

// Func is the signature every built-in implements: a pre-evaluated
// argument list in, a Value or diagnostic error out. out is the stream
// print/println write to; everything else ignores it.
type Func func(out io.Writer, args []objects.Value) (objects.Value, error)

// table is the fixed registry, keyed by the name scripts call.
var table = map[string]Func{
	"print":   print_,
	"println": println_,
	"sin":     unaryMath("sin", math.Sin),
	"cos":     unaryMath("cos", math.Cos),
	"sqrt":    unaryMath("sqrt", math.Sqrt),
	"abs":     abs_,
	"floor":   floor_,
	"len":     len_,
	"clear":   clear_,
	"sleep":   sleep_,
}

// Lookup returns the built-in registered under name, if any.
func Lookup(name string) (Func, bool) {
	fn, ok := table[name]
	return fn, ok
}

func print_(out io.Writer, args []objects.Value) (objects.Value, error) {
	for _, v := range args {
		fmt.Fprint(out, v.String())
	}
	if f, ok := out.(interface{ Flush() error }); ok {
		f.Flush()
	}
	return objects.TheUnit, nil
}

func println_(out io.Writer, args []objects.Value) (objects.Value, error) {
	parts := make([]string, len(args))
	for i, v := range args {
		parts[i] = v.String()
	}
	fmt.Fprintln(out, strings.Join(parts, " "))
	return objects.TheUnit, nil
}

func asFloat(v objects.Value) (float64, bool) {
	switch n := v.(type) {
	case *objects.Int:
		return float64(n.Value), true
	case *objects.Float:
		return n.Value, true
	default:
		return 0, false
	}
}

// unaryMath builds a one-argument math built-in that accepts Int or
// Float and always produces a Float, matching sin/cos/sqrt.
func unaryMath(name string, op func(float64) float64) Func {
	return func(out io.Writer, args []objects.Value) (objects.Value, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%s() takes 1 argument, got %d", name, len(args))
		}
		n, ok := asFloat(args[0])
		if !ok {
			return nil, fmt.Errorf("%s() requires a number, got %s", name, args[0].Inspect())
		}
		return &objects.Float{Value: op(n)}, nil
	}
}

func abs_(out io.Writer, args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("abs() takes 1 argument, got %d", len(args))
	}
	switch n := args[0].(type) {
	case *objects.Int:
		v := n.Value
		if v < 0 {
			v = -v
		}
		return &objects.Int{Value: v}, nil
	case *objects.Float:
		return &objects.Float{Value: math.Abs(n.Value)}, nil
	default:
		return nil, fmt.Errorf("abs() requires a number, got %s", args[0].Inspect())
	}
}

func floor_(out io.Writer, args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("floor() takes 1 argument, got %d", len(args))
	}
	switch n := args[0].(type) {
	case *objects.Int:
		return &objects.Int{Value: n.Value}, nil
	case *objects.Float:
		return &objects.Int{Value: int64(math.Floor(n.Value))}, nil
	default:
		return nil, fmt.Errorf("floor() requires a number, got %s", args[0].Inspect())
	}
}

func len_(out io.Writer, args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("len() takes 1 argument, got %d", len(args))
	}
	switch v := args[0].(type) {
	case *objects.Array:
		return &objects.Int{Value: int64(len(v.Elements))}, nil
	case *objects.Str:
		return &objects.Int{Value: int64(len(v.Runes()))}, nil
	default:
		return nil, fmt.Errorf("len() requires an array or string, got %s", args[0].Inspect())
	}
}

func clear_(out io.Writer, args []objects.Value) (objects.Value, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("clear() takes no arguments, got %d", len(args))
	}
	fmt.Fprint(out, "\x1B[2J\x1B[1;1H")
	return objects.TheUnit, nil
}

func sleep_(out io.Writer, args []objects.Value) (objects.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("sleep() takes 1 argument, got %d", len(args))
	}
	ms, ok := args[0].(*objects.Int)
	if !ok {
		return nil, fmt.Errorf("sleep() requires an integer (milliseconds), got %s", args[0].Inspect())
	}
	time.Sleep(time.Duration(ms.Value) * time.Millisecond)
	return objects.TheUnit, nil
}
