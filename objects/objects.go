// Package objects defines the runtime value representation for Wisp:
// the tagged Value variants described by the language's data model, plus
// the small set of helpers (formatting, deep copy) that the evaluator
// leans on to keep those values behaving with value semantics.
package objects

import (
	"fmt"
	"strings"
)

// Kind identifies which variant a Value is. It exists mainly for quick
// dispatch in the evaluator's operator tables and for building diagnostic
// messages.
type Kind string

const (
	IntKind      Kind = "int"
	FloatKind    Kind = "float"
	BoolKind     Kind = "bool"
	StrKind      Kind = "string"
	ArrayKind    Kind = "array"
	FunctionKind Kind = "function"
	UnitKind     Kind = "unit"
	ErrorKind    Kind = "error"
)

// Value is the interface every Wisp runtime value implements. It mirrors
// the language's own data model rather than Go's: there is no separate
// "nil" concept, only Unit (the absence of a meaningful result).
type Value interface {
	// Kind reports which variant this value is.
	Kind() Kind
	// String is the user-facing representation used by print/println and
	// by the REPL's echo of a non-Unit result.
	String() string
	// Inspect is a debug representation that also names the value's kind,
	// used for error messages ("Cannot apply Add to int(1) and string(\"x\")").
	Inspect() string
}

// Int is a signed 64-bit integer value.
type Int struct{ Value int64 }

func (i *Int) Kind() Kind     { return IntKind }
func (i *Int) String() string { return fmt.Sprintf("%d", i.Value) }
func (i *Int) Inspect() string {
	return fmt.Sprintf("int(%d)", i.Value)
}

// Float is an IEEE-754 double.
type Float struct{ Value float64 }

func (f *Float) Kind() Kind     { return FloatKind }
func (f *Float) String() string { return strconvFloat(f.Value) }
func (f *Float) Inspect() string {
	return fmt.Sprintf("float(%s)", strconvFloat(f.Value))
}

// strconvFloat formats a float the way the reference interpreter's Display
// impl does: the shortest round-tripping representation, with no forced
// trailing ".0" on whole values (2.0 prints as "2", not "2.0").
func strconvFloat(f float64) string {
	return fmt.Sprintf("%g", f)
}

// Bool is a boolean value.
type Bool struct{ Value bool }

func (b *Bool) Kind() Kind     { return BoolKind }
func (b *Bool) String() string { return fmt.Sprintf("%t", b.Value) }
func (b *Bool) Inspect() string {
	return fmt.Sprintf("bool(%t)", b.Value)
}

// Str is a Unicode string value. Length and indexing operate on runes,
// not bytes (spec: "sequences of Unicode scalar characters").
type Str struct{ Value string }

func (s *Str) Kind() Kind     { return StrKind }
func (s *Str) String() string { return s.Value }
func (s *Str) Inspect() string {
	return fmt.Sprintf("string(%q)", s.Value)
}

// Runes returns the string's contents as a rune slice; indexing and len
// operate against this, not len(s.Value).
func (s *Str) Runes() []rune { return []rune(s.Value) }

// Array is an ordered, heterogeneous, mutable sequence of values. Arrays
// have value semantics at the language level: binding, parameter passing
// and declaration all copy (see Copy below); only in-place index
// assignment mutates an existing binding.
type Array struct{ Elements []Value }

func (a *Array) Kind() Kind { return ArrayKind }

func (a *Array) String() string {
	parts := make([]string, len(a.Elements))
	for i, el := range a.Elements {
		parts[i] = el.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (a *Array) Inspect() string {
	parts := make([]string, len(a.Elements))
	for i, el := range a.Elements {
		parts[i] = el.Inspect()
	}
	return "array([" + strings.Join(parts, ", ") + "])"
}

// Unit is the value produced by statements and constructs with no
// meaningful result (an empty function body, a while loop, etc).
type Unit struct{}

func (u *Unit) Kind() Kind      { return UnitKind }
func (u *Unit) String() string  { return "()" }
func (u *Unit) Inspect() string { return "()" }

// TheUnit is the single shared Unit instance; Unit carries no state, so
// there is never a reason to allocate more than one.
var TheUnit = &Unit{}

// Error is a diagnostic value. It is never assigned to a variable or
// passed as an argument - producing one always aborts evaluation (spec
// §7) - but it still satisfies Value so the evaluator can return it from
// the same functions that return ordinary results. It also implements
// Go's error interface, so it rides the eval package's normal error
// returns instead of needing a second channel for diagnostics.
type Error struct{ Message string }

func (e *Error) Kind() Kind      { return ErrorKind }
func (e *Error) String() string  { return e.Message }
func (e *Error) Inspect() string { return fmt.Sprintf("error(%s)", e.Message) }
func (e *Error) Error() string   { return e.Message }

// Errorf builds an *Error from a format string, the way every runtime
// diagnostic the evaluator raises is constructed (see eval.Evaluator.CreateError).
func Errorf(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// Copy returns a value with the observable semantics of a fresh copy:
// Int, Float, Bool and functions are immutable from the language's point
// of view and are returned as-is, Str is copied because string-index
// assignment rewrites it in place, and Array is copied recursively, so
// mutating the copy can never be observed through the original binding.
func Copy(v Value) Value {
	if s, ok := v.(*Str); ok {
		return &Str{Value: s.Value}
	}
	if arr, ok := v.(*Array); ok {
		elements := make([]Value, len(arr.Elements))
		for i, el := range arr.Elements {
			elements[i] = Copy(el)
		}
		return &Array{Elements: elements}
	}
	return v
}
