// Package eval is the tree-walking evaluator that drives statement and
// expression execution over a parser.Statement/Expression AST, using
// scope.Stack for variable resolution. It is deliberately small: Wisp has
// no static type checker, so every type and arity check happens here, at
// the moment a value is used.
package eval

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/wisplang/wisp/builtin"
	"github.com/wisplang/wisp/function"
	"github.com/wisplang/wisp/objects"
	"github.com/wisplang/wisp/parser"
	"github.com/wisplang/wisp/scope"
)

// Evaluator executes a parsed program against a persistent Stack. Reusing
// one Evaluator across multiple Run calls is how the REPL keeps bindings
// alive between lines (spec §6).
type Evaluator struct {
	Stack *scope.Stack
	Out   io.Writer
}

// New creates an Evaluator with an empty global/frame state, writing
// print/println output to stdout.
func New() *Evaluator {
	return &Evaluator{Stack: scope.NewStack(), Out: os.Stdout}
}

// Run parses source and evaluates it against a fresh Evaluator - the
// convenience entry point named in spec §6.
func Run(source string) (objects.Value, error) {
	prog, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}
	return New().RunProgram(prog)
}

// positioned is implemented by every parser.Statement and
// parser.Expression, letting CreateError tag a diagnostic with the
// offending node's source position without depending on either interface
// by name.
type positioned interface {
	Pos() (line, column int)
}

// CreateError builds a position-tagged runtime diagnostic: every failure
// the evaluator raises is prefixed with the triggering node's
// [line:column], mirroring the teacher's own Evaluator.CreateError.
func (e *Evaluator) CreateError(node positioned, format string, args ...any) *objects.Error {
	line, col := node.Pos()
	return objects.Errorf("[%d:%d] %s", line, col, fmt.Sprintf(format, args...))
}

// returnSignal unwinds execStmts/evalExpr the way original_source's
// Flow::Return does, past any number of if/while/for/block nests (a for
// loop pops its own frame on the way out), until something that owns a call boundary catches it: evalCall
// (a function's own return) or RunProgram (a bare top-level return). It
// implements error so it can ride the existing error-return plumbing
// without a second return channel threaded through every call.
type returnSignal struct{ Value objects.Value }

func (r *returnSignal) Error() string { return "return outside of a catching frame" }

// asReturn reports whether err is a propagating return and, if so, the
// value it carries.
func asReturn(err error) (*returnSignal, bool) {
	var r *returnSignal
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}

// RunProgram executes every top-level statement in order. The result is
// the value of the final statement, or the argument of the first
// top-level Return (early termination).
func (e *Evaluator) RunProgram(stmts []parser.Statement) (objects.Value, error) {
	v, err := e.execStmts(stmts)
	if r, ok := asReturn(err); ok {
		return r.Value, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// execStmts runs a statement sequence in the current frame - used by
// function bodies and by If/While/For/Block bodies. It never pushes a
// frame itself: evalCall and evalFor push theirs before calling it, and
// If/While/Block run in the frame they are in. A returnSignal error is never handled here; it
// passes straight through to the nearest catching boundary.
func (e *Evaluator) execStmts(stmts []parser.Statement) (objects.Value, error) {
	result := objects.Value(objects.TheUnit)
	for _, stmt := range stmts {
		v, err := e.execStmt(stmt)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

func (e *Evaluator) execStmt(stmt parser.Statement) (objects.Value, error) {
	switch s := stmt.(type) {
	case *parser.FunctionStmt:
		e.Stack.Global[s.Name] = &function.Function{Name: s.Name, Params: s.Params, Body: s.Body}
		return objects.TheUnit, nil

	case *parser.ReturnStmt:
		v, err := e.evalExpr(s.Expr)
		if err != nil {
			return nil, err
		}
		return nil, &returnSignal{Value: v}

	case *parser.DeclareStmt:
		return e.execDeclare(s)

	case *parser.AssignStmt:
		return e.execAssign(s)

	case *parser.ExprStmt:
		return e.evalExpr(s.Expr)

	default:
		return nil, e.CreateError(stmt, "unhandled statement type %T", stmt)
	}
}

func (e *Evaluator) execDeclare(s *parser.DeclareStmt) (objects.Value, error) {
	value, err := e.evalExpr(s.Value)
	if err != nil {
		return nil, err
	}
	if e.Stack.Resolvable(s.Name) {
		existing, _ := e.Stack.Lookup(s.Name)
		return nil, e.CreateError(s, "The variable already exists: [%s = %s]", s.Name, existing.String())
	}
	e.Stack.Declare(s.Name, value)
	return objects.TheUnit, nil
}

func (e *Evaluator) execAssign(s *parser.AssignStmt) (objects.Value, error) {
	value, err := e.evalExpr(s.Value)
	if err != nil {
		return nil, err
	}

	if s.Target.Indices == nil {
		if err := e.Stack.Assign(s.Target.Name, value); err != nil {
			return nil, e.CreateError(s, "%s", err)
		}
		return objects.TheUnit, nil
	}

	root, err := e.Stack.LookupNoCopy(s.Target.Name)
	if err != nil {
		return nil, e.CreateError(s, "%s", err)
	}
	if err := e.assignIndexed(s, root, s.Target.Indices, value); err != nil {
		return nil, err
	}
	return objects.TheUnit, nil
}

// assignIndexed walks indices against root in place, mutating the final
// slot with value. root must be the uncopied value found via
// LookupNoCopy so the mutation is observable through the original
// binding. node is the enclosing AssignStmt, used only to tag any error
// with a source position.
func (e *Evaluator) assignIndexed(node positioned, root objects.Value, indices []parser.Expression, value objects.Value) error {
	idxs, err := e.evalIndices(indices)
	if err != nil {
		return err
	}

	cur := root
	for _, idx := range idxs[:len(idxs)-1] {
		arr, ok := cur.(*objects.Array)
		if !ok {
			return e.CreateError(node, "Cannot index into %s", cur.Inspect())
		}
		if idx >= uint64(len(arr.Elements)) {
			return e.CreateError(node, "Array index out of bounds: %d", idx)
		}
		cur = arr.Elements[idx]
	}

	final := idxs[len(idxs)-1]
	switch c := cur.(type) {
	case *objects.Array:
		if final >= uint64(len(c.Elements)) {
			return e.CreateError(node, "Array index out of bounds: %d", final)
		}
		c.Elements[final] = value
		return nil
	case *objects.Str:
		runes := c.Runes()
		if final >= uint64(len(runes)) {
			return e.CreateError(node, "String index out of bounds: %d", final)
		}
		newStr, ok := value.(*objects.Str)
		if !ok {
			return e.CreateError(node, "Can only assign string to string index, got %s", value.Inspect())
		}
		newRunes := newStr.Runes()
		if len(newRunes) != 1 {
			return e.CreateError(node, "Can only assign single character to string index, got string of length %d", len(newRunes))
		}
		runes[final] = newRunes[0]
		c.Value = string(runes)
		return nil
	default:
		return e.CreateError(node, "Cannot index into %s", cur.Inspect())
	}
}

// evalIndices evaluates each index expression and converts it to an
// unsigned index. A negative Int wraps to a very large unsigned value
// under this conversion, which then simply fails the bounds check below
// rather than needing separate negative-index handling (spec §4.2).
func (e *Evaluator) evalIndices(indices []parser.Expression) ([]uint64, error) {
	out := make([]uint64, len(indices))
	for i, expr := range indices {
		v, err := e.evalExpr(expr)
		if err != nil {
			return nil, err
		}
		n, ok := v.(*objects.Int)
		if !ok {
			return nil, e.CreateError(expr, "Array index must be an integer, got %s", v.Inspect())
		}
		out[i] = uint64(n.Value)
	}
	return out, nil
}

func (e *Evaluator) evalExpr(expr parser.Expression) (objects.Value, error) {
	switch ex := expr.(type) {
	case *parser.IntLit:
		return &objects.Int{Value: ex.Value}, nil
	case *parser.FloatLit:
		return &objects.Float{Value: ex.Value}, nil
	case *parser.BoolLit:
		return &objects.Bool{Value: ex.Value}, nil
	case *parser.StrLit:
		return &objects.Str{Value: ex.Value}, nil

	case *parser.ArrayLit:
		elements := make([]objects.Value, len(ex.Elements))
		for i, elExpr := range ex.Elements {
			v, err := e.evalExpr(elExpr)
			if err != nil {
				return nil, err
			}
			elements[i] = v
		}
		return &objects.Array{Elements: elements}, nil

	case *parser.VarExpr:
		v, err := e.Stack.Lookup(ex.Name)
		if err != nil {
			return nil, e.CreateError(ex, "%s", err)
		}
		return v, nil

	case *parser.ArrayAccessExpr:
		return e.evalArrayAccess(ex)

	case *parser.UnaryExpr:
		return e.evalUnary(ex)

	case *parser.BinaryExpr:
		return e.evalBinary(ex)

	case *parser.CallExpr:
		return e.evalCall(ex)

	case *parser.IfExpr:
		return e.evalIf(ex)

	case *parser.WhileExpr:
		return e.evalWhile(ex)

	case *parser.ForExpr:
		return e.evalFor(ex)

	case *parser.BlockExpr:
		return e.execStmts(ex.Stmts)

	default:
		return nil, e.CreateError(expr, "unhandled expression type %T", expr)
	}
}

func (e *Evaluator) evalArrayAccess(ex *parser.ArrayAccessExpr) (objects.Value, error) {
	root, err := e.Stack.Lookup(ex.Name)
	if err != nil {
		return nil, e.CreateError(ex, "%s", err)
	}
	idxs, err := e.evalIndices(ex.Indices)
	if err != nil {
		return nil, err
	}

	cur := root
	for i, idx := range idxs {
		last := i == len(idxs)-1
		switch c := cur.(type) {
		case *objects.Array:
			if idx >= uint64(len(c.Elements)) {
				return nil, e.CreateError(ex, "Array index out of bounds: %d", idx)
			}
			cur = c.Elements[idx]
		case *objects.Str:
			runes := c.Runes()
			if idx >= uint64(len(runes)) {
				return nil, e.CreateError(ex, "String index out of bounds: %d", idx)
			}
			if !last {
				return nil, e.CreateError(ex, "Cannot index into %s", c.Inspect())
			}
			return &objects.Str{Value: string(runes[idx])}, nil
		default:
			return nil, e.CreateError(ex, "Cannot index into %s", cur.Inspect())
		}
	}
	return cur, nil
}

func (e *Evaluator) evalUnary(ex *parser.UnaryExpr) (objects.Value, error) {
	v, err := e.evalExpr(ex.Expr)
	if err != nil {
		return nil, err
	}
	switch ex.Op {
	case parser.OpNeg:
		switch n := v.(type) {
		case *objects.Int:
			return &objects.Int{Value: -n.Value}, nil
		case *objects.Float:
			return &objects.Float{Value: -n.Value}, nil
		}
	case parser.OpNot:
		if b, ok := v.(*objects.Bool); ok {
			return &objects.Bool{Value: !b.Value}, nil
		}
	}
	return nil, e.CreateError(ex, "Cannot apply %s to %s", ex.Op, v.Inspect())
}

func (e *Evaluator) evalCall(ex *parser.CallExpr) (objects.Value, error) {
	args := make([]objects.Value, len(ex.Args))
	for i, a := range ex.Args {
		v, err := e.evalExpr(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if fn, ok := builtin.Lookup(ex.Name); ok {
		v, err := fn(e.Out, args)
		if err != nil {
			return nil, e.CreateError(ex, "%s", err)
		}
		return v, nil
	}

	callee, err := e.Stack.Lookup(ex.Name)
	if err != nil {
		return nil, e.CreateError(ex, "%s", err)
	}
	fn, ok := callee.(*function.Function)
	if !ok {
		return nil, e.CreateError(ex, "'%s' is not a function", callee.String())
	}
	if len(fn.Params) != len(args) {
		return nil, e.CreateError(ex, "Function %s expects %d arguments, got %d", ex.Name, len(fn.Params), len(args))
	}

	e.Stack.PushCall()
	for i, param := range fn.Params {
		e.Stack.Declare(param, args[i])
	}
	v, err := e.execStmts(fn.Body)
	e.Stack.Pop()
	// a Return inside the callee's body is caught here, at the call
	// boundary: nothing above this point ever sees a returnSignal for
	// this invocation.
	if r, ok := asReturn(err); ok {
		return r.Value, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (e *Evaluator) evalIf(ex *parser.IfExpr) (objects.Value, error) {
	cond, err := e.evalExpr(ex.Cond)
	if err != nil {
		return nil, err
	}
	b, ok := cond.(*objects.Bool)
	if !ok {
		return nil, e.CreateError(ex, "Condition Must be a Boolean, got %s", cond.Inspect())
	}
	branch := ex.Else
	if b.Value {
		branch = ex.Then
	}
	return e.execStmts(branch)
}

func (e *Evaluator) evalWhile(ex *parser.WhileExpr) (objects.Value, error) {
	for {
		cond, err := e.evalExpr(ex.Cond)
		if err != nil {
			return nil, err
		}
		b, ok := cond.(*objects.Bool)
		if !ok {
			return nil, e.CreateError(ex, "While condition Must be a Boolean, got %s", cond.Inspect())
		}
		if !b.Value {
			return objects.TheUnit, nil
		}
		if _, err := e.execStmts(ex.Body); err != nil {
			return nil, err
		}
	}
}

func (e *Evaluator) evalFor(ex *parser.ForExpr) (objects.Value, error) {
	startV, err := e.evalExpr(ex.Start)
	if err != nil {
		return nil, err
	}
	endV, err := e.evalExpr(ex.End)
	if err != nil {
		return nil, err
	}
	start, ok1 := startV.(*objects.Int)
	end, ok2 := endV.(*objects.Int)
	if !ok1 || !ok2 {
		return nil, e.CreateError(ex, "The range must evaluate to integer bounds, got %s..%s", startV.Inspect(), endV.Inspect())
	}

	e.Stack.PushLoop()
	for i := start.Value; i < end.Value; i++ {
		e.Stack.Declare(ex.Var, &objects.Int{Value: i})
		if _, err := e.execStmts(ex.Body); err != nil {
			e.Stack.Pop()
			return nil, err
		}
	}
	e.Stack.Pop()
	return objects.TheUnit, nil
}
