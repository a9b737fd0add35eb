package eval

import (
	"fmt"
	"math"

	"github.com/wisplang/wisp/objects"
	"github.com/wisplang/wisp/parser"
)

// binaryOpError is a sentinel carrier for intOp/floatOp/boolOp failures:
// those functions have no AST node to tag a position with, so evalBinary
// catches this and re-raises it through CreateError, attaching ex's
// position the way every other runtime diagnostic gets one.
type binaryOpError struct{ msg string }

func (b *binaryOpError) Error() string { return b.msg }

// evalBinary dispatches on (op, lhs kind, rhs kind) per the operator
// table in spec §4.2. Both operands are fully evaluated, LHS then RHS,
// before dispatch, so And/Or never short-circuit.
func (e *Evaluator) evalBinary(ex *parser.BinaryExpr) (objects.Value, error) {
	lhs, err := e.evalExpr(ex.LHS)
	if err != nil {
		return nil, err
	}
	rhs, err := e.evalExpr(ex.RHS)
	if err != nil {
		return nil, err
	}

	var result objects.Value
	var opErr error

	switch l := lhs.(type) {
	case *objects.Int:
		if r, ok := rhs.(*objects.Int); ok {
			result, opErr = intOp(ex.Op, l.Value, r.Value)
		}
	case *objects.Float:
		if r, ok := rhs.(*objects.Float); ok {
			result, opErr = floatOp(ex.Op, l.Value, r.Value)
		}
	case *objects.Str:
		switch r := rhs.(type) {
		case *objects.Str:
			if ex.Op == parser.OpAdd {
				return &objects.Str{Value: l.Value + r.Value}, nil
			}
		case *objects.Int:
			if ex.Op == parser.OpMul {
				return &objects.Str{Value: repeatString(l.Value, r.Value)}, nil
			}
		}
	case *objects.Array:
		if r, ok := rhs.(*objects.Array); ok && ex.Op == parser.OpAdd {
			return concatArrays(l, r), nil
		}
	case *objects.Bool:
		if r, ok := rhs.(*objects.Bool); ok {
			result, opErr = boolOp(ex.Op, l.Value, r.Value)
		}
	}

	if result != nil || opErr != nil {
		if opErr != nil {
			return nil, e.CreateError(ex, "%s", opErr)
		}
		return result, nil
	}

	return nil, e.CreateError(ex, "Cannot apply %s to %s and %s", ex.Op, lhs.Inspect(), rhs.Inspect())
}

func repeatString(s string, n int64) string {
	if n <= 0 {
		return ""
	}
	out := make([]byte, 0, len(s)*int(n))
	for i := int64(0); i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}

func concatArrays(a, b *objects.Array) *objects.Array {
	elements := make([]objects.Value, 0, len(a.Elements)+len(b.Elements))
	for _, el := range a.Elements {
		elements = append(elements, objects.Copy(el))
	}
	for _, el := range b.Elements {
		elements = append(elements, objects.Copy(el))
	}
	return &objects.Array{Elements: elements}
}

func intOp(op parser.BinaryOp, a, b int64) (objects.Value, error) {
	switch op {
	case parser.OpAdd:
		return &objects.Int{Value: a + b}, nil
	case parser.OpSub:
		return &objects.Int{Value: a - b}, nil
	case parser.OpMul:
		return &objects.Int{Value: a * b}, nil
	case parser.OpDiv:
		if b == 0 {
			return nil, &binaryOpError{"Division by zero"}
		}
		return &objects.Int{Value: a / b}, nil
	case parser.OpMod:
		if b == 0 {
			return nil, &binaryOpError{"Modulo by zero"}
		}
		return &objects.Int{Value: a % b}, nil
	case parser.OpEq:
		return &objects.Bool{Value: a == b}, nil
	case parser.OpNe:
		return &objects.Bool{Value: a != b}, nil
	case parser.OpLt:
		return &objects.Bool{Value: a < b}, nil
	case parser.OpLe:
		return &objects.Bool{Value: a <= b}, nil
	case parser.OpGt:
		return &objects.Bool{Value: a > b}, nil
	case parser.OpGe:
		return &objects.Bool{Value: a >= b}, nil
	}
	return nil, &binaryOpError{fmt.Sprintf("Cannot apply %s to int and int", op)}
}

func floatOp(op parser.BinaryOp, a, b float64) (objects.Value, error) {
	switch op {
	case parser.OpAdd:
		return &objects.Float{Value: a + b}, nil
	case parser.OpSub:
		return &objects.Float{Value: a - b}, nil
	case parser.OpMul:
		return &objects.Float{Value: a * b}, nil
	case parser.OpDiv:
		if b == 0 {
			return nil, &binaryOpError{"Division by zero"}
		}
		return &objects.Float{Value: a / b}, nil
	case parser.OpMod:
		if b == 0 {
			return nil, &binaryOpError{"Modulo by zero"}
		}
		return &objects.Float{Value: math.Mod(a, b)}, nil
	case parser.OpEq:
		return &objects.Bool{Value: a == b}, nil
	case parser.OpNe:
		return &objects.Bool{Value: a != b}, nil
	case parser.OpLt:
		return &objects.Bool{Value: a < b}, nil
	case parser.OpLe:
		return &objects.Bool{Value: a <= b}, nil
	case parser.OpGt:
		return &objects.Bool{Value: a > b}, nil
	case parser.OpGe:
		return &objects.Bool{Value: a >= b}, nil
	}
	return nil, &binaryOpError{fmt.Sprintf("Cannot apply %s to float and float", op)}
}

func boolOp(op parser.BinaryOp, a, b bool) (objects.Value, error) {
	switch op {
	case parser.OpEq:
		return &objects.Bool{Value: a == b}, nil
	case parser.OpNe:
		return &objects.Bool{Value: a != b}, nil
	case parser.OpAnd:
		return &objects.Bool{Value: a && b}, nil
	case parser.OpOr:
		return &objects.Bool{Value: a || b}, nil
	}
	return nil, &binaryOpError{fmt.Sprintf("Cannot apply %s to bool and bool", op)}
}
