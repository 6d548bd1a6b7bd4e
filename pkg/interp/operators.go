package interp

import (
	"github.com/loxi-lang/loxi/internal/ast"
	"github.com/loxi-lang/loxi/internal/diag"
	"github.com/loxi-lang/loxi/internal/value"
)

func (it *Interpreter) evalUnary(e *ast.Unary) (value.Value, *diag.RuntimeError) {
	v, err := it.evalExpr(e.Sub)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case ast.OpBang:
		return value.Bool(!v.Truthy()), nil

	case ast.OpNegate:
		n, ok := v.(value.Number)
		if !ok {
			return nil, diag.ErrExpectedNumber()
		}

		return -n, nil

	default:
		panic("interp: unknown unary operator")
	}
}

func (it *Interpreter) evalBinary(e *ast.Binary) (value.Value, *diag.RuntimeError) {
	left, err := it.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case ast.OpEqualEqual:
		return value.Bool(left.Equals(right)), nil

	case ast.OpBangEqual:
		return value.Bool(!left.Equals(right)), nil

	case ast.OpPlus:
		return evalPlus(left, right)

	case ast.OpMinus:
		l, r, err := asNumbers(left, right)
		if err != nil {
			return nil, err
		}

		return l - r, nil

	case ast.OpStar:
		l, r, err := asNumbers(left, right)
		if err != nil {
			return nil, err
		}

		return l * r, nil

	case ast.OpSlash:
		l, r, err := asNumbers(left, right)
		if err != nil {
			return nil, err
		}

		return l / r, nil

	case ast.OpLess:
		l, r, err := asNumbers(left, right)
		if err != nil {
			return nil, err
		}

		return value.Bool(l < r), nil

	case ast.OpLessEqual:
		l, r, err := asNumbers(left, right)
		if err != nil {
			return nil, err
		}

		return value.Bool(l <= r), nil

	case ast.OpGreater:
		l, r, err := asNumbers(left, right)
		if err != nil {
			return nil, err
		}

		return value.Bool(l > r), nil

	case ast.OpGreaterEqual:
		l, r, err := asNumbers(left, right)
		if err != nil {
			return nil, err
		}

		return value.Bool(l >= r), nil

	default:
		panic("interp: unknown binary operator")
	}
}

// evalPlus implements the one operator that overloads across two
// value kinds: number + number and string + string, nothing else.
func evalPlus(left, right value.Value) (value.Value, *diag.RuntimeError) {
	if ln, ok := left.(value.Number); ok {
		rn, ok := right.(value.Number)
		if !ok {
			return nil, diag.ErrWrongPlusOperands()
		}

		return ln + rn, nil
	}

	if ls, ok := left.(value.String); ok {
		rs, ok := right.(value.String)
		if !ok {
			return nil, diag.ErrWrongPlusOperands()
		}

		return ls + rs, nil
	}

	return nil, diag.ErrWrongPlusOperands()
}

// asNumbers requires both operands to be numbers, the shared case for
// every non-'+' arithmetic and comparison operator.
func asNumbers(left, right value.Value) (value.Number, value.Number, *diag.RuntimeError) {
	l, ok := left.(value.Number)
	if !ok {
		return 0, 0, diag.ErrExpectedNumber()
	}
	r, ok := right.(value.Number)
	if !ok {
		return 0, 0, diag.ErrExpectedNumber()
	}

	return l, r, nil
}
