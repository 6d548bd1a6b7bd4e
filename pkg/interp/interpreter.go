package interp

import (
	"fmt"
	"io"
	"os"

	"github.com/loxi-lang/loxi/internal/ast"
	"github.com/loxi-lang/loxi/internal/diag"
	"github.com/loxi-lang/loxi/internal/value"
)

// Interpreter walks a statement tree against a single live
// internal/value.EnvStack. Its lifetime spans a whole program run: the
// global frame, and any variables declared in it, persist across
// successive calls to Run.
type Interpreter struct {
	env *value.EnvStack
	out io.Writer
}

// New creates an interpreter that writes print output to stdout.
func New() *Interpreter {
	return &Interpreter{env: value.NewEnvStack(), out: os.Stdout}
}

// NewWithOutput creates an interpreter that writes print output to w,
// for tests that want to capture it.
func NewWithOutput(w io.Writer) *Interpreter {
	return &Interpreter{env: value.NewEnvStack(), out: w}
}

// Run executes stmts in order, stopping at the first runtime fault.
func (it *Interpreter) Run(stmts []ast.Stmt) *diag.RuntimeError {
	for _, s := range stmts {
		if err := it.execStmt(s); err != nil {
			return err
		}
	}

	return nil
}

// EvalExpression evaluates a single standalone expression, for the
// evaluate CLI mode. It shares this interpreter's global frame, so a
// prior Run's top-level variables remain visible.
func (it *Interpreter) EvalExpression(expr ast.Expr) (value.Value, *diag.RuntimeError) {
	return it.evalExpr(expr)
}

func (it *Interpreter) execStmt(stmt ast.Stmt) *diag.RuntimeError {
	switch s := stmt.(type) {
	case *ast.PrintStmt:
		v, err := it.evalExpr(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(it.out, v.String())

		return nil

	case *ast.ExprStmt:
		_, err := it.evalExpr(s.Expr)

		return err

	case *ast.VarStmt:
		var v value.Value = value.Nil{}
		if s.Init != nil {
			var err *diag.RuntimeError
			v, err = it.evalExpr(s.Init)
			if err != nil {
				return err
			}
		}
		it.env.Declare(s.Name, v)

		return nil

	case *ast.BlockStmt:
		it.env.PushFrame()
		defer it.env.PopFrame()

		for _, inner := range s.Stmts {
			if err := it.execStmt(inner); err != nil {
				return err
			}
		}

		return nil

	default:
		panic(fmt.Sprintf("interp: unhandled statement type %T", stmt))
	}
}

func (it *Interpreter) evalExpr(expr ast.Expr) (value.Value, *diag.RuntimeError) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e), nil

	case *ast.Grouping:
		return it.evalExpr(e.Sub)

	case *ast.Identifier:
		v, ok := it.env.Lookup(e.Name)
		if !ok {
			return nil, diag.ErrUndefinedVariable(e.Name)
		}

		return v, nil

	case *ast.Assign:
		v, err := it.evalExpr(e.Value)
		if err != nil {
			return nil, err
		}
		if !it.env.Assign(e.Name, v) {
			return nil, diag.ErrUndeclaredVariable(e.Name)
		}

		return v, nil

	case *ast.Unary:
		return it.evalUnary(e)

	case *ast.Binary:
		return it.evalBinary(e)

	default:
		panic(fmt.Sprintf("interp: unhandled expression type %T", expr))
	}
}

func literalValue(e *ast.Literal) value.Value {
	switch e.Kind {
	case ast.LitString:
		return value.String(e.Str)
	case ast.LitNumber:
		return value.Number(e.Num)
	case ast.LitTrue:
		return value.Bool(true)
	case ast.LitFalse:
		return value.Bool(false)
	default:
		return value.Nil{}
	}
}
