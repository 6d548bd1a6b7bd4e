package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders the node in loxi's canonical S-expression form
// (spec.md §4.5): strings without their quotes, numbers with at least
// one fractional digit, true/false/nil as keywords, grouping as
// "(group <sub>)", unary as "(<op> <sub>)", binary as "(<op> <lhs> <rhs>)".
func (e *Literal) String() string {
	switch e.Kind {
	case LitString:
		return e.Str
	case LitNumber:
		return formatDumpNumber(e.Num)
	case LitTrue:
		return "true"
	case LitFalse:
		return "false"
	default:
		return "nil"
	}
}

func (e *Grouping) String() string {
	return fmt.Sprintf("(group %s)", stringOf(e.Sub))
}

func (e *Identifier) String() string {
	return e.Name
}

func (e *Unary) String() string {
	return fmt.Sprintf("(%s %s)", e.Op, stringOf(e.Sub))
}

func (e *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Op, stringOf(e.Left), stringOf(e.Right))
}

func (e *Assign) String() string {
	return fmt.Sprintf("(= %s %s)", e.Name, stringOf(e.Value))
}

// stringOf renders any Expr via its concrete String method. A small
// helper rather than a Stringer type assertion at every call site, since
// Expr itself carries no String method (only the marker exprNode()).
func stringOf(e Expr) string {
	type stringer interface{ String() string }
	if s, ok := e.(stringer); ok {
		return s.String()
	}

	return fmt.Sprintf("%v", e)
}

// formatDumpNumber renders v with at least one fractional digit,
// matching spec.md §4.5 (42 -> "42.0", 3.14 -> "3.14", 1.20 -> "1.2").
func formatDumpNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}
