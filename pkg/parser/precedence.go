package parser

import (
	"github.com/loxi-lang/loxi/internal/ast"
	"github.com/loxi-lang/loxi/pkg/lexer"
)

// Binding powers, exactly as spec.md §4.2 tabulates them. Assignment is
// handled directly in parsePrefix rather than through binOpBP, so it has
// no entry here even though bpAssign names its level.
const (
	bpLowest     = 0
	bpAssign     = 1
	bpEquality   = 2
	bpComparison = 3
	bpTerm       = 4
	bpFactor     = 5
	bpUnary      = 5 // unary - and ! bind as tight as * and /
)

// binOpBP reports the binding power of a token when it appears as a
// binary operator, and whether it is one at all.
func binOpBP(t lexer.TokenType) (int, bool) {
	switch t {
	case lexer.EQUAL_EQUAL, lexer.BANG_EQUAL:
		return bpEquality, true
	case lexer.LESS, lexer.LESS_EQUAL, lexer.GREATER, lexer.GREATER_EQUAL:
		return bpComparison, true
	case lexer.PLUS, lexer.MINUS:
		return bpTerm, true
	case lexer.STAR, lexer.SLASH:
		return bpFactor, true
	default:
		return 0, false
	}
}

// binOpFor maps a binary operator token to its ast.BinOp tag.
func binOpFor(t lexer.TokenType) ast.BinOp {
	switch t {
	case lexer.EQUAL_EQUAL:
		return ast.OpEqualEqual
	case lexer.BANG_EQUAL:
		return ast.OpBangEqual
	case lexer.LESS:
		return ast.OpLess
	case lexer.LESS_EQUAL:
		return ast.OpLessEqual
	case lexer.GREATER:
		return ast.OpGreater
	case lexer.GREATER_EQUAL:
		return ast.OpGreaterEqual
	case lexer.PLUS:
		return ast.OpPlus
	case lexer.MINUS:
		return ast.OpMinus
	case lexer.STAR:
		return ast.OpStar
	case lexer.SLASH:
		return ast.OpSlash
	default:
		panic("parser: binOpFor called on non-operator token")
	}
}
