package parser

import (
	"github.com/loxi-lang/loxi/internal/ast"
	"github.com/loxi-lang/loxi/internal/diag"
	"github.com/loxi-lang/loxi/pkg/lexer"
)

// parseExpression implements precedence-climbing: it parses a prefix
// (nud) expression, then keeps folding in binary operators whose
// binding power exceeds minBP, recursing at the operator's own bp so
// that same-precedence chains associate left (spec.md §4.2).
func (p *Parser) parseExpression(minBP int) (ast.Expr, *diag.ParseError) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for {
		bp, ok := binOpBP(p.peek.Type)
		if !ok || bp <= minBP {
			break
		}

		p.advance() // cur becomes the operator
		op := binOpFor(p.cur.Type)

		p.advance() // cur becomes the first token of the rhs
		right, err := p.parseExpression(bp)
		if err != nil {
			return nil, err
		}

		left = &ast.Binary{Op: op, Left: left, Right: right}
	}

	return left, nil
}

// parsePrefix is the nud half of the Pratt parser: literals, grouping,
// prefix unary operators, identifiers, and the assignment special case.
// Every branch leaves p.cur sitting on the last token it consumed — the
// infix loop in parseExpression is what advances past it.
func (p *Parser) parsePrefix() (ast.Expr, *diag.ParseError) {
	switch p.cur.Type {
	case lexer.NUMBER:
		return &ast.Literal{Kind: ast.LitNumber, Num: p.cur.NumValue, Lexeme: p.cur.Lexeme}, nil

	case lexer.STRING:
		return &ast.Literal{Kind: ast.LitString, Str: p.cur.Lexeme}, nil

	case lexer.TRUE:
		return &ast.Literal{Kind: ast.LitTrue}, nil

	case lexer.FALSE:
		return &ast.Literal{Kind: ast.LitFalse}, nil

	case lexer.NIL:
		return &ast.Literal{Kind: ast.LitNil}, nil

	case lexer.IDENTIFIER:
		name := p.cur.Lexeme
		if p.peek.Type == lexer.EQUAL {
			p.advance() // cur = '='
			p.advance() // cur = first token of the rhs
			val, err := p.parseExpression(bpAssign)
			if err != nil {
				return nil, err
			}

			return &ast.Assign{Name: name, Value: val}, nil
		}

		return &ast.Identifier{Name: name}, nil

	case lexer.LEFT_PAREN:
		p.advance() // cur = first token inside the parens
		inner, err := p.parseExpression(bpLowest)
		if err != nil {
			return nil, err
		}
		if p.peek.Type != lexer.RIGHT_PAREN {
			return nil, p.errorfAt(p.peek.Line, "Expect ')' after expression.")
		}
		p.advance() // cur = ')'

		return &ast.Grouping{Sub: inner}, nil

	case lexer.MINUS:
		p.advance() // cur = first token of the operand
		sub, err := p.parseExpression(bpUnary)
		if err != nil {
			return nil, err
		}

		return &ast.Unary{Op: ast.OpNegate, Sub: sub}, nil

	case lexer.BANG:
		p.advance() // cur = first token of the operand
		sub, err := p.parseExpression(bpUnary)
		if err != nil {
			return nil, err
		}

		return &ast.Unary{Op: ast.OpBang, Sub: sub}, nil

	case lexer.EOF:
		// An empty token stream parses as the Nil literal rather than a
		// parse error, so an empty source file evaluates cleanly.
		return &ast.Literal{Kind: ast.LitNil}, nil

	default:
		return nil, p.errorfAt(p.cur.Line, "Expect expression.")
	}
}
