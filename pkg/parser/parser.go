package parser

import (
	"github.com/loxi-lang/loxi/internal/ast"
	"github.com/loxi-lang/loxi/internal/diag"
	"github.com/loxi-lang/loxi/pkg/lexer"
)

// Parser drives a lexer.Lexer through a two-token (cur/peek) lookahead
// window, the same shape the teacher's Nix parser used.
type Parser struct {
	l    *lexer.Lexer
	cur  lexer.Token
	peek lexer.Token

	// lexErr latches the first lex error seen while pulling tokens. A
	// lex error takes priority over any parse error the bad token goes
	// on to cause (spec.md §7): the driver checks LexError before it
	// looks at a parse failure.
	lexErr *diag.LexError
}

// New creates a parser over l, priming the cur/peek window with the
// first two tokens.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.advance()
	p.advance()

	return p
}

// LexError returns the first lexing fault encountered while scanning,
// or nil if none occurred.
func (p *Parser) LexError() *diag.LexError {
	return p.lexErr
}

func (p *Parser) advance() {
	p.cur = p.peek
	tok, err := p.l.NextToken()
	if err != nil && p.lexErr == nil {
		p.lexErr = err
	}
	p.peek = tok
}

// Parse parses a single expression starting at the lowest binding
// power (the parse and evaluate CLI modes each parse exactly one
// expression; spec.md §4.2, §7).
func (p *Parser) Parse() (ast.Expr, *diag.ParseError) {
	return p.parseExpression(bpLowest)
}

// ParseProgram parses a full sequence of statements until EOF.
func (p *Parser) ParseProgram() ([]ast.Stmt, *diag.ParseError) {
	var stmts []ast.Stmt
	for p.cur.Type != lexer.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	return stmts, nil
}

// parseStatement dispatches on the leading token of a statement. Each
// branch leaves p.cur positioned at the first token of whatever
// follows, so callers never need an extra advance between statements.
func (p *Parser) parseStatement() (ast.Stmt, *diag.ParseError) {
	switch p.cur.Type {
	case lexer.PRINT:
		p.advance() // cur = first token of the expression
		expr, err := p.parseExpression(bpLowest)
		if err != nil {
			return nil, err
		}
		if p.peek.Type != lexer.SEMICOLON {
			return nil, p.errorfAt(p.peek.Line, "Expect ';' after value.")
		}
		p.advance() // cur = ';'
		p.advance() // cur = next statement's first token

		return &ast.PrintStmt{Expr: expr}, nil

	case lexer.VAR:
		p.advance() // cur should now be the variable name
		if p.cur.Type != lexer.IDENTIFIER {
			return nil, p.errorfAt(p.cur.Line, "Expect variable name.")
		}
		name := p.cur.Lexeme

		var init ast.Expr
		if p.peek.Type == lexer.EQUAL {
			p.advance() // cur = '='
			p.advance() // cur = first token of the initializer
			e, err := p.parseExpression(bpLowest)
			if err != nil {
				return nil, err
			}
			init = e
		}

		if p.peek.Type != lexer.SEMICOLON {
			return nil, p.errorfAt(p.peek.Line, "Expect ';' after variable declaration.")
		}
		p.advance() // cur = ';'
		p.advance() // cur = next statement's first token

		return &ast.VarStmt{Name: name, Init: init}, nil

	case lexer.LEFT_BRACE:
		p.advance() // cur = first token inside the block, or '}'
		var stmts []ast.Stmt
		for p.cur.Type != lexer.RIGHT_BRACE && p.cur.Type != lexer.EOF {
			s, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, s)
		}
		if p.cur.Type != lexer.RIGHT_BRACE {
			return nil, p.errorfAt(p.cur.Line, "Expect '}' after block.")
		}
		p.advance() // cur = next token after the block

		return &ast.BlockStmt{Stmts: stmts}, nil

	default:
		expr, err := p.parseExpression(bpLowest)
		if err != nil {
			return nil, err
		}
		if p.peek.Type != lexer.SEMICOLON {
			return nil, p.errorfAt(p.peek.Line, "Expect ';' after expression.")
		}
		p.advance() // cur = ';'
		p.advance() // cur = next statement's first token

		return &ast.ExprStmt{Expr: expr}, nil
	}
}
