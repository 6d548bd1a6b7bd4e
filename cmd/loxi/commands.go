package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/loxi-lang/loxi/internal/ast"
	"github.com/loxi-lang/loxi/internal/diag"
	"github.com/loxi-lang/loxi/pkg/interp"
	"github.com/loxi-lang/loxi/pkg/lexer"
	"github.com/loxi-lang/loxi/pkg/parser"
)

var errColor = color.New(color.FgRed)

// readSource reads the single file argument every subcommand takes, or
// exits the process on failure — there is no recoverable path past a
// missing source file.
func readSource(cmd *cobra.Command, args []string) string {
	if len(args) != 1 {
		errColor.Fprintln(os.Stderr, "Usage: loxi <command> <path>")
		os.Exit(1)
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		errColor.Fprintf(os.Stderr, "Could not read file %q: %v\n", args[0], err)
		os.Exit(1)
	}

	return string(src)
}

func newTokenizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize <path>",
		Short: "print every token in canonical dump form",
		Run: func(cmd *cobra.Command, args []string) {
			src := readSource(cmd, args)
			l := lexer.New(src)

			hadError := false
			for {
				tok, lexErr := l.NextToken()
				if lexErr != nil {
					errColor.Fprintln(os.Stderr, lexErr.Error())
					hadError = true
				}
				// Dump every error-free token, plus the EOF token even when
				// it is paired with a lex error: an EOF reached while
				// scanning an unterminated string still owes the mandatory
				// trailing "EOF  null" line. An ILLEGAL token is not dumped.
				if lexErr == nil || tok.Type == lexer.EOF {
					fmt.Println(tok.Dump())
				}
				if tok.Type == lexer.EOF {
					break
				}
			}

			if hadError {
				os.Exit(exitDataErr)
			}
		},
	}
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <path>",
		Short: "print a single expression's canonical S-expression dump",
		Run: func(cmd *cobra.Command, args []string) {
			src := readSource(cmd, args)
			p := parser.New(lexer.New(src))

			expr, parseErr := p.Parse()
			if exitOnParseFault(p, parseErr) {
				return
			}

			fmt.Println(dumpExpr(expr))
		},
	}
}

func newEvaluateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate <path>",
		Short: "evaluate a single expression and print its value",
		Run: func(cmd *cobra.Command, args []string) {
			src := readSource(cmd, args)
			p := parser.New(lexer.New(src))

			expr, parseErr := p.Parse()
			if exitOnParseFault(p, parseErr) {
				return
			}

			it := interp.New()
			v, runErr := it.EvalExpression(expr)
			if runErr != nil {
				errColor.Fprintln(os.Stderr, runErr.Error())
				os.Exit(exitSoftErr)
			}

			fmt.Println(v.String())
		},
	}
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <path>",
		Short: "run a full program",
		Run: func(cmd *cobra.Command, args []string) {
			src := readSource(cmd, args)
			p := parser.New(lexer.New(src))

			stmts, parseErr := p.ParseProgram()
			if exitOnParseFault(p, parseErr) {
				return
			}

			it := interp.New()
			if runErr := it.Run(stmts); runErr != nil {
				errColor.Fprintln(os.Stderr, runErr.Error())
				os.Exit(exitSoftErr)
			}
		},
	}
}

// exitOnParseFault reports a lex or parse fault and exits with 65 if
// one occurred. A lex fault is checked first and takes priority, since
// it is what made the token stream that produced the parse fault (if
// any) unreliable in the first place.
func exitOnParseFault(p *parser.Parser, parseErr *diag.ParseError) bool {
	if lexErr := p.LexError(); lexErr != nil {
		errColor.Fprintln(os.Stderr, lexErr.Error())
		os.Exit(exitDataErr)

		return true
	}
	if parseErr != nil {
		errColor.Fprintln(os.Stderr, parseErr.Error())
		os.Exit(exitDataErr)

		return true
	}

	return false
}

// dumpExpr renders an ast.Expr via its canonical String() method. The
// ast.Expr interface itself carries only the exprNode() marker, so the
// Stringer method set has to be recovered with a type assertion.
func dumpExpr(expr ast.Expr) string {
	type stringer interface{ String() string }
	if s, ok := expr.(stringer); ok {
		return s.String()
	}

	return fmt.Sprintf("%v", expr)
}
