// Package parser turns a loxi token stream into an expression or
// statement tree.
//
// Two entry points drive the token stream, both built on a two-token
// (cur/peek) lookahead window: Parse, a Pratt (precedence-climbing)
// expression parser, and ParseProgram, a recursive-descent statement
// parser that delegates to the same Pratt parser for every expression
// it needs.
//
// A parse error is fatal to the parse in progress: unlike a lexing
// fault, it is not recovered from inside this package — it propagates to
// the caller immediately (spec.md §7).
package parser
