// Package ast defines the expression and statement trees produced by
// pkg/parser and walked by pkg/interp.
//
// Trees are immutable after construction: every internal node owns its
// children outright, and no subtree is ever shared behind a mutable
// reference. Expr and Stmt are the two node interfaces; concrete Expr
// node types implement String() for the canonical S-expression dump used by
// the parse CLI mode (spec.md §4.5).
package ast
