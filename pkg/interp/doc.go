// Package interp provides the tree-walking evaluator for loxi.
//
// The interpreter is the final stage of the pipeline, taking the
// statement and expression trees from pkg/parser and executing them
// against an internal/value.EnvStack. It implements loxi's complete
// runtime semantics: truthiness, the mixed-type equality and '+'
// overload rules, variable declaration versus assignment, and block
// scoping.
//
// Architecture:
//
// The interpreter follows the same domain-driven split as the
// evaluator it is grounded on:
//   - interpreter.go: statement execution and the expression dispatcher
//   - operators.go: unary and binary operator semantics
//
// Error Handling:
//
// Every runtime fault is an *internal/diag.RuntimeError. Execution of
// the current statement aborts on the first one; the caller (cmd/loxi)
// is responsible for reporting it and choosing exit code 70.
package interp
