// Package diag implements loxi's three-family error taxonomy: lex,
// parse, and runtime faults (spec.md §6, §7).
//
// Lex and parse errors are reported with a line number; no error family
// is caught and recovered inside the core — the driver in cmd/loxi is the
// sole place that inspects an error's family to choose an exit code.
package diag
