// Package lexer provides lexical analysis for the loxi scripting language.
//
// The lexer is the first stage of the interpreter pipeline: it converts a
// source buffer into a stream of tokens consumed by pkg/parser. It is a
// single-pass, single-character-lookahead scanner that never stops on
// error — an illegal character or an unterminated string is reported and
// scanning resumes at the next character, leaving the driver to decide
// whether the run should still proceed.
//
// Token Recognition:
//   - Punctuation: ( ) { } , . - + ; * / and the "=" suffixed two-char forms
//   - Literals: strings (escape-free, quote-delimited), numbers (float64
//     plus original lexeme), identifiers
//   - Keywords: and class else false for fun if nil or print return super
//     this true var while
//
// Position tracking is limited to a 1-based line counter, used only in
// diagnostic messages — loxi does not track columns.
package lexer
