package lexer

import (
	"fmt"
	"strconv"
	"strings"
)

// Dump renders the token in loxi's canonical one-line form used by the
// tokenize CLI mode (spec.md §4.5): "TYPE LEXEME VALUE", with the EOF
// token printed as "EOF  null" (two spaces — no lexeme).
func (t Token) Dump() string {
	switch t.Type {
	case STRING:
		return fmt.Sprintf(`STRING "%s" %s`, t.Lexeme, t.Lexeme)
	case NUMBER:
		return fmt.Sprintf("NUMBER %s %s", t.Lexeme, formatDumpNumber(t.NumValue))
	case EOF:
		return "EOF  null"
	default:
		return fmt.Sprintf("%s %s null", t.Type, t.Lexeme)
	}
}

// formatDumpNumber renders v with at least one fractional digit
// (42 -> "42.0", 3.14 -> "3.14", 1.20 -> "1.2"), matching the value
// normalization the parse dumper applies to NUMBER literals.
func formatDumpNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}
