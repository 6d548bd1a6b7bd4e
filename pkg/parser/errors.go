package parser

import (
	"fmt"

	"github.com/loxi-lang/loxi/internal/diag"
)

// errorfAt builds a *diag.ParseError anchored at line.
func (p *Parser) errorfAt(line int, format string, args ...interface{}) *diag.ParseError {
	return &diag.ParseError{Line: line, Message: fmt.Sprintf(format, args...)}
}
