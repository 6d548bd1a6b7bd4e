package lexer

import "testing"

func TestPunctuation(t *testing.T) {
	input := "(){},.-+;*"

	tests := []struct {
		expectedType   TokenType
		expectedLexeme string
	}{
		{LEFT_PAREN, "("},
		{RIGHT_PAREN, ")"},
		{LEFT_BRACE, "{"},
		{RIGHT_BRACE, "}"},
		{COMMA, ","},
		{DOT, "."},
		{MINUS, "-"},
		{PLUS, "+"},
		{SEMICOLON, ";"},
		{STAR, "*"},
		{EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("tests[%d] - unexpected error: %v", i, err)
		}
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - type wrong. expected=%s, got=%s", i, tt.expectedType, tok.Type)
		}
		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - lexeme wrong. expected=%q, got=%q", i, tt.expectedLexeme, tok.Lexeme)
		}
	}
}

func TestOperators(t *testing.T) {
	input := "= == ! != < <= > >="

	tests := []struct {
		expectedType   TokenType
		expectedLexeme string
	}{
		{EQUAL, "="},
		{EQUAL_EQUAL, "=="},
		{BANG, "!"},
		{BANG_EQUAL, "!="},
		{LESS, "<"},
		{LESS_EQUAL, "<="},
		{GREATER, ">"},
		{GREATER_EQUAL, ">="},
		{EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("tests[%d] - unexpected error: %v", i, err)
		}
		if tok.Type != tt.expectedType || tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - got %s %q, want %s %q", i, tok.Type, tok.Lexeme, tt.expectedType, tt.expectedLexeme)
		}
	}
}

func TestStringLiteral(t *testing.T) {
	l := New(`"abc"`)
	tok, err := l.NextToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != STRING || tok.Lexeme != "abc" {
		t.Fatalf("got %s %q, want STRING %q", tok.Type, tok.Lexeme, "abc")
	}
}

func TestUnterminatedString(t *testing.T) {
	l := New(`"abc`)
	_, err := l.NextToken()
	if err == nil {
		t.Fatal("expected an unterminated string error")
	}
	if err.Error() != "[line 1] Error: Unterminated string." {
		t.Fatalf("unexpected error message: %q", err.Error())
	}
}

func TestNumberLiterals(t *testing.T) {
	tests := []struct {
		input          string
		expectedLexeme string
		expectedValue  float64
	}{
		{"42", "42", 42},
		{"3.14", "3.14", 3.14},
	}

	for _, tt := range tests {
		l := New(tt.input)
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.Type != NUMBER || tok.Lexeme != tt.expectedLexeme || tok.NumValue != tt.expectedValue {
			t.Fatalf("input %q: got %s %q %v", tt.input, tok.Type, tok.Lexeme, tok.NumValue)
		}
	}
}

// 1.2.3 lexes as NUMBER(1.2) DOT NUMBER(3): the lexer stops a number at a
// second '.', leaving the stray dot and trailing digits for the next
// tokens (spec.md §9).
func TestStrayDotInNumber(t *testing.T) {
	l := New("1.2.3")

	tok1, _ := l.NextToken()
	tok2, _ := l.NextToken()
	tok3, _ := l.NextToken()

	if tok1.Type != NUMBER || tok1.Lexeme != "1.2" {
		t.Fatalf("first token: got %s %q", tok1.Type, tok1.Lexeme)
	}
	if tok2.Type != DOT {
		t.Fatalf("second token: got %s", tok2.Type)
	}
	if tok3.Type != NUMBER || tok3.Lexeme != "3" {
		t.Fatalf("third token: got %s %q", tok3.Type, tok3.Lexeme)
	}
}

func TestKeywordsAreReserved(t *testing.T) {
	l := New("print var and")
	for _, want := range []TokenType{PRINT, VAR, AND} {
		tok, err := l.NextToken()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tok.Type != want {
			t.Fatalf("got %s, want %s", tok.Type, want)
		}
		if tok.Type == IDENTIFIER {
			t.Fatalf("keyword lexed as IDENTIFIER")
		}
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	l := New("@")
	_, err := l.NextToken()
	if err == nil {
		t.Fatal("expected an unexpected-character error")
	}
	if err.Error() != "[line 1] Error: Unexpected character: @" {
		t.Fatalf("unexpected error message: %q", err.Error())
	}
}

func TestLineCounting(t *testing.T) {
	l := New("1\n2\n3")

	var lines []int
	for {
		tok, _ := l.NextToken()
		if tok.Type == EOF {
			break
		}
		lines = append(lines, tok.Line)
	}

	want := []int{1, 2, 3}
	for i, w := range want {
		if lines[i] != w {
			t.Fatalf("token %d: got line %d, want %d", i, lines[i], w)
		}
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	l := New("1 // a comment\n2")

	tok1, _ := l.NextToken()
	tok2, _ := l.NextToken()

	if tok1.Lexeme != "1" || tok2.Lexeme != "2" {
		t.Fatalf("got %q then %q", tok1.Lexeme, tok2.Lexeme)
	}
}
