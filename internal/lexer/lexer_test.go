package lexer

import (
	"testing"
)

func TestNext_Basic(t *testing.T) {
	input := `5 + 3;`

	tests := []struct {
		expectedType TokenType
		expectedLex  string
	}{
		{NUMBER, "5"},
		{OPERATOR, "+"},
		{NUMBER, "3"},
		{SEMI, ";"},
		{EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.Next()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%v, got=%v",
				i, tt.expectedType, tok.Type)
		}
		if tok.Lex != tt.expectedLex {
			t.Fatalf("tests[%d] - lexeme wrong. expected=%q, got=%q",
				i, tt.expectedLex, tok.Lex)
		}
	}
}

func TestNext_KeywordsAndSymbols(t *testing.T) {
	input := `int return ( ) { } ; + - * /`

	tests := []struct {
		expectedType TokenType
		expectedLex  string
	}{
		{KW_INT, "int"},
		{KW_RETURN, "return"},
		{LPAREN, "("},
		{RPAREN, ")"},
		{LBRACE, "{"},
		{RBRACE, "}"},
		{SEMI, ";"},
		{OPERATOR, "+"},
		{OPERATOR, "-"},
		{OPERATOR, "*"},
		{OPERATOR, "/"},
		{EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.Next()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%v, got=%v",
				i, tt.expectedType, tok.Type)
		}
		if tok.Lex != tt.expectedLex {
			t.Fatalf("tests[%d] - lexeme wrong. expected=%q, got=%q",
				i, tt.expectedLex, tok.Lex)
		}
	}
}

// The keyword table stops at int/return: the control-flow words scan as plain
// identifiers even though KW_IF, KW_ELSE and KW_WHILE exist as token kinds.
func TestNext_ControlFlowWordsScanAsIdentifiers(t *testing.T) {
	input := `if while else cond42`

	expected := []string{"if", "while", "else", "cond42"}

	l := New(input)
	for i, lex := range expected {
		tok := l.Next()
		if tok.Type != IDENT {
			t.Fatalf("step %d - expected IDENT for %q, got %v", i, lex, tok.Type)
		}
		if tok.Lex != lex {
			t.Fatalf("step %d - lexeme wrong. expected=%q, got=%q", i, lex, tok.Lex)
		}
	}
	if tok := l.Next(); tok.Type != EOF {
		t.Fatalf("expected EOF, got %v", tok.Type)
	}
}

func TestNext_IllegalCharacterDoesNotEndStream(t *testing.T) {
	input := `5 @ 3`

	tests := []struct {
		expectedType TokenType
		expectedLex  string
	}{
		{NUMBER, "5"},
		{ILLEGAL, "@"},
		{NUMBER, "3"},
		{EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.Next()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%v, got=%v",
				i, tt.expectedType, tok.Type)
		}
		if tok.Lex != tt.expectedLex {
			t.Fatalf("tests[%d] - lexeme wrong. expected=%q, got=%q",
				i, tt.expectedLex, tok.Lex)
		}
	}
}

func TestNext_EmptyInputReturnsEOFForever(t *testing.T) {
	l := New("")
	for i := 0; i < 3; i++ {
		tok := l.Next()
		if tok.Type != EOF {
			t.Fatalf("call %d - expected EOF, got %v", i, tok.Type)
		}
	}
}

func TestNext_MaximalRuns(t *testing.T) {
	l := New("1234abc56")

	tok := l.Next()
	if tok.Type != NUMBER || tok.Lex != "1234" {
		t.Fatalf("expected NUMBER 1234, got %v %q", tok.Type, tok.Lex)
	}
	tok = l.Next()
	if tok.Type != IDENT || tok.Lex != "abc56" {
		t.Fatalf("expected IDENT abc56, got %v %q", tok.Type, tok.Lex)
	}
}

func TestNext_Positions(t *testing.T) {
	l := New("5\n + 3")

	tests := []struct {
		line int
		col  int
	}{
		{1, 1}, // 5
		{2, 2}, // +
		{2, 4}, // 3
	}

	for i, tt := range tests {
		tok := l.Next()
		if tok.Line != tt.line || tok.Col != tt.col {
			t.Fatalf("tests[%d] - position wrong. expected=%d:%d, got=%d:%d",
				i, tt.line, tt.col, tok.Line, tok.Col)
		}
	}
}
