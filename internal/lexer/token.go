package lexer

type TokenType int

const (
	// Special
	EOF TokenType = iota
	ILLEGAL

	// Keywords. KW_IF, KW_ELSE and KW_WHILE exist as kinds but the keyword
	// table only resolves "int" and "return"; see Next.
	KW_INT
	KW_RETURN
	KW_IF
	KW_ELSE
	KW_WHILE

	// Identifiers + literals
	IDENT
	NUMBER

	// OPERATOR carries one of + - * / in Lex.
	OPERATOR

	// Symbols
	LPAREN // (
	RPAREN // )
	LBRACE // {
	RBRACE // }
	SEMI   // ;
)

var tokenNames = map[TokenType]string{
	EOF:       "EOF",
	ILLEGAL:   "ILLEGAL",
	KW_INT:    "int",
	KW_RETURN: "return",
	KW_IF:     "if",
	KW_ELSE:   "else",
	KW_WHILE:  "while",
	IDENT:     "identifier",
	NUMBER:    "number",
	OPERATOR:  "operator",
	LPAREN:    "(",
	RPAREN:    ")",
	LBRACE:    "{",
	RBRACE:    "}",
	SEMI:      ";",
}

func (tt TokenType) String() string {
	if s, ok := tokenNames[tt]; ok {
		return s
	}
	return "unknown"
}

type Token struct {
	Type TokenType
	Lex  string
	Line int
	Col  int
}

func (t Token) Is(tt TokenType) bool { return t.Type == tt }
