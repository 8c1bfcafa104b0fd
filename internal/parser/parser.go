package parser

import (
	"strconv"

	"github.com/toylang/toyc/internal/ast"
	"github.com/toylang/toyc/internal/diag"
	"github.com/toylang/toyc/internal/lexer"
)

// maxDepth bounds expression nesting so pathological input fails closed with
// RECURSION_LIMIT_EXCEEDED instead of overflowing the call stack.
const maxDepth = 1000

// TokenSource is the pull boundary between the scanner and the parser.
// *lexer.Lexer satisfies it; tests may substitute a synthetic stream.
type TokenSource interface {
	Next() lexer.Token
}

// Parser is a recursive-descent parser with one token of lookahead. The
// current token is pulled at construction time, before any parse method runs.
type Parser struct {
	src TokenSource
	tok lexer.Token
}

func New(src TokenSource) *Parser {
	p := &Parser{src: src}
	p.next()
	return p
}

func (p *Parser) next() { p.tok = p.src.Next() }

// Current returns the lookahead token. After a successful ParseExpression it
// is the first token following the expression.
func (p *Parser) Current() lexer.Token { return p.tok }

func (p *Parser) span() diag.Span {
	return diag.Span{Line: p.tok.Line, Col: p.tok.Col}
}

func (p *Parser) expect(tt lexer.TokenType) (lexer.Token, error) {
	if p.tok.Type != tt {
		return lexer.Token{}, diag.Errorf(diag.StageParser, diag.CodeMalformedStatement, p.span(),
			"expected %v, got %v", tt, p.tok.Type)
	}
	t := p.tok
	p.next()
	return t, nil
}

// ParseExpression parses a number optionally followed by an operator and a
// recursively parsed right-hand side. The recursion makes chains like
// `1 + 2 + 3` associate right-to-left: `1 + (2 + 3)`. That shape is part of
// the language's contract and is asserted by tests; do not rewrite this with
// an iterative loop.
func (p *Parser) ParseExpression() (ast.Node, error) {
	return p.parseExpr(0)
}

func (p *Parser) parseExpr(depth int) (ast.Node, error) {
	if depth >= maxDepth {
		return nil, diag.Errorf(diag.StageParser, diag.CodeRecursionLimitExceeded, p.span(),
			"expression nesting exceeds %d levels", maxDepth)
	}
	if p.tok.Type == lexer.ILLEGAL {
		return nil, diag.Errorf(diag.StageScanner, diag.CodeUnexpectedCharacter, p.span(),
			"unexpected character %q", p.tok.Lex)
	}
	if p.tok.Type != lexer.NUMBER {
		return nil, diag.Errorf(diag.StageParser, diag.CodeMalformedExpression, p.span(),
			"expected number, got %v", p.tok.Type)
	}
	v, err := strconv.ParseInt(p.tok.Lex, 10, 64)
	if err != nil {
		return nil, diag.Errorf(diag.StageParser, diag.CodeMalformedExpression, p.span(),
			"number %q out of range", p.tok.Lex)
	}
	left := &ast.NumberLit{Value: v}
	p.next()

	if p.tok.Type != lexer.OPERATOR {
		return left, nil
	}
	op, err := binOpFromLex(p.tok.Lex, p.span())
	if err != nil {
		return nil, err
	}
	p.next()
	right, err := p.parseExpr(depth + 1)
	if err != nil {
		return nil, err
	}
	return &ast.BinaryExpr{Op: op, Left: left, Right: right}, nil
}

// ParseIfStatement parses `if cond { expr }` with an optional `else { expr }`.
// Every structural token is an explicit expectation; a mismatch fails with
// MALFORMED_STATEMENT. Note that the scanner never produces KW_IF or KW_ELSE
// (its keyword table stops at int/return), so this entry point is reachable
// only through a TokenSource that supplies those kinds directly.
func (p *Parser) ParseIfStatement() (ast.Node, error) {
	if _, err := p.expect(lexer.KW_IF); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr(1)
	if err != nil {
		return nil, err
	}
	then, err := p.parseBracedExpr()
	if err != nil {
		return nil, err
	}
	var els ast.Node
	if p.tok.Type == lexer.KW_ELSE {
		p.next()
		els, err = p.parseBracedExpr()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfStmt{Cond: cond, Then: then, Else: els}, nil
}

// ParseWhileStatement parses `while cond { expr }`. The same KW_WHILE
// reachability caveat as ParseIfStatement applies.
func (p *Parser) ParseWhileStatement() (ast.Node, error) {
	if _, err := p.expect(lexer.KW_WHILE); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr(1)
	if err != nil {
		return nil, err
	}
	body, err := p.parseBracedExpr()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Cond: cond, Body: body}, nil
}

func (p *Parser) parseBracedExpr() (ast.Node, error) {
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	e, err := p.parseExpr(1)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return e, nil
}

func binOpFromLex(lex string, span diag.Span) (ast.BinOp, error) {
	switch lex {
	case "+":
		return ast.OpAdd, nil
	case "-":
		return ast.OpSub, nil
	case "*":
		return ast.OpMul, nil
	case "/":
		return ast.OpDiv, nil
	}
	return 0, diag.Errorf(diag.StageParser, diag.CodeMalformedExpression, span,
		"unsupported operator %q", lex)
}
