package diag

import (
	"errors"
	"fmt"
)

// Stage identifies which front-end phase produced the diagnostic.
type Stage string

const (
	StageScanner Stage = "scanner"
	StageParser  Stage = "parser"
	StageLower   Stage = "lower"
)

// Code is a stable identifier for a diagnostic.
type Code string

const (
	CodeUnexpectedCharacter    Code = "UNEXPECTED_CHARACTER"
	CodeMalformedExpression    Code = "MALFORMED_EXPRESSION"
	CodeMalformedStatement     Code = "MALFORMED_STATEMENT"
	CodeDivisionByZero         Code = "DIVISION_BY_ZERO"
	CodeUnknownCallee          Code = "UNKNOWN_CALLEE"
	CodeRecursionLimitExceeded Code = "RECURSION_LIMIT_EXCEEDED"
)

// Span is a location in source text. A zero Span means "no location",
// which happens for conditions detected after parsing (e.g. call lowering).
type Span struct {
	Line int
	Col  int
}

func (s Span) IsValid() bool { return s.Line > 0 }

func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Line, s.Col)
}

// Diagnostic is a recoverable condition scoped to compiling one source unit.
// It never aborts the hosting process; the driver turns it into stderr text
// and a non-zero exit status.
type Diagnostic struct {
	Stage   Stage
	Code    Code
	Span    Span
	Message string
}

func (d *Diagnostic) Error() string {
	if d.Span.IsValid() {
		return fmt.Sprintf("%s: %s at %s", d.Stage, d.Message, d.Span)
	}
	return fmt.Sprintf("%s: %s", d.Stage, d.Message)
}

// Errorf builds a Diagnostic with a formatted message.
func Errorf(stage Stage, code Code, span Span, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		Stage:   stage,
		Code:    code,
		Span:    span,
		Message: fmt.Sprintf(format, args...),
	}
}

// Is reports whether err is (or wraps) a Diagnostic with the given code.
func Is(err error, code Code) bool {
	var d *Diagnostic
	return errors.As(err, &d) && d.Code == code
}
