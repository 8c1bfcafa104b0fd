package diag

import (
	"fmt"
	"testing"
)

func TestDiagnostic_Error(t *testing.T) {
	tests := []struct {
		d    *Diagnostic
		want string
	}{
		{
			Errorf(StageParser, CodeMalformedExpression, Span{Line: 1, Col: 3}, "expected number, got %v", "operator"),
			"parser: expected number, got operator at 1:3",
		},
		{
			Errorf(StageLower, CodeUnknownCallee, Span{}, "unknown callee %q", "foo"),
			`lower: unknown callee "foo"`,
		},
	}

	for i, tt := range tests {
		if got := tt.d.Error(); got != tt.want {
			t.Fatalf("tests[%d] - message wrong. expected=%q, got=%q", i, tt.want, got)
		}
	}
}

func TestIs(t *testing.T) {
	d := Errorf(StageScanner, CodeUnexpectedCharacter, Span{Line: 1, Col: 1}, "unexpected character %q", "@")

	if !Is(d, CodeUnexpectedCharacter) {
		t.Fatal("Is must match the diagnostic's own code")
	}
	if Is(d, CodeMalformedExpression) {
		t.Fatal("Is must not match a different code")
	}

	wrapped := fmt.Errorf("compiling unit: %w", d)
	if !Is(wrapped, CodeUnexpectedCharacter) {
		t.Fatal("Is must see through wrapping")
	}

	if Is(fmt.Errorf("plain"), CodeUnexpectedCharacter) {
		t.Fatal("Is must reject non-diagnostics")
	}
}
