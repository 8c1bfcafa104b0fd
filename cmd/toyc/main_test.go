package main

import (
	"strings"
	"testing"

	"github.com/toylang/toyc/internal/diag"
)

func TestCompile_PrintsIR(t *testing.T) {
	out, err := compile("t", "5 + 3;", false)
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}

	for _, want := range []string{
		`module "t"`,
		"func main() {",
		"v0 = const 5",
		"v1 = const 3",
		"v2 = add v0, v1",
		"ret v2",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCompile_Optimized(t *testing.T) {
	out, err := compile("t", "5 + 3;", true)
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}
	if !strings.Contains(out, "const 8") {
		t.Fatalf("expected folded const 8:\n%s", out)
	}
	if strings.Contains(out, "add") {
		t.Fatalf("folded add must not survive:\n%s", out)
	}
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		input string
		code  diag.Code
	}{
		{"", diag.CodeMalformedExpression},
		{"( 5 )", diag.CodeMalformedExpression},
		{"1 / 0", diag.CodeDivisionByZero},
		{"$ 5", diag.CodeUnexpectedCharacter},
	}

	for i, tt := range tests {
		_, err := compile("t", tt.input, false)
		if err == nil {
			t.Fatalf("tests[%d] - expected error for %q, got none", i, tt.input)
		}
		if !diag.Is(err, tt.code) {
			t.Fatalf("tests[%d] - code wrong for %q. expected=%v, got=%v",
				i, tt.input, tt.code, err)
		}
	}
}
