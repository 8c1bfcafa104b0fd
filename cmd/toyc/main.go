package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/toylang/toyc/internal/ir"
	"github.com/toylang/toyc/internal/lexer"
	"github.com/toylang/toyc/internal/lower"
	"github.com/toylang/toyc/internal/parser"
)

func main() {
	args := os.Args[1:]
	if len(args) > 0 && args[0] == "repl" {
		os.Exit(runRepl())
	}

	var outPath string
	var srcPath string
	optimize := false
	// Minimal arg parsing supporting -o and -O anywhere
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "-o" && i+1 < len(args) {
			outPath = args[i+1]
			i++
			continue
		}
		if a == "-O" {
			optimize = true
			continue
		}
		if len(srcPath) == 0 && len(a) > 0 && a[0] != '-' {
			srcPath = a
			continue
		}
	}
	if srcPath == "" {
		fmt.Fprintln(os.Stderr, "usage: toyc [-O] [-o out.ir] <file> | toyc repl")
		os.Exit(2)
	}
	data, err := os.ReadFile(srcPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read error: %v\n", err)
		os.Exit(1)
	}

	text, err := compile(filepath.Base(srcPath), string(data), optimize)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if outPath == "" {
		fmt.Print(text)
		return
	}
	if err := os.WriteFile(outPath, []byte(text), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "write error: %v\n", err)
		os.Exit(1)
	}
}

// compile runs the whole front-end over one source unit: scan, parse one
// expression, lower it into a main function that returns its value, and
// render the module.
func compile(name, src string, optimize bool) (string, error) {
	p := parser.New(lexer.New(src))
	node, err := p.ParseExpression()
	if err != nil {
		return "", err
	}

	m := ir.NewModule(name)
	f := m.NewFunction("main")
	b := ir.NewBuilder(f)
	v, err := lower.New(m, b).Lower(node)
	if err != nil {
		return "", err
	}
	b.Ret(v)

	if optimize {
		ir.Optimize(m)
		for _, fn := range m.Funcs {
			if !fn.External {
				ir.PhiEliminate(fn)
			}
		}
	}
	return m.String(), nil
}
