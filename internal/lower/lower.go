package lower

import (
	"fmt"

	"github.com/toylang/toyc/internal/ast"
	"github.com/toylang/toyc/internal/diag"
	"github.com/toylang/toyc/internal/ir"
)

// maxDepth mirrors the parser's bound: lowering recursion is proportional to
// expression nesting, so it fails closed the same way.
const maxDepth = 1000

// Lowerer walks an AST read-only and appends IR through a Builder. The AST is
// never mutated, so the same tree may be lowered any number of times into
// independent builders and the results are structurally identical.
type Lowerer struct {
	m *ir.Module
	b *ir.Builder
}

// New returns a Lowerer emitting into b. The module is consulted only to
// resolve call targets.
func New(m *ir.Module, b *ir.Builder) *Lowerer {
	return &Lowerer{m: m, b: b}
}

// Lower emits IR for n and returns the value the construct produces.
func (l *Lowerer) Lower(n ast.Node) (ir.ValueID, error) {
	return l.lower(n, 0)
}

func (l *Lowerer) lower(n ast.Node, depth int) (ir.ValueID, error) {
	if depth >= maxDepth {
		return 0, diag.Errorf(diag.StageLower, diag.CodeRecursionLimitExceeded, diag.Span{},
			"tree nesting exceeds %d levels", maxDepth)
	}
	switch n := n.(type) {
	case *ast.NumberLit:
		return l.b.Const(n.Value), nil
	case *ast.BinaryExpr:
		return l.lowerBinary(n, depth)
	case *ast.IfStmt:
		return l.lowerIf(n, depth)
	case *ast.WhileStmt:
		return l.lowerWhile(n, depth)
	case *ast.CallExpr:
		return l.lowerCall(n, depth)
	}
	return 0, fmt.Errorf("unsupported node %T", n)
}

var irOps = map[ast.BinOp]ir.Op{
	ast.OpAdd: ir.OpAdd,
	ast.OpSub: ir.OpSub,
	ast.OpMul: ir.OpMul,
	ast.OpDiv: ir.OpDiv,
}

func (l *Lowerer) lowerBinary(n *ast.BinaryExpr, depth int) (ir.ValueID, error) {
	if n.Op == ast.OpDiv {
		if lit, ok := n.Right.(*ast.NumberLit); ok && lit.Value == 0 {
			return 0, diag.Errorf(diag.StageLower, diag.CodeDivisionByZero, diag.Span{},
				"division by constant zero")
		}
	}
	lv, err := l.lower(n.Left, depth+1)
	if err != nil {
		return 0, err
	}
	rv, err := l.lower(n.Right, depth+1)
	if err != nil {
		return 0, err
	}
	return l.b.Binary(irOps[n.Op], lv, rv), nil
}

// lowerIf branches on the condition (nonzero is true), lowers each branch
// into its own block and merges the branch values through a phi. An absent
// else contributes constant zero.
func (l *Lowerer) lowerIf(n *ast.IfStmt, depth int) (ir.ValueID, error) {
	cond, err := l.lower(n.Cond, depth+1)
	if err != nil {
		return 0, err
	}
	thenB := l.b.NewBlock("then")
	elseB := l.b.NewBlock("else")
	joinB := l.b.NewBlock("endif")
	l.b.CondBr(cond, thenB, elseB)

	l.b.SetInsertPoint(thenB)
	tv, err := l.lower(n.Then, depth+1)
	if err != nil {
		return 0, err
	}
	l.b.Br(joinB)

	l.b.SetInsertPoint(elseB)
	var ev ir.ValueID
	if n.Else != nil {
		ev, err = l.lower(n.Else, depth+1)
		if err != nil {
			return 0, err
		}
	} else {
		ev = l.b.Const(0)
	}
	l.b.Br(joinB)

	l.b.SetInsertPoint(joinB)
	return l.b.Phi(tv, ev), nil
}

// lowerWhile builds the classic header/body/exit shape: the header
// re-evaluates the condition, the body ends with a back-edge to the header.
// The statement itself evaluates to constant zero in the exit block.
func (l *Lowerer) lowerWhile(n *ast.WhileStmt, depth int) (ir.ValueID, error) {
	headB := l.b.NewBlock("while.cond")
	bodyB := l.b.NewBlock("while.body")
	exitB := l.b.NewBlock("while.end")
	l.b.Br(headB)

	l.b.SetInsertPoint(headB)
	cond, err := l.lower(n.Cond, depth+1)
	if err != nil {
		return 0, err
	}
	l.b.CondBr(cond, bodyB, exitB)

	l.b.SetInsertPoint(bodyB)
	if _, err := l.lower(n.Body, depth+1); err != nil {
		return 0, err
	}
	l.b.Br(headB)

	l.b.SetInsertPoint(exitB)
	return l.b.Const(0), nil
}

func (l *Lowerer) lowerCall(n *ast.CallExpr, depth int) (ir.ValueID, error) {
	if l.m.Lookup(n.Name) == nil {
		return 0, diag.Errorf(diag.StageLower, diag.CodeUnknownCallee, diag.Span{},
			"unknown callee %q", n.Name)
	}
	args := make([]ir.ValueID, 0, len(n.Args))
	for _, a := range n.Args {
		v, err := l.lower(a, depth+1)
		if err != nil {
			return 0, err
		}
		args = append(args, v)
	}
	return l.b.Call(n.Name, args...), nil
}
