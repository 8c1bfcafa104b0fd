package ast

// Node is the closed set of syntax tree variants. The marker method keeps the
// set closed to this package; consumers dispatch with a type switch and must
// treat an unknown variant as a hard error, so adding a variant here forces
// every consumer to be updated.
type Node interface{ isNode() }

// NumberLit is an integer literal leaf.
type NumberLit struct{ Value int64 }

func (*NumberLit) isNode() {}

type BinOp int

const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpDiv
)

func (op BinOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return "?"
}

// BinaryExpr owns both operands exclusively.
type BinaryExpr struct {
	Op          BinOp
	Left, Right Node
}

func (*BinaryExpr) isNode() {}

// IfStmt holds exactly one expression per branch. Else may be nil.
type IfStmt struct {
	Cond Node
	Then Node
	Else Node
}

func (*IfStmt) isNode() {}

type WhileStmt struct {
	Cond Node
	Body Node
}

func (*WhileStmt) isNode() {}

// CallExpr arguments are shared: the same argument subtree may be referenced
// from more than one call site when expressions are reused. With garbage
// collection that sharing needs no wrapper, only this note.
type CallExpr struct {
	Name string
	Args []Node
}

func (*CallExpr) isNode() {}
