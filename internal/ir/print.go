package ir

import (
	"fmt"
	"strings"
)

// Textual rendering of the IR. The structural-equivalence tests compare these
// strings, so the format is stable: one instruction per line, values as vN,
// branch targets by block name.

func (m *Module) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "module %q\n", m.Name)
	for _, f := range m.Funcs {
		b.WriteByte('\n')
		if f.External {
			fmt.Fprintf(&b, "declare %s/%d\n", f.Name, f.Arity)
			continue
		}
		b.WriteString(f.String())
	}
	return b.String()
}

func (f *Function) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "func %s() {\n", f.Name)
	for _, blk := range f.Blocks {
		fmt.Fprintf(&b, "%s:\n", blk.Name)
		for _, ins := range blk.Instrs {
			b.WriteString("  ")
			b.WriteString(f.formatInstr(blk, ins))
			b.WriteByte('\n')
		}
	}
	b.WriteString("}\n")
	return b.String()
}

var opNames = map[Op]string{
	OpAdd: "add",
	OpSub: "sub",
	OpMul: "mul",
	OpDiv: "div",
}

func (f *Function) blockName(idx ValueID) string {
	i := int(idx)
	if i < 0 || i >= len(f.Blocks) {
		return fmt.Sprintf("<bad block %d>", i)
	}
	return f.Blocks[i].Name
}

func (f *Function) formatInstr(blk *BasicBlock, ins Instr) string {
	v := ins.Val
	switch v.Op {
	case OpConst:
		return fmt.Sprintf("v%d = const %d", ins.Res, v.Const)
	case OpAdd, OpSub, OpMul, OpDiv:
		return fmt.Sprintf("v%d = %s v%d, v%d", ins.Res, opNames[v.Op], v.Args[0], v.Args[1])
	case OpCall:
		args := make([]string, len(v.Args))
		for i, a := range v.Args {
			args[i] = fmt.Sprintf("v%d", a)
		}
		return fmt.Sprintf("v%d = call %s(%s)", ins.Res, v.Callee, strings.Join(args, ", "))
	case OpPhi:
		parts := make([]string, 0, len(v.Args))
		for i, a := range v.Args {
			pred := "?"
			if i < len(blk.Preds) {
				pred = blk.Preds[i].Name
			}
			parts = append(parts, fmt.Sprintf("[v%d, %s]", a, pred))
		}
		return fmt.Sprintf("v%d = phi %s", ins.Res, strings.Join(parts, ", "))
	case OpCopy:
		return fmt.Sprintf("v%d = copy v%d", ins.Res, v.Args[0])
	case OpJmp:
		return fmt.Sprintf("jmp %s", f.blockName(v.Args[0]))
	case OpJnz:
		return fmt.Sprintf("jnz v%d, %s, %s", v.Args[0], f.blockName(v.Args[1]), f.blockName(v.Args[2]))
	case OpRet:
		return fmt.Sprintf("ret v%d", v.Args[0])
	}
	return fmt.Sprintf("<bad op %d>", v.Op)
}
