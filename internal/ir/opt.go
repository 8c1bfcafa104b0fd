package ir

// Constant folding and dead-code elimination over function bodies. Both are
// optional: the IR a backend receives is valid with or without them.

// Optimize applies the folding and DCE passes to every function in the module.
func Optimize(m *Module) {
	for _, f := range m.Funcs {
		if f.External {
			continue
		}
		constFoldFunc(f)
		dceFunc(f)
	}
}

func constFoldFunc(f *Function) {
	// Block-local rewrite when both operands are constants. One in-order pass
	// is enough for a chain: earlier rewrites feed later ones.
	for _, b := range f.Blocks {
		for i, ins := range b.Instrs {
			switch ins.Val.Op {
			case OpAdd, OpSub, OpMul, OpDiv:
				l := findConst(b, ins.Val.Args[0])
				r := findConst(b, ins.Val.Args[1])
				if l == nil || r == nil {
					continue
				}
				var k int64
				switch ins.Val.Op {
				case OpAdd:
					k = *l + *r
				case OpSub:
					k = *l - *r
				case OpMul:
					k = *l * *r
				case OpDiv:
					if *r == 0 {
						// Folding never divides by zero; the instruction is
						// left for the backend's trap semantics.
						continue
					}
					k = *l / *r
				}
				b.Instrs[i].Val.Op = OpConst
				b.Instrs[i].Val.Args = nil
				b.Instrs[i].Val.Const = k
			}
		}
	}
}

func findConst(b *BasicBlock, id ValueID) *int64 {
	for _, ins := range b.Instrs {
		if ins.Res == id && ins.Val.Op == OpConst {
			v := ins.Val.Const
			return &v
		}
	}
	return nil
}

// valueArgs returns the arguments of v that name values. Jump operands are
// block indexes, not values, and must not count as uses.
func valueArgs(v Value) []ValueID {
	switch v.Op {
	case OpJmp:
		return nil
	case OpJnz:
		return v.Args[:1]
	default:
		return v.Args
	}
}

func countUses(f *Function) map[ValueID]int {
	uses := map[ValueID]int{}
	for _, b := range f.Blocks {
		for _, ins := range b.Instrs {
			for _, a := range valueArgs(ins.Val) {
				uses[a]++
			}
		}
	}
	return uses
}

func dceFunc(f *Function) {
	// Remove instructions whose results are unused. Calls stay: the callee may
	// have effects. Iterate to a fixed point since removals cascade.
	changed := true
	for changed {
		changed = false
		uses := countUses(f)
		for _, b := range f.Blocks {
			out := b.Instrs[:0]
			for _, ins := range b.Instrs {
				if ins.Res < 0 || ins.Val.Op == OpCall {
					out = append(out, ins)
					continue
				}
				if uses[ins.Res] == 0 {
					changed = true
					continue
				}
				out = append(out, ins)
			}
			b.Instrs = out
		}
	}
}
