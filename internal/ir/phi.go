package ir

// PhiEliminate rewrites OpPhi nodes into OpCopy instructions on the incoming
// edges, splitting critical edges as needed. Backends that cannot consume phi
// nodes run this before instruction selection. Requires Preds/Succs to be
// populated (the Builder maintains them).
func PhiEliminate(f *Function) {
	for _, b := range f.Blocks {
		var phis []Instr
		idx := 0
		for idx < len(b.Instrs) && b.Instrs[idx].Val.Op == OpPhi {
			phis = append(phis, b.Instrs[idx])
			idx++
		}
		if len(phis) == 0 || len(b.Preds) == 0 {
			continue
		}
		// Snapshot: splitting an edge rewrites b.Preds mid-walk, while phi
		// args stay aligned with the original order.
		preds := append([]*BasicBlock(nil), b.Preds...)
		for pi, pred := range preds {
			ip := pred
			if isCritical(pred, b) {
				ip = splitCriticalEdge(f, pred, b)
			}
			for _, phi := range phis {
				if pi >= len(phi.Val.Args) {
					continue
				}
				cp := Instr{Res: phi.Res, Val: Value{ID: phi.Res, Op: OpCopy, Args: []ValueID{phi.Val.Args[pi]}}}
				insertBeforeTerminator(ip, cp)
			}
			if ip != pred {
				ti := blockIndexOf(f, b)
				ip.Instrs = append(ip.Instrs, Instr{Res: -1, Val: Value{Op: OpJmp, Args: []ValueID{ValueID(ti)}}})
			}
		}
		b.Instrs = b.Instrs[idx:]
	}
}

func insertBeforeTerminator(b *BasicBlock, ins Instr) {
	if n := len(b.Instrs); n > 0 && b.terminated() {
		last := b.Instrs[n-1]
		b.Instrs = append(b.Instrs[:n-1], ins, last)
		return
	}
	b.Instrs = append(b.Instrs, ins)
}

func isCritical(p, s *BasicBlock) bool {
	return len(p.Succs) > 1 && len(s.Preds) > 1
}

// splitCriticalEdge inserts a fresh block on the p->s edge and retargets p's
// terminator at it. The caller appends the forwarding jump once copies are in.
func splitCriticalEdge(f *Function, p, s *BasicBlock) *BasicBlock {
	nb := f.newBlock(p.Name + "_to_" + s.Name)
	si := ValueID(blockIndexOf(f, s))
	ni := ValueID(blockIndexOf(f, nb))

	if n := len(p.Instrs); n > 0 {
		t := &p.Instrs[n-1].Val
		switch t.Op {
		case OpJmp:
			if t.Args[0] == si {
				t.Args[0] = ni
			}
		case OpJnz:
			for i := 1; i <= 2; i++ {
				if t.Args[i] == si {
					t.Args[i] = ni
				}
			}
		}
	}

	var succs []*BasicBlock
	for _, x := range p.Succs {
		if x != s {
			succs = append(succs, x)
		}
	}
	p.Succs = succs
	f.addEdge(p, nb)

	var preds []*BasicBlock
	for _, x := range s.Preds {
		if x != p {
			preds = append(preds, x)
		}
	}
	s.Preds = preds
	f.addEdge(nb, s)
	return nb
}
