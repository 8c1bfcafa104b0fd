package ir

// Backend-neutral IR: a module of functions, each a graph of basic blocks
// holding value-producing instructions. The lowering pass appends through a
// Builder; nothing mutates a value after creation.

type Module struct {
	Name  string
	Funcs []*Function
}

func NewModule(name string) *Module { return &Module{Name: name} }

// NewFunction adds a function with a body to the module and returns it.
func (m *Module) NewFunction(name string) *Function {
	f := &Function{Name: name}
	m.Funcs = append(m.Funcs, f)
	return f
}

// Declare registers an external callee with the given arity so calls to it
// can be resolved by name. It has no blocks.
func (m *Module) Declare(name string, arity int) *Function {
	f := &Function{Name: name, Arity: arity, External: true}
	m.Funcs = append(m.Funcs, f)
	return f
}

// Lookup resolves a function by name, nil if absent.
func (m *Module) Lookup(name string) *Function {
	for _, f := range m.Funcs {
		if f.Name == name {
			return f
		}
	}
	return nil
}

type Function struct {
	Name     string
	Arity    int
	External bool
	Blocks   []*BasicBlock
}

type BasicBlock struct {
	Name   string
	Instrs []Instr
	Preds  []*BasicBlock
	Succs  []*BasicBlock
}

func (b *BasicBlock) terminated() bool {
	if len(b.Instrs) == 0 {
		return false
	}
	op := b.Instrs[len(b.Instrs)-1].Val.Op
	return op == OpJmp || op == OpJnz || op == OpRet
}

type ValueID int

type Value struct {
	ID     ValueID
	Op     Op
	Args   []ValueID
	Const  int64
	Callee string // OpCall only
}

type Op int

const (
	OpConst Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpCall
	OpPhi  // at block start; Args aligned with Preds
	OpCopy // produced by phi elimination
	OpJmp  // Args[0] holds the target block index
	OpJnz  // Args[0]=cond (nonzero taken), Args[1]=true blk idx, Args[2]=false blk idx
	OpRet
)

// Instr pairs a value with its result slot; Res is -1 for instructions that
// produce nothing (jumps, ret).
type Instr struct {
	Res ValueID
	Val Value
}

func (f *Function) newBlock(name string) *BasicBlock {
	b := &BasicBlock{Name: name}
	f.Blocks = append(f.Blocks, b)
	return b
}

func (f *Function) addEdge(pred, succ *BasicBlock) {
	pred.Succs = append(pred.Succs, succ)
	succ.Preds = append(succ.Preds, pred)
}

func blockIndexOf(f *Function, b *BasicBlock) int {
	for i, bb := range f.Blocks {
		if bb == b {
			return i
		}
	}
	return -1
}

// Builder appends instructions to one function, one block at a time. IDs are
// unique per function.
type Builder struct {
	f      *Function
	b      *BasicBlock
	nextID ValueID
}

// NewBuilder creates the function's entry block and positions the builder on it.
func NewBuilder(f *Function) *Builder {
	b := &Builder{f: f}
	b.b = f.newBlock("entry")
	return b
}

func (bd *Builder) Func() *Function    { return bd.f }
func (bd *Builder) Block() *BasicBlock { return bd.b }

// NewBlock appends a block without moving the insert point.
func (bd *Builder) NewBlock(name string) *BasicBlock { return bd.f.newBlock(name) }

func (bd *Builder) SetInsertPoint(blk *BasicBlock) { bd.b = blk }

func (bd *Builder) emit(op Op, args []ValueID, k int64, callee string) ValueID {
	id := bd.nextID
	bd.nextID++
	v := Value{ID: id, Op: op, Args: append([]ValueID(nil), args...), Const: k, Callee: callee}
	bd.b.Instrs = append(bd.b.Instrs, Instr{Res: id, Val: v})
	return id
}

func (bd *Builder) emitVoid(op Op, args []ValueID) {
	bd.b.Instrs = append(bd.b.Instrs, Instr{Res: -1, Val: Value{Op: op, Args: args}})
}

// Const creates an integer constant value.
func (bd *Builder) Const(v int64) ValueID { return bd.emit(OpConst, nil, v, "") }

// Binary creates one arithmetic instruction. op must be one of OpAdd, OpSub,
// OpMul, OpDiv.
func (bd *Builder) Binary(op Op, l, r ValueID) ValueID {
	return bd.emit(op, []ValueID{l, r}, 0, "")
}

// Call creates a call instruction to a named function.
func (bd *Builder) Call(callee string, args ...ValueID) ValueID {
	return bd.emit(OpCall, args, 0, callee)
}

// Br terminates the current block with an unconditional jump.
func (bd *Builder) Br(target *BasicBlock) {
	ti := blockIndexOf(bd.f, target)
	bd.emitVoid(OpJmp, []ValueID{ValueID(ti)})
	bd.f.addEdge(bd.b, target)
}

// CondBr terminates the current block, branching on cond: nonzero takes t.
func (bd *Builder) CondBr(cond ValueID, t, e *BasicBlock) {
	ti := blockIndexOf(bd.f, t)
	ei := blockIndexOf(bd.f, e)
	bd.emitVoid(OpJnz, []ValueID{cond, ValueID(ti), ValueID(ei)})
	bd.f.addEdge(bd.b, t)
	bd.f.addEdge(bd.b, e)
}

// Phi inserts a phi at the start of the current block. incoming must be
// aligned with the block's Preds.
func (bd *Builder) Phi(incoming ...ValueID) ValueID {
	id := bd.nextID
	bd.nextID++
	v := Value{ID: id, Op: OpPhi, Args: append([]ValueID(nil), incoming...)}
	bd.b.Instrs = append([]Instr{{Res: id, Val: v}}, bd.b.Instrs...)
	return id
}

// Ret terminates the current block returning v.
func (bd *Builder) Ret(v ValueID) {
	bd.emitVoid(OpRet, []ValueID{v})
}
