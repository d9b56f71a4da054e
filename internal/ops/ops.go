// Package ops defines the intermediate operation representation ("Ops"): a
// tree of high-level tape operations that abstracts over concrete cell
// positions. Ops are produced by lowering a typed AST (see internal/lower)
// and consumed by the Ops → Instructions pass (see internal/codegen).
package ops

import "github.com/sunjay/brain-sub000/internal/memory"

// Kind discriminates the variants of Op. Children of a node are always
// executed in order.
type Kind int

const (
	KindBlock Kind = iota
	KindAllocate
	KindTempAllocate
	KindFree
	KindIncrement
	KindDecrement
	KindRead
	KindWrite
	KindZero
	KindLoop
	KindBranch
	KindCopy
	KindRelocate

	kindEnd
)

func (k Kind) String() string {
	switch k {
	case KindBlock:
		return "Block"
	case KindAllocate:
		return "Allocate"
	case KindTempAllocate:
		return "TempAllocate"
	case KindFree:
		return "Free"
	case KindIncrement:
		return "Increment"
	case KindDecrement:
		return "Decrement"
	case KindRead:
		return "Read"
	case KindWrite:
		return "Write"
	case KindZero:
		return "Zero"
	case KindLoop:
		return "Loop"
	case KindBranch:
		return "Branch"
	case KindCopy:
		return "Copy"
	case KindRelocate:
		return "Relocate"
	default:
		return "<unknown op kind>"
	}
}

// Op is a single node of the Ops tree. Exactly the fields relevant to Kind
// are meaningful; this mirrors a tagged union rather than growing a
// distinct Go type per variant, since most of this package's callers
// (internal/lower, internal/codegen) switch exhaustively on Kind anyway.
type Op struct {
	Kind Kind

	// Allocate, Free, Read, Write, Zero: the memory block in question.
	// TempAllocate: the temporary block, live only within Body.
	Mem memory.Block

	// Block, TempAllocate, Loop: the child operations.
	Body []Op

	// TempAllocate: whether Mem is guaranteed zero on entry and must be
	// zeroed again before reclaiming it on exit.
	ShouldZero bool

	// Increment, Decrement: the cell to modify, and by how much (mod 256).
	// Loop, Branch: the condition cell.
	Cell   memory.CellPosition
	Amount byte

	// Branch: the arm run when the condition is nonzero (If) and the arm
	// run when it is zero (Else).
	If   []Op
	Else []Op

	// Copy: nondestructive copy of Size cells from Src to Tgt.
	Src  memory.CellPosition
	Tgt  memory.CellPosition
	Size int

	// Relocate: destructive move of an entire block; SrcBlock ends zeroed.
	SrcBlock memory.Block
	TgtBlock memory.Block
}

// Block groups body as a single lexical unit with no semantic effect of
// its own.
func Block(body []Op) Op {
	return Op{Kind: KindBlock, Body: body}
}

// Allocate reserves mem; any later reference to mem addresses this block.
func Allocate(mem memory.Block) Op {
	return Op{Kind: KindAllocate, Mem: mem}
}

// TempAllocate marks temp as live only for the duration of body, reclaimed
// immediately afterward. If shouldZero, temp's cells are guaranteed zero
// both on entry to body and (after the compiler appends a Zero) on exit.
func TempAllocate(temp memory.Block, body []Op, shouldZero bool) Op {
	return Op{Kind: KindTempAllocate, Mem: temp, Body: body, ShouldZero: shouldZero}
}

// Free explicitly releases mem, zeroing it first. mem must not be used
// after this.
func Free(mem memory.Block) Op {
	return Op{Kind: KindFree, Mem: mem}
}

// Increment adds amount (mod 256) to the value at cell.
func Increment(cell memory.CellPosition, amount byte) Op {
	return Op{Kind: KindIncrement, Cell: cell, Amount: amount}
}

// Decrement subtracts amount (mod 256) from the value at cell.
func Decrement(cell memory.CellPosition, amount byte) Op {
	return Op{Kind: KindDecrement, Cell: cell, Amount: amount}
}

// Read reads one byte per cell of mem, in order.
func Read(mem memory.Block) Op {
	return Op{Kind: KindRead, Mem: mem}
}

// Write writes one byte per cell of mem, in order.
func Write(mem memory.Block) Op {
	return Op{Kind: KindWrite, Mem: mem}
}

// Zero sets every cell of mem to zero.
func Zero(mem memory.Block) Op {
	return Op{Kind: KindZero, Mem: mem}
}

// Loop emits "[" at cond, then body, then "]" at cond. The body is
// responsible for re-evaluating cond before the loop repeats, if needed.
func Loop(cond memory.CellPosition, body []Op) Op {
	return Op{Kind: KindLoop, Cell: cond, Body: body}
}

// Branch evaluates cond once and runs exactly one of ifBody/elseBody. It
// requires two fresh cells immediately after cond (see internal/codegen);
// if Layout cannot guarantee that, compilation fails with LayoutConflict.
func Branch(cond memory.CellPosition, ifBody, elseBody []Op) Op {
	return Op{Kind: KindBranch, Cell: cond, If: ifBody, Else: elseBody}
}

// Copy nondestructively copies size cells from src to tgt using one
// temporary cell. src.Block.Size() must equal tgt.Block.Size(); a no-op if
// src == tgt.
func Copy(src, tgt memory.CellPosition, size int) Op {
	return Op{Kind: KindCopy, Src: src, Tgt: tgt, Size: size}
}

// Relocate destructively moves the entire contents of src into tgt,
// leaving src zeroed. src and tgt must be the same size.
func Relocate(src, tgt memory.Block) Op {
	return Op{Kind: KindRelocate, SrcBlock: src, TgtBlock: tgt}
}
