package codegen

import (
	"errors"
	"fmt"

	"github.com/sunjay/brain-sub000/internal/compileerr"
	"github.com/sunjay/brain-sub000/internal/memory"
	"github.com/sunjay/brain-sub000/internal/ops"
)

// Generate lowers body to a complete BF instruction stream using alloc (the
// same Allocator the Ops tree's memory.Blocks were minted from) to back a
// fresh Layout. The result starts and ends with the head at cell 0.
func Generate(alloc *memory.Allocator, body []ops.Op) (Instructions, error) {
	e := &emitter{layout: memory.NewLayout(alloc)}
	instrs, err := e.emitAll(body)
	if err != nil {
		return nil, err
	}
	instrs = append(instrs, e.moveTo(0)...)
	return instrs, nil
}

// emitter holds the codegen pass's two pieces of mutable state: the
// Layout resolving memory.Blocks to absolute cell indices, and the
// current head position.
type emitter struct {
	layout *memory.Layout
	head   int
}

// emitAll lowers a sequence of sibling ops in order.
func (e *emitter) emitAll(body []ops.Op) (Instructions, error) {
	var out Instructions
	for _, op := range body {
		instrs, err := e.emit(op)
		if err != nil {
			return nil, err
		}
		out = append(out, instrs...)
	}
	return out, nil
}

// emit lowers a single op and restores the head to its entry position
// afterward, except for Read and Write, which by contract advance past
// their block; their callers reposition via the next op's own move_to.
func (e *emitter) emit(op ops.Op) (Instructions, error) {
	entry := e.head
	instrs, err := e.emitKind(op)
	if err != nil {
		return nil, err
	}
	if op.Kind != ops.KindRead && op.Kind != ops.KindWrite {
		instrs = append(instrs, e.moveTo(entry)...)
	}
	return instrs, nil
}

func (e *emitter) emitKind(op ops.Op) (Instructions, error) {
	switch op.Kind {
	case ops.KindBlock:
		return e.emitAll(op.Body)

	case ops.KindAllocate:
		// Reserve mem's cells now, in declaration order, rather than
		// waiting for its first real reference to place it.
		e.layout.Position(op.Mem.Position())
		return nil, nil

	case ops.KindTempAllocate:
		instrs, err := e.emitAll(op.Body)
		if err != nil {
			return nil, err
		}
		if op.ShouldZero {
			zeroInstrs, err := e.zero(op.Mem)
			if err != nil {
				return nil, err
			}
			instrs = append(instrs, zeroInstrs...)
		}
		e.layout.Free(op.Mem)
		return instrs, nil

	case ops.KindFree:
		zeroInstrs, err := e.zero(op.Mem)
		if err != nil {
			return nil, err
		}
		e.layout.Free(op.Mem)
		return zeroInstrs, nil

	case ops.KindIncrement:
		return e.repeatAt(op.Cell, Increment, int(op.Amount)), nil

	case ops.KindDecrement:
		return e.repeatAt(op.Cell, Decrement, int(op.Amount)), nil

	case ops.KindRead:
		return e.consecutive(op.Mem, Read), nil

	case ops.KindWrite:
		return e.consecutive(op.Mem, Write), nil

	case ops.KindZero:
		return e.zero(op.Mem)

	case ops.KindLoop:
		return e.emitLoop(op)

	case ops.KindBranch:
		return e.emitBranch(op)

	case ops.KindCopy:
		return e.emitCopy(op)

	case ops.KindRelocate:
		return e.emitRelocate(op)

	default:
		return nil, fmt.Errorf("codegen: unhandled op kind %s", op.Kind)
	}
}

// step appends a single instruction, adjusting head for Right/Left.
func (e *emitter) step(out *Instructions, i Instruction) {
	*out = append(*out, i)
	switch i {
	case Right:
		e.head++
	case Left:
		e.head--
	}
}

// moveTo returns the Right/Left run that moves the head from its current
// position to target, and updates head to match.
func (e *emitter) moveTo(target int) Instructions {
	delta := target - e.head
	e.head = target
	switch {
	case delta > 0:
		return repeat(Right, delta)
	case delta < 0:
		return repeat(Left, -delta)
	default:
		return nil
	}
}

func repeat(i Instruction, n int) Instructions {
	out := make(Instructions, n)
	for k := range out {
		out[k] = i
	}
	return out
}

func (e *emitter) repeatAt(cell memory.CellPosition, instr Instruction, amount int) Instructions {
	out := e.moveTo(e.layout.Position(cell))
	return append(out, repeat(instr, amount)...)
}

// consecutive visits every cell of mem in order, emitting instr at each.
// Read/Write use this; it leaves the head one cell past mem's last cell.
func (e *emitter) consecutive(mem memory.Block, instr Instruction) Instructions {
	var out Instructions
	start := e.layout.Position(mem.Position())
	for i := 0; i < mem.Size(); i++ {
		out = append(out, e.moveTo(start+i)...)
		out = append(out, instr)
	}
	if mem.Size() > 0 {
		out = append(out, e.moveTo(start+mem.Size())...)
	}
	return out
}

// zero sets every cell of mem to 0 via the standard `[-]` idiom.
func (e *emitter) zero(mem memory.Block) (Instructions, error) {
	var out Instructions
	start := e.layout.Position(mem.Position())
	for i := 0; i < mem.Size(); i++ {
		out = append(out, e.moveTo(start+i)...)
		out = append(out, JumpForwardIfZero, Decrement, JumpBackwardUnlessZero)
	}
	return out, nil
}

func (e *emitter) emitLoop(op ops.Op) (Instructions, error) {
	var out Instructions
	condPos := e.layout.Position(op.Cell)

	out = append(out, e.moveTo(condPos)...)
	out = append(out, JumpForwardIfZero)

	body, err := e.emitAll(op.Body)
	if err != nil {
		return nil, err
	}
	out = append(out, body...)

	out = append(out, e.moveTo(condPos)...)
	out = append(out, JumpBackwardUnlessZero)
	return out, nil
}

func layoutConflictOr(err error, name string) error {
	if errors.Is(err, memory.ErrLayoutConflict) {
		return compileerr.New(compileerr.LayoutConflict, name)
	}
	return err
}
