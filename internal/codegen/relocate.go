package codegen

import "github.com/sunjay/brain-sub000/internal/ops"

// emitRelocate lowers a destructive move: each source cell drains
// directly into its target cell, leaving the source zeroed.
func (e *emitter) emitRelocate(op ops.Op) (Instructions, error) {
	size := op.SrcBlock.Size()
	srcStart := e.layout.Position(op.SrcBlock.Position())
	tgtStart := e.layout.Position(op.TgtBlock.Position())

	var out Instructions
	for i := 0; i < size; i++ {
		src := srcStart + i
		tgt := tgtStart + i

		out = append(out, e.moveTo(src)...)
		e.step(&out, JumpForwardIfZero)

		out = append(out, e.moveTo(tgt)...)
		e.step(&out, Increment)

		out = append(out, e.moveTo(src)...)
		e.step(&out, Decrement)

		e.step(&out, JumpBackwardUnlessZero)
	}
	return out, nil
}
