package codegen

import (
	"github.com/sunjay/brain-sub000/internal/memory"
	"github.com/sunjay/brain-sub000/internal/ops"
)

// emitCopy lowers a nondestructive copy using one temporary cell per
// source cell: the source is drained into both the target and the
// temporary, then the temporary refills the source.
func (e *emitter) emitCopy(op ops.Op) (Instructions, error) {
	if op.Src == op.Tgt {
		return nil, nil
	}

	srcStart := e.layout.Position(op.Src)
	tgtStart := e.layout.Position(op.Tgt)

	var out Instructions
	e.layout.Temporary(1, func(temp memory.Block) {
		tempPos := e.layout.Position(temp.Position())

		for i := 0; i < op.Size; i++ {
			src := srcStart + i
			tgt := tgtStart + i

			out = append(out, e.moveTo(src)...)
			e.step(&out, JumpForwardIfZero)

			out = append(out, e.moveTo(tgt)...)
			e.step(&out, Increment)

			out = append(out, e.moveTo(tempPos)...)
			e.step(&out, Increment)

			out = append(out, e.moveTo(src)...)
			e.step(&out, Decrement)

			e.step(&out, JumpBackwardUnlessZero)

			out = append(out, e.moveTo(tempPos)...)
			e.step(&out, JumpForwardIfZero)

			out = append(out, e.moveTo(src)...)
			e.step(&out, Increment)

			out = append(out, e.moveTo(tempPos)...)
			e.step(&out, Decrement)

			e.step(&out, JumpBackwardUnlessZero)
		}
	})
	return out, nil
}
