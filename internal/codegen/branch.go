package codegen

import (
	"github.com/sunjay/brain-sub000/internal/memory"
	"github.com/sunjay/brain-sub000/internal/ops"
)

// emitBranch lowers an if/else into two independent single-iteration BF
// loops, gated so that exactly one of them runs:
//
//	flag+
//	cond[
//	  if-body
//	  cond[-]
//	  flag[-]
//	]
//	flag[
//	  else-body
//	  flag[-]
//	]
//
// flag starts at 1 and is cleared only inside the cond loop, so it survives
// (stays 1) exactly when cond was false and the cond loop never ran. Both
// loops are shaped like emitLoop: a moveTo to the condition cell immediately
// precedes each closing bracket, so the head position the emitter assumes
// after the loop (back at that condition cell) is reached whether the BF
// interpreter actually executes the loop body or skips the whole bracketed
// region — a `[` that sees zero jumps straight past its matching `]`
// without moving the head, and the head was already sitting on the
// condition cell when the bracket opened. An earlier version of this
// function assembled the classic two-temp-cell idiom from raw, unconditional
// Right/Left steps, which only held the assumed head position when the
// if-region actually ran; when it was skipped, every position computed for
// the else-arm was one cell off from where the head really was, corrupting
// cond's own cell and hanging the program.
func (e *emitter) emitBranch(op ops.Op) (Instructions, error) {
	var out Instructions

	err := e.layout.Consecutive(op.Cell.Block, 2, func(temp memory.Block) error {
		condPos := e.layout.Position(op.Cell)
		flagPos := e.layout.Position(temp.Position())

		out = append(out, e.moveTo(flagPos)...)
		e.step(&out, Increment)

		out = append(out, e.moveTo(condPos)...)
		e.step(&out, JumpForwardIfZero)

		ifInstrs, err := e.emitAll(op.If)
		if err != nil {
			return err
		}
		out = append(out, ifInstrs...)

		out = append(out, e.zeroAt(condPos)...)
		out = append(out, e.zeroAt(flagPos)...)

		out = append(out, e.moveTo(condPos)...)
		e.step(&out, JumpBackwardUnlessZero)

		out = append(out, e.moveTo(flagPos)...)
		e.step(&out, JumpForwardIfZero)

		elseInstrs, err := e.emitAll(op.Else)
		if err != nil {
			return err
		}
		out = append(out, elseInstrs...)

		out = append(out, e.zeroAt(flagPos)...)

		out = append(out, e.moveTo(flagPos)...)
		e.step(&out, JumpBackwardUnlessZero)

		return nil
	})

	return out, layoutConflictOr(err, "")
}

// zeroAt clears the single cell at pos via the standard `[-]` idiom. Unlike
// zero, which walks every cell of a Block, this targets one absolute index
// at a time, for callers (like emitBranch) resyncing the head mid-construct
// rather than reclaiming a whole block.
func (e *emitter) zeroAt(pos int) Instructions {
	var out Instructions
	out = append(out, e.moveTo(pos)...)
	out = append(out, JumpForwardIfZero, Decrement, JumpBackwardUnlessZero)
	return out
}
