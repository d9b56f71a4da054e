package optimize

import "github.com/sunjay/brain-sub000/internal/codegen"

// removeOpposites repeatedly cancels adjacent instruction pairs that undo
// each other (>< or <>, +- or -+) until none remain. Cancelling a pair can
// expose a new adjacent pair (e.g. >+-< after removing +- leaves ><), so
// the scan backs up one position whenever it removes a pair instead of
// always advancing.
func removeOpposites(instrs *codegen.Instructions) {
	cur := *instrs
	i := 1
	for i < len(cur) {
		if opposites(cur[i-1], cur[i]) {
			cur = append(cur[:i-1], cur[i+1:]...)
			if i > 1 {
				i--
			}
			continue
		}
		i++
	}
	*instrs = cur
}

func opposites(prev, current codegen.Instruction) bool {
	switch {
	case prev == codegen.Left && current == codegen.Right,
		prev == codegen.Right && current == codegen.Left,
		prev == codegen.Increment && current == codegen.Decrement,
		prev == codegen.Decrement && current == codegen.Increment:
		return true
	default:
		return false
	}
}
