// Package optimize implements the peephole optimizer that runs over a
// finished codegen.Instructions stream: Off leaves it untouched, L1 cancels
// adjacent opposite moves/increments to a fixed point, and L2 additionally
// truncates trailing instructions that have no observable side effect.
package optimize

import "github.com/sunjay/brain-sub000/internal/codegen"

// Level selects how aggressively Run rewrites an instruction stream. Higher
// levels make stronger assumptions about what the instructions are doing.
// At L2 the L2-only truncation runs first and L1's cancellation runs on
// what it keeps.
type Level int

const (
	Off Level = iota
	L1
	L2
)

// optimizerFunc rewrites instrs in place.
type optimizerFunc func(instrs *codegen.Instructions)

// Run applies every optimizer enabled at level, in the order that keeps
// earlier passes from contradicting later ones.
func Run(instrs codegen.Instructions, level Level) codegen.Instructions {
	var optimizers []optimizerFunc
	switch level {
	case Off:
		// no optimizers
	case L1:
		optimizers = []optimizerFunc{removeOpposites}
	case L2:
		optimizers = []optimizerFunc{truncateNoSideEffects, removeOpposites}
	}

	out := append(codegen.Instructions(nil), instrs...)
	for _, optimize := range optimizers {
		optimize(&out)
	}
	return out
}
