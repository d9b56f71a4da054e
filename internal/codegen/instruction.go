// Package codegen implements the Ops → Instructions lowering pass: it
// resolves every memory.Block referenced by an Ops tree to a concrete tape
// cell via memory.Layout, and emits the BF instruction stream that
// realizes each op using only head movement and the eight primitives.
package codegen

import "strings"

// Instruction is one of BF's eight primitive tape-machine operations.
type Instruction byte

const (
	Right                  Instruction = '>'
	Left                    Instruction = '<'
	Increment               Instruction = '+'
	Decrement               Instruction = '-'
	Write                   Instruction = '.'
	Read                    Instruction = ','
	JumpForwardIfZero       Instruction = '['
	JumpBackwardUnlessZero  Instruction = ']'
)

func (i Instruction) String() string {
	return string(rune(i))
}

// Instructions is a complete emitted program, renderable as BF source.
type Instructions []Instruction

func (is Instructions) String() string {
	var b strings.Builder
	b.Grow(len(is))
	for _, i := range is {
		b.WriteByte(byte(i))
	}
	return b.String()
}
