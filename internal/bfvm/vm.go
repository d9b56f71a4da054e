// Package bfvm implements the BF tape machine: an 8-bit wrapping-cell tape
// with a single head and the eight instructions `><+-.,[]` (§6). It serves
// both as the runtime behind the `brainfuck` CLI and, in tests elsewhere in
// this module, as the oracle that checks codegen and optimize output
// against the tape-machine semantics they're meant to realize.
package bfvm

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// VM is one tape machine: a fixed-size array of wrapping byte cells, a
// head, and the I/O streams Read/Write instructions use. The zero value is
// not meaningful; build one with New.
type VM struct {
	tape []byte
	head int
	cfg  *Config
}

// New builds a VM with a fresh, zeroed tape sized and wired per opts.
func New(opts ...Option) *VM {
	cfg := NewConfig(opts...)
	return &VM{tape: make([]byte, cfg.tapeSize), cfg: cfg}
}

// Head returns the current head position, in [0, tape size).
func (vm *VM) Head() int { return vm.head }

// Tape returns the live backing array of cells. Callers must not retain it
// across a subsequent Run, and must not mutate it other than for test setup
// before the first Run.
func (vm *VM) Tape() []byte { return vm.tape }

// Run executes program from the current tape and head state, stopping
// after the last instruction, at an unrecoverable EOF on a `,` read, or
// when ctx is cancelled. The head wraps modulo the tape size on `<`/`>`;
// cells wrap modulo 256 on `+`/`-`. Bytes outside `><+-.,[]` are ignored.
func (vm *VM) Run(ctx context.Context, program string) error {
	jumps, err := matchBrackets(program)
	if err != nil {
		return err
	}

	size := len(vm.tape)
	var readBuf [1]byte

	for ip := 0; ip < len(program); ip++ {
		if ip&0xFFF == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		pos, instr := ip, program[ip]
		switch instr {
		case '>':
			vm.head = (vm.head + 1) % size
		case '<':
			vm.head = (vm.head - 1 + size) % size
		case '+':
			vm.tape[vm.head]++
		case '-':
			vm.tape[vm.head]--
		case '.':
			if _, err := vm.cfg.stdout.Write(vm.tape[vm.head : vm.head+1]); err != nil {
				return fmt.Errorf("bfvm: write: %w", err)
			}
		case ',':
			n, err := vm.cfg.stdin.Read(readBuf[:])
			if n == 0 || errors.Is(err, io.EOF) {
				// Matches the original interpreter: a read that finds no
				// input halts the whole program, not just the one op.
				return nil
			}
			if err != nil {
				return fmt.Errorf("bfvm: read: %w", err)
			}
			vm.tape[vm.head] = readBuf[0]
		case '[':
			if vm.tape[vm.head] == 0 {
				ip = jumps[ip]
			}
		case ']':
			if vm.tape[vm.head] != 0 {
				ip = jumps[ip]
			}
		}

		if vm.cfg.onStep != nil {
			vm.cfg.onStep(pos, instr, vm.head, vm.tape[vm.head])
		}
	}
	return nil
}

// matchBrackets precomputes, for every `[`/`]` in program, the index of its
// partner, so Run can jump in O(1) instead of rescanning on every loop
// iteration.
func matchBrackets(program string) ([]int, error) {
	jumps := make([]int, len(program))
	var stack []int

	for i := 0; i < len(program); i++ {
		switch program[i] {
		case '[':
			stack = append(stack, i)
		case ']':
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: ']' at position %d has no opening '['", ErrUnmatchedBracket, i)
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			jumps[open] = i
			jumps[i] = open
		}
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("%w: '[' at position %d has no closing ']'", ErrUnmatchedBracket, stack[len(stack)-1])
	}
	return jumps, nil
}
