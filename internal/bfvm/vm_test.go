package bfvm

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/sunjay/brain-sub000/internal/testing/require"
)

func TestRunIncrementsAndWrapsCellAt256(t *testing.T) {
	vm := New()
	err := vm.Run(context.Background(), strings.Repeat("+", 256))
	require.NoError(t, err)
	require.Equal(t, byte(0), vm.Tape()[0])
}

func TestRunDecrementWrapsCellUnderflow(t *testing.T) {
	vm := New()
	err := vm.Run(context.Background(), "-")
	require.NoError(t, err)
	require.Equal(t, byte(255), vm.Tape()[0])
}

func TestRunHeadWrapsAtTapeBoundaries(t *testing.T) {
	vm := New(WithTapeSize(3))
	err := vm.Run(context.Background(), "<")
	require.NoError(t, err)
	require.Equal(t, 2, vm.Head())

	err = vm.Run(context.Background(), ">>>")
	require.NoError(t, err)
	require.Equal(t, 2, vm.Head())
}

func TestRunWriteEmitsCellByte(t *testing.T) {
	var out bytes.Buffer
	vm := New(WithStdout(&out))
	err := vm.Run(context.Background(), strings.Repeat("+", 'A')+".")
	require.NoError(t, err)
	require.Equal(t, "A", out.String())
}

func TestRunReadStoresStdinByte(t *testing.T) {
	vm := New(WithStdin(strings.NewReader("Z")))
	err := vm.Run(context.Background(), ",")
	require.NoError(t, err)
	require.Equal(t, byte('Z'), vm.Tape()[0])
}

func TestRunReadAtEOFHaltsProgram(t *testing.T) {
	vm := New(WithStdin(strings.NewReader("")))
	err := vm.Run(context.Background(), ",+++")
	require.NoError(t, err)
	require.Equal(t, byte(0), vm.Tape()[0])
}

func TestRunDefaultStdinIsEOF(t *testing.T) {
	vm := New()
	err := vm.Run(context.Background(), ",+++")
	require.NoError(t, err)
	require.Equal(t, byte(0), vm.Tape()[0])
}

func TestRunLoopSkipsWhenCellIsZero(t *testing.T) {
	vm := New()
	err := vm.Run(context.Background(), "[+++]")
	require.NoError(t, err)
	require.Equal(t, byte(0), vm.Tape()[0])
}

func TestRunLoopRunsUntilCellIsZero(t *testing.T) {
	vm := New()
	err := vm.Run(context.Background(), "+++[->+<]")
	require.NoError(t, err)
	require.Equal(t, byte(0), vm.Tape()[0])
	require.Equal(t, byte(3), vm.Tape()[1])
}

func TestRunUnmatchedOpenBracketErrors(t *testing.T) {
	vm := New()
	err := vm.Run(context.Background(), "[+")
	require.Error(t, err)
}

func TestRunUnmatchedCloseBracketErrors(t *testing.T) {
	vm := New()
	err := vm.Run(context.Background(), "+]")
	require.Error(t, err)
}

func TestRunIgnoresNonInstructionBytes(t *testing.T) {
	vm := New()
	err := vm.Run(context.Background(), "+ hello\n+")
	require.NoError(t, err)
	require.Equal(t, byte(2), vm.Tape()[0])
}

func TestRunStepHookSeesEveryInstruction(t *testing.T) {
	var seen []byte
	vm := New(WithStep(func(_ int, instr byte, _ int, _ byte) {
		seen = append(seen, instr)
	}))
	require.NoError(t, vm.Run(context.Background(), "++>+<"))
	require.Equal(t, "++>+<", string(seen))
}

func TestRunStepHookReportsHeadAndCellAfterEachInstruction(t *testing.T) {
	type step struct {
		head int
		cell byte
	}
	var steps []step
	vm := New(WithStep(func(_ int, _ byte, head int, cell byte) {
		steps = append(steps, step{head, cell})
	}))
	require.NoError(t, vm.Run(context.Background(), "+>++"))
	require.Equal(t, []step{{0, 1}, {1, 0}, {1, 1}, {1, 2}}, steps)
}

func TestRunCancelledContextStopsExecution(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	vm := New()
	err := vm.Run(ctx, strings.Repeat("+", 1<<14))
	require.Error(t, err)
}
