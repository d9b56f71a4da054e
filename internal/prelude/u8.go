package prelude

import (
	"github.com/sunjay/brain-sub000/internal/compileerr"
	"github.com/sunjay/brain-sub000/internal/memory"
	"github.com/sunjay/brain-sub000/internal/ops"
	"github.com/sunjay/brain-sub000/internal/scope"
	"github.com/sunjay/brain-sub000/internal/types"
)

// defineU8 registers the single-cell u8 primitive and the built-in
// function internal/lower's number.go calls to realize an unsigned
// numeric literal of this type.
func defineU8(s *scope.Stack) types.ID {
	s.PushScope()

	u8Type := s.DeclareType("u8", types.Item{Kind: types.KindPrimitive, Size: 1})
	s.RegisterPrimitive("u8", u8Type)

	s.DeclareBuiltinFunction(
		"std::convert::From<{unsigned integer}>",
		types.Item{
			Kind:       types.KindFunction,
			FuncArgs:   []types.FuncArg{{Type: u8Type, Array: true}},
			FuncReturn: u8Type,
		},
		func(s *scope.Stack, args []scope.Item, target memory.Block) ([]ops.Op, error) {
			value := args[0].Number
			// 0..255: a u8 cell has no reserved value, so all 256 values
			// are available (unlike e.g. a null-terminated representation).
			if value < 0 || value >= 1<<8 {
				return nil, compileerr.New(compileerr.OverflowingLiteral, "u8")
			}
			return []ops.Op{ops.Increment(target.Position(), byte(value))}, nil
		},
	)

	s.DeclareBuiltinFunction(
		displayPrintName,
		types.Item{
			Kind:       types.KindFunction,
			FuncArgs:   []types.FuncArg{{Type: u8Type}},
			FuncReturn: s.Primitives().Unit(),
		},
		printU8,
	)

	return u8Type
}

// printU8 writes the argument's cell directly: a u8 cell already holds the
// byte to print, so unlike bool's printer there's nothing to offset and
// restore.
func printU8(s *scope.Stack, args []scope.Item, _ memory.Block) ([]ops.Op, error) {
	switch arg := args[0]; arg.Kind {
	case scope.KindTypedBlock:
		return []ops.Op{ops.Write(arg.Memory)}, nil

	case scope.KindConstant:
		temp := s.Allocate(s.Primitives().U8())
		return []ops.Op{
			ops.TempAllocate(temp, []ops.Op{
				ops.Increment(temp.Position(), arg.Bytes[0]),
				ops.Write(temp),
			}, true),
		}, nil

	default:
		panic("prelude: u8 print called with a non-u8 argument")
	}
}
