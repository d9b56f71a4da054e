package prelude

import (
	"github.com/sunjay/brain-sub000/internal/memory"
	"github.com/sunjay/brain-sub000/internal/ops"
	"github.com/sunjay/brain-sub000/internal/scope"
	"github.com/sunjay/brain-sub000/internal/types"
)

// defineBoolean registers the single-cell bool primitive, its true/false
// constants, its Display::print printer (writes '0' or '1'), and the
// std::ops::Not built-in implementing the classic `x = !x` algorithm
// (https://esolangs.org/wiki/Brainfuck_algorithms#x_.3D_not_x_.28boolean.2C_logical.29).
func defineBoolean(s *scope.Stack) types.ID {
	s.PushScope()

	boolType := s.DeclareType("bool", types.Item{Kind: types.KindPrimitive, Size: 1})
	s.RegisterPrimitive("bool", boolType)

	s.DeclareConstant("true", boolType, []byte{1})
	s.DeclareConstant("false", boolType, []byte{0})

	unitType := s.Primitives().Unit()

	s.DeclareBuiltinFunction(
		displayPrintName,
		types.Item{
			Kind:       types.KindFunction,
			FuncArgs:   []types.FuncArg{{Type: boolType}},
			FuncReturn: unitType,
		},
		printBool,
	)

	s.DeclareBuiltinFunction(
		"std::ops::Not",
		types.Item{
			Kind:       types.KindFunction,
			FuncArgs:   []types.FuncArg{{Type: boolType}},
			FuncReturn: boolType,
		},
		notBool,
	)

	return boolType
}

// printBool writes the argument as the single ASCII digit '0' or '1',
// restoring the source cell's value afterward so printing has no visible
// side effect on the operand.
func printBool(s *scope.Stack, args []scope.Item, _ memory.Block) ([]ops.Op, error) {
	switch arg := args[0]; arg.Kind {
	case scope.KindTypedBlock:
		mem := arg.Memory
		return []ops.Op{
			ops.Increment(mem.Position(), '0'),
			ops.Write(mem),
			ops.Decrement(mem.Position(), '0'),
		}, nil

	case scope.KindConstant:
		value := '0' + arg.Bytes[0]
		temp := s.Allocate(s.Primitives().U8())
		return []ops.Op{
			ops.TempAllocate(temp, []ops.Op{
				ops.Increment(temp.Position(), value),
				ops.Write(temp),
				ops.Decrement(temp.Position(), value),
			}, false),
		}, nil

	default:
		panic("prelude: bool print called with a non-bool argument")
	}
}

// notBool implements logical negation in place: a TypedBlock operand is
// copied into target first (the algorithm below consumes its operand),
// then negated there. A compile-time Constant operand folds away entirely:
// target starts zeroed, so `!true` needs no instructions and `!false` only
// needs a single increment.
func notBool(s *scope.Stack, args []scope.Item, target memory.Block) ([]ops.Op, error) {
	switch arg := args[0]; arg.Kind {
	case scope.KindTypedBlock:
		boolType := s.Primitives().Bool()
		temp := s.Allocate(boolType)

		return []ops.Op{
			ops.TempAllocate(temp, []ops.Op{
				ops.Copy(arg.Memory.Position(), target.Position(), target.Size()),

				ops.Increment(temp.Position(), 1),
				ops.Loop(target.Position(), []ops.Op{
					ops.Decrement(target.Position(), 1),
					ops.Decrement(temp.Position(), 1),
				}),
				ops.Loop(temp.Position(), []ops.Op{
					ops.Increment(target.Position(), 1),
					ops.Decrement(temp.Position(), 1),
				}),
			}, false),
		}, nil

	case scope.KindConstant:
		if arg.Bytes[0] == 0 {
			return []ops.Op{ops.Increment(target.Position(), 1)}, nil
		}
		return nil, nil

	default:
		panic("prelude: bool Not called with a non-bool argument")
	}
}
