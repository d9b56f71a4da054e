package prelude

import (
	"github.com/sunjay/brain-sub000/internal/compileerr"
	"github.com/sunjay/brain-sub000/internal/memory"
	"github.com/sunjay/brain-sub000/internal/ops"
	"github.com/sunjay/brain-sub000/internal/scope"
	"github.com/sunjay/brain-sub000/internal/types"
)

// defineStdin declares the zero-size std::io::Stdin singleton bound to the
// name "stdin" and its read_exact method, which reads one byte per cell of
// the caller's buffer argument, in order.
func defineStdin(s *scope.Stack, u8Type types.ID) types.ID {
	s.PushScope()

	stdinType := s.DeclareType("std::io::Stdin", types.Item{Kind: types.KindStruct})
	s.Declare("stdin", stdinType)

	unitType := s.Primitives().Unit()

	s.DeclareBuiltinFunction(
		"std::io::Stdin::read_exact",
		types.Item{
			Kind: types.KindFunction,
			FuncArgs: []types.FuncArg{
				{Type: stdinType},
				{Type: u8Type, Array: true},
			},
			FuncReturn: unitType,
		},
		func(s *scope.Stack, args []scope.Item, _ memory.Block) ([]ops.Op, error) {
			buf := args[1]
			if buf.Kind != scope.KindArray {
				panic("prelude: stdin.read_exact called with a non-array buffer argument")
			}
			return []ops.Op{ops.Read(buf.Memory)}, nil
		},
	)

	return stdinType
}

// defineStdout declares the zero-size std::io::Stdout singleton bound to
// the name "stdout" and its print/println methods. Both are variadic:
// each argument's printer is resolved independently by looking up
// std::fmt::Display::print for that argument's own type, so adding a new
// printable type (another call to DeclareBuiltinFunction(displayPrintName,
// ...)) is all a future primitive needs to become printable here too.
func defineStdout(s *scope.Stack, boolType, u8Type types.ID) types.ID {
	s.PushScope()

	stdoutType := s.DeclareType("std::io::Stdout", types.Item{Kind: types.KindStruct})
	s.Declare("stdout", stdoutType)

	unitType := s.Primitives().Unit()
	variadicSig := types.Item{
		Kind:       types.KindFunction,
		FuncArgs:   []types.FuncArg{{Type: stdoutType}, {Variadic: true}},
		FuncReturn: unitType,
	}

	s.DeclareBuiltinFunction("std::io::Stdout::print", variadicSig, printAll)
	s.DeclareBuiltinFunction("std::io::Stdout::println", variadicSig, printlnAll)

	return stdoutType
}

func printAll(s *scope.Stack, args []scope.Item, target memory.Block) ([]ops.Op, error) {
	var out []ops.Op
	for _, arg := range args[1:] {
		argOps, err := printArg(s, arg)
		if err != nil {
			return nil, err
		}
		out = append(out, argOps...)
	}
	return out, nil
}

func printlnAll(s *scope.Stack, args []scope.Item, target memory.Block) ([]ops.Op, error) {
	out, err := printAll(s, args, target)
	if err != nil {
		return nil, err
	}

	temp := s.Allocate(s.Primitives().U8())
	out = append(out, ops.TempAllocate(temp, []ops.Op{
		ops.Increment(temp.Position(), '\n'),
		ops.Write(temp),
	}, true))
	return out, nil
}

// printArg realizes one variadic print argument. An array of u8 is
// written directly (its cells already hold the bytes); a byte literal
// passed straight through a call (e.g. stdout.print("hi")) is materialized
// one byte at a time into a temporary cell; everything else is dispatched
// to whichever std::fmt::Display::print overload matches its type.
func printArg(s *scope.Stack, arg scope.Item) ([]ops.Op, error) {
	switch arg.Kind {
	case scope.KindArray:
		if arg.ArrayItem != s.Primitives().U8() {
			return nil, compileerr.New(compileerr.MismatchedTypes, "")
		}
		return []ops.Op{ops.Write(arg.Memory)}, nil

	case scope.KindByteLiteral:
		return printBytes(s, arg.ByteLiteralValue), nil

	case scope.KindConstant, scope.KindTypedBlock:
		printer, ok := resolvePrinter(s, arg.Type)
		if !ok {
			return nil, compileerr.New(compileerr.InvalidType, s.Types().Name(arg.Type))
		}
		return printer.Body(s, []scope.Item{arg}, memory.Block{})

	default:
		// A bare numeric literal has no type to resolve a printer for
		// without a declared target (e.g. a nested expression elsewhere
		// would give it one); printed directly it's ambiguous.
		return nil, compileerr.New(compileerr.IncorrectSizedExpression, "")
	}
}

// resolvePrinter finds the std::fmt::Display::print overload registered
// for exactly typeID, newest declaration first.
func resolvePrinter(s *scope.Stack, typeID types.ID) (scope.Item, bool) {
	for _, item := range s.Lookup(displayPrintName) {
		if item.Kind != scope.KindBuiltInFunction {
			continue
		}
		sig := s.Types().Get(item.Type)
		if sig.Kind != types.KindFunction || len(sig.FuncArgs) != 1 {
			continue
		}
		if sig.FuncArgs[0].Array || sig.FuncArgs[0].Type != typeID {
			continue
		}
		return item, true
	}
	return scope.Item{}, false
}

// printBytes writes a literal byte sequence one cell at a time using a
// single reused temporary cell.
func printBytes(s *scope.Stack, value []byte) []ops.Op {
	if len(value) == 0 {
		return nil
	}
	temp := s.Allocate(s.Primitives().U8())
	var body []ops.Op
	for _, b := range value {
		body = append(body,
			ops.Increment(temp.Position(), b),
			ops.Write(temp),
			ops.Decrement(temp.Position(), b),
		)
	}
	return []ops.Op{ops.TempAllocate(temp, body, false)}
}
