package lower

import (
	"github.com/sunjay/brain-sub000/internal/compileerr"
	"github.com/sunjay/brain-sub000/internal/memory"
	"github.com/sunjay/brain-sub000/internal/ops"
	"github.com/sunjay/brain-sub000/internal/scope"
	"github.com/sunjay/brain-sub000/internal/types"
)

// storeIdentifier lowers a bare name reference against target, dispatching
// on what the name resolves to in scope.
func storeIdentifier(s *scope.Stack, name string, target Target) ([]ops.Op, error) {
	items := s.Lookup(name)
	if len(items) == 0 {
		return nil, compileerr.New(compileerr.UnresolvedName, name)
	}

	switch item := items[0]; item.Kind {
	case scope.KindConstant:
		if target.IsArray || item.Type != target.Type {
			return nil, mismatchedTypes(s, target, s.Types().Name(item.Type))
		}
		return incrementToValue(target.Memory, item.Bytes), nil

	case scope.KindNumericLiteral:
		return storeNumber(s, item.Number, target)

	case scope.KindByteLiteral:
		return nil, mismatchedTypesArray(target, s.Primitives().U8(), len(item.ByteLiteralValue))

	case scope.KindTypedBlock:
		if target.IsArray || item.Type != target.Type {
			return nil, mismatchedTypes(s, target, s.Types().Name(item.Type))
		}
		if item.Memory.Size() != target.Memory.Size() {
			panic("lower: typed block's memory size does not match its own type's required size")
		}
		return []ops.Op{ops.Copy(item.Memory.Position(), target.Memory.Position(), item.Memory.Size())}, nil

	case scope.KindArray:
		return nil, mismatchedTypesArray(target, item.ArrayItem, item.ArraySize)

	case scope.KindBuiltInFunction:
		// Referencing a function by name without calling it isn't a
		// value any target in this language can hold.
		return nil, compileerr.New(compileerr.InvalidType, name)

	default:
		panic("lower: unknown scope.Item kind")
	}
}

// storeIdentifierArray is storeIdentifier's counterpart for array targets:
// the only valid source is another array binding of identical shape.
func storeIdentifierArray(s *scope.Stack, name string, item types.ID, size int, target memory.Block) ([]ops.Op, error) {
	items := s.Lookup(name)
	if len(items) == 0 {
		return nil, compileerr.New(compileerr.UnresolvedName, name)
	}

	found := items[0]
	if found.Kind != scope.KindArray || found.ArrayItem != item || found.ArraySize != size {
		return nil, compileerr.Newf(compileerr.MismatchedTypes, name, "not an array[%d] of %s", size, s.Types().Name(item))
	}
	return []ops.Op{ops.Copy(found.Memory.Position(), target.Position(), found.Memory.Size())}, nil
}

func mismatchedTypesArray(target Target, foundItem types.ID, foundSize int) error {
	expected := "array"
	if !target.IsArray {
		expected = "non-array value"
	}
	return compileerr.Newf(compileerr.MismatchedTypes, expected, "found array[%d]", foundSize)
}
