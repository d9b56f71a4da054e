package prelude

import (
	"github.com/sunjay/brain-sub000/internal/scope"
	"github.com/sunjay/brain-sub000/internal/types"
)

// defineArray registers the generic "array" marker type. Concrete array
// shapes are never looked up through this TypeId; a declaration like
// `let xs: [u8; 4]` resolves item/size straight from the declared element
// type and size (see internal/lower/declaration.go) and binds a
// scope.Item{Kind: KindArray} that carries its own item/size pair. This
// marker exists only so `array` has a registry entry to be the target of
// Primitives().Array(), matching the role Rust's ItemType::Array{item: None}
// placeholder played.
func defineArray(s *scope.Stack) types.ID {
	s.PushScope()

	arrayType := s.DeclareType("array", types.Item{Kind: types.KindArray})
	s.RegisterPrimitive("array", arrayType)

	return arrayType
}
