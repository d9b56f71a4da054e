package lower

import (
	"github.com/sunjay/brain-sub000/internal/compileerr"
	"github.com/sunjay/brain-sub000/internal/ops"
	"github.com/sunjay/brain-sub000/internal/scope"
)

// storeByteLiteral lowers a string or byte-array literal: only valid
// against an array-of-u8 target of exactly the literal's length.
func storeByteLiteral(s *scope.Stack, value []byte, target Target) ([]ops.Op, error) {
	u8 := s.Primitives().U8()

	if !target.IsArray {
		return nil, mismatchedTypes(s, target, "array of u8")
	}
	if target.ArrayItem != u8 || target.ArraySize != len(value) {
		return nil, compileerr.Newf(
			compileerr.MismatchedTypes,
			s.Types().Name(target.ArrayItem),
			"declared array[%d], found array[%d] of u8", target.ArraySize, len(value),
		)
	}

	return incrementToValue(target.Memory, value), nil
}
