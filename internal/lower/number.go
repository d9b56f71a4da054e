package lower

import (
	"fmt"

	"github.com/sunjay/brain-sub000/internal/compileerr"
	"github.com/sunjay/brain-sub000/internal/scope"
	"github.com/sunjay/brain-sub000/internal/types"

	"github.com/sunjay/brain-sub000/internal/ops"
)

// storeNumber lowers an integer literal by resolving it against a
// std::convert::From<{...integer}> built-in converter registered for the
// target type: the signed overload is tried first, then (only when value
// is non-negative) the unsigned overload, matching the surface language's
// literal-suffix-free numeric literals.
func storeNumber(s *scope.Stack, value int32, target Target) ([]ops.Op, error) {
	if target.IsArray {
		return nil, mismatchedTypes(s, target, "{integer}")
	}

	result, err := storeNumericLiteral(s, value, target, "{signed integer}")
	if err == nil {
		return result, nil
	}
	if value >= 0 {
		return storeNumericLiteral(s, value, target, "{unsigned integer}")
	}
	return nil, err
}

func storeNumericLiteral(s *scope.Stack, value int32, target Target, literalType string) ([]ops.Op, error) {
	converterName := fmt.Sprintf("std::convert::From<%s>", literalType)
	u8 := s.Primitives().U8()

	for _, item := range s.Lookup(converterName) {
		if item.Kind != scope.KindBuiltInFunction {
			continue
		}
		sig := s.Types().Get(item.Type)
		if sig.Kind != types.KindFunction {
			continue
		}
		if len(sig.FuncArgs) != 1 || !sig.FuncArgs[0].Array || sig.FuncArgs[0].Type != u8 {
			continue
		}
		if sig.FuncReturn != target.Type {
			continue
		}
		return item.Body(s, []scope.Item{{Kind: scope.KindNumericLiteral, Number: value}}, target.Memory)
	}

	return nil, compileerr.Newf(
		compileerr.MismatchedLiteral,
		s.Types().Name(target.Type),
		"no %s literal converter registered", literalType,
	)
}
