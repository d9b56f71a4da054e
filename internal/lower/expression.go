package lower

import (
	"github.com/sunjay/brain-sub000/ast"
	"github.com/sunjay/brain-sub000/internal/compileerr"
	"github.com/sunjay/brain-sub000/internal/memory"
	"github.com/sunjay/brain-sub000/internal/ops"
	"github.com/sunjay/brain-sub000/internal/scope"
	"github.com/sunjay/brain-sub000/internal/types"
)

// Expression lowers expr, storing its result into target. target's memory
// is assumed zero on entry, so every case below only ever emits
// incrementing ops (Increment, Copy onto zeroed cells, Branch between
// zeroed arms).
func Expression(s *scope.Stack, expr ast.Expression, target Target) ([]ops.Op, error) {
	switch {
	case expr.UnitLiteral:
		return nil, nil
	case expr.StringLiteral != nil:
		return storeByteLiteral(s, []byte(*expr.StringLiteral), target)
	case expr.ByteLiteral != nil:
		return storeByteLiteral(s, expr.ByteLiteral, target)
	case expr.Number != nil:
		return storeNumber(s, *expr.Number, target)
	case expr.Identifier != nil:
		return storeIdentifier(s, *expr.Identifier, target)
	case expr.Call != nil:
		return call(s, *expr.Call, target)
	case expr.Branch != nil:
		return branch(s, *expr.Branch, target)
	case expr.ConditionGroup != nil:
		return conditionGroup(s, *expr.ConditionGroup, target)
	case expr.Access != nil:
		return nil, compileerr.New(compileerr.InvalidType, expr.Access.Field)
	default:
		panic("lower: empty ast.Expression")
	}
}

// ExpressionArray is Expression's counterpart for array-shaped targets:
// only the expression shapes that can plausibly produce an array value
// are handled (byte/string literals, and an identifier bound to a
// same-shaped array).
func ExpressionArray(s *scope.Stack, expr ast.Expression, item types.ID, size int, mem memory.Block) ([]ops.Op, error) {
	switch {
	case expr.ByteLiteral != nil:
		return storeByteLiteral(s, expr.ByteLiteral, ArrayTargetOf(item, size, mem))
	case expr.StringLiteral != nil:
		return storeByteLiteral(s, []byte(*expr.StringLiteral), ArrayTargetOf(item, size, mem))
	case expr.Identifier != nil:
		return storeIdentifierArray(s, *expr.Identifier, item, size, mem)
	default:
		return nil, compileerr.New(compileerr.InvalidArrayLiteral, "")
	}
}

func mismatchedTypes(s *scope.Stack, target Target, foundName string) error {
	expectedName := "array"
	if !target.IsArray {
		expectedName = s.Types().Name(target.Type)
	}
	return compileerr.Newf(compileerr.MismatchedTypes, expectedName, "found %s", foundName)
}

// incrementToValue emits one Increment per nonzero byte of value, in
// order, assuming mem starts at all zeros.
func incrementToValue(mem memory.Block, value []byte) []ops.Op {
	var out []ops.Op
	for i, b := range value {
		if b == 0 {
			continue
		}
		out = append(out, ops.Increment(mem.PositionAt(i), b))
	}
	return out
}
