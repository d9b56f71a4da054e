package lower

import (
	"github.com/sunjay/brain-sub000/ast"
	"github.com/sunjay/brain-sub000/internal/compileerr"
	"github.com/sunjay/brain-sub000/internal/ops"
	"github.com/sunjay/brain-sub000/internal/scope"
)

// Assignment lowers `lhs = expr;`. The target must already hold a value
// (a TypedBlock or Array binding); it is zeroed before the new expression
// is evaluated into it, since expression lowering only ever increments.
func Assignment(s *scope.Stack, a ast.AssignmentStmt) ([]ops.Op, error) {
	items := s.Lookup(a.LHS)
	if len(items) == 0 {
		return nil, compileerr.New(compileerr.UnresolvedName, a.LHS)
	}

	switch item := items[0]; item.Kind {
	case scope.KindTypedBlock:
		exprOps, err := Expression(s, a.Expr, TypedBlockTarget(item.Type, item.Memory))
		if err != nil {
			return nil, err
		}
		return append([]ops.Op{ops.Zero(item.Memory)}, exprOps...), nil

	case scope.KindArray:
		exprOps, err := ExpressionArray(s, a.Expr, item.ArrayItem, item.ArraySize, item.Memory)
		if err != nil {
			return nil, err
		}
		return append([]ops.Op{ops.Zero(item.Memory)}, exprOps...), nil

	default:
		return nil, compileerr.New(compileerr.InvalidLeftHandSide, a.LHS)
	}
}
