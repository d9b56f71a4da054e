package lower

import (
	"github.com/sunjay/brain-sub000/ast"
	"github.com/sunjay/brain-sub000/internal/compileerr"
	"github.com/sunjay/brain-sub000/internal/memory"
	"github.com/sunjay/brain-sub000/internal/ops"
	"github.com/sunjay/brain-sub000/internal/scope"
	"github.com/sunjay/brain-sub000/internal/types"
)

// Declaration lowers a `let pattern: type = expr;` statement: the variable
// is always declared in scope before its initializer (if any) is lowered,
// so a self-referential initializer resolves to the new (zeroed) binding
// rather than failing to resolve at all.
func Declaration(s *scope.Stack, decl ast.DeclarationStmt) ([]ops.Op, error) {
	name := decl.Pattern.Identifier

	if decl.Type.Array != nil {
		return declareArray(s, name, *decl.Type.Array, decl.Expr)
	}
	return declareName(s, name, *decl.Type.Name, decl.Expr)
}

func declareName(s *scope.Stack, name, typeName string, expr *ast.Expression) ([]ops.Op, error) {
	typeID, err := resolveTypeID(s, typeName)
	if err != nil {
		return nil, err
	}
	mem := s.Declare(name, typeID)

	return declarationOps(mem, expr, func(e ast.Expression) ([]ops.Op, error) {
		return Expression(s, e, TypedBlockTarget(typeID, mem))
	})
}

func declareArray(s *scope.Stack, name string, arrType ast.ArrayTypeDefinition, expr *ast.Expression) ([]ops.Op, error) {
	size, err := inferArraySize(arrType.Size, expr, name)
	if err != nil {
		return nil, err
	}

	if arrType.Item.Array != nil {
		// Self-referential array-of-array item types aren't supported;
		// their required size can't be computed.
		return nil, compileerr.New(compileerr.UnsupportedArrayType, name)
	}

	itemType, err := resolveTypeID(s, *arrType.Item.Name)
	if err != nil {
		return nil, err
	}
	mem := s.DeclareArray(name, itemType, size)

	return declarationOps(mem, expr, func(e ast.Expression) ([]ops.Op, error) {
		return ExpressionArray(s, e, itemType, size, mem)
	})
}

// inferArraySize attempts to determine an array declaration's element
// count from, in order: a positive integer-literal size expression, or
// the length of a byte-literal or string-literal initializer.
func inferArraySize(sizeExpr *ast.Expression, expr *ast.Expression, name string) (int, error) {
	if sizeExpr != nil && sizeExpr.Number != nil && *sizeExpr.Number > 0 {
		return int(*sizeExpr.Number), nil
	}
	if expr != nil && expr.ByteLiteral != nil {
		return len(expr.ByteLiteral), nil
	}
	if expr != nil && expr.StringLiteral != nil {
		return len(*expr.StringLiteral), nil
	}
	if expr == nil {
		return 0, compileerr.New(compileerr.UnsupportedArrayType, name)
	}
	return 0, compileerr.New(compileerr.InvalidArrayLiteral, name)
}

func resolveTypeID(s *scope.Stack, name string) (types.ID, error) {
	entries := s.LookupType(name)
	if len(entries) == 0 {
		return 0, compileerr.New(compileerr.UnresolvedName, name)
	}
	return entries[0].ID, nil
}

// declarationOps always emits Allocate first (so the block is reserved in
// the memory layout even when there's no initializer), then the
// initializer's ops if one was given.
func declarationOps(mem memory.Block, expr *ast.Expression, generate func(ast.Expression) ([]ops.Op, error)) ([]ops.Op, error) {
	result := []ops.Op{ops.Allocate(mem)}
	if expr == nil {
		return result, nil
	}
	exprOps, err := generate(*expr)
	if err != nil {
		return nil, err
	}
	return append(result, exprOps...), nil
}
