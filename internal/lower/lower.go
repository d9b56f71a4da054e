package lower

import (
	"github.com/sunjay/brain-sub000/ast"
	"github.com/sunjay/brain-sub000/internal/memory"
	"github.com/sunjay/brain-sub000/internal/ops"
	"github.com/sunjay/brain-sub000/internal/scope"
)

// Module lowers an entire program to Ops, evaluating its trailing
// expression (if any) into a throwaway Unit-typed target. This is the
// single entry point called by the brain root package.
func Module(s *scope.Stack, prog ast.Program) ([]ops.Op, error) {
	unitType := s.Primitives().Unit()
	return Block(s, prog.Statements, TypedBlockTarget(unitType, memory.Block{}))
}

// Block lowers a list of statements as a single lexical scope, wrapped in
// an ops.Block. The parser guarantees every block ends with an expression
// statement (inserting a synthetic UnitLiteral for blocks that would
// otherwise end in a semicolon); that trailing expression is lowered
// against target.
func Block(s *scope.Stack, stmts []ast.Statement, target Target) ([]ops.Op, error) {
	s.PushScope()
	defer s.PopScope()

	if len(stmts) == 0 {
		panic("lower: block has no statements; the parser did not fulfill its trailing-expression guarantee")
	}

	last := stmts[len(stmts)-1]
	if last.Expr == nil {
		panic("lower: block's last statement must be an expression")
	}

	var body []ops.Op
	for _, stmt := range stmts[:len(stmts)-1] {
		stmtOps, err := Statement(s, stmt)
		if err != nil {
			return nil, err
		}
		body = append(body, stmtOps...)
	}

	exprOps, err := Expression(s, last.Expr.Expr, target)
	if err != nil {
		return nil, err
	}
	body = append(body, exprOps...)

	return []ops.Op{ops.Block(body)}, nil
}

// Statement lowers a single non-trailing statement. Expression statements
// discard their result into a Unit-typed throwaway target, matching the
// surface language's "call for effect" idiom (e.g. stdout.print(...);).
func Statement(s *scope.Stack, stmt ast.Statement) ([]ops.Op, error) {
	switch {
	case stmt.Comment != nil:
		return nil, nil
	case stmt.Decl != nil:
		return Declaration(s, *stmt.Decl)
	case stmt.Assign != nil:
		return Assignment(s, *stmt.Assign)
	case stmt.While != nil:
		return WhileLoop(s, *stmt.While)
	case stmt.Expr != nil:
		unitType := s.Primitives().Unit()
		return Expression(s, stmt.Expr.Expr, TypedBlockTarget(unitType, memory.Block{}))
	default:
		panic("lower: empty ast.Statement")
	}
}
