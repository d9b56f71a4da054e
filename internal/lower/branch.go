package lower

import (
	"github.com/sunjay/brain-sub000/ast"
	"github.com/sunjay/brain-sub000/internal/ops"
	"github.com/sunjay/brain-sub000/internal/scope"
)

// branch lowers `if cond { body } else { otherwise }` used as an
// expression.
func branch(s *scope.Stack, b ast.BranchExpr, target Target) ([]ops.Op, error) {
	var elseBody []ops.Op
	var err error
	if b.Otherwise != nil {
		elseBody, err = Block(s, b.Otherwise, target)
		if err != nil {
			return nil, err
		}
	}
	return condition(s, *b.Condition, b.Body, elseBody, target)
}

// conditionGroup lowers an if/else-if/.../else chain by desugaring it
// right-to-left into nested ops.Branch calls: each branch's else-arm is
// the lowering of the remaining branches, bottoming out at the trailing
// default block (or nothing, if the chain has no final else). This
// mirrors how the surface grammar this was distilled from builds its
// ConditionGroup node (one condition/block pair per `if`/`else if`, plus
// an optional default), just expressed as nested binary branches instead
// of a single n-ary node, since internal/codegen only ever needs to emit
// one condition at a time.
func conditionGroup(s *scope.Stack, g ast.ConditionGroupExpr, target Target) ([]ops.Op, error) {
	return conditionChain(s, g.Branches, g.Default, target)
}

func conditionChain(s *scope.Stack, branches []ast.ConditionBranch, dflt []ast.Statement, target Target) ([]ops.Op, error) {
	head := branches[0]

	var elseBody []ops.Op
	var err error
	switch {
	case len(branches) > 1:
		elseBody, err = conditionChain(s, branches[1:], dflt, target)
	case dflt != nil:
		elseBody, err = Block(s, dflt, target)
	}
	if err != nil {
		return nil, err
	}

	return condition(s, head.Condition, head.Body, elseBody, target)
}

// condition evaluates cond once into a fresh bool cell, then emits an
// ops.Branch running body or the already-lowered elseBody. Unlike
// WhileLoop, the condition cell is not wrapped in a TempAllocate here,
// matching the surface language's own unbalanced treatment of loop
// conditions (re-tested every iteration) versus branch conditions
// (tested exactly once).
func condition(s *scope.Stack, cond ast.Expression, body []ast.Statement, elseBody []ops.Op, target Target) ([]ops.Op, error) {
	boolType := s.Primitives().Bool()
	condCell := s.Allocate(boolType)

	condOps, err := Expression(s, cond, TypedBlockTarget(boolType, condCell))
	if err != nil {
		return nil, err
	}

	ifBody, err := Block(s, body, target)
	if err != nil {
		return nil, err
	}

	result := append([]ops.Op{}, condOps...)
	result = append(result, ops.Branch(condCell.Position(), ifBody, elseBody))
	return result, nil
}
