package lower

import (
	"github.com/sunjay/brain-sub000/ast"
	"github.com/sunjay/brain-sub000/internal/memory"
	"github.com/sunjay/brain-sub000/internal/ops"
	"github.com/sunjay/brain-sub000/internal/scope"
)

// WhileLoop lowers `while cond { body }`. The condition cell is a
// TempAllocate'd bool: it is evaluated once before the loop and once more
// at the end of every iteration's body, since the BF loop primitive only
// tests its condition cell, it never re-evaluates an expression.
func WhileLoop(s *scope.Stack, w ast.WhileLoopStmt) ([]ops.Op, error) {
	unitType := s.Primitives().Unit()
	boolType := s.Primitives().Bool()
	condMem := s.Allocate(boolType)

	condOps, err := Expression(s, w.Condition, TypedBlockTarget(boolType, condMem))
	if err != nil {
		return nil, err
	}

	loopBody, err := Block(s, w.Body, TypedBlockTarget(unitType, memory.Block{}))
	if err != nil {
		return nil, err
	}

	body := append([]ops.Op{}, loopBody...)
	body = append(body, ops.Zero(condMem))
	body = append(body, copyOps(condOps)...)

	preamble := append([]ops.Op{}, condOps...)
	preamble = append(preamble, ops.Loop(condMem.Position(), body))

	return []ops.Op{ops.TempAllocate(condMem, preamble, true)}, nil
}

func copyOps(src []ops.Op) []ops.Op {
	return append([]ops.Op(nil), src...)
}
