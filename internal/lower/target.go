// Package lower implements the AST → Ops lowering pass: it walks a typed
// ast.Program, resolving names and literals against a scope.Stack, and
// produces the Ops tree (internal/ops) that internal/codegen turns into
// instructions.
package lower

import (
	"github.com/sunjay/brain-sub000/internal/memory"
	"github.com/sunjay/brain-sub000/internal/types"
)

// Target names where an expression's evaluated result must be stored. The
// target memory is always assumed zero on entry; expression lowering only
// ever increments cells, never overwrites destructively (see ops.Increment).
type Target struct {
	IsArray   bool
	Type      types.ID // meaningful when !IsArray
	ArrayItem types.ID // meaningful when IsArray
	ArraySize int      // meaningful when IsArray
	Memory    memory.Block
}

// TypedBlockTarget names mem as the destination for a single value of
// type t.
func TypedBlockTarget(t types.ID, mem memory.Block) Target {
	return Target{Type: t, Memory: mem}
}

// ArrayTargetOf names mem as the destination for an array of size elements
// of item.
func ArrayTargetOf(item types.ID, size int, mem memory.Block) Target {
	return Target{IsArray: true, ArrayItem: item, ArraySize: size, Memory: mem}
}
