package lower

import (
	"testing"

	"github.com/sunjay/brain-sub000/ast"
	"github.com/sunjay/brain-sub000/internal/memory"
	"github.com/sunjay/brain-sub000/internal/ops"
	"github.com/sunjay/brain-sub000/internal/scope"
	"github.com/sunjay/brain-sub000/internal/testing/require"
	"github.com/sunjay/brain-sub000/internal/types"
)

// testStack builds a minimal scope.Stack with bool and u8 primitives and a
// single From<{unsigned integer}> converter, standing in for the fuller
// definitions internal/prelude registers in the real compiler.
func testStack() *scope.Stack {
	s := scope.NewStack()

	boolType := s.DeclareType("bool", types.Item{Kind: types.KindPrimitive, Size: 1})
	s.RegisterPrimitive("bool", boolType)

	u8Type := s.DeclareType("u8", types.Item{Kind: types.KindPrimitive, Size: 1})
	s.RegisterPrimitive("u8", u8Type)

	converterSig := types.Item{
		Kind:       types.KindFunction,
		FuncArgs:   []types.FuncArg{{Type: u8Type, Array: true}},
		FuncReturn: u8Type,
	}
	s.DeclareBuiltinFunction("std::convert::From<{unsigned integer}>", converterSig, u8FromUnsigned)

	return s
}

func u8FromUnsigned(s *scope.Stack, args []scope.Item, target memory.Block) ([]ops.Op, error) {
	v := args[0].Number
	if v < 0 || v > 255 {
		panic("lower test: literal out of u8 range")
	}
	if v == 0 {
		return nil, nil
	}
	return []ops.Op{ops.Increment(target.Position(), byte(v))}, nil
}

func numberExpr(n int32) ast.Expression   { return ast.Expression{Number: &n} }
func identExpr(name string) ast.Expression { return ast.Expression{Identifier: &name} }
func unitStmt() ast.Statement {
	return ast.Statement{Expr: &ast.ExpressionStmt{Expr: ast.Expression{UnitLiteral: true}}}
}

func TestDeclarationWithNumberLiteral(t *testing.T) {
	s := testStack()
	expr := numberExpr(5)

	result, err := Declaration(s, ast.DeclarationStmt{
		Pattern: ast.Pattern{Identifier: "x"},
		Type:    ast.TypeDefinition{Name: strPtr("u8")},
		Expr:    &expr,
	})
	require.NoError(t, err)
	require.Len(t, result, 2)
	require.Equal(t, ops.KindAllocate, result[0].Kind)
	require.Equal(t, ops.KindIncrement, result[1].Kind)
	require.Equal(t, byte(5), result[1].Amount)
}

func TestDeclarationWithoutInitializerOnlyAllocates(t *testing.T) {
	s := testStack()

	result, err := Declaration(s, ast.DeclarationStmt{
		Pattern: ast.Pattern{Identifier: "x"},
		Type:    ast.TypeDefinition{Name: strPtr("u8")},
	})
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Equal(t, ops.KindAllocate, result[0].Kind)
}

func TestDeclarationUnresolvedTypeName(t *testing.T) {
	s := testStack()
	_, err := Declaration(s, ast.DeclarationStmt{
		Pattern: ast.Pattern{Identifier: "x"},
		Type:    ast.TypeDefinition{Name: strPtr("not_a_type")},
	})
	require.Error(t, err)
}

func TestAssignmentZeroesThenStores(t *testing.T) {
	s := testStack()
	u8Type, _ := lookupTypeID(s, "u8")
	mem := s.Declare("x", u8Type)

	expr := numberExpr(9)
	result, err := Assignment(s, ast.AssignmentStmt{LHS: "x", Expr: expr})
	require.NoError(t, err)
	require.Len(t, result, 2)
	require.Equal(t, ops.KindZero, result[0].Kind)
	require.Equal(t, mem.ID(), result[0].Mem.ID())
	require.Equal(t, ops.KindIncrement, result[1].Kind)
}

func TestAssignmentToConstantIsInvalidLeftHandSide(t *testing.T) {
	s := testStack()
	u8Type, _ := lookupTypeID(s, "u8")
	s.DeclareConstant("FIVE", u8Type, []byte{5})

	_, err := Assignment(s, ast.AssignmentStmt{LHS: "FIVE", Expr: numberExpr(1)})
	require.Error(t, err)
}

func TestAssignmentUnresolvedName(t *testing.T) {
	s := testStack()
	_, err := Assignment(s, ast.AssignmentStmt{LHS: "nope", Expr: numberExpr(1)})
	require.Error(t, err)
}

func TestWhileLoopProducesTempAllocateWrappingLoop(t *testing.T) {
	s := testStack()
	u8Type, _ := lookupTypeID(s, "u8")
	s.Declare("x", u8Type)

	boolType, _ := lookupTypeID(s, "bool")
	s.DeclareConstant("flag", boolType, []byte{1})

	result, err := WhileLoop(s, ast.WhileLoopStmt{
		Condition: identExpr("flag"),
		Body: []ast.Statement{
			{Assign: &ast.AssignmentStmt{LHS: "x", Expr: numberExpr(2)}},
			unitStmt(),
		},
	})
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Equal(t, ops.KindTempAllocate, result[0].Kind)
	require.True(t, result[0].ShouldZero)

	preamble := result[0].Body
	require.True(t, len(preamble) >= 1)
	last := preamble[len(preamble)-1]
	require.Equal(t, ops.KindLoop, last.Kind)
}

func TestBranchExpressionEvaluatesChosenArm(t *testing.T) {
	s := testStack()
	boolType, _ := lookupTypeID(s, "bool")
	s.DeclareConstant("cond", boolType, []byte{1})

	ifExpr := numberExpr(1)
	elseExpr := numberExpr(2)
	branchExpr := ast.Expression{
		Branch: &ast.BranchExpr{
			Condition: ptrExpr(identExpr("cond")),
			Body:      []ast.Statement{{Expr: &ast.ExpressionStmt{Expr: ifExpr}}},
			Otherwise: []ast.Statement{{Expr: &ast.ExpressionStmt{Expr: elseExpr}}},
		},
	}

	declExpr := branchExpr
	result, err := Declaration(s, ast.DeclarationStmt{
		Pattern: ast.Pattern{Identifier: "result"},
		Type:    ast.TypeDefinition{Name: strPtr("u8")},
		Expr:    &declExpr,
	})
	require.NoError(t, err)
	require.Len(t, result, 3) // Allocate, cond ops..., Branch
	require.Equal(t, ops.KindBranch, result[len(result)-1].Kind)
}

func TestConditionGroupDesugarsToNestedBranches(t *testing.T) {
	s := testStack()
	boolType, _ := lookupTypeID(s, "bool")
	s.DeclareConstant("a", boolType, []byte{1})
	s.DeclareConstant("b", boolType, []byte{0})

	group := ast.Expression{
		ConditionGroup: &ast.ConditionGroupExpr{
			Branches: []ast.ConditionBranch{
				{Condition: identExpr("a"), Body: []ast.Statement{{Expr: &ast.ExpressionStmt{Expr: numberExpr(1)}}}},
				{Condition: identExpr("b"), Body: []ast.Statement{{Expr: &ast.ExpressionStmt{Expr: numberExpr(2)}}}},
			},
			Default: []ast.Statement{{Expr: &ast.ExpressionStmt{Expr: numberExpr(3)}}},
		},
	}

	result, err := Declaration(s, ast.DeclarationStmt{
		Pattern: ast.Pattern{Identifier: "result"},
		Type:    ast.TypeDefinition{Name: strPtr("u8")},
		Expr:    &group,
	})
	require.NoError(t, err)

	outer := result[len(result)-1]
	require.Equal(t, ops.KindBranch, outer.Kind)

	// The outer branch's else-arm is the second condition's own
	// evaluation ops followed by a nested Branch: this is the
	// "a" vs "b-or-default" desugaring.
	require.True(t, len(outer.Else) >= 1)
	nested := outer.Else[len(outer.Else)-1]
	require.Equal(t, ops.KindBranch, nested.Kind)
}

func TestModuleLowersTrailingUnitExpression(t *testing.T) {
	s := testStack()
	prog := ast.Program{Statements: []ast.Statement{unitStmt()}}

	result, err := Module(s, prog)
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Equal(t, ops.KindBlock, result[0].Kind)
}

func TestBlockWithNoTrailingExpressionPanics(t *testing.T) {
	s := testStack()
	err := require.CapturePanic(func() {
		Block(s, []ast.Statement{{Comment: &ast.CommentStmt{Text: "only a comment"}}}, TypedBlockTarget(s.Primitives().Unit(), memory.Block{}))
	})
	require.Error(t, err)
}

func strPtr(s string) *string { return &s }
func ptrExpr(e ast.Expression) *ast.Expression { return &e }

func lookupTypeID(s *scope.Stack, name string) (types.ID, bool) {
	entries := s.LookupType(name)
	if len(entries) == 0 {
		return 0, false
	}
	return entries[0].ID, true
}
