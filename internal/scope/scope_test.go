package scope

import (
	"testing"

	"github.com/sunjay/brain-sub000/internal/testing/require"
	"github.com/sunjay/brain-sub000/internal/types"
)

func TestNewStackDefinesUnitPrimitive(t *testing.T) {
	s := NewStack()
	require.Equal(t, types.KindUnit, s.Types().Get(s.Primitives().Unit()).Kind)
}

func TestMultipleDefinitionsShadow(t *testing.T) {
	s := NewStack()
	typeID := s.DeclareType("FooType", types.Item{Kind: types.KindPrimitive, Size: 1})
	require.Len(t, s.Lookup("foo"), 0)

	s.Declare("foo", typeID)
	require.Len(t, s.Lookup("foo"), 1)

	// Redeclaring in the same scope overwrites, not shadows.
	s.Declare("foo", typeID)
	require.Len(t, s.Lookup("foo"), 1)

	s.PushScope()
	s.Declare("foo", typeID)
	require.Len(t, s.Lookup("foo"), 2)

	s.Declare("foo", typeID)
	require.Len(t, s.Lookup("foo"), 2)

	s.PopScope()
	require.Len(t, s.Lookup("foo"), 1)
}

func TestDeclareArrayAllocatesContiguousCells(t *testing.T) {
	s := NewStack()
	u8 := s.DeclareType("u8", types.Item{Kind: types.KindPrimitive, Size: 1})
	mem := s.DeclareArray("buf", u8, 5)
	require.Equal(t, 5, mem.Size())
}

func TestDeclareConstantIsNotAMemoryBlock(t *testing.T) {
	s := NewStack()
	boolT := s.DeclareType("bool", types.Item{Kind: types.KindPrimitive, Size: 1})
	s.DeclareConstant("true", boolT, []byte{1})

	items := s.Lookup("true")
	require.Len(t, items, 1)
	require.Equal(t, KindConstant, items[0].Kind)
	require.Equal(t, []byte{1}, items[0].Bytes)
}
