package ops

import (
	"testing"

	"github.com/sunjay/brain-sub000/internal/memory"
	"github.com/sunjay/brain-sub000/internal/testing/require"
)

func TestKindStringIsDefinedForEveryKind(t *testing.T) {
	for k := Kind(0); k < kindEnd; k++ {
		require.NotEqual(t, "", k.String())
	}
}

func TestConstructorsSetKind(t *testing.T) {
	alloc := memory.NewAllocator().Allocate(1)
	require.Equal(t, KindAllocate, Allocate(alloc).Kind)
	require.Equal(t, KindFree, Free(alloc).Kind)
	require.Equal(t, KindRead, Read(alloc).Kind)
	require.Equal(t, KindWrite, Write(alloc).Kind)
	require.Equal(t, KindZero, Zero(alloc).Kind)
	require.Equal(t, KindBlock, Block(nil).Kind)
}
