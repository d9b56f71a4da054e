package scope

import (
	"testing"

	"github.com/sunjay/brain-sub000/internal/testing/require"
)

func TestPrimitivesRegisterAndAccess(t *testing.T) {
	p := newPrimitives()
	p.register("unit", 22)
	p.register("array", 829)
	p.register("bool", 193)
	p.register("u8", 4)

	require.Equal(t, 22, int(p.Unit()))
	require.Equal(t, 829, int(p.Array()))
	require.Equal(t, 193, int(p.Bool()))
	require.Equal(t, 4, int(p.U8()))
}

func TestPrimitivesAccessWithoutRegistrationPanics(t *testing.T) {
	p := newPrimitives()
	err := require.CapturePanic(func() { p.Unit() })
	require.Error(t, err)
}

func TestPrimitivesRedefinedPanics(t *testing.T) {
	p := newPrimitives()
	p.register("unit", 0)
	err := require.CapturePanic(func() { p.register("unit", 0) })
	require.Error(t, err)
}

func TestPrimitivesTypeCollisionPanics(t *testing.T) {
	p := newPrimitives()
	p.register("unit", 0)
	err := require.CapturePanic(func() { p.register("array", 0) })
	require.Error(t, err)
}

func TestPrimitivesUnknownNamePanics(t *testing.T) {
	p := newPrimitives()
	err := require.CapturePanic(func() { p.register("foo", 0) })
	require.Error(t, err)
}
