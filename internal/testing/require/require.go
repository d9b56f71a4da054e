// Package require is a thin wrapper around testify/require, kept as a
// separate package so that test helpers specific to this repository (e.g.
// CapturePanic) live next to the assertions that use them instead of
// scattered across every _test.go file.
package require

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestingT is the subset of *testing.T that an assertion helper needs. The
// helpers below take *testing.T directly; none of them accepts a TestingT.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...interface{})
}

func Equal(t *testing.T, expected, actual interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	require.Equal(t, expected, actual, msgAndArgs...)
}

func NotEqual(t *testing.T, expected, actual interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	require.NotEqual(t, expected, actual, msgAndArgs...)
}

func NoError(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	require.NoError(t, err, msgAndArgs...)
}

func Error(t *testing.T, err error, msgAndArgs ...interface{}) {
	t.Helper()
	require.Error(t, err, msgAndArgs...)
}

func ErrorIs(t *testing.T, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	require.ErrorIs(t, err, target, msgAndArgs...)
}

func True(t *testing.T, value bool, msgAndArgs ...interface{}) {
	t.Helper()
	require.True(t, value, msgAndArgs...)
}

func False(t *testing.T, value bool, msgAndArgs ...interface{}) {
	t.Helper()
	require.False(t, value, msgAndArgs...)
}

func Nil(t *testing.T, object interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	require.Nil(t, object, msgAndArgs...)
}

func NotNil(t *testing.T, object interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	require.NotNil(t, object, msgAndArgs...)
}

func Len(t *testing.T, object interface{}, length int, msgAndArgs ...interface{}) {
	t.Helper()
	require.Len(t, object, length, msgAndArgs...)
}

func Contains(t *testing.T, s, contains interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	require.Contains(t, s, contains, msgAndArgs...)
}

// CapturePanic runs fn and converts a panic, if any, into an error. Returns
// nil if fn did not panic.
func CapturePanic(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			switch v := r.(type) {
			case error:
				err = v
			default:
				err = errorString{msg: toString(v)}
			}
		}
	}()
	fn()
	return
}

type errorString struct{ msg string }

func (e errorString) Error() string { return e.msg }

func toString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
