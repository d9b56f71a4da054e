package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sunjay/brain-sub000/internal/testing/require"
)

func writeTempSource(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.brain")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestDoMainCompilesAndPrintsInstructions(t *testing.T) {
	path := writeTempSource(t, "let x: u8 = 3;")

	var stdout, stderr bytes.Buffer
	code := doMain([]string{path}, &stdout, &stderr)
	require.Equal(t, 0, code)
	require.Equal(t, "+++\n", stdout.String())
}

func TestDoMainWithOptimizationFlag(t *testing.T) {
	path := writeTempSource(t, `stdout.print("hi");`)

	var stdout, stderr bytes.Buffer
	code := doMain([]string{"-opt", "2", path}, &stdout, &stderr)
	require.Equal(t, 0, code)
	require.NotEqual(t, "", stdout.String())
}

func TestDoMainReportsMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := doMain([]string{filepath.Join(t.TempDir(), "missing.brain")}, &stdout, &stderr)
	require.Equal(t, 1, code)
	require.NotEqual(t, "", stderr.String())
}

func TestDoMainReportsSyntaxError(t *testing.T) {
	path := writeTempSource(t, "let x: u8 = ")

	var stdout, stderr bytes.Buffer
	code := doMain([]string{path}, &stdout, &stderr)
	require.Equal(t, 1, code)
	require.NotEqual(t, "", stderr.String())
}

func TestDoMainRequiresExactlyOneArg(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := doMain(nil, &stdout, &stderr)
	require.Equal(t, 1, code)
}
