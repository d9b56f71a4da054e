package brain_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	brain "github.com/sunjay/brain-sub000"
	"github.com/sunjay/brain-sub000/internal/bfvm"
	"github.com/sunjay/brain-sub000/internal/codegen"
	"github.com/sunjay/brain-sub000/internal/optimize"
	"github.com/sunjay/brain-sub000/internal/parser"
	"github.com/sunjay/brain-sub000/internal/testing/require"
)

func instructionsOf(s string) codegen.Instructions {
	out := make(codegen.Instructions, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = codegen.Instruction(s[i])
	}
	return out
}

// compileAndRun parses src, compiles it, and runs the result through the
// tape machine, returning everything written to stdout.
func compileAndRun(t *testing.T, src string, cfg *brain.Config) string {
	t.Helper()

	prog, err := parser.Parse(src)
	require.NoError(t, err)

	instrs, err := brain.Compile(prog, cfg)
	require.NoError(t, err)

	var stdout bytes.Buffer
	vm := bfvm.New(bfvm.WithStdout(&stdout))
	require.NoError(t, vm.Run(context.Background(), instrs))
	require.Equal(t, 0, vm.Head(), "the tape machine must return to cell 0 when a program finishes")

	return stdout.String()
}

// S1: let x: u8 = 3; allocates one cell and sets it to 3. There's nothing
// observable on stdout, so this asserts directly against the tape cell
// codegen placed it in (cell 0, the first and only declared binding).
func TestScenarioS1NumericLiteralDeclaration(t *testing.T) {
	prog, err := parser.Parse("let x: u8 = 3;")
	require.NoError(t, err)

	instrs, err := brain.Compile(prog, nil)
	require.NoError(t, err)

	vm := bfvm.New()
	require.NoError(t, vm.Run(context.Background(), instrs))
	require.Equal(t, byte(3), vm.Tape()[0])
	require.Equal(t, 0, vm.Head())
}

// S2: let s: [u8; 5] = "hello"; places each byte of the literal into its
// own cell, in order.
func TestScenarioS2ArrayLiteralDeclaration(t *testing.T) {
	prog, err := parser.Parse(`let s: [u8; 5] = "hello";`)
	require.NoError(t, err)

	instrs, err := brain.Compile(prog, nil)
	require.NoError(t, err)

	vm := bfvm.New()
	require.NoError(t, vm.Run(context.Background(), instrs))
	require.Equal(t, []byte("hello"), vm.Tape()[:5])
}

// S3: stdout.print("hi"); writes 'h' then 'i' using a scratch cell that's
// zero on entry and exit.
func TestScenarioS3PrintStringLiteral(t *testing.T) {
	out := compileAndRun(t, `stdout.print("hi");`, nil)
	require.Equal(t, "hi", out)
}

// S4: an if/else on a bool produces exactly one branch's output.
func TestScenarioS4BranchSelectsExactlyOneArm(t *testing.T) {
	outTrue := compileAndRun(t, `let b: bool = true; if b { stdout.print("A"); } else { stdout.print("B"); }`, nil)
	require.Equal(t, "A", outTrue)

	outFalse := compileAndRun(t, `let b: bool = false; if b { stdout.print("A"); } else { stdout.print("B"); }`, nil)
	require.Equal(t, "B", outFalse)
}

// A plain if/else, on both the true and false condition, must not hang:
// this is the scenario the off-by-one head bug in emitBranch broke, since
// it only surfaced when the condition was false at runtime.
func TestBranchFalseConditionDoesNotHang(t *testing.T) {
	out := compileAndRun(t, `let b: bool = false; if b { stdout.print("A"); }`, nil)
	require.Equal(t, "", out)
}

func TestBranchFalseConditionThenMoreCodeStaysOnTape(t *testing.T) {
	out := compileAndRun(t, `let b: bool = false; if b { stdout.print("X"); } stdout.print("after");`, nil)
	require.Equal(t, "after", out)
}

func TestElseIfChainPicksFirstMatchingBranch(t *testing.T) {
	src := func(a, b string) string {
		return `let a: bool = ` + a + `; let b: bool = ` + b + `;
			if a { stdout.print("A"); } else if b { stdout.print("B"); } else { stdout.print("C"); }`
	}

	require.Equal(t, "A", compileAndRun(t, src("true", "true"), nil))
	require.Equal(t, "A", compileAndRun(t, src("true", "false"), nil))
	require.Equal(t, "B", compileAndRun(t, src("false", "true"), nil))
	require.Equal(t, "C", compileAndRun(t, src("false", "false"), nil))
}

func TestElseIfChainWithoutTrailingElseRunsNothingWhenAllFalse(t *testing.T) {
	out := compileAndRun(t, `let a: bool = false; let b: bool = false;
		if a { stdout.print("A"); } else if b { stdout.print("B"); }`, nil)
	require.Equal(t, "", out)
}

// S5: while b { b = false; } with b initially true terminates after one
// iteration and leaves b at 0.
func TestScenarioS5WhileLoopTerminatesAndZeroesCondition(t *testing.T) {
	prog, err := parser.Parse(`let b: bool = true; while b { b = false; }`)
	require.NoError(t, err)

	instrs, err := brain.Compile(prog, nil)
	require.NoError(t, err)

	vm := bfvm.New()
	require.NoError(t, vm.Run(context.Background(), instrs))
	require.Equal(t, byte(0), vm.Tape()[0])
	require.Equal(t, 0, vm.Head())
}

// S6: optimizer levels collapse an instruction stream as described.
func TestScenarioS6OptimizerLevels(t *testing.T) {
	raw := instructionsOf("+-><.+-")
	require.Equal(t, ".", optimize.Run(raw, optimize.L1).String())

	allCancel := instructionsOf("+++")
	require.Equal(t, "", optimize.Run(allCancel, optimize.L2).String())
}

func TestCompileProducesBalancedBrackets(t *testing.T) {
	prog, err := parser.Parse(`let b: bool = true; if b { stdout.print("A"); } else { stdout.print("B"); }`)
	require.NoError(t, err)

	out, err := brain.Compile(prog, nil)
	require.NoError(t, err)

	depth := 0
	for _, c := range out {
		switch c {
		case '[':
			depth++
		case ']':
			depth--
		}
		require.True(t, depth >= 0)
	}
	require.Equal(t, 0, depth)
}

func TestCompileWithOptimizationStillProducesCorrectOutput(t *testing.T) {
	cfg := brain.NewConfig().WithOptimization(optimize.L2)
	out := compileAndRun(t, `stdout.print("hi");`, cfg)
	require.Equal(t, "hi", out)
}

func TestCompileRejectsUnresolvedName(t *testing.T) {
	prog, err := parser.Parse(`missing.print("hi");`)
	require.NoError(t, err)

	_, err = brain.Compile(prog, nil)
	require.Error(t, err)
}

func TestCompileRejectsOverflowingU8Literal(t *testing.T) {
	prog, err := parser.Parse("let x: u8 = 256;")
	require.NoError(t, err)

	_, err = brain.Compile(prog, nil)
	require.Error(t, err)
}

func TestCompileAcceptsMaximalU8Literal(t *testing.T) {
	prog, err := parser.Parse("let x: u8 = 255;")
	require.NoError(t, err)

	instrs, err := brain.Compile(prog, nil)
	require.NoError(t, err)

	vm := bfvm.New()
	require.NoError(t, vm.Run(context.Background(), instrs))
	require.Equal(t, byte(255), vm.Tape()[0])
}

func TestBoolDisplayPrintsZeroOrOneDigit(t *testing.T) {
	outTrue := compileAndRun(t, `let b: bool = true; stdout.print(b);`, nil)
	require.Equal(t, "1", outTrue)

	outFalse := compileAndRun(t, `let b: bool = false; stdout.print(b);`, nil)
	require.Equal(t, "0", outFalse)
}

func TestNotOperatorFlipsABoundVariable(t *testing.T) {
	out := compileAndRun(t, `let b: bool = true; let c: bool = !b; stdout.print(c);`, nil)
	require.Equal(t, "0", out)
}

func TestParseErrorPropagatesFromCompilePipeline(t *testing.T) {
	_, err := parser.Parse("let x: u8 = ")
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "parser:"))
}
