// Command brain compiles a Brain source file into Brainfuck and prints
// the result to stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sunjay/brain-sub000"
	"github.com/sunjay/brain-sub000/internal/optimize"
	"github.com/sunjay/brain-sub000/internal/parser"
)

func main() {
	os.Exit(doMain(os.Args[1:], os.Stdout, os.Stderr))
}

// doMain is separated out from main so it can be exercised by tests
// without touching the process's real stdout/stderr or exit code.
func doMain(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("brain", flag.ContinueOnError)
	fs.SetOutput(stderr)
	optLevel := fs.Int("opt", 0, "peephole optimization level: 0 (off), 1, or 2")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: brain [-opt N] <input-file>")
		return 1
	}

	src, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	prog, err := parser.Parse(string(src))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	level, err := levelFromInt(*optLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	out, err := brain.Compile(prog, brain.NewConfig().WithOptimization(level))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	fmt.Fprintln(stdout, out)
	return 0
}

func levelFromInt(n int) (optimize.Level, error) {
	switch n {
	case 0:
		return optimize.Off, nil
	case 1:
		return optimize.L1, nil
	case 2:
		return optimize.L2, nil
	default:
		return optimize.Off, fmt.Errorf("invalid -opt level %d: must be 0, 1, or 2", n)
	}
}
