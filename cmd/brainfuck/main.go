// Command brainfuck interprets a Brainfuck source file against the
// bfvm tape machine.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sunjay/brain-sub000/internal/bfvm"
)

func main() {
	os.Exit(doMain(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// doMain is separated out from main so it can be exercised by tests
// without touching the process's real stdio or exit code.
func doMain(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("brainfuck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	debug := fs.Bool("debug", false, "trace each instruction's head and cell value to stderr")
	delay := fs.Int("delay", 0, "milliseconds to pause between instructions")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: brainfuck [-debug] [-delay N] <input-file>")
		return 1
	}

	src, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	opts := []bfvm.Option{bfvm.WithStdin(stdin), bfvm.WithStdout(stdout)}
	if *debug || *delay > 0 {
		opts = append(opts, bfvm.WithStep(stepHook(stderr, *debug, *delay)))
	}

	vm := bfvm.New(opts...)
	if err := vm.Run(context.Background(), string(src)); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

// stepHook traces instruction execution to stderr when debug is set and
// paces execution by delayMillis between instructions when positive.
func stepHook(stderr io.Writer, debug bool, delayMillis int) bfvm.StepFunc {
	return func(ip int, instr byte, head int, cell byte) {
		if debug {
			fmt.Fprintf(stderr, "ip=%d instr=%c head=%d cell=%d\n", ip, instr, head, cell)
		}
		if delayMillis > 0 {
			time.Sleep(time.Duration(delayMillis) * time.Millisecond)
		}
	}
}
