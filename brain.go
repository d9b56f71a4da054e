// Package brain compiles a Brain program's AST into a Brainfuck
// instruction stream. It is the single public entry point wiring
// internal/scope, internal/prelude, internal/lower, internal/codegen, and
// internal/optimize together; internal/parser turns source text into the
// ast.Program this package consumes.
package brain

import (
	"github.com/sunjay/brain-sub000/ast"
	"github.com/sunjay/brain-sub000/internal/codegen"
	"github.com/sunjay/brain-sub000/internal/lower"
	"github.com/sunjay/brain-sub000/internal/optimize"
	"github.com/sunjay/brain-sub000/internal/prelude"
	"github.com/sunjay/brain-sub000/internal/scope"
)

// Config holds the compiler's optional settings. It is never constructed
// directly; start from NewConfig and chain With* calls, each of which
// returns a new, independent Config so a caller can safely branch off a
// shared base configuration.
type Config struct {
	optimization optimize.Level
}

// NewConfig returns the default configuration: no peephole optimization.
func NewConfig() *Config {
	return &Config{optimization: optimize.Off}
}

func (c *Config) clone() *Config {
	ret := *c
	return &ret
}

// WithOptimization sets the peephole optimizer level applied to the
// generated instruction stream before it's returned.
func (c *Config) WithOptimization(level optimize.Level) *Config {
	ret := c.clone()
	ret.optimization = level
	return ret
}

// Compile lowers prog through scope-resolution, code generation, and
// (if configured) peephole optimization, returning the resulting
// Brainfuck source. cfg may be nil, in which case NewConfig()'s defaults
// apply.
func Compile(prog ast.Program, cfg *Config) (string, error) {
	if cfg == nil {
		cfg = NewConfig()
	}

	s := scope.NewStack()
	prelude.Populate(s)

	body, err := lower.Module(s, prog)
	if err != nil {
		return "", err
	}

	instrs, err := codegen.Generate(s.Allocator(), body)
	if err != nil {
		return "", err
	}

	instrs = optimize.Run(instrs, cfg.optimization)
	return instrs.String(), nil
}
