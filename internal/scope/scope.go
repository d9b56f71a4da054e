// Package scope implements the compiler's lexical scope stack and the
// type registry access it mediates: name resolution, per-scope
// declarations, and the built-in function bodies invoked during lowering.
package scope

import (
	"github.com/sunjay/brain-sub000/internal/memory"
	"github.com/sunjay/brain-sub000/internal/ops"
	"github.com/sunjay/brain-sub000/internal/types"
)

// ItemKind discriminates the variants of Item.
type ItemKind int

const (
	KindConstant ItemKind = iota
	KindNumericLiteral
	KindByteLiteral
	KindTypedBlock
	KindArray
	KindBuiltInFunction
)

// BuiltinFunc generates the Ops that realize a call to a built-in function
// with the given resolved arguments, storing the result in target.
type BuiltinFunc func(s *Stack, args []Item, target memory.Block) ([]ops.Op, error)

// Item is a single entry in a scope: one of Constant, NumericLiteral,
// ByteLiteral, TypedBlock, Array, or BuiltInFunction (see spec §3).
type Item struct {
	Kind ItemKind

	// Constant, TypedBlock, BuiltInFunction
	Type types.ID

	// Constant
	Bytes []byte

	// NumericLiteral
	Number int32

	// ByteLiteral
	ByteLiteralValue []byte

	// TypedBlock, Array
	Memory memory.Block

	// Array
	ArrayItem types.ID
	ArraySize int

	// BuiltInFunction
	Body BuiltinFunc
}

// TypeEntry is a single type-name entry in a scope (ScopeType::Type).
type TypeEntry struct {
	ID types.ID
}

type lexicalScope struct {
	types map[string]TypeEntry
	items map[string]Item
}

func newLexicalScope() *lexicalScope {
	return &lexicalScope{types: map[string]TypeEntry{}, items: map[string]Item{}}
}

// Stack is the scope stack owned end-to-end by one compile invocation,
// along with the allocator and type registry it mediates access to.
type Stack struct {
	scopes     []*lexicalScope
	alloc      *memory.Allocator
	registry   *types.Registry
	primitives Primitives
}

// NewStack returns a Stack with a single empty scope, a fresh allocator,
// and a type registry pre-populated with Unit at id 0 (registered as the
// "unit" primitive).
func NewStack() *Stack {
	s := &Stack{
		scopes:     []*lexicalScope{newLexicalScope()},
		alloc:      memory.NewAllocator(),
		registry:   types.NewRegistry(),
		primitives: newPrimitives(),
	}
	s.primitives.register("unit", s.registry.Unit())
	return s
}

// Types returns the type registry backing this scope stack.
func (s *Stack) Types() *types.Registry { return s.registry }

// Allocator returns the Allocator backing this scope stack's memory
// blocks, so a later pass (internal/codegen) can mint its own temporary
// blocks without ID collisions.
func (s *Stack) Allocator() *memory.Allocator { return s.alloc }

// Primitives returns read-only access to the special primitive TypeIds,
// e.g. Primitives().Bool().
func (s *Stack) Primitives() *Primitives { return &s.primitives }

// RegisterPrimitive associates a special role with an already-declared
// TypeId. Duplicate or colliding registration is a compiler bug (panics).
func (s *Stack) RegisterPrimitive(name string, id types.ID) {
	s.primitives.register(name, id)
}

// PushScope pushes a new, empty level of scope.
func (s *Stack) PushScope() {
	s.scopes = append(s.scopes, newLexicalScope())
}

// PopScope removes and discards the current (topmost) scope.
func (s *Stack) PopScope() {
	if len(s.scopes) == 0 {
		panic("scope: pop of empty scope stack")
	}
	s.scopes = s.scopes[:len(s.scopes)-1]
}

func (s *Stack) current() *lexicalScope {
	return s.scopes[len(s.scopes)-1]
}

// DeclareType registers a new type under name and returns its TypeId. Also
// inserts a ScopeType::Type entry into the current scope so the name can be
// resolved back to a type later.
func (s *Stack) DeclareType(name string, item types.Item) types.ID {
	id := s.registry.Declare(name, item)
	s.current().types[name] = TypeEntry{ID: id}
	return id
}

// DeclareConstant binds name to an inlined constant value in the current
// scope. Constants have no memory address; their bytes are copied wherever
// they're used.
func (s *Stack) DeclareConstant(name string, typeID types.ID, bytes []byte) {
	s.current().items[name] = Item{Kind: KindConstant, Type: typeID, Bytes: bytes}
}

// Declare allocates required_size(typeID) cells and binds name to them in
// the current scope.
func (s *Stack) Declare(name string, typeID types.ID) memory.Block {
	mem := s.Allocate(typeID)
	s.current().items[name] = Item{Kind: KindTypedBlock, Type: typeID, Memory: mem}
	return mem
}

// DeclareArray allocates size*required_size(item) contiguous cells and
// binds name to them as an array in the current scope.
func (s *Stack) DeclareArray(name string, item types.ID, size int) memory.Block {
	mem := s.AllocateArray(item, size)
	s.current().items[name] = Item{Kind: KindArray, ArrayItem: item, ArraySize: size, Memory: mem}
	return mem
}

// DeclareBuiltinFunction records a type entry for sig and an Item carrying
// the emission callback body, both bound to name in the current scope.
func (s *Stack) DeclareBuiltinFunction(name string, sig types.Item, body BuiltinFunc) types.ID {
	id := s.registry.Declare(name, sig)
	s.current().items[name] = Item{Kind: KindBuiltInFunction, Type: id, Body: body}
	return id
}

// Allocate reserves a block sized for typeID without binding it to a name.
func (s *Stack) Allocate(typeID types.ID) memory.Block {
	return s.alloc.Allocate(s.registry.RequiredSize(typeID))
}

// AllocateArray reserves a contiguous block sized for size elements of
// item, without binding it to a name.
func (s *Stack) AllocateArray(item types.ID, size int) memory.Block {
	return s.alloc.Allocate(s.registry.RequiredSize(item) * size)
}

// Lookup returns every Item bound to name across the scope stack, newest
// scope first, so callers can pick the first one whose shape matches.
func (s *Stack) Lookup(name string) []Item {
	var out []Item
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if it, ok := s.scopes[i].items[name]; ok {
			out = append(out, it)
		}
	}
	return out
}

// LookupType returns every TypeEntry bound to name across the scope stack,
// newest scope first.
func (s *Stack) LookupType(name string) []TypeEntry {
	var out []TypeEntry
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if t, ok := s.scopes[i].types[name]; ok {
			out = append(out, t)
		}
	}
	return out
}
