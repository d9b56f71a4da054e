// Package types implements the compiler's type registry: an append-only
// vector of (name, Item) pairs, where a type's ID is simply its index.
package types

import "fmt"

// ID indexes into a Registry. IDs are stable for the lifetime of a compile
// and are never reused or reassigned.
type ID int

// Kind discriminates the variants of Item.
type Kind int

const (
	KindUnit Kind = iota
	KindPrimitive
	KindStruct
	KindArray
	KindFunction
)

// FuncArg describes one formal parameter of a built-in function, resolved
// positionally (variadic only allowed as the last parameter).
type FuncArg struct {
	// Type is the expected argument type (or array element type, if Array).
	Type ID
	// Array indicates this parameter expects an array of Type rather than
	// a bare value of Type (e.g. stdin.read_exact's buffer argument).
	Array bool
	// Variadic indicates this is the final parameter and consumes any
	// number of remaining call arguments, each independently type-checked
	// by the callee's own emission body (e.g. stdout.print's args...).
	Variadic bool
}

// Item is the registered shape of one type.
type Item struct {
	Kind Kind

	// Primitive
	Size int

	// Array
	ArrayItem ID
	ArraySize int

	// Function
	FuncArgs   []FuncArg
	FuncReturn ID
}

// Registry is the compiler's immutable-once-registered vector of types.
type Registry struct {
	names []string
	items []Item
}

// NewRegistry returns a Registry pre-populated with the Unit type at ID 0,
// per spec: "ScopeStack::new() pre-registers the Unit type at id 0".
func NewRegistry() *Registry {
	r := &Registry{}
	r.names = append(r.names, "()")
	r.items = append(r.items, Item{Kind: KindUnit})
	return r
}

// Unit returns the well-known ID of the Unit type.
func (r *Registry) Unit() ID { return 0 }

// Declare appends a new type to the registry and returns its ID.
func (r *Registry) Declare(name string, item Item) ID {
	r.names = append(r.names, name)
	r.items = append(r.items, item)
	return ID(len(r.items) - 1)
}

// Name returns the name a type was declared under.
func (r *Registry) Name(id ID) string {
	return r.names[id]
}

// Get returns the registered shape of id.
func (r *Registry) Get(id ID) Item {
	return r.items[id]
}

// RequiredSize computes the number of tape cells needed to store a value
// of the given type.
func (r *Registry) RequiredSize(id ID) int {
	item := r.items[id]
	switch item.Kind {
	case KindUnit, KindStruct:
		// Structs in this registry are always zero-size singletons (e.g.
		// stdin/stdout); a struct with fields would need its own Kind.
		return 0
	case KindPrimitive:
		return item.Size
	case KindArray:
		return r.RequiredSize(item.ArrayItem) * item.ArraySize
	default:
		panic(fmt.Sprintf("types: RequiredSize called on type %q with no fixed size", r.names[id]))
	}
}
