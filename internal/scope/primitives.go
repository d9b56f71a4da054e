package scope

import (
	"fmt"

	"github.com/sunjay/brain-sub000/internal/types"
)

// Primitives provides type-checked, read-only access to the TypeIds of the
// compiler's special primitive types. Registration happens once, early, and
// is checked for collisions at registration time; lookups panic on misuse
// since that always indicates a compiler bug, never a user error.
type Primitives struct {
	ids map[string]types.ID
}

var knownPrimitiveNames = map[string]bool{
	"unit":  true,
	"array": true,
	"bool":  true,
	"u8":    true,
}

func newPrimitives() Primitives {
	return Primitives{ids: make(map[string]types.ID, len(knownPrimitiveNames))}
}

// register associates name with id. Panics if name isn't a known primitive,
// if name was already registered, or if id collides with another
// primitive's id.
func (p *Primitives) register(name string, id types.ID) {
	if !knownPrimitiveNames[name] {
		panic(fmt.Sprintf("scope: attempt to register unknown primitive: %q", name))
	}
	if _, ok := p.ids[name]; ok {
		panic(fmt.Sprintf("scope: redefined %q primitive in scope", name))
	}
	for other, otherID := range p.ids {
		if otherID == id {
			panic(fmt.Sprintf("scope: type id %d is already registered to another primitive: %q", id, other))
		}
	}
	p.ids[name] = id
}

func (p *Primitives) get(name string) types.ID {
	id, ok := p.ids[name]
	if !ok {
		panic(fmt.Sprintf("scope: expected a type id to be defined for the primitive %q", name))
	}
	return id
}

func (p *Primitives) Unit() types.ID { return p.get("unit") }
func (p *Primitives) Array() types.ID { return p.get("array") }
func (p *Primitives) Bool() types.ID { return p.get("bool") }
func (p *Primitives) U8() types.ID { return p.get("u8") }
