// Package prelude populates a fresh scope.Stack with every declaration
// available in a Brain module without an explicit import: the bool, u8,
// and array primitives, and the stdin/stdout singletons (§4.4).
package prelude

import "github.com/sunjay/brain-sub000/internal/scope"

// displayPrintName is the flat built-in function name every printable
// type registers its printer under; stdout.print/println resolve it per
// argument by filtering scope.Stack.Lookup's matches against the
// argument's concrete type (see stdio.go).
const displayPrintName = "std::fmt::Display::print"

// Populate declares the prelude's types and built-in functions into s's
// current scope. s must be freshly built by scope.NewStack.
//
// The pushed scope is deliberately never popped: each define* below uses
// PushScope to simulate a private module, and Brain has no import
// mechanism of its own to later bring those names into a caller's scope,
// so the only way prelude names stay visible to every module is for this
// push to outlive Populate.
func Populate(s *scope.Stack) {
	s.PushScope()

	defineArray(s)

	boolType := defineBoolean(s)
	u8Type := defineU8(s)

	defineStdin(s, u8Type)
	defineStdout(s, boolType, u8Type)
}
