// Package compileerr defines the single error vocabulary shared by every
// compiler pass (internal/lower, internal/codegen, and the brain root
// package that wires them together), so a caller can switch on Kind
// regardless of which pass produced the failure.
package compileerr

import "fmt"

// Kind discriminates every user-reportable failure the compiler can
// produce (see spec §7).
type Kind int

const (
	// UnresolvedName: identifier lookup empty in any enclosing scope.
	UnresolvedName Kind = iota
	// InvalidType: type-def identifier does not resolve to a declared type.
	InvalidType
	// MismatchedTypes: declared/target type does not match the inferred
	// expression type.
	MismatchedTypes
	// MismatchedLiteral: a numeric literal cannot be converted to the
	// target type (no matching From<{...integer}> converter).
	MismatchedLiteral
	// OverflowingLiteral: |value| exceeds the target type's range.
	OverflowingLiteral
	// InvalidLeftHandSide: assignment to a constant, literal, or built-in
	// function name.
	InvalidLeftHandSide
	// UnsupportedArrayType: array size is not a positive integer literal
	// and could not be inferred from an initializer.
	UnsupportedArrayType
	// InvalidArrayLiteral: initializer shape is incompatible with the
	// declared array type.
	InvalidArrayLiteral
	// ConditionSizeInvalid: a condition's type is not bool (size 1).
	ConditionSizeInvalid
	// LoopStringLiteralUnsupported: a while/if condition is a string
	// literal.
	LoopStringLiteralUnsupported
	// IllegalRedeclaration: a name was declared twice in the same scope
	// in a context where shadowing isn't allowed.
	IllegalRedeclaration
	// SelfAssignment: an assignment's right-hand side refers to its own
	// left-hand side in a way the compiler cannot safely evaluate.
	SelfAssignment
	// DeclaredZeroSize: a declaration's type requires zero cells where a
	// nonzero size is required.
	DeclaredZeroSize
	// DeclaredIncorrectSize: a declaration's inferred and annotated sizes
	// disagree.
	DeclaredIncorrectSize
	// IncorrectSizedExpression: an expression's size does not match what
	// its target memory block requires.
	IncorrectSizedExpression
	// UnspecifiedInputSizeUnsupported: a built-in I/O call needs a
	// statically known buffer size but none was given.
	UnspecifiedInputSizeUnsupported
	// LayoutConflict: a Branch's two-consecutive-cells invariant could
	// not be satisfied by Layout.
	LayoutConflict
)

func (k Kind) String() string {
	switch k {
	case UnresolvedName:
		return "UnresolvedName"
	case InvalidType:
		return "InvalidType"
	case MismatchedTypes:
		return "MismatchedTypes"
	case MismatchedLiteral:
		return "MismatchedLiteral"
	case OverflowingLiteral:
		return "OverflowingLiteral"
	case InvalidLeftHandSide:
		return "InvalidLeftHandSide"
	case UnsupportedArrayType:
		return "UnsupportedArrayType"
	case InvalidArrayLiteral:
		return "InvalidArrayLiteral"
	case ConditionSizeInvalid:
		return "ConditionSizeInvalid"
	case LoopStringLiteralUnsupported:
		return "LoopStringLiteralUnsupported"
	case IllegalRedeclaration:
		return "IllegalRedeclaration"
	case SelfAssignment:
		return "SelfAssignment"
	case DeclaredZeroSize:
		return "DeclaredZeroSize"
	case DeclaredIncorrectSize:
		return "DeclaredIncorrectSize"
	case IncorrectSizedExpression:
		return "IncorrectSizedExpression"
	case UnspecifiedInputSizeUnsupported:
		return "UnspecifiedInputSizeUnsupported"
	case LayoutConflict:
		return "LayoutConflict"
	default:
		return "<unknown error kind>"
	}
}

// Error is the concrete error type returned by every compiler pass. Name
// carries whatever identifier, type name, or field name the failure is
// about (empty when not applicable); Detail carries any further free-form
// context (e.g. the literal type tried, or the conflicting sizes).
type Error struct {
	Kind   Kind
	Name   string
	Detail string
}

func (e *Error) Error() string {
	switch {
	case e.Name != "" && e.Detail != "":
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Name, e.Detail)
	case e.Name != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Name)
	case e.Detail != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	default:
		return e.Kind.String()
	}
}

// New constructs an Error with no extra detail.
func New(kind Kind, name string) *Error {
	return &Error{Kind: kind, Name: name}
}

// Newf constructs an Error with a formatted Detail.
func Newf(kind Kind, name, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Name: name, Detail: fmt.Sprintf(format, args...)}
}
