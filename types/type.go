package types

import (
	"fmt"
	"strings"
)

// Kind identifies which alternative of the Type sum a value holds.
type Kind int

const (
	KindAny Kind = iota
	KindNumber
	KindBoolean
	KindText
	KindNull
	KindArray
	KindUnion
	KindGeneric
	KindFailable
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindAny:
		return "Any"
	case KindNumber:
		return "Number"
	case KindBoolean:
		return "Boolean"
	case KindText:
		return "Text"
	case KindNull:
		return "Null"
	case KindArray:
		return "Array"
	case KindUnion:
		return "Union"
	case KindGeneric:
		return "Generic"
	case KindFailable:
		return "Failable"
	case KindError:
		return "Error"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Type is the Amber gradual type lattice: a closed sum of
// Any | Number | Boolean | Text | Null | Array(Type) | Union([Type]) |
// Generic(Id) | Failable(Type) | Error.
//
// Type is a value type with unexported fields; construct values with the
// package-level constructors (Any, NumberType, ArrayOf, MakeUnion, GenericOf,
// FailableOf) so the invariants below are always upheld:
//   - Union never contains duplicates and is never constructed with a
//     single element (use MakeUnion, which collapses to that element).
//   - Failable(Failable(T)) is always flattened to Failable(T).
type Type struct {
	kind    Kind
	elem    *Type  // Array element type, or Failable's wrapped type
	members []Type // Union branches, de-duplicated, order-preserving
	generic Id     // valid when kind == KindGeneric
}

// Any returns the top of the lattice; matches anything and is matched by anything.
func Any() Type { return Type{kind: KindAny} }

// NumberType returns the Number primitive type.
func NumberType() Type { return Type{kind: KindNumber} }

// BooleanType returns the Boolean primitive type.
func BooleanType() Type { return Type{kind: KindBoolean} }

// TextType returns the Text primitive type.
func TextType() Type { return Type{kind: KindText} }

// NullType returns the Null primitive type.
func NullType() Type { return Type{kind: KindNull} }

// ErrorType returns the poison type used to suppress cascading diagnostics.
// Error never unifies with anything except for error-suppression purposes.
func ErrorType() Type { return Type{kind: KindError} }

// ArrayOf returns Array(elem).
func ArrayOf(elem Type) Type {
	e := elem
	return Type{kind: KindArray, elem: &e}
}

// GenericOf returns Generic(id), an opaque handle into a GenericsStore.
func GenericOf(id Id) Type {
	return Type{kind: KindGeneric, generic: id}
}

// FailableOf returns Failable(inner), flattening Failable(Failable(T)) to
// Failable(T) per the lattice invariant.
func FailableOf(inner Type) Type {
	if inner.kind == KindFailable {
		return inner
	}
	i := inner
	return Type{kind: KindFailable, elem: &i}
}

// Kind reports which alternative this Type holds.
func (t Type) Kind() Kind { return t.kind }

// Elem returns the element type for Array and the wrapped type for
// Failable. ok is false for any other kind.
func (t Type) Elem() (Type, bool) {
	if t.elem == nil {
		return Type{}, false
	}
	return *t.elem, true
}

// Members returns the Union branches. ok is false for any other kind.
func (t Type) Members() ([]Type, bool) {
	if t.kind != KindUnion {
		return nil, false
	}
	return t.members, true
}

// GenericID returns the generic handle. ok is false for any other kind.
func (t Type) GenericID() (Id, bool) {
	if t.kind != KindGeneric {
		return 0, false
	}
	return t.generic, true
}

// IsFailable reports whether this type is Failable(_).
func (t Type) IsFailable() bool { return t.kind == KindFailable }

// Equal reports structural equality. Generic ids compare by identity, not
// by their current store binding; callers that need binding-aware
// comparison should Deref both sides through a GenericsStore first.
func (t Type) Equal(other Type) bool {
	if t.kind != other.kind {
		return false
	}
	switch t.kind {
	case KindArray, KindFailable:
		a, _ := t.Elem()
		b, _ := other.Elem()
		return a.Equal(b)
	case KindGeneric:
		return t.generic == other.generic
	case KindUnion:
		if len(t.members) != len(other.members) {
			return false
		}
		for i := range t.members {
			if !t.members[i].Equal(other.members[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// String renders the type using Amber's surface syntax where practical
// (e.g. "[T]" for arrays), falling back to the lattice's own names.
func (t Type) String() string {
	switch t.kind {
	case KindArray:
		elem, _ := t.Elem()
		return "[" + elem.String() + "]"
	case KindFailable:
		elem, _ := t.Elem()
		return elem.String() + "?"
	case KindGeneric:
		return fmt.Sprintf("Generic(%d)", t.generic)
	case KindUnion:
		parts := make([]string, len(t.members))
		for i, m := range t.members {
			parts[i] = m.String()
		}
		return strings.Join(parts, "|")
	default:
		return t.kind.String()
	}
}

// unionOf constructs a Union from already-deduplicated, already-flattened
// members without further validation. Internal helper for MakeUnion.
func unionOf(members []Type) Type {
	return Type{kind: KindUnion, members: members}
}

// referencesGeneric reports whether t transitively mentions id, used to
// guard GenericsStore.Constrain against constraint cycles.
func referencesGeneric(t Type, id Id) bool {
	switch t.kind {
	case KindGeneric:
		return t.generic == id
	case KindArray, KindFailable:
		elem, _ := t.Elem()
		return referencesGeneric(elem, id)
	case KindUnion:
		for _, m := range t.members {
			if referencesGeneric(m, id) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
