package types

import (
	"fmt"
	"strings"
)

// Parse parses Amber's surface type syntax — "Num", "Bool", "Text", "Null",
// "Any", a trailing "?" for Failable, and "[T]" for Array — into a Type.
//
// Parse only recognizes concrete surface types. Amber has no explicit
// generic-type-parameter syntax; an untyped parameter or declaration is
// instead represented by the declaration's absence, and the caller (the
// global/statement analyzer) allocates a fresh GenericsStore id for it. An
// unrecognized identifier here is therefore always an error, never an
// implicit generic.
func Parse(name string) (Type, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Any(), nil
	}
	if strings.HasSuffix(name, "?") {
		inner, err := Parse(strings.TrimSuffix(name, "?"))
		if err != nil {
			return Type{}, err
		}
		return FailableOf(inner), nil
	}
	if strings.HasPrefix(name, "[") && strings.HasSuffix(name, "]") {
		elem, err := Parse(name[1 : len(name)-1])
		if err != nil {
			return Type{}, err
		}
		return ArrayOf(elem), nil
	}

	switch name {
	case "Any":
		return Any(), nil
	case "Num":
		return NumberType(), nil
	case "Bool":
		return BooleanType(), nil
	case "Text":
		return TextType(), nil
	case "Null":
		return NullType(), nil
	default:
		return Type{}, fmt.Errorf("types: unrecognized type name %q", name)
	}
}
