package types

// Matches reports whether a value of type given is acceptable where
// expected is required, under the Amber subtyping rule:
//
//   - Any matches anything either way.
//   - Error matches nothing (it silences further diagnostics at the call
//     site instead).
//   - A Generic on either side resolves to its current bound in store and
//     retries; an unbound (still Any) generic, or one with no store at
//     all, matches whatever it's compared against, same as Any.
//   - A Union on the given side requires every branch to match expected.
//   - A Union on the expected side requires some branch to match given.
//   - Array(a) and Array(b) recurse on their element types.
//   - Failable(a) matches b iff a matches b, and a matches Failable(b) iff
//     a matches b: Failable is transparent to compatibility checks. The
//     "must be handled" obligation is enforced by the analyzer, not here.
//   - Otherwise, structural equality.
//
// store may be nil, in which case every Generic type matches whatever it's
// compared against (there is nothing to resolve it to).
func Matches(store *GenericsStore, expected, given Type) bool {
	if expected.kind == KindAny || given.kind == KindAny {
		return true
	}
	if expected.kind == KindError || given.kind == KindError {
		return false
	}

	if expected.kind == KindGeneric {
		if resolved, ok := store.resolveGeneric(expected); ok {
			return Matches(store, resolved, given)
		}
		return true
	}
	if given.kind == KindGeneric {
		if resolved, ok := store.resolveGeneric(given); ok {
			return Matches(store, expected, resolved)
		}
		return true
	}

	if members, ok := given.Members(); ok {
		for _, m := range members {
			if !Matches(store, expected, m) {
				return false
			}
		}
		return true
	}
	if members, ok := expected.Members(); ok {
		for _, m := range members {
			if Matches(store, m, given) {
				return true
			}
		}
		return false
	}

	if expected.kind == KindArray && given.kind == KindArray {
		a, _ := expected.Elem()
		b, _ := given.Elem()
		return Matches(store, a, b)
	}

	if expected.kind == KindFailable {
		a, _ := expected.Elem()
		return Matches(store, a, given)
	}
	if given.kind == KindFailable {
		b, _ := given.Elem()
		return Matches(store, expected, b)
	}

	return expected.kind == given.kind
}

// resolveGeneric returns t's current bound in store, or ok == false when
// there is nothing useful to substitute: no store, an unconstrained bound
// (still Any), or a bound that is t's own id again. Any of those would
// make the caller recurse on the exact (store, t) pair it's already
// evaluating, so the caller instead treats an unresolved generic the same
// way it treats Any: matches whatever it is compared against.
//
// This is a single lookup via Bound, not the multi-hop substitution Deref
// performs for frozen (MarkInferred) generics — a not-yet-frozen generic's
// bound can itself still be narrowed later, so Matches only ever needs its
// current snapshot, not a fully-resolved chain.
func (s *GenericsStore) resolveGeneric(t Type) (Type, bool) {
	if s == nil {
		return Type{}, false
	}
	id, _ := t.GenericID()
	bound := s.Bound(id)
	if bound.kind == KindAny {
		return Type{}, false
	}
	if bid, ok := bound.GenericID(); ok && bid == id {
		return Type{}, false
	}
	return bound, true
}
