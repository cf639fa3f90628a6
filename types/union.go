package types

// MakeUnion flattens nested Unions, removes duplicates preserving
// first-seen order, and collapses to the single element if only one
// remains. An empty list yields Any.
func MakeUnion(items []Type) Type {
	flat := make([]Type, 0, len(items))
	var flatten func(Type)
	flatten = func(t Type) {
		if members, ok := t.Members(); ok {
			for _, m := range members {
				flatten(m)
			}
			return
		}
		flat = append(flat, t)
	}
	for _, t := range items {
		flatten(t)
	}

	deduped := make([]Type, 0, len(flat))
	for _, t := range flat {
		dup := false
		for _, seen := range deduped {
			if seen.Equal(t) {
				dup = true
				break
			}
		}
		if !dup {
			deduped = append(deduped, t)
		}
	}

	switch len(deduped) {
	case 0:
		return Any()
	case 1:
		return deduped[0]
	default:
		return unionOf(deduped)
	}
}
