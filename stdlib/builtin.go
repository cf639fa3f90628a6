package stdlib

// BuiltinScope returns the synthetic "builtin" module's exported functions
// indexed by name, ready to seed the public_definitions every non-builtin
// file implicitly imports (spec.md §6: "a synthetic import * from
// 'builtin' is prepended so identifiers from the built-in module are
// always in scope").
func BuiltinScope() (map[string]Function, error) {
	fns, err := Builtins()
	if err != nil {
		return nil, err
	}

	scope := make(map[string]Function, len(fns))
	for _, fn := range fns {
		if fn.Public {
			scope[fn.Name] = fn
		}
	}
	return scope, nil
}
