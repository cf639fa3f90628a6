package types

import "sync/atomic"

// Id is an opaque handle into a GenericsStore representing an as-yet-
// unresolved type parameter.
type Id uint64

// idCounter allocates Ids monotonically across all stores in the process,
// mirroring the single global atomic counter described in the concurrency
// model (ordering via release/acquire semantics through sync/atomic).
var idCounter atomic.Uint64

func nextID() Id {
	return Id(idCounter.Add(1))
}
