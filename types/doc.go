// Package types implements the Amber type lattice and the generics store.
//
// This package sits in the core library tier alongside [scopestack] and
// [symboltable]. It defines the gradually-typed value lattice used
// throughout the semantic analyzer, and a process-wide store of unresolved
// generic type variables that the expression and statement analyzers
// refine as they walk a function body.
//
// # Type lattice
//
// [Type] is a closed sum: Any, Number, Boolean, Text, Null, Array(Type),
// Union([Type]), Generic(Id), Failable(Type), Error. Any is the top of the
// lattice; Error is a poison value that suppresses further diagnostics once
// produced. Failable marks an effectful computation whose completion may
// raise a recoverable failure; it is transparent to [Matches] but must be
// discharged through the obligation rules enforced by the analyzer
// packages, not by this package.
//
// # Generics store
//
// [GenericsStore] maps monotonically-allocated [Id] values to their current
// [Type] bound. A bound starts unconstrained (Any) and is refined via
// [GenericsStore.Constrain] as concrete argument types are observed; once
// [GenericsStore.MarkInferred] freezes an id, its bound no longer changes
// and [GenericsStore.Deref] substitutes the concrete type wherever the id
// appears. The store never widens a constraint once a stricter one has
// been accepted, and rejects any constraint that would introduce a cycle
// back to the same id.
package types
