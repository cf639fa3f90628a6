// Package scopestack implements the Amber analyzer's context-frame stack.
//
// Scope stacks are value types built by pushing immutable [Frame] values.
// Pushing never mutates the receiver; it returns a new [Stack] that shares
// the unchanged tail with its predecessor (structural sharing, the same
// persistent-data-structure discipline as the teacher's immutable package,
// applied here to a different shape: a singly linked frame chain rather
// than a wrapped slice). This lets the expression and statement analyzers
// pass a Stack by value into recursive calls without ever needing to pop
// on the caller's behalf — returning from a recursive call simply discards
// the callee's extended stack.
//
// A Stack is consulted, never mutated in place, to validate keyword usage
// (break/continue only in a loop, return only in a function, fail/
// propagate only in a function or the main block) and to decide whether
// the failable-handling obligation is currently suppressed by an unsafe or
// trust modifier.
package scopestack
