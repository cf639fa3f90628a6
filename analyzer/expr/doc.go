// Package expr implements the recursive expression analyzer from spec.md
// §4.4: a walk over [ast.Expr] nodes that produces an inferred [types.Type],
// whether the expression can propagate a failure, and (when a failure
// handler block embeds a return) an early-return type.
//
// Grounded on the per-node-kind rule table in spec.md §4.4 and the Rust
// reference's analyze_exp in
// _examples/original_source/src/analysis/{alpha034,alpha035,alpha040}/exp.rs:
// a single recursive function keyed on the node's syntactic kind, threading
// an expected type down for the "type-check at exit" step and a generics
// store for unification-style refinement.
//
// expr does not import the statement analyzer (analyzer/stmt), even though
// a function invocation's failure handler may be a block of statements:
// Context.AnalyzeHandlerBlock is a caller-supplied hook instead, so the
// dependency runs one way (analyzer/stmt depends on analyzer/expr, not the
// reverse) and analyzer/global wires the two together.
package expr
