// Package global implements the top-level driver from spec.md §4.6: the
// per-item walk over a file's FunctionDefinition, Import, Main, and free
// statement items that wires the expression and statement analyzers
// together, manages the generics store's per-function snapshot/merge
// lifecycle, and resolves imports across file boundaries via the
// importgraph package.
//
// Grounded on the Rust reference's analyze_global_item in
// _examples/original_source/src/analysis/{alpha034,alpha035,alpha040}/mod.rs.
package global
