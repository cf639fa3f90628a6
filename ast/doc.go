// Package ast defines the AST node types the semantic analyzer consumes.
//
// The lexer and parser that produce these trees are out of scope (see
// spec.md §1): this package only fixes the shape external producers must
// target and the shape the analyzer/expr, analyzer/stmt, and
// analyzer/global packages walk. Nodes are grouped by grammar revision
// support: every node kind in this package exists in all three revisions
// (Alpha034, Alpha035, Alpha040) unless its doc comment says otherwise.
// Cd, MoveFiles, and DocString statements, and the richer Command modifier
// set, are Alpha040-only; Shebang is Alpha035+.
//
// Every node carries a [location.Span] so diagnostics and go-to-definition
// can point back into source text.
package ast
