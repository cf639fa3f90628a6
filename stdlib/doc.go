// Package stdlib classifies import paths against the bundled standard
// library and supplies the synthetic "builtin" module's exported symbols.
//
// It deliberately does not parse or ship any standard-library source: the
// lexer, parser, and the actual bundled .ab files are out of scope for the
// analyzer (spec.md's Non-goals exclude both "the lexer and parser
// themselves" and "shipping the embedded stdlib to disk"). What remains in
// scope, and what this package provides, is the part the analyzer itself
// needs: recognizing which import paths refer to the bundled library
// ([IsStdlibPath], grounded on resolve/find_in_stdlib in
// _examples/original_source/src/stdlib.rs) and the fixed signature list
// every file implicitly imports via "import * from builtin" (spec.md §6),
// sourced from an embedded manifest instead of a parsed AST.
package stdlib
