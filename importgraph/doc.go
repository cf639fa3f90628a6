// Package importgraph tracks which files import which other files and
// resolves import cycles.
//
// Grounded on the dependency bookkeeping in
// _examples/original_source/lsp/src/files.rs (file_dependencies,
// is_depending_on, get_files_dependant_on, add_file_dependency), reworked
// per the redesign called for in spec.md. [Graph] records import edges and
// exposes an explicit work queue of [Key] values tagged [Pending] or [Done]
// ([Graph.Enqueue], [Graph.Dequeue], [Graph.MarkDone]). The global analyzer
// does not drive that queue: it records each import with
// [Graph.AddDependency], which rejects an edge that would close a cycle.
// Cycle checks walk the recorded edges depth-first with a visited set.
package importgraph
