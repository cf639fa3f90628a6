// Package files implements file identity, version tracking, and the
// 50-version retention policy described in spec.md §3 and §8.
//
// This package sits in the support tier: it depends only on the foundation
// tier ([location]) and has no knowledge of the type lattice, symbol
// table, or AST. [FileID] values identify files, and [Registry] tracks
// each file's current [Version] by FileID; when a file's version count grows
// past the retention window, [Registry.Advance] reports the versions that
// fell out of the window so that callers (the global analyzer) can evict
// the AST, symbol table, and generics-store state they own for those
// versions. Registry never retains or evicts that derived state itself —
// it only tracks identity and reports eviction candidates — because
// owning that cleanup directly would require files to import the core
// library tier, and identity tracking should not depend on what gets
// attached to an identity.
//
// Grounded on the teacher's two-tier Files cache design in
// _examples/original_source/{src,lsp/src}/files.rs: a path interner plus a
// per-file current-version map, with older versions evicted once the
// retention window is exceeded.
package files
