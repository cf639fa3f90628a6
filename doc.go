// Package analyzer provides the multi-version semantic analyzer for the
// Amber shell-scripting language server.
//
// It resolves, type-checks, and indexes Amber source across three grammar
// revisions (alpha034, alpha035, alpha040), producing symbol tables,
// diagnostics, and cross-file import graphs suitable for driving editor
// tooling such as go-to-definition, hover, and completion.
//
// # Architecture Overview
//
// The module is organized into layers with strict dependency ordering:
//
//	Foundation tier (no internal dependencies):
//	  - location: Source positions, spans, and canonical paths
//	  - diag: Structured diagnostics with stable error codes
//
//	Core library tier:
//	  - types: The type lattice and generics store
//	  - scopestack: Immutable-by-push lexical scope frames
//	  - symboltable: Byte-range-keyed definitions, references, and exports
//	  - ast: Grammar-version-tagged syntax tree nodes
//
//	Analysis tier:
//	  - analyzer/expr: Expression analysis and type inference
//	  - analyzer/stmt: Statement analysis and control-flow obligations
//	  - analyzer/global: Whole-file and cross-file (import graph) analysis
//
//	Support tier:
//	  - files: Per-(FileId,Version) analysis cache and eviction
//	  - importgraph: Cross-file import resolution and cycle detection
//	  - stdlib: Embedded builtin-function manifest
//
// # Entry Points
//
// Analyzing a single file:
//
//	import "github.com/amber-lang/amber-lsp-analyzer/analyzer/global"
//
//	gctx := global.NewFileContext(fileID, version, table, generics, diags, resolveRemote, graph, resolver)
//	global.AnalyzeFile(gctx, file)
//	if diags.HasErrors() {
//	    // Semantic diagnostics: undefined symbols, type mismatches, etc.
//	}
//
// # Subpackages
//
// See the individual package documentation for detailed usage:
//
//   - [github.com/amber-lang/amber-lsp-analyzer/diag]: Structured diagnostics
//   - [github.com/amber-lang/amber-lsp-analyzer/location]: Source location tracking
//   - [github.com/amber-lang/amber-lsp-analyzer/types]: Type lattice and generics store
//   - [github.com/amber-lang/amber-lsp-analyzer/scopestack]: Lexical scope stack
//   - [github.com/amber-lang/amber-lsp-analyzer/symboltable]: Symbol table
//   - [github.com/amber-lang/amber-lsp-analyzer/ast]: Syntax tree node types
//   - [github.com/amber-lang/amber-lsp-analyzer/analyzer/expr]: Expression analyzer
//   - [github.com/amber-lang/amber-lsp-analyzer/analyzer/stmt]: Statement analyzer
//   - [github.com/amber-lang/amber-lsp-analyzer/analyzer/global]: Global/module analyzer
//   - [github.com/amber-lang/amber-lsp-analyzer/files]: File/version cache
//   - [github.com/amber-lang/amber-lsp-analyzer/importgraph]: Cross-file import resolution
//   - [github.com/amber-lang/amber-lsp-analyzer/stdlib]: Embedded builtin manifest
//   - [github.com/amber-lang/amber-lsp-analyzer/cmd/amber-analyzer]: CLI front-end
package analyzer
