package global

import (
	"github.com/amber-lang/amber-lsp-analyzer/analyzer/expr"
	"github.com/amber-lang/amber-lsp-analyzer/analyzer/stmt"
	"github.com/amber-lang/amber-lsp-analyzer/ast"
	"github.com/amber-lang/amber-lsp-analyzer/diag"
	"github.com/amber-lang/amber-lsp-analyzer/files"
	"github.com/amber-lang/amber-lsp-analyzer/importgraph"
	"github.com/amber-lang/amber-lsp-analyzer/location"
	"github.com/amber-lang/amber-lsp-analyzer/symboltable"
	"github.com/amber-lang/amber-lsp-analyzer/types"
)

// Resolver maps an import path literal to the analyzed contents of its
// target file. It owns path resolution — relative paths against the
// importing file's directory, and the bundled "std"/"std/..." namespace
// recognized by the stdlib package — plus whatever scheduling is required
// to guarantee the target has already been analyzed by the time Resolve
// returns. analyzer/global only consumes the result: the target's file
// identity (for cycle bookkeeping against a shared importgraph.Graph) and
// its symbol table (for PublicDefinitions lookups).
//
// A nil Resolver is valid for files with no Import items (e.g. isolated
// snippets); AnalyzeFile reports every Import it encounters as
// E_FILE_NOT_FOUND in that case.
type Resolver interface {
	Resolve(path string) (files.FileID, *symboltable.Table, error)
}

// Context bundles the statement analyzer's collaborators with the pieces
// the global driver alone needs: the file's own identity (for cycle
// bookkeeping), a shared import graph, and a Resolver for crossing file
// boundaries.
type Context struct {
	*stmt.Context

	File     files.FileID
	Version  files.Version
	Graph    *importgraph.Graph
	Resolver Resolver
}

// key returns this file version's importgraph key.
func (ctx *Context) key() importgraph.Key {
	return importgraph.Key{File: ctx.File, Version: ctx.Version}
}

// genericsScope identifies this file version's batch of allocated generic
// ids, for types.GenericsStore's FreshGeneric/Merge/Evict bookkeeping.
func (ctx *Context) genericsScope() types.ScopeKey {
	return types.ScopeKey{FileID: ctx.File.String(), Version: uint64(ctx.Version)}
}

// withGenerics returns a *stmt.Context sharing every collaborator with ctx
// except its generics store, which is replaced by generics. Used to scope
// a function body's inference to a snapshot (see analyzeFunctionDefinition)
// without disturbing ctx's own store mid-walk.
func (ctx *Context) withGenerics(generics *types.GenericsStore) *stmt.Context {
	exprCopy := *ctx.Context.Context
	exprCopy.Generics = generics
	return &stmt.Context{Context: &exprCopy, ScopeEnd: ctx.ScopeEnd}
}

// scopeSpanAfter builds the scope range a top-level declaration at span is
// visible in: from span's end to ctx.ScopeEnd. Mirrors analyzer/stmt's
// unexported helper of the same name; duplicated rather than exported
// across the package boundary for three lines of logic.
func scopeSpanAfter(scopeEnd int, span location.Span) location.Span {
	start := span.End
	end := location.Position{Line: start.Line, Column: start.Column, Byte: scopeEnd}
	return location.Span{Source: span.Source, Start: start, End: end}
}

// NewFileContext builds the Context for a fresh top-to-bottom walk of a
// whole file: an empty scope stack, a scope bound covering the entire file
// (no top-level construct in Amber narrows visibility below file scope),
// and the given collaborators.
func NewFileContext(
	file files.FileID,
	version files.Version,
	table *symboltable.Table,
	generics *types.GenericsStore,
	diags *diag.Collector,
	resolveRemote symboltable.RemoteResolver,
	graph *importgraph.Graph,
	resolver Resolver,
) *Context {
	exprCtx := &expr.Context{
		Table:         table,
		Generics:      generics,
		Diags:         diags,
		ResolveRemote: resolveRemote,
	}
	sc := &stmt.Context{Context: exprCtx, ScopeEnd: fileScopeEnd}
	ctx := &Context{Context: sc, File: file, Version: version, Graph: graph, Resolver: resolver}
	exprCtx.AnalyzeHandlerBlock = func(c *expr.Context, body []ast.Stmt) expr.HandlerOutcome {
		handlerCtx := &stmt.Context{Context: c, ScopeEnd: ctx.ScopeEnd}
		res := stmt.AnalyzeBody(handlerCtx, body)
		return expr.HandlerOutcome{PropagatesFailure: res.PropagatesFailure, EarlyReturnType: res.EarlyReturnType}
	}
	return ctx
}
