package global

import (
	"errors"
	"fmt"

	"github.com/amber-lang/amber-lsp-analyzer/ast"
	"github.com/amber-lang/amber-lsp-analyzer/diag"
	"github.com/amber-lang/amber-lsp-analyzer/importgraph"
	"github.com/amber-lang/amber-lsp-analyzer/location"
	"github.com/amber-lang/amber-lsp-analyzer/stdlib"
	"github.com/amber-lang/amber-lsp-analyzer/symboltable"
	"github.com/amber-lang/amber-lsp-analyzer/types"
)

// stdlibScope loads the embedded builtin manifest once per call; errors
// are swallowed by the caller (importBuiltins), which simply leaves the
// builtin names unresolved rather than failing the whole file — a broken
// manifest is a packaging defect, not something a single source file's
// diagnostics should report.
func stdlibScope() (map[string]stdlib.Function, error) {
	return stdlib.BuiltinScope()
}

// analyzeImport implements spec.md §4.6's Import step: resolve the path to
// a target file via ctx.Resolver, record the path literal itself as a
// reference-able symbol, guard against import cycles through the shared
// graph, and then pull either every public definition (ImportAll) or a
// named subset (ImportSpecific) into this file's own scope.
func analyzeImport(ctx *Context, item ast.GlobalItem) {
	recordImportPath(ctx, item)

	if ctx.Resolver == nil {
		ctx.Diags.Collect(diag.NewIssue(diag.Error, diag.E_FILE_NOT_FOUND, "File doesn't exist").
			WithSpan(item.Span()).
			Build())
		return
	}

	targetFile, targetTable, err := ctx.Resolver.Resolve(item.ImportPath())
	if err != nil {
		ctx.Diags.Collect(diag.NewIssue(diag.Error, diag.E_FILE_NOT_FOUND, "File doesn't exist").
			WithSpan(item.Span()).
			Build())
		return
	}

	if err := ctx.Graph.AddDependency(ctx.key(), targetFile); err != nil {
		if errors.Is(err, importgraph.ErrImportCycle) {
			ctx.Diags.Collect(diag.NewIssue(diag.Error, diag.E_IMPORT_CYCLE, "Circular dependency").
				WithSpan(item.Span()).
				Build())
		}
		return
	}

	scope := scopeSpanAfter(ctx.ScopeEnd, item.Span())

	switch item.ImportKind() {
	case ast.ImportAll:
		importAll(ctx, item, targetTable, scope)
	case ast.ImportSpecific:
		importSpecific(ctx, item, targetTable, scope)
	}
}

func recordImportPath(ctx *Context, item ast.GlobalItem) {
	_, _ = ctx.Table.InsertDefinition(symboltable.Info{
		Name:       item.ImportPath(),
		Kind:       symboltable.KindImportPath,
		Type:       types.TextType(),
		OriginSpan: item.Span(),
	}, scopeSpanAfter(ctx.ScopeEnd, item.Span()), false)
}

func importAll(ctx *Context, item ast.GlobalItem, target *symboltable.Table, scope location.Span) {
	for name, loc := range target.PublicDefinitions() {
		info, ok := target.SymbolAt(loc.Start)
		if !ok {
			continue
		}
		_, _ = ctx.Table.ImportSymbol(name, info, loc, scope, item.ImportPublic())
	}
}

func importSpecific(ctx *Context, item ast.GlobalItem, target *symboltable.Table, scope location.Span) {
	seen := make(map[string]bool, len(item.ImportNames()))
	defs := target.PublicDefinitions()

	for _, name := range item.ImportNames() {
		if seen[name] {
			ctx.Diags.Collect(diag.NewIssue(diag.Error, diag.E_IMPORT_DUPLICATE,
				fmt.Sprintf("Duplicate import %q", name)).
				WithSpan(item.Span()).
				Build())
			continue
		}
		seen[name] = true

		loc, found := defs[name]
		if !found {
			ctx.Diags.Collect(diag.NewIssue(diag.Error, diag.E_IMPORT_UNRESOLVED,
				fmt.Sprintf("Could not resolve %q", name)).
				WithSpan(item.Span()).
				Build())
			continue
		}

		info, ok := target.SymbolAt(loc.Start)
		if !ok {
			continue
		}

		localName := name
		if alias, ok := item.ImportAlias(name); ok {
			localName = alias
		}
		_, _ = ctx.Table.ImportSymbol(localName, info, loc, scope, item.ImportPublic())
	}
}
