package stmt

import (
	"github.com/amber-lang/amber-lsp-analyzer/analyzer/expr"
	"github.com/amber-lang/amber-lsp-analyzer/location"
	"github.com/amber-lang/amber-lsp-analyzer/types"
)

// Context bundles the expression analyzer's collaborators with the one
// additional piece of state statement analysis needs: ScopeEnd, the fixed
// outer byte offset a function/main/free-statement body's declarations
// scope against (spec.md §4.5's "span.end..=scope_end"). ScopeEnd stays
// constant across nested blocks within one analysis pass — shadowing
// between an outer and inner declaration of the same name is handled by
// the symbol table's narrowest-wins/latest-wins tie-break, not by
// shrinking this bound per block.
type Context struct {
	*expr.Context
	ScopeEnd int
}

// scopeSpanAfter builds the scope range a declaration at span is visible
// in: from span's end to ctx.ScopeEnd. The end position's line/column are
// copied from span's own end since nothing but the byte offset is ever
// consulted when querying a scope range.
func (ctx *Context) scopeSpanAfter(span location.Span) location.Span {
	start := span.End
	end := location.Position{Line: start.Line, Column: start.Column, Byte: ctx.ScopeEnd}
	return location.Span{Source: span.Source, Start: start, End: end}
}

// Result is the statement analyzer's contract output from spec.md §4.5:
// analyze_stmnt(node, scope_end, scope_stack, generics) →
// {propagates_failure, early_return_type?}.
type Result struct {
	PropagatesFailure bool
	EarlyReturnType   *types.Type
}

// mergeEarly unions two optional early-return types, mirroring
// analyzer/expr's helper of the same name (kept separate since neither
// package should import the other's internals for a three-line helper).
func mergeEarly(a, b *types.Type) *types.Type {
	if a == nil && b == nil {
		return nil
	}
	items := make([]types.Type, 0, 2)
	if a != nil {
		items = append(items, *a)
	}
	if b != nil {
		items = append(items, *b)
	}
	u := types.MakeUnion(items)
	return &u
}
