package expr

import (
	"github.com/amber-lang/amber-lsp-analyzer/ast"
	"github.com/amber-lang/amber-lsp-analyzer/diag"
	"github.com/amber-lang/amber-lsp-analyzer/scopestack"
	"github.com/amber-lang/amber-lsp-analyzer/symboltable"
	"github.com/amber-lang/amber-lsp-analyzer/types"
)

// HandlerOutcome is the result of analyzing a `failed { ... }` handler body,
// a subset of the statement analyzer's own result shape (it has no inferred
// type of its own).
type HandlerOutcome struct {
	PropagatesFailure bool
	EarlyReturnType   *types.Type
}

// HandlerAnalyzer analyzes the body of a HandleBlock failure handler.
// Supplied by analyzer/stmt through analyzer/global so that analyzer/expr
// never imports analyzer/stmt directly.
type HandlerAnalyzer func(ctx *Context, body []ast.Stmt) HandlerOutcome

// Context bundles the collaborators every expression rule needs.
type Context struct {
	Table    *symboltable.Table
	Generics *types.GenericsStore
	Diags    *diag.Collector
	Scope    scopestack.Stack

	// ResolveRemote looks up symbols whose definition crossed a file
	// boundary. May be nil when cross-file resolution is not expected
	// (e.g. analyzing a standalone snippet).
	ResolveRemote symboltable.RemoteResolver

	// AnalyzeHandlerBlock analyzes a HandleBlock's body. May be nil, in
	// which case a handler block is treated as discharging the obligation
	// without contributing propagation or early-return information.
	AnalyzeHandlerBlock HandlerAnalyzer
}

// Result is the expression analyzer's contract output from spec.md §4.4:
// analyze_exp(node, expected_type, scope_stack, generics) →
// {inferred_type, propagates_failure, early_return_type?}.
type Result struct {
	Type              types.Type
	PropagatesFailure bool
	EarlyReturnType   *types.Type
}

// mergeEarly unions two optional early-return types, used whenever a rule
// combines the early_return_type of more than one sub-expression (e.g. a
// ternary's branches, or a call's failure handler plus its arguments).
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
