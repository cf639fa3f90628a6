package global

import (
	"fmt"
	"math"

	"github.com/amber-lang/amber-lsp-analyzer/analyzer/expr"
	"github.com/amber-lang/amber-lsp-analyzer/analyzer/stmt"
	"github.com/amber-lang/amber-lsp-analyzer/ast"
	"github.com/amber-lang/amber-lsp-analyzer/diag"
	"github.com/amber-lang/amber-lsp-analyzer/location"
	"github.com/amber-lang/amber-lsp-analyzer/scopestack"
	"github.com/amber-lang/amber-lsp-analyzer/symboltable"
	"github.com/amber-lang/amber-lsp-analyzer/types"
)

// fileScopeEnd is the scope bound used for every top-level declaration: no
// Amber construct above statement level narrows visibility below whole-file
// scope, so every pass analyzing a global item treats the file as
// unbounded rather than computing its literal byte length.
const fileScopeEnd = math.MaxInt

// AnalyzeFile walks every item in file in source order, dispatching on
// its GlobalItemKind. A synthetic "import * from builtin" is applied
// first (spec.md §6) so every later item sees the builtin signatures in
// scope, mirroring a real leading import without requiring one to be
// written in source or recorded as a file dependency.
func AnalyzeFile(ctx *Context, file ast.File) {
	importBuiltins(ctx)

	for _, item := range file.Items {
		switch item.Kind() {
		case ast.ItemFunctionDefinition:
			analyzeFunctionDefinition(ctx, item)
		case ast.ItemImport:
			analyzeImport(ctx, item)
		case ast.ItemMain:
			analyzeMain(ctx, item)
		case ast.ItemFreeStatement:
			analyzeFreeStatement(ctx, item)
		}
	}
}

// importBuiltins seeds every builtin function signature as a file-scoped
// definition spanning byte 0 to fileScopeEnd, so ordinary name resolution
// finds them without any reference ever crossing a file boundary.
func importBuiltins(ctx *Context) {
	scope, err := stdlibScope()
	if err != nil {
		return
	}

	origin := location.RangeWithBytes(ctx.Table.Source(), 1, 1, 0, 1, 2, 1)
	fileSpan := scopeSpanAfter(ctx.ScopeEnd, location.RangeWithBytes(ctx.Table.Source(), 1, 1, 0, 1, 1, 0))

	for name, fn := range scope {
		params := make([]symboltable.FunctionParam, 0, len(fn.Params))
		for _, p := range fn.Params {
			params = append(params, symboltable.FunctionParam{Name: p.Name, Type: p.Type, Optional: p.Optional})
		}
		_, _ = ctx.Table.InsertDefinition(symboltable.Info{
			Name: name,
			Kind: symboltable.KindFunction,
			Type: fn.Returns,
			Function: &symboltable.FunctionSignature{
				Params: params,
				Public: fn.Public,
			},
			OriginSpan: origin,
		}, fileSpan, false)
	}
}

// analyzeFunctionDefinition implements spec.md §4.6's FunctionDefinition
// step: parameters are bound (generic parameters get a freshly allocated
// id, typed parameters their declared type), the body is analyzed inside a
// Function frame against a snapshot of the generics store so local
// inference never leaks into sibling functions, and the declared-or-
// inferred return type is checked and recorded on the function's symbol.
func analyzeFunctionDefinition(ctx *Context, item ast.GlobalItem) {
	scopeKey := ctx.genericsScope()
	snapshot := ctx.Generics.Snapshot()
	bodyCtx := ctx.withGenerics(snapshot)

	paramScope := item.Span()

	params := make([]symboltable.FunctionParam, 0, len(item.Params()))
	sawOptional := false
	for _, p := range item.Params() {
		pt := paramType(snapshot, scopeKey, p)

		if p.Optional {
			sawOptional = true
			if p.ByRef {
				bodyCtx.Diags.Collect(diag.NewIssue(diag.Error, diag.E_OPTIONAL_BY_REF,
					"Optional argument cannot be a reference").
					WithSpan(p.Span).
					Build())
			}
			if p.Default != nil {
				expr.Analyze(bodyCtx.Context, *p.Default, pt)
			}
		} else if sawOptional {
			bodyCtx.Diags.Collect(diag.NewIssue(diag.Error, diag.E_OPTIONAL_ORDER,
				"Optional argument must be the last one").
				WithSpan(p.Span).
				Build())
		}

		_, _ = bodyCtx.Table.InsertDefinition(symboltable.Info{
			Name:       p.Name,
			Kind:       symboltable.KindVariable,
			Type:       pt,
			OriginSpan: p.NameSpan,
		}, paramScope, false)

		params = append(params, symboltable.FunctionParam{Name: p.Name, Type: pt, ByRef: p.ByRef, Optional: p.Optional})
	}

	bodyCtx.Scope = bodyCtx.Scope.Push(scopestack.FunctionFrame(scopestack.FunctionFlag(item.FunctionFlags())))
	bodyRes := stmt.AnalyzeBody(bodyCtx, item.Body())

	ctx.Generics.Merge(snapshot, scopeKey)

	inferred := inferredReturnType(bodyRes)
	returnType := inferred
	if dt := item.ReturnType(); dt != "" {
		if declared, err := types.Parse(dt); err == nil {
			returnType = declared
			checkReturnType(ctx, item, declared, inferred, bodyRes.PropagatesFailure)
		}
	}

	_, _ = ctx.Table.InsertDefinition(symboltable.Info{
		Name: item.Name(),
		Kind: symboltable.KindFunction,
		Type: returnType,
		Function: &symboltable.FunctionSignature{
			Params: params,
			Public: item.Public(),
			Flags:  scopestack.FunctionFlag(item.FunctionFlags()),
			Docs:   item.Docs(),
		},
		OriginSpan: item.Span(),
	}, scopeSpanAfter(ctx.ScopeEnd, item.Span()), item.Public())
}

func paramType(snapshot *types.GenericsStore, scope types.ScopeKey, p ast.Parameter) types.Type {
	if p.TypeName == "" {
		return types.GenericOf(snapshot.FreshGeneric(scope))
	}
	if parsed, err := types.Parse(p.TypeName); err == nil {
		return parsed
	}
	return types.Any()
}

// inferredReturnType folds a function body's accumulated early-return
// types into one type: the union of every return site's type, Null if the
// body never returns, and wrapped in Failable if the body also
// propagates a failure that its own return type doesn't already carry.
func inferredReturnType(res stmt.Result) types.Type {
	var inferred types.Type
	if res.EarlyReturnType != nil {
		inferred = *res.EarlyReturnType
	} else {
		inferred = types.NullType()
	}
	if res.PropagatesFailure && !inferred.IsFailable() {
		inferred = types.FailableOf(inferred)
	}
	return inferred
}

func checkReturnType(ctx *Context, item ast.GlobalItem, declared, inferred types.Type, propagates bool) {
	if !types.Matches(ctx.Generics, declared, inferred) {
		ctx.Diags.Collect(diag.NewIssue(diag.Error, diag.E_RETURN_TYPE_MISMATCH,
			fmt.Sprintf("Function returns type %s, but expected %s", inferred, declared)).
			WithSpan(item.Span()).
			WithExpectedGot(declared.String(), inferred.String()).
			Build())
	}
	if propagates && !declared.IsFailable() {
		ctx.Diags.Collect(diag.NewIssue(diag.Error, diag.E_PROPAGATE_NOT_FAILABLE,
			"Function is propagating an error, but return type is not failable").
			WithSpan(item.Span()).
			Build())
	}
}

// analyzeMain implements spec.md §4.6's Main step: an optional args
// binding typed Array(Text), and the body analyzed inside a Main frame
// (wider than a Function frame — Fail is valid here, Return is not, per
// analyzer/stmt's InFunction/InFunctionOrMain distinction).
func analyzeMain(ctx *Context, item ast.GlobalItem) {
	bodyCtx := ctx.withGenerics(ctx.Generics)
	if name, ok := item.ArgsName(); ok {
		_, _ = bodyCtx.Table.InsertDefinition(symboltable.Info{
			Name:       name,
			Kind:       symboltable.KindVariable,
			Type:       types.ArrayOf(types.TextType()),
			OriginSpan: item.Span(),
		}, item.Span(), false)
	}

	bodyCtx.Scope = bodyCtx.Scope.Push(scopestack.MainFrame())
	stmt.AnalyzeBody(bodyCtx, item.Body())
}

// analyzeFreeStatement implements spec.md §4.6's free-statement step: a
// bare top-level statement is analyzed with an empty scope stack (no
// enclosing Function/Main/Loop frame — Return, Fail, Break, and Continue
// are all invalid at this point, exactly as analyzer/stmt's own checks
// already express for any statement outside such a frame) and the same
// file-wide scope bound as every other top-level item.
func analyzeFreeStatement(ctx *Context, item ast.GlobalItem) {
	s, ok := item.Statement()
	if !ok {
		return
	}
	bodyCtx := ctx.withGenerics(ctx.Generics)
	stmt.Analyze(bodyCtx, s)
}
