package stmt

import (
	"github.com/amber-lang/amber-lsp-analyzer/analyzer/expr"
	"github.com/amber-lang/amber-lsp-analyzer/diag"
	"github.com/amber-lang/amber-lsp-analyzer/location"
	"github.com/amber-lang/amber-lsp-analyzer/symboltable"
	"github.com/amber-lang/amber-lsp-analyzer/types"
)

var testSource = location.MustNewSourceID("test://main.ab")

func span(start, end int) location.Span {
	return location.RangeWithBytes(testSource, 1, start+1, start, 1, end+1, end)
}

func newContext() *Context {
	return &Context{
		Context: &expr.Context{
			Table:    symboltable.New(testSource),
			Generics: types.NewGenericsStore(),
			Diags:    diag.NewCollector(100),
		},
		ScopeEnd: 1000,
	}
}

func defineVar(ctx *Context, name string, typ types.Type, isConst bool, at, scope location.Span) {
	_, _ = ctx.Table.InsertDefinition(symboltable.Info{
		Name:       name,
		Kind:       symboltable.KindVariable,
		Type:       typ,
		Const:      isConst,
		OriginSpan: at,
	}, scope, false)
}

func defineFunc(ctx *Context, name string, sig *symboltable.FunctionSignature, returns types.Type, at, scope location.Span) {
	_, _ = ctx.Table.InsertDefinition(symboltable.Info{
		Name:       name,
		Kind:       symboltable.KindFunction,
		Type:       returns,
		Function:   sig,
		OriginSpan: at,
	}, scope, false)
}
