package expr

import (
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
		Table:    symboltable.New(testSource),
		Generics: types.NewGenericsStore(),
		Diags:    diag.NewCollector(100),
	}
}

func defineVar(ctx *Context, name string, typ types.Type, at location.Span, scope location.Span) {
	_, _ = ctx.Table.InsertDefinition(symboltable.Info{
		Name:       name,
		Kind:       symboltable.KindVariable,
		Type:       typ,
		OriginSpan: at,
	}, scope, false)
}

func defineFunc(ctx *Context, name string, sig *symboltable.FunctionSignature, returns types.Type, at location.Span, scope location.Span) {
	_, _ = ctx.Table.InsertDefinition(symboltable.Info{
		Name:       name,
		Kind:       symboltable.KindFunction,
		Type:       returns,
		Function:   sig,
		OriginSpan: at,
	}, scope, false)
}
