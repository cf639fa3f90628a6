package global

import (
	"github.com/amber-lang/amber-lsp-analyzer/analyzer/expr"
	"github.com/amber-lang/amber-lsp-analyzer/ast"
	"github.com/amber-lang/amber-lsp-analyzer/analyzer/stmt"
	"github.com/amber-lang/amber-lsp-analyzer/diag"
	"github.com/amber-lang/amber-lsp-analyzer/files"
	"github.com/amber-lang/amber-lsp-analyzer/importgraph"
	"github.com/amber-lang/amber-lsp-analyzer/location"
	"github.com/amber-lang/amber-lsp-analyzer/symboltable"
	"github.com/amber-lang/amber-lsp-analyzer/types"
)

var testSource = location.MustNewSourceID("test://main.ab")

func span(start, end int) location.Span {
	return location.RangeWithBytes(testSource, 1, start+1, start, 1, end+1, end)
}

func newContext() *Context {
	table := symboltable.New(testSource)
	exprCtx := &expr.Context{
		Table:    table,
		Generics: types.NewGenericsStore(),
		Diags:    diag.NewCollector(100),
	}
	sc := &stmt.Context{Context: exprCtx, ScopeEnd: fileScopeEnd}
	ctx := &Context{
		Context: sc,
		File:    files.FileIDFromSourceID(testSource),
		Version: 1,
		Graph:   importgraph.New(),
	}
	exprCtx.AnalyzeHandlerBlock = func(c *expr.Context, body []ast.Stmt) expr.HandlerOutcome {
		handlerCtx := &stmt.Context{Context: c, ScopeEnd: ctx.ScopeEnd}
		res := stmt.AnalyzeBody(handlerCtx, body)
		return expr.HandlerOutcome{PropagatesFailure: res.PropagatesFailure, EarlyReturnType: res.EarlyReturnType}
	}
	return ctx
}

// stubResolver resolves every path to a single pre-built target table,
// regardless of the path literal, and records the file identity it hands
// back so cycle tests can pass the same identity as the caller's own file.
type stubResolver struct {
	file  files.FileID
	table *symboltable.Table
	err   error
}

func (r stubResolver) Resolve(path string) (files.FileID, *symboltable.Table, error) {
	if r.err != nil {
		return files.FileID{}, nil, r.err
	}
	return r.file, r.table, nil
}
