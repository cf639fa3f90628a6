package global

import (
	"testing"

	"github.com/amber-lang/amber-lsp-analyzer/ast"
	"github.com/stretchr/testify/assert"
)

func TestAnalyzeFile_BuiltinIsInScopeForFreeStatement(t *testing.T) {
	ctx := newContext()
	call := ast.NewFunctionInvocation(span(5, 20), 0, "exit_code", nil, nil)
	s := ast.NewEcho(span(5, 20), call)
	file := ast.File{Items: []ast.GlobalItem{ast.NewFreeStatement(span(5, 20), s)}}

	AnalyzeFile(ctx, file)

	assert.False(t, ctx.Diags.HasErrors())
}

func TestAnalyzeFile_FunctionThenMain(t *testing.T) {
	ctx := newContext()
	ret := ast.NewNumber(span(25, 26), 1)
	fnBody := []ast.Stmt{ast.NewReturn(span(15, 26), &ret)}
	fn := ast.NewFunctionDefinition(span(0, 30), "one", nil, "", fnBody, true, 0, "")

	call := ast.NewFunctionInvocation(span(40, 50), 0, "one", nil, nil)
	main := ast.NewMain(span(35, 55), "", []ast.Stmt{ast.NewEcho(span(40, 50), call)})

	file := ast.File{Items: []ast.GlobalItem{fn, main}}

	AnalyzeFile(ctx, file)

	assert.False(t, ctx.Diags.HasErrors())
}
