package global

import (
	"testing"

	"github.com/amber-lang/amber-lsp-analyzer/ast"
	"github.com/amber-lang/amber-lsp-analyzer/types"
	"github.com/stretchr/testify/assert"
)

func TestAnalyzeMain_BindsArgsAsArrayOfText(t *testing.T) {
	ctx := newContext()
	item := ast.NewMain(span(0, 10), "args", nil)

	analyzeMain(ctx, item)

	assert.False(t, ctx.Diags.HasErrors())
	info, ok := ctx.Table.SymbolAt(5)
	assert.True(t, ok)
	assert.Equal(t, types.ArrayOf(types.TextType()), info.Type)
}

func TestAnalyzeMain_FailIsValidInsideBody(t *testing.T) {
	ctx := newContext()
	body := []ast.Stmt{ast.NewFail(span(5, 9), nil)}
	item := ast.NewMain(span(0, 10), "", body)

	analyzeMain(ctx, item)

	assert.False(t, ctx.Diags.HasErrors())
}

func TestAnalyzeFreeStatement_ReturnOutsideFunctionIsError(t *testing.T) {
	ctx := newContext()
	s := ast.NewReturn(span(0, 6), nil)
	item := ast.NewFreeStatement(span(0, 6), s)

	analyzeFreeStatement(ctx, item)

	assert.True(t, ctx.Diags.HasErrors())
	assert.Equal(t, "E_RETURN_OUTSIDE_FN", ctx.Diags.Result().IssuesSlice()[0].Code().String())
}

func TestAnalyzeFreeStatement_EchoIsClean(t *testing.T) {
	ctx := newContext()
	s := ast.NewEcho(span(0, 6), ast.NewNumber(span(2, 3), 1))
	item := ast.NewFreeStatement(span(0, 6), s)

	analyzeFreeStatement(ctx, item)

	assert.False(t, ctx.Diags.HasErrors())
}
