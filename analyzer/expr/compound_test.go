package expr

import (
	"testing"

	"github.com/amber-lang/amber-lsp-analyzer/ast"
	"github.com/amber-lang/amber-lsp-analyzer/types"
	"github.com/stretchr/testify/assert"
)

func TestAnalyze_ArrayLit_Homogeneous(t *testing.T) {
	ctx := newContext()
	node := ast.NewArrayLit(span(0, 10), []ast.Expr{
		ast.NewNumber(span(1, 2), 1),
		ast.NewNumber(span(4, 5), 2),
	})

	res := Analyze(ctx, node, types.Any())

	elem, ok := res.Type.Elem()
	assert.True(t, ok)
	assert.Equal(t, types.NumberType(), elem)
	assert.False(t, ctx.Diags.HasErrors())
}

func TestAnalyze_ArrayLit_MixedTypesIsError(t *testing.T) {
	ctx := newContext()
	node := ast.NewArrayLit(span(0, 10), []ast.Expr{
		ast.NewNumber(span(1, 2), 1),
		ast.NewBoolean(span(4, 8), true),
	})

	Analyze(ctx, node, types.Any())

	assert.True(t, ctx.Diags.HasErrors())
	assert.Equal(t, "E_ARRAY_MIXED_TYPES", ctx.Diags.Result().IssuesSlice()[0].Code().String())
}

func TestAnalyze_Range(t *testing.T) {
	ctx := newContext()
	node := ast.NewRange(span(0, 6), ast.NewNumber(span(0, 1), 0), ast.NewNumber(span(3, 4), 5), false)

	res := Analyze(ctx, node, types.Any())

	elem, ok := res.Type.Elem()
	assert.True(t, ok)
	assert.Equal(t, types.NumberType(), elem)
}

func TestAnalyze_Ternary_UnifiesBranches(t *testing.T) {
	ctx := newContext()
	node := ast.NewTernary(span(0, 20),
		ast.NewBoolean(span(0, 4), true),
		ast.NewNumber(span(8, 9), 1),
		ast.NewNumber(span(15, 16), 2),
	)

	res := Analyze(ctx, node, types.Any())

	assert.Equal(t, types.NumberType(), res.Type)
}

func TestAnalyze_ArrayIndex_ReturnsElementType(t *testing.T) {
	ctx := newContext()
	defineVar(ctx, "xs", types.ArrayOf(types.TextType()), span(0, 2), span(0, 100))
	arr := ast.NewVar(span(10, 12), "xs")
	idx := ast.NewNumber(span(13, 14), 0)
	node := ast.NewArrayIndex(span(10, 15), arr, idx)

	res := Analyze(ctx, node, types.Any())

	assert.Equal(t, types.TextType(), res.Type)
}
