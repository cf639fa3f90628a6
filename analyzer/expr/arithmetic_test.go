package expr

import (
	"testing"

	"github.com/amber-lang/amber-lsp-analyzer/ast"
	"github.com/amber-lang/amber-lsp-analyzer/types"
	"github.com/stretchr/testify/assert"
)

func TestAnalyze_Add_NumbersYieldsNumber(t *testing.T) {
	ctx := newContext()
	node := ast.NewAdd(span(0, 5), ast.NewNumber(span(0, 1), 1), ast.NewNumber(span(4, 5), 2))

	res := Analyze(ctx, node, types.Any())

	assert.Equal(t, types.NumberType(), res.Type)
	assert.False(t, ctx.Diags.HasErrors())
}

func TestAnalyze_Add_TextsYieldsText(t *testing.T) {
	ctx := newContext()
	left := ast.NewText(span(0, 3), nil)
	right := ast.NewText(span(4, 7), nil)
	node := ast.NewAdd(span(0, 7), left, right)

	res := Analyze(ctx, node, types.Any())

	assert.Equal(t, types.TextType(), res.Type)
}

func TestAnalyze_Add_MixedOperandsIsTypeMismatch(t *testing.T) {
	ctx := newContext()
	node := ast.NewAdd(span(0, 7), ast.NewBoolean(span(0, 4), true), ast.NewNumber(span(5, 6), 1))

	res := Analyze(ctx, node, types.Any())

	assert.Equal(t, types.BooleanType(), res.Type)
	assert.True(t, ctx.Diags.HasErrors())
	assert.Equal(t, "E_TYPE_MISMATCH", ctx.Diags.Result().IssuesSlice()[0].Code().String())
}

func TestAnalyze_Subtract_BadOperandIsTypeMismatch(t *testing.T) {
	ctx := newContext()
	node := ast.NewSubtract(span(0, 7), ast.NewBoolean(span(0, 4), true), ast.NewNumber(span(5, 6), 1))

	res := Analyze(ctx, node, types.Any())

	assert.Equal(t, types.NumberType(), res.Type)
	assert.True(t, ctx.Diags.HasErrors())
	assert.Equal(t, "E_TYPE_MISMATCH", ctx.Diags.Result().IssuesSlice()[0].Code().String())
}

func TestAnalyze_Neg(t *testing.T) {
	ctx := newContext()
	node := ast.NewNeg(span(0, 2), ast.NewNumber(span(1, 2), 1))

	res := Analyze(ctx, node, types.Any())

	assert.Equal(t, types.NumberType(), res.Type)
}

func TestAnalyze_And(t *testing.T) {
	ctx := newContext()
	node := ast.NewAnd(span(0, 10), ast.NewBoolean(span(0, 4), true), ast.NewBoolean(span(6, 10), false))

	res := Analyze(ctx, node, types.Any())

	assert.Equal(t, types.BooleanType(), res.Type)
}

func TestAnalyze_Comparison(t *testing.T) {
	ctx := newContext()
	node := ast.NewLt(span(0, 5), ast.NewNumber(span(0, 1), 1), ast.NewNumber(span(4, 5), 2))

	res := Analyze(ctx, node, types.Any())

	assert.Equal(t, types.BooleanType(), res.Type)
	assert.False(t, ctx.Diags.HasErrors())
}

func TestAnalyze_Equality_AnyMatchesEither(t *testing.T) {
	ctx := newContext()
	node := ast.NewEq(span(0, 5), ast.NewNumber(span(0, 1), 1), ast.NewNumber(span(4, 5), 2))

	res := Analyze(ctx, node, types.Any())

	assert.Equal(t, types.BooleanType(), res.Type)
	assert.False(t, ctx.Diags.HasErrors())
}

func TestAnalyze_Equality_MismatchedTypesIsError(t *testing.T) {
	ctx := newContext()
	node := ast.NewEq(span(0, 10), ast.NewNumber(span(0, 1), 1), ast.NewBoolean(span(5, 9), true))

	Analyze(ctx, node, types.Any())

	assert.True(t, ctx.Diags.HasErrors())
}
