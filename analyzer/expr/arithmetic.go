package expr

import (
	"fmt"

	"github.com/amber-lang/amber-lsp-analyzer/ast"
	"github.com/amber-lang/amber-lsp-analyzer/diag"
	"github.com/amber-lang/amber-lsp-analyzer/types"
)

// addOperand is the type `+` accepts on either side: Num, Text, or an
// Array of either, covering both arithmetic and concatenation.
func addOperand() types.Type {
	return types.MakeUnion([]types.Type{
		types.NumberType(),
		types.TextType(),
		types.ArrayOf(types.MakeUnion([]types.Type{types.NumberType(), types.TextType()})),
	})
}

// analyzeAdd handles `+`: the left operand is checked against addOperand
// and fixes the expected type for the right operand, so a Num+Text mix is
// reported the same way as any other type mismatch (E_TYPE_MISMATCH) rather
// than a specialized message — E_BAD_OPERAND is reserved for shorthand
// assignment in the statement analyzer.
func analyzeAdd(ctx *Context, node ast.Expr) Result {
	left, _ := node.Left()
	right, _ := node.Right()

	lr := Analyze(ctx, left, addOperand())
	rr := Analyze(ctx, right, lr.Type)

	merge := Result{
		Type:              lr.Type,
		PropagatesFailure: lr.PropagatesFailure || rr.PropagatesFailure,
		EarlyReturnType:   mergeEarly(lr.EarlyReturnType, rr.EarlyReturnType),
	}

	if !types.Matches(ctx.Generics, rr.Type, lr.Type) {
		ctx.Diags.Collect(diag.NewIssue(diag.Error, diag.E_TYPE_MISMATCH,
			fmt.Sprintf("Expected type %s, found type %s", rr.Type, lr.Type)).
			WithSpan(left.Span()).
			WithExpectedGot(rr.Type.String(), lr.Type.String()).
			Build())
	}

	return merge
}

// analyzeNumericBinary handles `-`, `*`, `/`, `%`: both operands are
// analyzed with Number as the expected type, so a non-Number operand is
// flagged by the ordinary exit check (E_TYPE_MISMATCH) instead of a
// specialized bad-operand message.
func analyzeNumericBinary(ctx *Context, node ast.Expr) Result {
	left, _ := node.Left()
	right, _ := node.Right()
	lr := Analyze(ctx, left, types.NumberType())
	rr := Analyze(ctx, right, types.NumberType())

	return Result{
		Type:              types.NumberType(),
		PropagatesFailure: lr.PropagatesFailure || rr.PropagatesFailure,
		EarlyReturnType:   mergeEarly(lr.EarlyReturnType, rr.EarlyReturnType),
	}
}

func analyzeNeg(ctx *Context, node ast.Expr) Result {
	operand, _ := node.Operand()
	res := Analyze(ctx, operand, types.NumberType())
	return Result{Type: types.NumberType(), PropagatesFailure: res.PropagatesFailure, EarlyReturnType: res.EarlyReturnType}
}

func analyzeLogicalBinary(ctx *Context, node ast.Expr) Result {
	left, _ := node.Left()
	right, _ := node.Right()
	lr := Analyze(ctx, left, types.BooleanType())
	rr := Analyze(ctx, right, types.BooleanType())
	return Result{
		Type:              types.BooleanType(),
		PropagatesFailure: lr.PropagatesFailure || rr.PropagatesFailure,
		EarlyReturnType:   mergeEarly(lr.EarlyReturnType, rr.EarlyReturnType),
	}
}

func analyzeNot(ctx *Context, node ast.Expr) Result {
	operand, _ := node.Operand()
	res := Analyze(ctx, operand, types.BooleanType())
	return Result{Type: types.BooleanType(), PropagatesFailure: res.PropagatesFailure, EarlyReturnType: res.EarlyReturnType}
}

// analyzeEquality handles `==`/`!=`: either operand may be Any, otherwise
// both sides must agree under [types.Matches].
func analyzeEquality(ctx *Context, node ast.Expr) Result {
	left, _ := node.Left()
	right, _ := node.Right()
	lr := analyzeRaw(ctx, left)
	rr := analyzeRaw(ctx, right)

	merge := Result{
		Type:              types.BooleanType(),
		PropagatesFailure: lr.PropagatesFailure || rr.PropagatesFailure,
		EarlyReturnType:   mergeEarly(lr.EarlyReturnType, rr.EarlyReturnType),
	}

	if !types.Matches(ctx.Generics, lr.Type, rr.Type) && !types.Matches(ctx.Generics, rr.Type, lr.Type) {
		ctx.Diags.Collect(diag.NewIssue(diag.Error, diag.E_TYPE_MISMATCH,
			fmt.Sprintf("Expected type %s, found type %s", lr.Type, rr.Type)).
			WithSpan(node.Span()).
			WithExpectedGot(lr.Type.String(), rr.Type.String()).
			Build())
	}
	return merge
}

// analyzeComparison handles `<`, `<=`, `>`, `>=`: both sides must be Num-like.
func analyzeComparison(ctx *Context, node ast.Expr) Result {
	left, _ := node.Left()
	right, _ := node.Right()
	lr := Analyze(ctx, left, types.NumberType())
	rr := Analyze(ctx, right, types.NumberType())
	return Result{
		Type:              types.BooleanType(),
		PropagatesFailure: lr.PropagatesFailure || rr.PropagatesFailure,
		EarlyReturnType:   mergeEarly(lr.EarlyReturnType, rr.EarlyReturnType),
	}
}
