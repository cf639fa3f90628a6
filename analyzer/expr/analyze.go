package expr

import (
	"fmt"

	"github.com/amber-lang/amber-lsp-analyzer/ast"
	"github.com/amber-lang/amber-lsp-analyzer/diag"
	"github.com/amber-lang/amber-lsp-analyzer/location"
	"github.com/amber-lang/amber-lsp-analyzer/symboltable"
	"github.com/amber-lang/amber-lsp-analyzer/types"
)

// Analyze is the public entry point: dispatch on node's kind, then perform
// the "type-check at exit" step from spec.md §4.4 — compare the inferred
// type against expected, emitting E_TYPE_MISMATCH on failure, and
// back-propagating a generic constraint on success.
func Analyze(ctx *Context, node ast.Expr, expected types.Type) Result {
	res := dispatch(ctx, node, expected)
	checkExpected(ctx, node, expected, res.Type)
	return res
}

// analyzeRaw dispatches without the exit check, for rules that apply their
// own compatibility check (e.g. `==`/`!=` comparing both operands against
// each other) in place of a check against a fixed expected type, or whose
// table entry is "Any" and so has nothing meaningful to check or constrain
// against.
func analyzeRaw(ctx *Context, node ast.Expr) Result {
	return dispatch(ctx, node, types.Any())
}

// checkExpected implements the exit-check from spec.md §4.4. A Generic on
// the expected side (e.g. a called function's generic parameter type) is
// constrained by the argument's own concrete type; failing that, a Generic
// on the inferred side (e.g. an untyped declaration initialized from a
// generic-returning call) is constrained by the expected side instead.
// expected == Any has nothing to check or constrain, so callers that don't
// want either direction to fire route through analyzeRaw instead of Analyze.
func checkExpected(ctx *Context, node ast.Expr, expected, inferred types.Type) {
	if !types.Matches(ctx.Generics, expected, inferred) {
		ctx.Diags.Collect(diag.NewIssue(diag.Error, diag.E_TYPE_MISMATCH,
			fmt.Sprintf("Expected type %s, found type %s", expected, inferred)).
			WithSpan(node.Span()).
			WithExpectedGot(expected.String(), inferred.String()).
			Build())
		return
	}
	if expected.Kind() == types.KindAny {
		// Any carries no information to constrain either side with: per
		// Matches, Any matches anything either way, so treating it as a
		// real bound would widen an already-narrowed generic back to Any.
		return
	}
	if gid, ok := expected.GenericID(); ok {
		ctx.Generics.Constrain(gid, inferred)
		return
	}
	if gid, ok := inferred.GenericID(); ok {
		ctx.Generics.Constrain(gid, expected)
	}
}

func dispatch(ctx *Context, node ast.Expr, expected types.Type) Result {
	switch node.Kind() {
	case ast.ExprNumber:
		return Result{Type: types.NumberType()}
	case ast.ExprBoolean:
		return Result{Type: types.BooleanType()}
	case ast.ExprNull:
		return Result{Type: types.NullType()}
	case ast.ExprText:
		for _, part := range node.Parts() {
			analyzeRaw(ctx, part)
		}
		return Result{Type: types.TextType()}
	case ast.ExprVar:
		return analyzeVar(ctx, node)
	case ast.ExprParentheses:
		operand, _ := node.Operand()
		return analyzeRaw(ctx, operand)
	case ast.ExprAdd:
		return analyzeAdd(ctx, node)
	case ast.ExprSubtract:
		return analyzeNumericBinary(ctx, node)
	case ast.ExprMultiply:
		return analyzeNumericBinary(ctx, node)
	case ast.ExprDivide:
		return analyzeNumericBinary(ctx, node)
	case ast.ExprModulo:
		return analyzeNumericBinary(ctx, node)
	case ast.ExprNeg:
		return analyzeNeg(ctx, node)
	case ast.ExprAnd, ast.ExprOr:
		return analyzeLogicalBinary(ctx, node)
	case ast.ExprNot:
		return analyzeNot(ctx, node)
	case ast.ExprEq, ast.ExprNeq:
		return analyzeEquality(ctx, node)
	case ast.ExprLt, ast.ExprLe, ast.ExprGt, ast.ExprGe:
		return analyzeComparison(ctx, node)
	case ast.ExprCast:
		return analyzeCast(ctx, node)
	case ast.ExprIs:
		return analyzeIs(ctx, node)
	case ast.ExprNameof:
		return analyzeNameof(ctx, node)
	case ast.ExprArrayLit:
		return analyzeArrayLit(ctx, node)
	case ast.ExprRange:
		return analyzeRange(ctx, node)
	case ast.ExprTernary:
		return analyzeTernary(ctx, node, expected)
	case ast.ExprArrayIndex:
		return analyzeArrayIndex(ctx, node)
	case ast.ExprStatus:
		return analyzeStatus(ctx, node)
	case ast.ExprExit:
		return analyzeExit(ctx, node)
	case ast.ExprCommand:
		return analyzeCommand(ctx, node)
	case ast.ExprFunctionInvocation:
		return analyzeFunctionInvocation(ctx, node)
	case ast.ExprErrorNode:
		return Result{Type: types.Any()}
	default:
		return Result{Type: types.Any()}
	}
}

// analyzeVar resolves a name reference. Using a function name as a value
// is flagged with E_IS_A_FUNCTION, but the function's own type is still
// returned (not Error): Error matches nothing in types.Matches, so
// returning it here would cascade into a second, spurious
// E_TYPE_MISMATCH at any call site with a concrete expected type.
func analyzeVar(ctx *Context, node ast.Expr) Result {
	info := ctx.Table.InsertReference(node.Name(), node.Span(), ctx.ResolveRemote, ctx.Diags)
	if info.Kind == symboltable.KindFunction {
		ctx.Diags.Collect(diag.NewIssue(diag.Error, diag.E_IS_A_FUNCTION,
			fmt.Sprintf("%q is a function", node.Name())).
			WithSpan(node.Span()).Build())
	}
	return Result{Type: info.Type}
}

func analyzeCast(ctx *Context, node ast.Expr) Result {
	operand, _ := node.Operand()
	analyzeRaw(ctx, operand)
	t, err := types.Parse(node.TypeName())
	if err != nil {
		return Result{Type: types.Any()}
	}
	return Result{Type: t}
}

func analyzeIs(ctx *Context, node ast.Expr) Result {
	operand, _ := node.Operand()
	analyzeRaw(ctx, operand)
	return Result{Type: types.BooleanType()}
}

func analyzeNameof(ctx *Context, node ast.Expr) Result {
	operand, _ := node.Operand()
	analyzeRaw(ctx, operand)
	return Result{Type: types.TextType()}
}

func analyzeArrayLit(ctx *Context, node ast.Expr) Result {
	parts := node.Parts()
	elemExpected := types.MakeUnion([]types.Type{types.NumberType(), types.TextType()})

	elemTypes := make([]types.Type, 0, len(parts))
	var propagates bool
	var early *types.Type
	for _, el := range parts {
		res := Analyze(ctx, el, elemExpected)
		propagates = propagates || res.PropagatesFailure
		early = mergeEarly(early, res.EarlyReturnType)
		elemTypes = append(elemTypes, res.Type)
	}

	unified := types.MakeUnion(elemTypes)
	if _, isUnion := unified.Members(); isUnion {
		ctx.Diags.Collect(diag.NewIssue(diag.Error, diag.E_ARRAY_MIXED_TYPES,
			"Array must have elements of the same type").
			WithSpan(node.Span()).Build())
	}
	return Result{Type: types.ArrayOf(unified), PropagatesFailure: propagates, EarlyReturnType: early}
}

func analyzeRange(ctx *Context, node ast.Expr) Result {
	from, _ := node.Left()
	to, _ := node.Right()
	Analyze(ctx, from, types.NumberType())
	Analyze(ctx, to, types.NumberType())
	return Result{Type: types.ArrayOf(types.NumberType())}
}

func analyzeTernary(ctx *Context, node ast.Expr, expected types.Type) Result {
	cond, _ := node.Cond()
	then, _ := node.Then()
	els, _ := node.Els()

	Analyze(ctx, cond, types.BooleanType())
	thenRes := Analyze(ctx, then, expected)
	elsRes := Analyze(ctx, els, expected)

	return Result{
		Type:              types.MakeUnion([]types.Type{thenRes.Type, elsRes.Type}),
		PropagatesFailure: thenRes.PropagatesFailure || elsRes.PropagatesFailure,
		EarlyReturnType:   mergeEarly(thenRes.EarlyReturnType, elsRes.EarlyReturnType),
	}
}

func analyzeArrayIndex(ctx *Context, node ast.Expr) Result {
	arr, _ := node.Left()
	idx, _ := node.Right()

	arrRes := analyzeRaw(ctx, arr)
	idxRes := analyzeRaw(ctx, idx)

	elem := types.Any()
	if e, ok := arrRes.Type.Elem(); ok {
		elem = e
	}

	resultType := elem
	if idxRes.Type.Kind() == types.KindArray {
		// Indexing by an array (a range) slices rather than selects.
		resultType = arrRes.Type
	}
	return Result{
		Type:              resultType,
		PropagatesFailure: arrRes.PropagatesFailure || idxRes.PropagatesFailure,
		EarlyReturnType:   mergeEarly(arrRes.EarlyReturnType, idxRes.EarlyReturnType),
	}
}

func analyzeStatus(ctx *Context, node ast.Expr) Result {
	ctx.Table.RecordSynthetic("status", node.Span(), types.NumberType())
	return Result{Type: types.NumberType()}
}

func analyzeExit(ctx *Context, node ast.Expr) Result {
	if code, ok := node.Operand(); ok {
		Analyze(ctx, code, types.NumberType())
	}
	return Result{Type: types.NullType()}
}

func byteOffset(span location.Span) (int, bool) {
	if !span.Start.HasByte() {
		return 0, false
	}
	return span.Start.Byte, true
}
