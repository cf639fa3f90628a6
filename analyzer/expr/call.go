package expr

import (
	"fmt"

	"github.com/amber-lang/amber-lsp-analyzer/ast"
	"github.com/amber-lang/amber-lsp-analyzer/diag"
	"github.com/amber-lang/amber-lsp-analyzer/scopestack"
	"github.com/amber-lang/amber-lsp-analyzer/symboltable"
	"github.com/amber-lang/amber-lsp-analyzer/types"
)

// analyzeCommand handles a shell command expression: every interpolated
// segment is analyzed for its own sake, the result is the command's stdout
// capture (Text), and the command unconditionally obligates a failure
// handler per spec.md §4.4.
func analyzeCommand(ctx *Context, node ast.Expr) Result {
	for _, part := range node.Parts() {
		analyzeRaw(ctx, part)
	}

	handler, _ := node.FailureHandler()
	outcome := dischargeObligation(ctx, node, node.Modifiers(), handler,
		diag.E_COMMAND_NO_HANDLER, "Command may fail and has no failure handler")

	return Result{
		Type:              types.TextType(),
		PropagatesFailure: outcome.PropagatesFailure,
		EarlyReturnType:   outcome.EarlyReturnType,
	}
}

// analyzeFunctionInvocation implements spec.md §4.4's call algorithm:
// resolve the callee, validate it is callable with this argument count,
// analyze each argument against its declared parameter type (refining any
// generic parameter along the way), and discharge the failure obligation
// when the return type is failable.
func analyzeFunctionInvocation(ctx *Context, node ast.Expr) Result {
	callee := ctx.Table.InsertReference(node.Name(), node.Span(), ctx.ResolveRemote, ctx.Diags)

	if callee.IsUndefined {
		analyzeArgsRaw(ctx, node.Args())
		return Result{Type: types.ErrorType()}
	}
	if callee.Kind != symboltable.KindFunction || callee.Function == nil {
		ctx.Diags.Collect(diag.NewIssue(diag.Error, diag.E_NOT_A_FUNCTION,
			fmt.Sprintf("%q is not a function", node.Name())).
			WithSpan(node.Span()).
			Build())
		analyzeArgsRaw(ctx, node.Args())
		return Result{Type: types.ErrorType()}
	}

	sig := callee.Function
	args := node.Args()
	checkArgCount(ctx, node, node.Name(), sig.Params, len(args))

	var propagates bool
	var early *types.Type
	for i, arg := range args {
		expected := types.Any()
		byRef := false
		if i < len(sig.Params) {
			expected = sig.Params[i].Type
			byRef = sig.Params[i].ByRef
		}
		res := Analyze(ctx, arg, expected)
		propagates = propagates || res.PropagatesFailure
		early = mergeEarly(early, res.EarlyReturnType)
		if byRef {
			checkByRefArg(ctx, arg)
		}
	}

	returnType := ctx.Generics.Deref(callee.Type)
	resultType := returnType
	if elem, ok := returnType.Elem(); returnType.IsFailable() && ok {
		resultType = elem
	}

	if returnType.IsFailable() {
		handler, _ := node.FailureHandler()
		outcome := dischargeObligation(ctx, node, node.Modifiers(), handler,
			diag.E_FAILABLE_UNHANDLED, fmt.Sprintf("Call to %q may fail and is not handled", node.Name()))
		propagates = propagates || outcome.PropagatesFailure
		early = mergeEarly(early, outcome.EarlyReturnType)
	}

	return Result{Type: resultType, PropagatesFailure: propagates, EarlyReturnType: early}
}

// checkByRefArg implements the by_ref half of spec.md §4.4's call algorithm:
// an argument bound to a by_ref parameter must itself be a variable
// reference, and that variable must not be const.
func checkByRefArg(ctx *Context, arg ast.Expr) {
	if arg.Kind() != ast.ExprVar {
		ctx.Diags.Collect(diag.NewIssue(diag.Error, diag.E_NOT_A_REFERENCE,
			"Cannot pass a non-variable as a reference argument").
			WithSpan(arg.Span()).
			Build())
		return
	}
	off, ok := byteOffset(arg.Span())
	if !ok {
		return
	}
	if info, found := ctx.Table.SymbolAt(off); found && info.Const {
		ctx.Diags.Collect(diag.NewIssue(diag.Error, diag.E_MODIFY_CONST,
			fmt.Sprintf("Cannot pass constant %q by reference", arg.Name())).
			WithSpan(arg.Span()).
			Build())
	}
}

func analyzeArgsRaw(ctx *Context, args []ast.Expr) {
	for _, arg := range args {
		analyzeRaw(ctx, arg)
	}
}

func checkArgCount(ctx *Context, node ast.Expr, name string, params []symboltable.FunctionParam, got int) {
	required := 0
	for _, p := range params {
		if !p.Optional {
			required++
		}
	}
	if got < required {
		ctx.Diags.Collect(diag.NewIssue(diag.Error, diag.E_TOO_FEW_ARGS,
			fmt.Sprintf("Too few arguments to %q: expected at least %d, got %d", name, required, got)).
			WithSpan(node.Span()).
			Build())
		return
	}
	if got > len(params) {
		ctx.Diags.Collect(diag.NewIssue(diag.Error, diag.E_TOO_MANY_ARGS,
			fmt.Sprintf("Too many arguments to %q: expected at most %d, got %d", name, len(params), got)).
			WithSpan(node.Span()).
			Build())
	}
}

// dischargeObligation applies the shared "must be handled" rule used by
// both Command and a failable FunctionInvocation: a HandleBlock delegates
// to the statement analyzer via ctx.AnalyzeHandlerBlock, a HandlePropagate
// requires an enclosing function or main block and always propagates, and
// in the absence of either an enclosing/call-site Unsafe or Trust modifier
// suppresses the obligation — otherwise code is collected as unhandled.
func dischargeObligation(ctx *Context, node ast.Expr, modifiers scopestack.Modifier, handler *ast.FailureHandler, code diag.Code, message string) HandlerOutcome {
	if handler != nil {
		switch handler.Kind() {
		case ast.HandleBlock:
			if ctx.AnalyzeHandlerBlock != nil {
				return ctx.AnalyzeHandlerBlock(ctx, handler.Body())
			}
			return HandlerOutcome{}
		case ast.HandlePropagate:
			if !ctx.Scope.InFunctionOrMain() {
				ctx.Diags.Collect(diag.NewIssue(diag.Error, diag.E_PROPAGATE_OUTSIDE_FN,
					"`?` propagation is only valid inside a function or the main block").
					WithSpan(handler.Span()).
					Build())
			}
			return HandlerOutcome{PropagatesFailure: true}
		}
	}

	if modifiers.Has(scopestack.ModifierUnsafe) || modifiers.Has(scopestack.ModifierTrust) || ctx.Scope.HasUnsafeOrTrust() {
		return HandlerOutcome{}
	}

	ctx.Diags.Collect(diag.NewIssue(diag.Error, code, message).WithSpan(node.Span()).Build())
	return HandlerOutcome{}
}
