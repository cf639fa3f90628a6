package stmt

import (
	"fmt"

	"github.com/amber-lang/amber-lsp-analyzer/analyzer/expr"
	"github.com/amber-lang/amber-lsp-analyzer/ast"
	"github.com/amber-lang/amber-lsp-analyzer/diag"
	"github.com/amber-lang/amber-lsp-analyzer/location"
	"github.com/amber-lang/amber-lsp-analyzer/scopestack"
	"github.com/amber-lang/amber-lsp-analyzer/symboltable"
	"github.com/amber-lang/amber-lsp-analyzer/types"
)

// AnalyzeBody analyzes a sequence of sibling statements in the current
// scope, accumulating propagation and the union of every early-return type
// any one of them produces.
func AnalyzeBody(ctx *Context, body []ast.Stmt) Result {
	var out Result
	for _, s := range body {
		r := Analyze(ctx, s)
		out.PropagatesFailure = out.PropagatesFailure || r.PropagatesFailure
		out.EarlyReturnType = mergeEarly(out.EarlyReturnType, r.EarlyReturnType)
	}
	return out
}

// Analyze implements analyze_stmnt from spec.md §4.5, dispatching on node's kind.
func Analyze(ctx *Context, node ast.Stmt) Result {
	switch node.Kind() {
	case ast.StmtBlock:
		return analyzeBlock(ctx, node)
	case ast.StmtIfChain:
		return analyzeIfChain(ctx, node)
	case ast.StmtInfiniteLoop:
		return analyzeInfiniteLoop(ctx, node)
	case ast.StmtIterLoop:
		return analyzeIterLoop(ctx, node)
	case ast.StmtVariableInit:
		return analyzeInit(ctx, node, false)
	case ast.StmtConstInit:
		return analyzeInit(ctx, node, true)
	case ast.StmtVariableSet:
		return analyzeSet(ctx, node)
	case ast.StmtShorthandAdd:
		return analyzeShorthand(ctx, node, "add", isShorthandAddOperand)
	case ast.StmtShorthandSub:
		return analyzeShorthand(ctx, node, "subtract", isNumberKind)
	case ast.StmtShorthandMul:
		return analyzeShorthand(ctx, node, "multiply", isNumberKind)
	case ast.StmtShorthandDiv:
		return analyzeShorthand(ctx, node, "divide", isNumberKind)
	case ast.StmtShorthandMod:
		return analyzeShorthand(ctx, node, "modulo", isNumberKind)
	case ast.StmtEcho:
		return analyzeEcho(ctx, node)
	case ast.StmtReturn:
		return analyzeReturn(ctx, node)
	case ast.StmtFail:
		return analyzeFail(ctx, node)
	case ast.StmtBreak:
		return analyzeLoopControl(ctx, node, "break")
	case ast.StmtContinue:
		return analyzeLoopControl(ctx, node, "continue")
	case ast.StmtCd:
		return analyzeCd(ctx, node)
	case ast.StmtMoveFiles:
		return analyzeMoveFiles(ctx, node)
	case ast.StmtDocString:
		analyzeDocString(ctx, node)
		return Result{}
	case ast.StmtComment, ast.StmtShebang, ast.StmtErrorNode:
		return Result{}
	default:
		return Result{}
	}
}

func analyzeBlock(ctx *Context, node ast.Stmt) Result {
	saved := ctx.Scope
	ctx.Scope = ctx.Scope.Push(scopestack.BlockFrame(node.Modifiers()))
	res := AnalyzeBody(ctx, node.Body())
	ctx.Scope = saved
	return res
}

func analyzeIfChain(ctx *Context, node ast.Stmt) Result {
	var out Result
	for _, arm := range node.IfArms() {
		if arm.Cond != nil {
			expr.Analyze(ctx.Context, *arm.Cond, types.BooleanType())
		}

		saved := ctx.Scope
		ctx.Scope = ctx.Scope.Push(scopestack.BlockFrame(0))
		r := AnalyzeBody(ctx, arm.Body)
		ctx.Scope = saved

		out.PropagatesFailure = out.PropagatesFailure || r.PropagatesFailure
		out.EarlyReturnType = mergeEarly(out.EarlyReturnType, r.EarlyReturnType)
	}
	return out
}

func analyzeInfiniteLoop(ctx *Context, node ast.Stmt) Result {
	saved := ctx.Scope
	ctx.Scope = ctx.Scope.Push(scopestack.LoopFrame())
	res := AnalyzeBody(ctx, node.Body())
	ctx.Scope = saved
	return res
}

// analyzeIterLoop handles `for name in iterable { ... }` and its two-name
// `for index, value in iterable { ... }` form: the iterable is checked
// against Array(Any) (dereferencing a failable iterable first), the loop
// name(s) are bound for the body's scope (index: Number, value: the
// array's element type, defaulting to Any when the iterable's own type
// carries none), and the body runs inside a Loop frame.
func analyzeIterLoop(ctx *Context, node ast.Stmt) Result {
	iterable, _ := node.Iterable()
	iterRes := expr.Analyze(ctx.Context, iterable, types.ArrayOf(types.Any()))

	iterType := iterRes.Type
	if iterType.IsFailable() {
		if inner, ok := iterType.Elem(); ok {
			iterType = inner
		}
	}
	elem := types.Any()
	if e, ok := iterType.Elem(); ok {
		elem = e
	}

	scope := node.Span()
	names := node.LoopNames()

	saved := ctx.Scope
	ctx.Scope = ctx.Scope.Push(scopestack.LoopFrame())
	switch len(names) {
	case 2:
		defineLoopVar(ctx, names[0], types.NumberType(), node.Span(), scope)
		defineLoopVar(ctx, names[1], elem, node.Span(), scope)
	case 1:
		defineLoopVar(ctx, names[0], elem, node.Span(), scope)
	}
	bodyRes := AnalyzeBody(ctx, node.Body())
	ctx.Scope = saved

	return Result{
		PropagatesFailure: iterRes.PropagatesFailure || bodyRes.PropagatesFailure,
		EarlyReturnType:   mergeEarly(iterRes.EarlyReturnType, bodyRes.EarlyReturnType),
	}
}

func defineLoopVar(ctx *Context, name string, typ types.Type, originSpan, scope location.Span) {
	_, _ = ctx.Table.InsertDefinition(symboltable.Info{
		Name:       name,
		Kind:       symboltable.KindVariable,
		Type:       typ,
		OriginSpan: originSpan,
	}, scope, false)
}

// analyzeInit handles both VariableInit and ConstInit: the initializer is
// checked against the declared type when one is written (letting
// expr.Analyze's own exit-check raise E_TYPE_MISMATCH), otherwise against
// Any; the declared variable's type is the initializer's own inferred
// type with a failable wrapper stripped (spec.md §4.5 — "let x = risky()"
// binds x to the unwrapped success type, the failure having already been
// required to propagate or be handled by the initializer expression
// itself), scoped from the statement's end to the enclosing scope_end.
func analyzeInit(ctx *Context, node ast.Stmt, isConst bool) Result {
	init, _ := node.Init()
	expected := types.Any()
	if dt := node.DeclaredType(); dt != "" {
		if parsed, err := types.Parse(dt); err == nil {
			expected = parsed
		}
	}
	res := expr.Analyze(ctx.Context, init, expected)

	varType := res.Type
	if elem, ok := varType.Elem(); varType.IsFailable() && ok {
		varType = elem
	}

	_, _ = ctx.Table.InsertDefinition(symboltable.Info{
		Name:       node.Name(),
		Kind:       symboltable.KindVariable,
		Type:       varType,
		Const:      isConst,
		OriginSpan: node.Span(),
	}, ctx.scopeSpanAfter(node.Span()), false)

	return Result{PropagatesFailure: res.PropagatesFailure, EarlyReturnType: res.EarlyReturnType}
}

func analyzeSet(ctx *Context, node ast.Stmt) Result {
	info := ctx.Table.InsertReference(node.Name(), node.Span(), ctx.ResolveRemote, ctx.Diags)
	reportWriteTarget(ctx, node.Span(), node.Name(), info)

	rhs, _ := node.Init()
	res := expr.Analyze(ctx.Context, rhs, info.Type)
	return Result{PropagatesFailure: res.PropagatesFailure, EarlyReturnType: res.EarlyReturnType}
}

func reportWriteTarget(ctx *Context, span location.Span, name string, info symboltable.Info) {
	if info.Kind == symboltable.KindFunction {
		ctx.Diags.Collect(diag.NewIssue(diag.Error, diag.E_ASSIGN_FUNCTION,
			fmt.Sprintf("Cannot assign to function %q", name)).
			WithSpan(span).Build())
		return
	}
	if info.Const {
		ctx.Diags.Collect(diag.NewIssue(diag.Error, diag.E_ASSIGN_CONST,
			fmt.Sprintf("Cannot assign to constant %q", name)).
			WithSpan(span).Build())
	}
}

func isNumberKind(t types.Type) bool {
	return t.Kind() == types.KindNumber || t.Kind() == types.KindAny
}

// isShorthandAddOperand accepts `+=`'s wider operand set: Text, Number, or
// an Array of either, mirroring analyzer/expr's `+` operand rule.
func isShorthandAddOperand(t types.Type) bool {
	if isNumberKind(t) || t.Kind() == types.KindText {
		return true
	}
	if t.Kind() == types.KindArray {
		elem, _ := t.Elem()
		return isNumberKind(elem) || elem.Kind() == types.KindText
	}
	return false
}

func analyzeShorthand(ctx *Context, node ast.Stmt, verb string, accepts func(types.Type) bool) Result {
	info := ctx.Table.InsertReference(node.Name(), node.Span(), ctx.ResolveRemote, ctx.Diags)
	reportWriteTarget(ctx, node.Span(), node.Name(), info)

	if !accepts(info.Type) {
		ctx.Diags.Collect(diag.NewIssue(diag.Error, diag.E_BAD_OPERAND,
			fmt.Sprintf("Cannot %s variable of type %s", verb, info.Type)).
			WithSpan(node.Span()).Build())
	}

	rhs, _ := node.Init()
	res := expr.Analyze(ctx.Context, rhs, info.Type)
	return Result{PropagatesFailure: res.PropagatesFailure, EarlyReturnType: res.EarlyReturnType}
}

func analyzeEcho(ctx *Context, node ast.Stmt) Result {
	e, _ := node.Expr()
	res := expr.Analyze(ctx.Context, e, types.Any())
	return Result{PropagatesFailure: res.PropagatesFailure, EarlyReturnType: res.EarlyReturnType}
}

func analyzeReturn(ctx *Context, node ast.Stmt) Result {
	if !ctx.Scope.InFunction() {
		ctx.Diags.Collect(diag.NewIssue(diag.Error, diag.E_RETURN_OUTSIDE_FN,
			"Return statement outside of function").
			WithSpan(node.Span()).Build())
	}

	returnType := types.NullType()
	var propagates bool
	if e, ok := node.Expr(); ok {
		res := expr.Analyze(ctx.Context, e, types.Any())
		returnType = res.Type
		propagates = res.PropagatesFailure
	}
	return Result{PropagatesFailure: propagates, EarlyReturnType: &returnType}
}

func analyzeFail(ctx *Context, node ast.Stmt) Result {
	if !ctx.Scope.InFunctionOrMain() {
		ctx.Diags.Collect(diag.NewIssue(diag.Error, diag.E_FAIL_OUTSIDE_FN,
			"Fail statements can only be used inside of functions or the main block").
			WithSpan(node.Span()).Build())
	}
	if e, ok := node.Expr(); ok {
		expr.Analyze(ctx.Context, e, types.NumberType())
	}
	return Result{PropagatesFailure: true}
}

func analyzeLoopControl(ctx *Context, node ast.Stmt, verb string) Result {
	if !ctx.Scope.InLoop() {
		ctx.Diags.Collect(diag.NewIssue(diag.Error, diag.E_LOOP_CTRL_OUTSIDE_LOOP,
			fmt.Sprintf("%s statement outside of loop", verb)).
			WithSpan(node.Span()).Build())
	}
	return Result{}
}

func analyzeCd(ctx *Context, node ast.Stmt) Result {
	if path, ok := node.Expr(); ok {
		expr.Analyze(ctx.Context, path, types.TextType())
	}
	return Result{}
}

// analyzeMoveFiles handles Alpha040's `mv from to` statement: both paths
// are Text, and the move's own failable obligation is discharged the same
// way Command's is in analyzer/expr.
func analyzeMoveFiles(ctx *Context, node ast.Stmt) Result {
	if from, ok := node.From(); ok {
		expr.Analyze(ctx.Context, from, types.TextType())
	}
	if to, ok := node.To(); ok {
		expr.Analyze(ctx.Context, to, types.TextType())
	}

	handler, _ := node.FailureHandler()
	return dischargeObligation(ctx, node.Span(), node.Modifiers(), handler,
		diag.E_FAILABLE_UNHANDLED, "Moving files may fail and has no failure handler")
}

// analyzeDocString extends the current DocString accumulator frame, or
// pushes a new one, so accumulated documentation text is available when
// the enclosing global analyzer reaches the next function definition.
func analyzeDocString(ctx *Context, node ast.Stmt) {
	if top, ok := ctx.Scope.DocAccumulator(); ok {
		rest, _ := ctx.Scope.Pop()
		ctx.Scope = rest.Push(top.WithDocText(node.DocText()))
		return
	}
	ctx.Scope = ctx.Scope.Push(scopestack.DocStringFrame(node.DocText()))
}

// dischargeObligation mirrors analyzer/expr's rule of the same name for a
// statement-level failable obligation (MoveFiles): a HandleBlock delegates
// back through ctx.AnalyzeHandlerBlock (which analyzer/global wires to
// this very package, so a handler body is analyzed by the same statement
// rules as everything else), a HandlePropagate requires an enclosing
// function or main block and always propagates, and the absence of either
// discharges quietly only under an enclosing or call-site Unsafe/Trust
// modifier.
func dischargeObligation(ctx *Context, span location.Span, modifiers scopestack.Modifier, handler *ast.FailureHandler, code diag.Code, message string) Result {
	if handler != nil {
		switch handler.Kind() {
		case ast.HandleBlock:
			if ctx.AnalyzeHandlerBlock != nil {
				outcome := ctx.AnalyzeHandlerBlock(ctx.Context, handler.Body())
				return Result{PropagatesFailure: outcome.PropagatesFailure, EarlyReturnType: outcome.EarlyReturnType}
			}
			return Result{}
		case ast.HandlePropagate:
			if !ctx.Scope.InFunctionOrMain() {
				ctx.Diags.Collect(diag.NewIssue(diag.Error, diag.E_PROPAGATE_OUTSIDE_FN,
					"`?` propagation is only valid inside a function or the main block").
					WithSpan(handler.Span()).
					Build())
			}
			return Result{PropagatesFailure: true}
		}
	}

	if modifiers.Has(scopestack.ModifierUnsafe) || modifiers.Has(scopestack.ModifierTrust) || ctx.Scope.HasUnsafeOrTrust() {
		return Result{}
	}

	ctx.Diags.Collect(diag.NewIssue(diag.Error, code, message).WithSpan(span).Build())
	return Result{}
}
