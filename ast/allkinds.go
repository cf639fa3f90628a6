package ast

// AllExprKinds returns every defined ExprKind, used by the drift-check
// test to ensure new node kinds added to expr.go are never forgotten here.
func AllExprKinds() []ExprKind {
	return []ExprKind{
		ExprNumber, ExprBoolean, ExprNull, ExprText, ExprVar, ExprParentheses,
		ExprAdd, ExprSubtract, ExprMultiply, ExprDivide, ExprModulo, ExprNeg,
		ExprAnd, ExprOr, ExprNot, ExprEq, ExprNeq, ExprLt, ExprLe, ExprGt, ExprGe,
		ExprCast, ExprIs, ExprNameof, ExprArrayLit, ExprRange, ExprTernary,
		ExprArrayIndex, ExprStatus, ExprExit, ExprCommand, ExprFunctionInvocation,
		ExprErrorNode,
	}
}

// AllStmtKinds returns every defined StmtKind, used by the drift-check
// test to ensure new node kinds added to stmt.go are never forgotten here.
func AllStmtKinds() []StmtKind {
	return []StmtKind{
		StmtBlock, StmtIfChain, StmtInfiniteLoop, StmtIterLoop, StmtVariableInit,
		StmtConstInit, StmtVariableSet, StmtShorthandAdd, StmtShorthandSub,
		StmtShorthandMul, StmtShorthandDiv, StmtShorthandMod, StmtEcho, StmtReturn,
		StmtFail, StmtBreak, StmtContinue, StmtCd, StmtMoveFiles, StmtDocString,
		StmtComment, StmtShebang, StmtErrorNode,
	}
}
