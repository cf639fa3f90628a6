package ast

import (
	"github.com/amber-lang/amber-lsp-analyzer/location"
	"github.com/amber-lang/amber-lsp-analyzer/scopestack"
)

// ExprKind identifies which expression node kind a [Expr] holds, matching
// the node catalogue in spec.md §4.4.
type ExprKind int

const (
	ExprNumber ExprKind = iota
	ExprBoolean
	ExprNull
	ExprText              // interpolated string; Parts holds inner expressions
	ExprVar               // variable reference; Name holds the identifier
	ExprParentheses       // Operand holds the wrapped expression
	ExprAdd               // Left, Right
	ExprSubtract          // Left, Right
	ExprMultiply          // Left, Right
	ExprDivide            // Left, Right
	ExprModulo            // Left, Right
	ExprNeg               // Operand
	ExprAnd               // Left, Right
	ExprOr                // Left, Right
	ExprNot               // Operand
	ExprEq                // Left, Right
	ExprNeq               // Left, Right
	ExprLt                // Left, Right
	ExprLe                // Left, Right
	ExprGt                // Left, Right
	ExprGe                // Left, Right
	ExprCast              // Operand, TypeName
	ExprIs                // Operand, TypeName
	ExprNameof            // Operand
	ExprArrayLit          // Parts holds the elements
	ExprRange             // Left=from, Right=to, Inclusive
	ExprTernary           // Cond, Then, Else
	ExprArrayIndex        // Left=array, Right=index
	ExprStatus            // no children; reads the exit-status variable
	ExprExit              // Operand holds the optional exit code
	ExprCommand           // Parts=interpolated segments, Modifiers, FailureHandler
	ExprFunctionInvocation // Name, Args, Modifiers, FailureHandler
	ExprErrorNode          // parser-error recovery sentinel
)

// NumberLiteral is the parsed value of an ExprNumber node.
type NumberLiteral float64

// Expr is a single expression-tree node. Expr is a value type with
// unexported fields; construct values with the package-level New*
// constructors.
type Expr struct {
	kind ExprKind
	span location.Span

	name     string // ExprVar, ExprFunctionInvocation
	number   NumberLiteral
	boolean  bool
	typeName string // ExprCast, ExprIs: the Amber surface type name (e.g. "Num", "[Text]")

	operand *Expr // unary children: Parentheses, Neg, Not, Cast, Is, Nameof, Exit(code)
	left    *Expr // binary left, or Range.From, or ArrayIndex.Array
	right   *Expr // binary right, or Range.To, or ArrayIndex.Index
	cond    *Expr // Ternary
	then    *Expr // Ternary
	els     *Expr // Ternary

	inclusive bool // ExprRange: a..=b vs a..b

	parts []Expr // ExprText interpolations, ExprArrayLit elements, ExprCommand segments
	args  []Expr // ExprFunctionInvocation arguments

	modifiers      scopestack.Modifier
	failureHandler *FailureHandler
}

func (e Expr) Kind() ExprKind       { return e.kind }
func (e Expr) Span() location.Span { return e.span }
func (e Expr) Name() string        { return e.name }
func (e Expr) Number() NumberLiteral { return e.number }
func (e Expr) Boolean() bool        { return e.boolean }
func (e Expr) TypeName() string     { return e.typeName }
func (e Expr) Inclusive() bool      { return e.inclusive }

// Operand returns the single child for unary-shaped nodes.
func (e Expr) Operand() (Expr, bool) {
	if e.operand == nil {
		return Expr{}, false
	}
	return *e.operand, true
}

// Left returns the left/primary child for binary-shaped nodes.
func (e Expr) Left() (Expr, bool) {
	if e.left == nil {
		return Expr{}, false
	}
	return *e.left, true
}

// Right returns the right/secondary child for binary-shaped nodes.
func (e Expr) Right() (Expr, bool) {
	if e.right == nil {
		return Expr{}, false
	}
	return *e.right, true
}

// Cond, Then, Els return the Ternary node's three children.
func (e Expr) Cond() (Expr, bool) { return deref(e.cond) }
func (e Expr) Then() (Expr, bool) { return deref(e.then) }
func (e Expr) Els() (Expr, bool)  { return deref(e.els) }

func deref(p *Expr) (Expr, bool) {
	if p == nil {
		return Expr{}, false
	}
	return *p, true
}

// Parts returns the interpolation/element/segment list for Text, ArrayLit, and Command.
func (e Expr) Parts() []Expr { return e.parts }

// Args returns the call arguments for FunctionInvocation.
func (e Expr) Args() []Expr { return e.args }

// Modifiers returns the active modifiers for Command and FunctionInvocation.
func (e Expr) Modifiers() scopestack.Modifier { return e.modifiers }

// FailureHandler returns the attached `? | failed { }` / `failed { }` handler, if any.
func (e Expr) FailureHandler() (*FailureHandler, bool) {
	return e.failureHandler, e.failureHandler != nil
}

func NewNumber(span location.Span, v NumberLiteral) Expr {
	return Expr{kind: ExprNumber, span: span, number: v}
}

func NewBoolean(span location.Span, v bool) Expr {
	return Expr{kind: ExprBoolean, span: span, boolean: v}
}

func NewNull(span location.Span) Expr {
	return Expr{kind: ExprNull, span: span}
}

func NewText(span location.Span, interpolations []Expr) Expr {
	return Expr{kind: ExprText, span: span, parts: interpolations}
}

func NewVar(span location.Span, name string) Expr {
	return Expr{kind: ExprVar, span: span, name: name}
}

func NewParentheses(span location.Span, inner Expr) Expr {
	return Expr{kind: ExprParentheses, span: span, operand: &inner}
}

func newBinary(kind ExprKind, span location.Span, left, right Expr) Expr {
	return Expr{kind: kind, span: span, left: &left, right: &right}
}

func NewAdd(span location.Span, a, b Expr) Expr      { return newBinary(ExprAdd, span, a, b) }
func NewSubtract(span location.Span, a, b Expr) Expr { return newBinary(ExprSubtract, span, a, b) }
func NewMultiply(span location.Span, a, b Expr) Expr { return newBinary(ExprMultiply, span, a, b) }
func NewDivide(span location.Span, a, b Expr) Expr   { return newBinary(ExprDivide, span, a, b) }
func NewModulo(span location.Span, a, b Expr) Expr   { return newBinary(ExprModulo, span, a, b) }
func NewAnd(span location.Span, a, b Expr) Expr      { return newBinary(ExprAnd, span, a, b) }
func NewOr(span location.Span, a, b Expr) Expr       { return newBinary(ExprOr, span, a, b) }
func NewEq(span location.Span, a, b Expr) Expr       { return newBinary(ExprEq, span, a, b) }
func NewNeq(span location.Span, a, b Expr) Expr      { return newBinary(ExprNeq, span, a, b) }
func NewLt(span location.Span, a, b Expr) Expr       { return newBinary(ExprLt, span, a, b) }
func NewLe(span location.Span, a, b Expr) Expr       { return newBinary(ExprLe, span, a, b) }
func NewGt(span location.Span, a, b Expr) Expr       { return newBinary(ExprGt, span, a, b) }
func NewGe(span location.Span, a, b Expr) Expr       { return newBinary(ExprGe, span, a, b) }

func NewNeg(span location.Span, operand Expr) Expr {
	return Expr{kind: ExprNeg, span: span, operand: &operand}
}

func NewNot(span location.Span, operand Expr) Expr {
	return Expr{kind: ExprNot, span: span, operand: &operand}
}

func NewCast(span location.Span, operand Expr, typeName string) Expr {
	return Expr{kind: ExprCast, span: span, operand: &operand, typeName: typeName}
}

func NewIs(span location.Span, operand Expr, typeName string) Expr {
	return Expr{kind: ExprIs, span: span, operand: &operand, typeName: typeName}
}

func NewNameof(span location.Span, operand Expr) Expr {
	return Expr{kind: ExprNameof, span: span, operand: &operand}
}

func NewArrayLit(span location.Span, elements []Expr) Expr {
	return Expr{kind: ExprArrayLit, span: span, parts: elements}
}

func NewRange(span location.Span, from, to Expr, inclusive bool) Expr {
	return Expr{kind: ExprRange, span: span, left: &from, right: &to, inclusive: inclusive}
}

func NewTernary(span location.Span, cond, then, els Expr) Expr {
	return Expr{kind: ExprTernary, span: span, cond: &cond, then: &then, els: &els}
}

func NewArrayIndex(span location.Span, array, index Expr) Expr {
	return Expr{kind: ExprArrayIndex, span: span, left: &array, right: &index}
}

func NewStatus(span location.Span) Expr {
	return Expr{kind: ExprStatus, span: span}
}

func NewExit(span location.Span, code *Expr) Expr {
	return Expr{kind: ExprExit, span: span, operand: code}
}

func NewCommand(span location.Span, modifiers scopestack.Modifier, parts []Expr, handler *FailureHandler) Expr {
	return Expr{kind: ExprCommand, span: span, modifiers: modifiers, parts: parts, failureHandler: handler}
}

func NewFunctionInvocation(span location.Span, modifiers scopestack.Modifier, name string, args []Expr, handler *FailureHandler) Expr {
	return Expr{kind: ExprFunctionInvocation, span: span, modifiers: modifiers, name: name, args: args, failureHandler: handler}
}

func NewErrorExpr(span location.Span) Expr {
	return Expr{kind: ExprErrorNode, span: span}
}
