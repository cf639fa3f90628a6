package ast

import (
	"github.com/amber-lang/amber-lsp-analyzer/location"
	"github.com/amber-lang/amber-lsp-analyzer/scopestack"
)

// HandlerKind distinguishes a `failed { ... }` block handler from a bare
// `propagate` (spelled `?` in source) marker.
type HandlerKind int

const (
	HandleBlock HandlerKind = iota
	HandlePropagate
)

// FailureHandler is attached to a Command or FunctionInvocation expression,
// or to a MoveFiles statement, to discharge the failable obligation.
type FailureHandler struct {
	kind  HandlerKind
	body  []Stmt // HandleBlock
	span  location.Span
}

func NewHandleBlock(span location.Span, body []Stmt) *FailureHandler {
	return &FailureHandler{kind: HandleBlock, body: body, span: span}
}

func NewPropagateHandler(span location.Span) *FailureHandler {
	return &FailureHandler{kind: HandlePropagate, span: span}
}

func (h *FailureHandler) Kind() HandlerKind   { return h.kind }
func (h *FailureHandler) Body() []Stmt        { return h.body }
func (h *FailureHandler) Span() location.Span { return h.span }

// StmtKind identifies which statement node kind a [Stmt] holds, matching
// the node catalogue in spec.md §4.5 and the Alpha040 additions (Cd,
// MoveFiles, DocString) called out in spec.md §6.
type StmtKind int

const (
	StmtBlock StmtKind = iota
	StmtIfChain
	StmtInfiniteLoop
	StmtIterLoop
	StmtVariableInit
	StmtConstInit
	StmtVariableSet
	StmtShorthandAdd // +=
	StmtShorthandSub // -=
	StmtShorthandMul // *=
	StmtShorthandDiv // /=
	StmtShorthandMod // %=
	StmtEcho
	StmtReturn
	StmtFail
	StmtBreak
	StmtContinue
	StmtCd         // Alpha040
	StmtMoveFiles   // Alpha040
	StmtDocString   // Alpha040
	StmtComment
	StmtShebang // Alpha035+
	StmtErrorNode
)

// IfBranch is one `cond { body }` / `cond: stmt` arm of an IfChain, or the
// trailing `else` arm when Cond is absent.
type IfBranch struct {
	Cond *Expr
	Body []Stmt
}

// Stmt is a single statement-tree node. Value type with unexported fields;
// construct values with the package-level New* constructors.
type Stmt struct {
	kind StmtKind
	span location.Span

	modifiers scopestack.Modifier // StmtBlock

	body    []Stmt // StmtBlock
	ifArms  []IfBranch

	loopNames []string // StmtIterLoop: value name, or [index, value]
	iterable  *Expr     // StmtIterLoop

	name string // StmtVariableInit/ConstInit/VariableSet/StmtCd(target var unused)/loop decl
	init *Expr   // StmtVariableInit/ConstInit initializer, StmtVariableSet rhs, shorthand rhs
	declaredType string // StmtVariableInit: explicit `: Type` annotation, empty if inferred

	expr *Expr // StmtEcho, StmtReturn, StmtFail, StmtCd path

	from, to *Expr           // StmtMoveFiles
	failed   *FailureHandler // StmtMoveFiles handler (`failed { }` or `?`)

	docText string // StmtDocString, StmtComment
}

func (s Stmt) Kind() StmtKind         { return s.kind }
func (s Stmt) Span() location.Span    { return s.span }
func (s Stmt) Modifiers() scopestack.Modifier { return s.modifiers }
func (s Stmt) Body() []Stmt           { return s.body }
func (s Stmt) IfArms() []IfBranch     { return s.ifArms }
func (s Stmt) LoopNames() []string    { return s.loopNames }
func (s Stmt) Name() string           { return s.name }
func (s Stmt) DeclaredType() string   { return s.declaredType }
func (s Stmt) DocText() string        { return s.docText }

func (s Stmt) Iterable() (Expr, bool) { return deref(s.iterable) }
func (s Stmt) Init() (Expr, bool)     { return deref(s.init) }
func (s Stmt) Expr() (Expr, bool)     { return deref(s.expr) }
func (s Stmt) From() (Expr, bool)     { return deref(s.from) }
func (s Stmt) To() (Expr, bool)       { return deref(s.to) }

func (s Stmt) FailureHandler() (*FailureHandler, bool) {
	return s.failed, s.failed != nil
}

func NewBlock(span location.Span, modifiers scopestack.Modifier, body []Stmt) Stmt {
	return Stmt{kind: StmtBlock, span: span, modifiers: modifiers, body: body}
}

func NewIfChain(span location.Span, arms []IfBranch) Stmt {
	return Stmt{kind: StmtIfChain, span: span, ifArms: arms}
}

func NewInfiniteLoop(span location.Span, body []Stmt) Stmt {
	return Stmt{kind: StmtInfiniteLoop, span: span, body: body}
}

func NewIterLoop(span location.Span, names []string, iterable Expr, body []Stmt) Stmt {
	return Stmt{kind: StmtIterLoop, span: span, loopNames: names, iterable: &iterable, body: body}
}

func NewVariableInit(span location.Span, name, declaredType string, init Expr) Stmt {
	return Stmt{kind: StmtVariableInit, span: span, name: name, declaredType: declaredType, init: &init}
}

func NewConstInit(span location.Span, name, declaredType string, init Expr) Stmt {
	return Stmt{kind: StmtConstInit, span: span, name: name, declaredType: declaredType, init: &init}
}

func NewVariableSet(span location.Span, name string, rhs Expr) Stmt {
	return Stmt{kind: StmtVariableSet, span: span, name: name, init: &rhs}
}

func newShorthand(kind StmtKind, span location.Span, name string, rhs Expr) Stmt {
	return Stmt{kind: kind, span: span, name: name, init: &rhs}
}

func NewShorthandAdd(span location.Span, name string, rhs Expr) Stmt {
	return newShorthand(StmtShorthandAdd, span, name, rhs)
}
func NewShorthandSub(span location.Span, name string, rhs Expr) Stmt {
	return newShorthand(StmtShorthandSub, span, name, rhs)
}
func NewShorthandMul(span location.Span, name string, rhs Expr) Stmt {
	return newShorthand(StmtShorthandMul, span, name, rhs)
}
func NewShorthandDiv(span location.Span, name string, rhs Expr) Stmt {
	return newShorthand(StmtShorthandDiv, span, name, rhs)
}
func NewShorthandMod(span location.Span, name string, rhs Expr) Stmt {
	return newShorthand(StmtShorthandMod, span, name, rhs)
}

func NewEcho(span location.Span, e Expr) Stmt {
	return Stmt{kind: StmtEcho, span: span, expr: &e}
}

func NewReturn(span location.Span, e *Expr) Stmt {
	return Stmt{kind: StmtReturn, span: span, expr: e}
}

func NewFail(span location.Span, e *Expr) Stmt {
	return Stmt{kind: StmtFail, span: span, expr: e}
}

func NewBreak(span location.Span) Stmt    { return Stmt{kind: StmtBreak, span: span} }
func NewContinue(span location.Span) Stmt { return Stmt{kind: StmtContinue, span: span} }

func NewCd(span location.Span, path Expr) Stmt {
	return Stmt{kind: StmtCd, span: span, expr: &path}
}

func NewMoveFiles(span location.Span, modifiers scopestack.Modifier, from, to Expr, handler *FailureHandler) Stmt {
	return Stmt{kind: StmtMoveFiles, span: span, modifiers: modifiers, from: &from, to: &to, failed: handler}
}

func NewDocString(span location.Span, text string) Stmt {
	return Stmt{kind: StmtDocString, span: span, docText: text}
}

func NewComment(span location.Span, text string) Stmt {
	return Stmt{kind: StmtComment, span: span, docText: text}
}

func NewShebang(span location.Span, text string) Stmt {
	return Stmt{kind: StmtShebang, span: span, docText: text}
}

func NewErrorStmt(span location.Span) Stmt {
	return Stmt{kind: StmtErrorNode, span: span}
}
