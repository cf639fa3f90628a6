// Package astio decodes the JSON wire format amber-analyzer's "analyze"
// command reads from disk into ast.File values.
//
// The lexer and parser that would normally produce an ast.File are
// explicitly out of scope for this analyzer (spec.md §1: "the lexer and
// parser themselves... are producers of the AST the analyzer consumes").
// astio stands in for that producer at the CLI boundary: it is the
// external collaborator's wire format, not a parser for Amber source
// text. A real deployment would have its parser emit this same shape, or
// the driver would be embedded in a process that already holds an
// in-memory ast.File and skips astio entirely.
package astio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/amber-lang/amber-lsp-analyzer/ast"
	"github.com/amber-lang/amber-lsp-analyzer/location"
	"github.com/amber-lang/amber-lsp-analyzer/scopestack"
)

// Decode reads a JSON-encoded file document from r and builds the
// corresponding ast.File, attaching every span to source.
func Decode(r io.Reader, source location.SourceID) (ast.File, error) {
	var doc fileDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return ast.File{}, fmt.Errorf("astio: decode: %w", err)
	}
	return doc.build(source)
}

type spanDoc struct {
	StartLine int `json:"startLine"`
	StartCol  int `json:"startCol"`
	EndLine   int `json:"endLine"`
	EndCol    int `json:"endCol"`
	StartByte int `json:"startByte"`
	EndByte   int `json:"endByte"`
}

func (d spanDoc) build(source location.SourceID) location.Span {
	if d.StartByte == 0 && d.EndByte == 0 && d.StartLine == 0 {
		return location.Span{}
	}
	return location.RangeWithBytes(source, d.StartLine, d.StartCol, d.StartByte, d.EndLine, d.EndCol, d.EndByte)
}

type fileDoc struct {
	Version string     `json:"version"`
	Items   []itemDoc  `json:"items"`
}

func (d fileDoc) build(source location.SourceID) (ast.File, error) {
	version, err := parseGrammarVersion(d.Version)
	if err != nil {
		return ast.File{}, err
	}

	items := make([]ast.GlobalItem, 0, len(d.Items))
	for i, item := range d.Items {
		built, err := item.build(source)
		if err != nil {
			return ast.File{}, fmt.Errorf("astio: item %d: %w", i, err)
		}
		items = append(items, built)
	}
	return ast.File{Version: version, Items: items}, nil
}

func parseGrammarVersion(s string) (ast.GrammarVersion, error) {
	switch s {
	case "", "alpha040":
		return ast.Alpha040, nil
	case "alpha035":
		return ast.Alpha035, nil
	case "alpha034":
		return ast.Alpha034, nil
	default:
		return 0, fmt.Errorf("astio: unknown grammar version %q", s)
	}
}

type paramDoc struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	ByRef    bool     `json:"byRef"`
	Optional bool     `json:"optional"`
	Default  *exprDoc `json:"default"`
	Span     spanDoc  `json:"span"`
	NameSpan spanDoc  `json:"nameSpan"`
}

func (d paramDoc) build(source location.SourceID) (ast.Parameter, error) {
	p := ast.Parameter{
		Name:     d.Name,
		TypeName: d.Type,
		ByRef:    d.ByRef,
		Optional: d.Optional,
		Span:     d.Span.build(source),
		NameSpan: d.NameSpan.build(source),
	}
	if d.Default != nil {
		built, err := d.Default.build(source)
		if err != nil {
			return ast.Parameter{}, err
		}
		p.Default = &built
	}
	return p, nil
}

type itemDoc struct {
	Kind string `json:"kind"`
	Span spanDoc `json:"span"`

	// function
	Name       string     `json:"name"`
	Params     []paramDoc `json:"params"`
	ReturnType string     `json:"returnType"`
	Body       []stmtDoc  `json:"body"`
	Public     bool       `json:"public"`
	Flags      int        `json:"flags"`
	Docs       string     `json:"docs"`

	// import
	Path    string            `json:"path"`
	Names   []string          `json:"names"`
	Aliases map[string]string `json:"aliases"`

	// main
	ArgsName string `json:"argsName"`

	// free_statement
	Statement *stmtDoc `json:"statement"`
}

func (d itemDoc) build(source location.SourceID) (ast.GlobalItem, error) {
	span := d.Span.build(source)
	switch d.Kind {
	case "function":
		params := make([]ast.Parameter, 0, len(d.Params))
		for _, p := range d.Params {
			built, err := p.build(source)
			if err != nil {
				return ast.GlobalItem{}, err
			}
			params = append(params, built)
		}
		body, err := buildStmts(d.Body, source)
		if err != nil {
			return ast.GlobalItem{}, err
		}
		return ast.NewFunctionDefinition(span, d.Name, params, d.ReturnType, body, d.Public, d.Flags, d.Docs), nil
	case "import_all":
		return ast.NewImportAll(span, d.Path, d.Public), nil
	case "import_specific":
		return ast.NewImportSpecific(span, d.Path, d.Names, d.Aliases, d.Public), nil
	case "main":
		body, err := buildStmts(d.Body, source)
		if err != nil {
			return ast.GlobalItem{}, err
		}
		return ast.NewMain(span, d.ArgsName, body), nil
	case "free_statement":
		if d.Statement == nil {
			return ast.GlobalItem{}, fmt.Errorf("astio: free_statement missing statement")
		}
		s, err := d.Statement.build(source)
		if err != nil {
			return ast.GlobalItem{}, err
		}
		return ast.NewFreeStatement(span, s), nil
	default:
		return ast.GlobalItem{}, fmt.Errorf("astio: unknown global item kind %q", d.Kind)
	}
}

type ifBranchDoc struct {
	Cond *exprDoc  `json:"cond"`
	Body []stmtDoc `json:"body"`
}

type stmtDoc struct {
	Kind string  `json:"kind"`
	Span spanDoc `json:"span"`

	Modifiers int       `json:"modifiers"`
	Body      []stmtDoc `json:"body"`
	IfArms    []ifBranchDoc `json:"ifArms"`

	LoopNames []string `json:"loopNames"`
	Iterable  *exprDoc `json:"iterable"`

	Name         string   `json:"name"`
	Init         *exprDoc `json:"init"`
	DeclaredType string   `json:"declaredType"`

	Expr *exprDoc `json:"expr"`

	From    *exprDoc         `json:"from"`
	To      *exprDoc         `json:"to"`
	Handler *failureHandlerDoc `json:"handler"`

	Text string `json:"text"`
}

func (d stmtDoc) build(source location.SourceID) (ast.Stmt, error) {
	span := d.Span.build(source)
	mod := scopestack.Modifier(d.Modifiers)

	switch d.Kind {
	case "block":
		body, err := buildStmts(d.Body, source)
		if err != nil {
			return ast.Stmt{}, err
		}
		return ast.NewBlock(span, mod, body), nil
	case "if_chain":
		arms := make([]ast.IfBranch, 0, len(d.IfArms))
		for _, a := range d.IfArms {
			branch := ast.IfBranch{}
			if a.Cond != nil {
				c, err := a.Cond.build(source)
				if err != nil {
					return ast.Stmt{}, err
				}
				branch.Cond = &c
			}
			body, err := buildStmts(a.Body, source)
			if err != nil {
				return ast.Stmt{}, err
			}
			branch.Body = body
			arms = append(arms, branch)
		}
		return ast.NewIfChain(span, arms), nil
	case "infinite_loop":
		body, err := buildStmts(d.Body, source)
		if err != nil {
			return ast.Stmt{}, err
		}
		return ast.NewInfiniteLoop(span, body), nil
	case "iter_loop":
		if d.Iterable == nil {
			return ast.Stmt{}, fmt.Errorf("astio: iter_loop missing iterable")
		}
		iterable, err := d.Iterable.build(source)
		if err != nil {
			return ast.Stmt{}, err
		}
		body, err := buildStmts(d.Body, source)
		if err != nil {
			return ast.Stmt{}, err
		}
		return ast.NewIterLoop(span, d.LoopNames, iterable, body), nil
	case "variable_init", "const_init":
		init, err := requireExpr(d.Init, source, "init")
		if err != nil {
			return ast.Stmt{}, err
		}
		if d.Kind == "const_init" {
			return ast.NewConstInit(span, d.Name, d.DeclaredType, init), nil
		}
		return ast.NewVariableInit(span, d.Name, d.DeclaredType, init), nil
	case "variable_set":
		rhs, err := requireExpr(d.Init, source, "init")
		if err != nil {
			return ast.Stmt{}, err
		}
		return ast.NewVariableSet(span, d.Name, rhs), nil
	case "shorthand_add", "shorthand_sub", "shorthand_mul", "shorthand_div", "shorthand_mod":
		rhs, err := requireExpr(d.Init, source, "init")
		if err != nil {
			return ast.Stmt{}, err
		}
		switch d.Kind {
		case "shorthand_add":
			return ast.NewShorthandAdd(span, d.Name, rhs), nil
		case "shorthand_sub":
			return ast.NewShorthandSub(span, d.Name, rhs), nil
		case "shorthand_mul":
			return ast.NewShorthandMul(span, d.Name, rhs), nil
		case "shorthand_div":
			return ast.NewShorthandDiv(span, d.Name, rhs), nil
		default:
			return ast.NewShorthandMod(span, d.Name, rhs), nil
		}
	case "echo":
		e, err := requireExpr(d.Expr, source, "expr")
		if err != nil {
			return ast.Stmt{}, err
		}
		return ast.NewEcho(span, e), nil
	case "return":
		e, err := optionalExpr(d.Expr, source)
		if err != nil {
			return ast.Stmt{}, err
		}
		return ast.NewReturn(span, e), nil
	case "fail":
		e, err := optionalExpr(d.Expr, source)
		if err != nil {
			return ast.Stmt{}, err
		}
		return ast.NewFail(span, e), nil
	case "break":
		return ast.NewBreak(span), nil
	case "continue":
		return ast.NewContinue(span), nil
	case "cd":
		e, err := requireExpr(d.Expr, source, "expr")
		if err != nil {
			return ast.Stmt{}, err
		}
		return ast.NewCd(span, e), nil
	case "move_files":
		from, err := requireExpr(d.From, source, "from")
		if err != nil {
			return ast.Stmt{}, err
		}
		to, err := requireExpr(d.To, source, "to")
		if err != nil {
			return ast.Stmt{}, err
		}
		handler, err := d.Handler.build(source)
		if err != nil {
			return ast.Stmt{}, err
		}
		return ast.NewMoveFiles(span, mod, from, to, handler), nil
	case "doc_string":
		return ast.NewDocString(span, d.Text), nil
	case "comment":
		return ast.NewComment(span, d.Text), nil
	case "shebang":
		return ast.NewShebang(span, d.Text), nil
	case "error":
		return ast.NewErrorStmt(span), nil
	default:
		return ast.Stmt{}, fmt.Errorf("astio: unknown statement kind %q", d.Kind)
	}
}

func buildStmts(docs []stmtDoc, source location.SourceID) ([]ast.Stmt, error) {
	out := make([]ast.Stmt, 0, len(docs))
	for i, d := range docs {
		s, err := d.build(source)
		if err != nil {
			return nil, fmt.Errorf("statement %d: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

type failureHandlerDoc struct {
	Kind string    `json:"kind"` // "block" or "propagate"
	Body []stmtDoc `json:"body"`
	Span spanDoc   `json:"span"`
}

func (d *failureHandlerDoc) build(source location.SourceID) (*ast.FailureHandler, error) {
	if d == nil {
		return nil, nil
	}
	span := d.Span.build(source)
	switch d.Kind {
	case "propagate":
		return ast.NewPropagateHandler(span), nil
	case "block", "":
		body, err := buildStmts(d.Body, source)
		if err != nil {
			return nil, err
		}
		return ast.NewHandleBlock(span, body), nil
	default:
		return nil, fmt.Errorf("astio: unknown failure handler kind %q", d.Kind)
	}
}

type exprDoc struct {
	Kind string  `json:"kind"`
	Span spanDoc `json:"span"`

	Number  float64 `json:"number"`
	Boolean bool    `json:"boolean"`
	Name    string  `json:"name"`

	Operand *exprDoc `json:"operand"`
	Left    *exprDoc `json:"left"`
	Right   *exprDoc `json:"right"`
	Cond    *exprDoc `json:"cond"`
	Then    *exprDoc `json:"then"`
	Else    *exprDoc `json:"else"`

	Inclusive bool `json:"inclusive"`

	Parts []exprDoc `json:"parts"`
	Args  []exprDoc `json:"args"`

	TypeName  string             `json:"typeName"`
	Modifiers int                `json:"modifiers"`
	Handler   *failureHandlerDoc `json:"handler"`
}

func requireExpr(d *exprDoc, source location.SourceID, field string) (ast.Expr, error) {
	if d == nil {
		return ast.Expr{}, fmt.Errorf("astio: missing required expression field %q", field)
	}
	return d.build(source)
}

func optionalExpr(d *exprDoc, source location.SourceID) (*ast.Expr, error) {
	if d == nil {
		return nil, nil
	}
	built, err := d.build(source)
	if err != nil {
		return nil, err
	}
	return &built, nil
}

func buildExprs(docs []exprDoc, source location.SourceID) ([]ast.Expr, error) {
	out := make([]ast.Expr, 0, len(docs))
	for i, d := range docs {
		e, err := d.build(source)
		if err != nil {
			return nil, fmt.Errorf("expr %d: %w", i, err)
		}
		out = append(out, e)
	}
	return out, nil
}

func (d exprDoc) build(source location.SourceID) (ast.Expr, error) {
	span := d.Span.build(source)
	mod := scopestack.Modifier(d.Modifiers)

	binary := func(f func(location.Span, ast.Expr, ast.Expr) ast.Expr) (ast.Expr, error) {
		left, err := requireExpr(d.Left, source, "left")
		if err != nil {
			return ast.Expr{}, err
		}
		right, err := requireExpr(d.Right, source, "right")
		if err != nil {
			return ast.Expr{}, err
		}
		return f(span, left, right), nil
	}
	unary := func(f func(location.Span, ast.Expr) ast.Expr) (ast.Expr, error) {
		operand, err := requireExpr(d.Operand, source, "operand")
		if err != nil {
			return ast.Expr{}, err
		}
		return f(span, operand), nil
	}

	switch d.Kind {
	case "number":
		return ast.NewNumber(span, ast.NumberLiteral(d.Number)), nil
	case "boolean":
		return ast.NewBoolean(span, d.Boolean), nil
	case "null":
		return ast.NewNull(span), nil
	case "text":
		parts, err := buildExprs(d.Parts, source)
		if err != nil {
			return ast.Expr{}, err
		}
		return ast.NewText(span, parts), nil
	case "var":
		return ast.NewVar(span, d.Name), nil
	case "parentheses":
		return unary(ast.NewParentheses)
	case "add":
		return binary(ast.NewAdd)
	case "subtract":
		return binary(ast.NewSubtract)
	case "multiply":
		return binary(ast.NewMultiply)
	case "divide":
		return binary(ast.NewDivide)
	case "modulo":
		return binary(ast.NewModulo)
	case "neg":
		return unary(ast.NewNeg)
	case "and":
		return binary(ast.NewAnd)
	case "or":
		return binary(ast.NewOr)
	case "not":
		return unary(ast.NewNot)
	case "eq":
		return binary(ast.NewEq)
	case "neq":
		return binary(ast.NewNeq)
	case "lt":
		return binary(ast.NewLt)
	case "le":
		return binary(ast.NewLe)
	case "gt":
		return binary(ast.NewGt)
	case "ge":
		return binary(ast.NewGe)
	case "cast":
		operand, err := requireExpr(d.Operand, source, "operand")
		if err != nil {
			return ast.Expr{}, err
		}
		return ast.NewCast(span, operand, d.TypeName), nil
	case "is":
		operand, err := requireExpr(d.Operand, source, "operand")
		if err != nil {
			return ast.Expr{}, err
		}
		return ast.NewIs(span, operand, d.TypeName), nil
	case "nameof":
		return unary(ast.NewNameof)
	case "array_lit":
		elems, err := buildExprs(d.Parts, source)
		if err != nil {
			return ast.Expr{}, err
		}
		return ast.NewArrayLit(span, elems), nil
	case "range":
		from, err := requireExpr(d.Left, source, "left")
		if err != nil {
			return ast.Expr{}, err
		}
		to, err := requireExpr(d.Right, source, "right")
		if err != nil {
			return ast.Expr{}, err
		}
		return ast.NewRange(span, from, to, d.Inclusive), nil
	case "ternary":
		cond, err := requireExpr(d.Cond, source, "cond")
		if err != nil {
			return ast.Expr{}, err
		}
		then, err := requireExpr(d.Then, source, "then")
		if err != nil {
			return ast.Expr{}, err
		}
		els, err := requireExpr(d.Else, source, "else")
		if err != nil {
			return ast.Expr{}, err
		}
		return ast.NewTernary(span, cond, then, els), nil
	case "array_index":
		return binary(ast.NewArrayIndex)
	case "status":
		return ast.NewStatus(span), nil
	case "exit":
		code, err := optionalExpr(d.Operand, source)
		if err != nil {
			return ast.Expr{}, err
		}
		return ast.NewExit(span, code), nil
	case "command":
		parts, err := buildExprs(d.Parts, source)
		if err != nil {
			return ast.Expr{}, err
		}
		handler, err := d.Handler.build(source)
		if err != nil {
			return ast.Expr{}, err
		}
		return ast.NewCommand(span, mod, parts, handler), nil
	case "call":
		args, err := buildExprs(d.Args, source)
		if err != nil {
			return ast.Expr{}, err
		}
		handler, err := d.Handler.build(source)
		if err != nil {
			return ast.Expr{}, err
		}
		return ast.NewFunctionInvocation(span, mod, d.Name, args, handler), nil
	case "error":
		return ast.NewErrorExpr(span), nil
	default:
		return ast.Expr{}, fmt.Errorf("astio: unknown expression kind %q", d.Kind)
	}
}
