package ast

import (
	"github.com/amber-lang/amber-lsp-analyzer/location"
)

// Parameter is one entry in a function's parameter list:
// `[ref] name`, `[ref] name: Type`, `[ref] name [: Type] = expr`.
type Parameter struct {
	Name       string
	TypeName   string // empty if the parameter is generic (untyped)
	ByRef      bool
	Optional   bool
	Default    *Expr // initializer, present iff Optional
	Span       location.Span
	NameSpan   location.Span
}

// ImportKind distinguishes `import *` from `import {a, b}`.
type ImportKind int

const (
	ImportAll ImportKind = iota
	ImportSpecific
)

// GlobalItemKind identifies which alternative of the top-level item sum a
// [GlobalItem] holds: FunctionDefinition, Import, Main, or FreeStatement.
type GlobalItemKind int

const (
	ItemFunctionDefinition GlobalItemKind = iota
	ItemImport
	ItemMain
	ItemFreeStatement
)

// GlobalItem is one top-level construct in a file.
type GlobalItem struct {
	kind GlobalItemKind
	span location.Span

	// FunctionDefinition
	name       string
	params     []Parameter
	returnType string // declared return type name, empty if undeclared
	body       []Stmt
	public     bool
	fnFlags    int
	docs       string

	// Import
	importKind    ImportKind
	importPath    string
	importNames   []string
	importAliases map[string]string // name -> alias, only for ImportSpecific
	importPublic  bool

	// Main
	argsName string // empty if Main has no args binding

	// FreeStatement
	stmt *Stmt
}

func (g GlobalItem) Kind() GlobalItemKind { return g.kind }
func (g GlobalItem) Span() location.Span  { return g.span }

func (g GlobalItem) Name() string          { return g.name }
func (g GlobalItem) Params() []Parameter   { return g.params }
func (g GlobalItem) ReturnType() string    { return g.returnType }
func (g GlobalItem) Body() []Stmt          { return g.body }
func (g GlobalItem) Public() bool          { return g.public }
func (g GlobalItem) FunctionFlags() int    { return g.fnFlags }
func (g GlobalItem) Docs() string          { return g.docs }

func (g GlobalItem) ImportKind() ImportKind       { return g.importKind }
func (g GlobalItem) ImportPath() string           { return g.importPath }
func (g GlobalItem) ImportNames() []string         { return g.importNames }
func (g GlobalItem) ImportAlias(name string) (string, bool) {
	a, ok := g.importAliases[name]
	return a, ok
}
func (g GlobalItem) ImportPublic() bool { return g.importPublic }

func (g GlobalItem) ArgsName() (string, bool) {
	return g.argsName, g.argsName != ""
}

func (g GlobalItem) Statement() (Stmt, bool) {
	if g.stmt == nil {
		return Stmt{}, false
	}
	return *g.stmt, true
}

func NewFunctionDefinition(
	span location.Span,
	name string,
	params []Parameter,
	returnType string,
	body []Stmt,
	public bool,
	fnFlags int,
	docs string,
) GlobalItem {
	return GlobalItem{
		kind: ItemFunctionDefinition, span: span,
		name: name, params: params, returnType: returnType,
		body: body, public: public, fnFlags: fnFlags, docs: docs,
	}
}

func NewImportAll(span location.Span, path string, public bool) GlobalItem {
	return GlobalItem{kind: ItemImport, span: span, importKind: ImportAll, importPath: path, importPublic: public}
}

func NewImportSpecific(span location.Span, path string, names []string, aliases map[string]string, public bool) GlobalItem {
	return GlobalItem{
		kind: ItemImport, span: span, importKind: ImportSpecific,
		importPath: path, importNames: names, importAliases: aliases, importPublic: public,
	}
}

func NewMain(span location.Span, argsName string, body []Stmt) GlobalItem {
	return GlobalItem{kind: ItemMain, span: span, argsName: argsName, body: body}
}

func NewFreeStatement(span location.Span, stmt Stmt) GlobalItem {
	return GlobalItem{kind: ItemFreeStatement, span: span, stmt: &stmt}
}

// File is a complete analyzed-unit input: the grammar revision it was
// parsed under and its top-level items in source order.
type File struct {
	Version GrammarVersion
	Items   []GlobalItem
}
