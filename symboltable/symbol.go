package symboltable

import (
	"github.com/amber-lang/amber-lsp-analyzer/location"
	"github.com/amber-lang/amber-lsp-analyzer/scopestack"
	"github.com/amber-lang/amber-lsp-analyzer/types"
)

// Kind distinguishes the three symbol shapes from spec.md §3.
type Kind int

const (
	KindVariable Kind = iota
	KindFunction
	KindImportPath
)

func (k Kind) String() string {
	switch k {
	case KindVariable:
		return "variable"
	case KindFunction:
		return "function"
	case KindImportPath:
		return "import-path"
	default:
		return "unknown"
	}
}

// FunctionParam is one parameter of a function symbol's signature.
type FunctionParam struct {
	Name     string
	Type     types.Type
	ByRef    bool
	Optional bool
}

// FunctionSignature holds the data specific to a KindFunction symbol.
type FunctionSignature struct {
	Params []FunctionParam
	Public bool
	Flags  scopestack.FunctionFlag
	Docs   string
}

// Info is the resolved information attached to one span in a symbol
// table: what a token is, its inferred type, and whether this occurrence
// is the definition or a reference.
type Info struct {
	Name           string
	Kind           Kind
	Type           types.Type
	IsDefinition   bool
	IsUndefined    bool
	Const          bool // meaningful only when Kind == KindVariable
	Function       *FunctionSignature
	OriginSpan     location.Span
	ActiveContexts scopestack.Modifier
}

// Location identifies where a symbol's definition lives: either in the
// current file or, for imported names, another file entirely.
type Location struct {
	Source location.SourceID
	Start  int
	End    int
	Public bool
}

func spanBytes(span location.Span) (start, end int, ok bool) {
	if !span.Start.HasByte() || !span.End.HasByte() {
		return 0, 0, false
	}
	return span.Start.Byte, span.End.Byte, true
}
