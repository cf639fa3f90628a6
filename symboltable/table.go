package symboltable

import (
	"errors"
	"fmt"
	"sync"

	"github.com/amber-lang/amber-lsp-analyzer/diag"
	"github.com/amber-lang/amber-lsp-analyzer/location"
	"github.com/amber-lang/amber-lsp-analyzer/types"
)

// ErrEmptyDefiningSpan is returned when InsertDefinition is given a span
// with no byte extent, violating the "every range inserted is non-empty"
// invariant from spec.md §3.
var ErrEmptyDefiningSpan = errors.New("symboltable: defining span is empty")

// ErrEmptyScopeRange is the scope-range counterpart of
// [ErrEmptyDefiningSpan].
var ErrEmptyScopeRange = errors.New("symboltable: scope range is empty")

// RemoteResolver looks up the resolved [Info] for a definition recorded in
// another file. The global analyzer supplies this when resolving a
// reference whose definition crossed a file boundary (an imported name),
// so that Table itself never needs to hold a registry of other files'
// tables — keeping Table usable standalone and independent of the file
// cache.
type RemoteResolver func(loc Location) (Info, bool)

// Table is the per-(file, version) symbol store from spec.md §3/§4.2.
//
// Table is safe for concurrent use. A new Table is created empty each
// time a document version is (re-)analyzed and the old one discarded; it
// is never mutated to "undo" a previous analysis.
type Table struct {
	mu                sync.RWMutex
	source            location.SourceID
	symbols           *RangeMap[Info]
	definitions       map[string]*RangeMap[Location]
	references        map[string][]Location
	publicDefinitions map[string]Location
	funCallArgScope   *RangeMap[Info]
}

// New creates an empty Table for the file identified by source.
func New(source location.SourceID) *Table {
	return &Table{
		source:            source,
		symbols:           NewRangeMap[Info](),
		definitions:       make(map[string]*RangeMap[Location]),
		references:        make(map[string][]Location),
		publicDefinitions: make(map[string]Location),
		funCallArgScope:   NewRangeMap[Info](),
	}
}

// Source returns the file this table belongs to.
func (t *Table) Source() location.SourceID {
	return t.source
}

// InsertDefinition records info as a definition, keyed at its OriginSpan
// in symbols and under scope in definitions[info.Name]. If exported, the
// resulting Location is also recorded in public_definitions.
func (t *Table) InsertDefinition(info Info, scope location.Span, exported bool) (Location, error) {
	defStart, defEnd, ok := spanBytes(info.OriginSpan)
	if !ok || defStart >= defEnd {
		return Location{}, ErrEmptyDefiningSpan
	}
	scopeStart, scopeEnd, ok := spanBytes(scope)
	if !ok || scopeStart >= scopeEnd {
		return Location{}, ErrEmptyScopeRange
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	info.IsDefinition = true
	info.IsUndefined = false
	t.symbols.Insert(defStart, defEnd, info)

	loc := Location{Source: t.source, Start: defStart, End: defEnd, Public: exported}
	defs, ok := t.definitions[info.Name]
	if !ok {
		defs = NewRangeMap[Location]()
		t.definitions[info.Name] = defs
	}
	defs.Insert(scopeStart, scopeEnd, loc)

	if exported {
		t.publicDefinitions[info.Name] = loc
	}
	return loc, nil
}

// InsertReference resolves name at the query offset in definitions[name],
// writes a non-definition Info at the reference's span (substituting in
// the resolved symbol's concrete type so hover displays it directly), and
// appends to references[name]. If no definition covers the reference, an
// undefined Info is recorded and an E_NOT_DEFINED issue is collected
// (unless collector is nil).
//
// resolveRemote is consulted when the matching definition belongs to a
// different file; it may be nil if cross-file references are not
// expected in the caller's context (e.g. analyzing an isolated snippet).
func (t *Table) InsertReference(name string, at location.Span, resolveRemote RemoteResolver, collector *diag.Collector) Info {
	refStart, refEnd, ok := spanBytes(at)
	if !ok || refStart >= refEnd {
		return Info{Name: name, Kind: KindVariable, Type: types.Any(), IsUndefined: true, OriginSpan: at}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	var resolved Info
	found := false
	if defs := t.definitions[name]; defs != nil {
		if loc, ok := defs.Query(refStart); ok {
			if loc.Source == t.source {
				resolved, found = t.symbols.Query(loc.Start)
			} else if resolveRemote != nil {
				resolved, found = resolveRemote(loc)
			}
		}
	}

	var info Info
	if found {
		info = Info{
			Name:           name,
			Kind:           resolved.Kind,
			Type:           resolved.Type,
			Const:          resolved.Const,
			Function:       resolved.Function,
			ActiveContexts: resolved.ActiveContexts,
			OriginSpan:     at,
		}
	} else {
		info = Info{
			Name:        name,
			Kind:        KindVariable,
			Type:        types.Any(),
			IsUndefined: true,
			OriginSpan:  at,
		}
		if collector != nil {
			collector.Collect(diag.NewIssue(diag.Error, diag.E_NOT_DEFINED, fmt.Sprintf("%q is not defined", name)).
				WithSpan(at).
				Build())
		}
	}

	t.symbols.Insert(refStart, refEnd, info)
	t.references[name] = append(t.references[name], Location{Source: at.Source, Start: refStart, End: refEnd})
	return info
}

// RecordSynthetic writes info directly into symbols at the given span
// without consulting or updating definitions/references. Used for reads of
// magic, non-declared values such as the `status` exit-code variable, which
// have no definition site to resolve against.
func (t *Table) RecordSynthetic(name string, at location.Span, typ types.Type) {
	start, end, ok := spanBytes(at)
	if !ok || start >= end {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.symbols.Insert(start, end, Info{Name: name, Kind: KindVariable, Type: typ, OriginSpan: at})
}

// ImportSymbol records a name brought in via import as a definition entry
// mapping localName to remoteLoc over scope (and a public definition when
// exported), so later references resolve locally. No symbols entry is
// written and remote is not stored.
// localName allows for `import { h } from "..." as alias` style renaming;
// pass the original name again when there is no alias.
func (t *Table) ImportSymbol(localName string, remote Info, remoteLoc Location, scope location.Span, exported bool) (Location, error) {
	scopeStart, scopeEnd, ok := spanBytes(scope)
	if !ok || scopeStart >= scopeEnd {
		return Location{}, ErrEmptyScopeRange
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	defs, ok := t.definitions[localName]
	if !ok {
		defs = NewRangeMap[Location]()
		t.definitions[localName] = defs
	}
	defs.Insert(scopeStart, scopeEnd, remoteLoc)

	if exported {
		t.publicDefinitions[localName] = remoteLoc
	}
	return remoteLoc, nil
}

// ResolveAt returns the definition location for name whose scope range
// contains offset, following the narrowest-wins / latest-wins tie-break.
// The returned Location may point at another file; callers follow it with
// their own file registry.
func (t *Table) ResolveAt(name string, offset int) (Location, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	defs := t.definitions[name]
	if defs == nil {
		return Location{}, false
	}
	return defs.Query(offset)
}

// SymbolAt returns the Info recorded for the span covering offset.
func (t *Table) SymbolAt(offset int) (Info, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.symbols.Query(offset)
}

// PublicDefinitions returns a copy of the exported-definitions map, used
// when another file imports * from this one.
func (t *Table) PublicDefinitions() map[string]Location {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]Location, len(t.publicDefinitions))
	for k, v := range t.publicDefinitions {
		out[k] = v
	}
	return out
}

// References returns a copy of the recorded reference locations for name.
func (t *Table) References(name string) []Location {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Location, len(t.references[name]))
	copy(out, t.references[name])
	return out
}

// InsertFunCallArgScope records that the byte range covering a call's
// argument list should report fn as the call's callee for parameter-hint
// queries.
func (t *Table) InsertFunCallArgScope(argsSpan location.Span, fn Info) error {
	start, end, ok := spanBytes(argsSpan)
	if !ok || start >= end {
		return ErrEmptyDefiningSpan
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.funCallArgScope.Insert(start, end, fn)
	return nil
}

// FunCallArgAt returns the function Info for the call whose argument list
// covers offset.
func (t *Table) FunCallArgAt(offset int) (Info, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.funCallArgScope.Query(offset)
}
