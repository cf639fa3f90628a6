// Package driver ties the analyzer subsystem's independent pieces —
// files.Registry, symboltable, types.GenericsStore, importgraph, stdlib —
// into one entry point that a CLI or an editor integration can call once
// per file edit. It is the top-level "Analyzer" SPEC_FULL's component
// table describes and the places analyzer/global's Context alone cannot:
// owning the per-version state of a running process and the concurrency
// guard around re-analyzing any one (file, version) pair.
package driver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amber-lang/amber-lsp-analyzer/analyzer/global"
	"github.com/amber-lang/amber-lsp-analyzer/ast"
	"github.com/amber-lang/amber-lsp-analyzer/diag"
	"github.com/amber-lang/amber-lsp-analyzer/files"
	"github.com/amber-lang/amber-lsp-analyzer/importgraph"
	"github.com/amber-lang/amber-lsp-analyzer/internal/trace"
	"github.com/amber-lang/amber-lsp-analyzer/stdlib"
	"github.com/amber-lang/amber-lsp-analyzer/symboltable"
	"github.com/amber-lang/amber-lsp-analyzer/types"
)

// ErrNoFile is returned by Analyze when called with a zero FileID.
var ErrNoFile = fmt.Errorf("driver: FileID is zero")

// Analysis is one file version's analyzed output: its symbol table (for
// PublicDefinitions lookups by importers) and the diagnostics produced
// while walking it.
type Analysis struct {
	Table       *symboltable.Table
	Diagnostics diag.Result
}

// Driver owns the process-wide state a running analyzer needs across many
// files and many edits to each: file identity and version history
// (Registry), the per-version derived symbol tables (tables), a shared
// import graph for cycle bookkeeping, and one generics store per file
// version, matching analyzer/global.Context.genericsScope's key shape.
//
// Driver is safe for concurrent use; AnalyzeLock serializes re-analysis
// of any single (FileID, Version) pair while letting unrelated files
// proceed concurrently.
type Driver struct {
	Registry *files.Registry
	Graph    *importgraph.Graph
	Logger   *slog.Logger

	tables   *files.VersionedStore[*symboltable.Table]
	generics *files.VersionedStore[*types.GenericsStore]
}

// New creates a Driver with fresh, empty state.
func New(logger *slog.Logger) *Driver {
	return &Driver{
		Registry: files.NewRegistry(),
		Graph:    importgraph.New(),
		Logger:   logger,
		tables:   files.NewVersionedStore[*symboltable.Table](),
		generics: files.NewVersionedStore[*types.GenericsStore](),
	}
}

// resolver adapts Driver's own analyzed tables to analyzer/global.Resolver,
// so an Import item can cross into another file's PublicDefinitions
// without analyzer/global importing driver (which would be a cycle: driver
// already imports analyzer/global).
type resolver struct {
	d       *Driver
	resolve func(path string) (files.FileID, files.Version, error)
}

func (r resolver) Resolve(path string) (files.FileID, *symboltable.Table, error) {
	id, version, err := r.resolve(path)
	if err != nil {
		return files.FileID{}, nil, err
	}
	table, ok := r.d.tables.Get(id, version)
	if !ok {
		return files.FileID{}, nil, fmt.Errorf("driver: %s has no analyzed table at version %d", id, version)
	}
	return id, table, nil
}

// Analyze advances id to a new version, analyzes file under that version,
// and records the resulting symbol table for later Resolve calls. resolve
// maps an import-statement path literal to the FileID/Version of its
// already-analyzed target; pass nil if file has no Import items.
//
// Analyze acquires Registry.AnalyzeLock for the new (id, version) pair
// around the walk, so two goroutines racing to analyze the same edit
// serialize rather than both mutating id's symbol table concurrently.
func (d *Driver) Analyze(ctx context.Context, id files.FileID, file ast.File, resolve func(path string) (files.FileID, files.Version, error)) (Analysis, error) {
	op := trace.Begin(ctx, d.Logger, "amber.driver.analyze")
	var err error
	defer func() { op.End(err) }()

	if id.IsZero() {
		err = ErrNoFile
		return Analysis{}, err
	}

	version, evicted := d.Registry.Advance(id)
	for _, v := range evicted {
		d.tables.Evict(id, v)
		d.generics.Evict(id, v)
	}

	lock := d.Registry.AnalyzeLock(id, version)
	lock.Lock()
	defer lock.Unlock()

	table := symboltable.New(id.SourceID())
	generics := types.NewGenericsStore()
	diags := diag.NewCollectorUnlimited()

	d.tables.Set(id, version, table)
	d.generics.Set(id, version, generics)

	var res global.Resolver
	if resolve != nil {
		res = resolver{d: d, resolve: resolve}
	}

	var remoteResolve symboltable.RemoteResolver
	gctx := global.NewFileContext(id, version, table, generics, diags, remoteResolve, d.Graph, res)
	global.AnalyzeFile(gctx, file)

	return Analysis{Table: table, Diagnostics: diags.Result()}, nil
}

// BuiltinManifestRoot reports the builtin function names the bundled
// manifest defines, for CLI diagnostics like "did you mean len?"
// A thin pass-through kept here so callers don't need to import stdlib
// directly just to answer that question.
func BuiltinManifestRoot() ([]string, error) {
	fns, err := stdlib.Builtins()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(fns))
	for _, f := range fns {
		names = append(names, f.Name)
	}
	return names, nil
}
