package importgraph

import (
	"errors"
	"sync"

	"github.com/amber-lang/amber-lsp-analyzer/files"
)

// ErrImportCycle is returned by [Graph.AddDependency] when recording the
// edge would create a cycle (A imports B, ..., imports A).
var ErrImportCycle = errors.New("importgraph: cyclic import")

// Graph records, for each analyzed file version, which other files it
// imports, and keeps an explicit work queue of keys with their resolution
// status. Cycle checks walk the recorded edges recursively.
//
// Graph is safe for concurrent use.
type Graph struct {
	mu           sync.RWMutex
	dependencies map[Key][]files.FileID // edges: key depends on these files
	dependants   map[files.FileID][]Key // reverse index for DependantsOf
	status       map[Key]Status
	queue        []Key
	queued       map[Key]bool
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		dependencies: make(map[Key][]files.FileID),
		dependants:   make(map[files.FileID][]Key),
		status:       make(map[Key]Status),
		queued:       make(map[Key]bool),
	}
}

// StatusOf reports the resolution status of key. A key never seen before
// reports [Pending].
func (g *Graph) StatusOf(key Key) Status {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.status[key]
}

// Enqueue adds key to the pending work queue unless it is already queued.
func (g *Graph) Enqueue(key Key) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.queued[key] {
		return
	}
	g.queue = append(g.queue, key)
	g.queued[key] = true
	g.status[key] = Pending
}

// Dequeue removes and returns the oldest pending key. ok is false when the
// queue is empty.
func (g *Graph) Dequeue() (key Key, ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.queue) == 0 {
		return Key{}, false
	}
	key, g.queue = g.queue[0], g.queue[1:]
	delete(g.queued, key)
	return key, true
}

// MarkDone records that key's imports have been fully resolved.
func (g *Graph) MarkDone(key Key) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.status[key] = Done
}

// AddDependency records that key's file imports target. Returns
// [ErrImportCycle] without recording the edge if target already
// (transitively) depends on key's file.
func (g *Graph) AddDependency(key Key, target files.FileID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if target == key.File || g.dependsOnLocked(target, key.File, make(map[files.FileID]bool)) {
		return ErrImportCycle
	}

	g.dependencies[key] = append(g.dependencies[key], target)
	g.dependants[target] = append(g.dependants[target], key)
	return nil
}

// DependsOn reports whether key's file transitively imports target,
// considering every version of every file reachable from key.
func (g *Graph) DependsOn(key Key, target files.FileID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.dependsOnLocked(key.File, target, make(map[files.FileID]bool))
}

// dependsOnLocked performs a depth-first search over file-level edges
// (collapsing all tracked versions of a file into one node), mirroring
// is_depending_on from the teacher's Rust source. Callers must hold g.mu.
func (g *Graph) dependsOnLocked(from, target files.FileID, visited map[files.FileID]bool) bool {
	if visited[from] {
		return false
	}
	visited[from] = true

	for key, deps := range g.dependencies {
		if key.File != from {
			continue
		}
		for _, dep := range deps {
			if dep == target {
				return true
			}
			if g.dependsOnLocked(dep, target, visited) {
				return true
			}
		}
	}
	return false
}

// DependenciesOf returns the files that key directly imports.
func (g *Graph) DependenciesOf(key Key) []files.FileID {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]files.FileID, len(g.dependencies[key]))
	copy(out, g.dependencies[key])
	return out
}

// DependantsOf returns every tracked key that directly imports id,
// mirroring get_files_dependant_on from the teacher's Rust source. Used to
// find which open files need re-analysis after id changes.
func (g *Graph) DependantsOf(id files.FileID) []Key {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Key, len(g.dependants[id]))
	copy(out, g.dependants[id])
	return out
}

// Forget removes every edge and status entry for key, used when a file
// version is evicted from the retention window.
func (g *Graph) Forget(key Key) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, dep := range g.dependencies[key] {
		g.dependants[dep] = removeKey(g.dependants[dep], key)
	}
	delete(g.dependencies, key)
	delete(g.status, key)
	delete(g.queued, key)
}

func removeKey(keys []Key, target Key) []Key {
	out := keys[:0]
	for _, k := range keys {
		if k != target {
			out = append(out, k)
		}
	}
	return out
}
