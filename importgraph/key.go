package importgraph

import "github.com/amber-lang/amber-lsp-analyzer/files"

// Key identifies a single version of a file within the import graph.
// Import resolution is tracked per file version, not per file, since an
// edited file's imports may have changed since the last analysis.
type Key struct {
	File    files.FileID
	Version files.Version
}

// Status is the resolution state of a Key's imports.
type Status int

const (
	// Pending means the key's import statements have not yet been
	// resolved against the file graph.
	Pending Status = iota
	// Done means resolution has completed; the key's dependency edges
	// are final for this version.
	Done
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}
