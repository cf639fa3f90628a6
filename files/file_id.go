package files

import (
	"github.com/amber-lang/amber-lsp-analyzer/location"
	"github.com/google/uuid"
)

// FileID is an opaque, comparable identifier for a tracked file.
//
// FileID wraps a [location.SourceID] rather than duplicating its interning
// logic: a FileID for an on-disk file is derived from its canonical path,
// so two requests for the same path always produce the same FileID. A
// FileID for an in-memory document with no canonical path yet (an
// "untitled" buffer opened before the user has saved it) is backed by a
// synthetic source ID seeded with a [uuid.UUID], guaranteeing uniqueness
// without a path to hash.
//
// FileID is a value type safe for use as a map key.
type FileID struct {
	source location.SourceID
}

// FileIDFromSourceID wraps an already-constructed SourceID as a FileID.
func FileIDFromSourceID(id location.SourceID) FileID {
	return FileID{source: id}
}

// NewUntitledFileID mints a fresh FileID for a document with no canonical
// path, such as an editor buffer that has never been saved.
func NewUntitledFileID() FileID {
	return FileID{source: location.NewSourceID("untitled:" + uuid.NewString())}
}

// SourceID returns the underlying source identifier.
func (f FileID) SourceID() location.SourceID {
	return f.source
}

// String returns a human-readable identifier, suitable for logging.
func (f FileID) String() string {
	return f.source.String()
}

// IsZero reports whether this is a zero-value FileID.
func (f FileID) IsZero() bool {
	return f.source.IsZero()
}
