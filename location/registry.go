package location

// PositionRegistry provides byte-offset-to-position conversion.
//
// This interface is the bridge between the parser (which captures byte
// offsets during lexing) and source content registries that perform the
// actual offset-to-position conversion.
//
// The primary implementation is internal/source.Registry, which enables unified
// source tracking across every analyzed Amber file.
//
// Design rationale:
//
//  1. Foundation tier placement: PositionRegistry is defined in location
//     (foundation tier) because the interface operates on location.Position and
//     location.SourceID â€” natural cohesion with the location package.
//
//  2. Decouples consumers from the concrete registry: Callers can use any
//     PositionRegistry implementation, not just internal/source.Registry. This
//     enables testing with mock registries and supports alternative implementations.
//
//  3. Enables independent use: Consumers can be used in contexts where the
//     full file-registry machinery isn't needed.
type PositionRegistry interface {
	// PositionAt converts a byte offset to a Position for the given source.
	//
	// Returns a zero Position (check via IsZero()) if:
	//   - The source is not registered
	//   - The byte offset is out of range
	//   - The byte offset is negative
	//
	// The returned Position has:
	//   - Line: 1-based line number
	//   - Column: 1-based rune offset from line start
	//   - Byte: The input byteOffset (echoed back for convenience)
	PositionAt(source SourceID, byteOffset int) Position
}

// RuneOffsetConverter provides rune-to-byte offset conversion.
//
// The parser reports rune-based positions (character indices), but the
// analyzer uses byte offsets for consistency with Go strings and UTF-8 handling.
// This interface enables the conversion between these coordinate systems.
//
// The primary implementation is internal/source.Registry.
type RuneOffsetConverter interface {
	// RuneToByteOffset converts a rune offset to a byte offset for the given source.
	//
	// Returns (byteOffset, true) on success.
	// Returns (0, false) if:
	//   - The source is not registered
	//   - The rune offset is out of range
	//   - The rune offset is negative
	RuneToByteOffset(source SourceID, runeOffset int) (byteOffset int, ok bool)
}
