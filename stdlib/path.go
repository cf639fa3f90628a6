package stdlib

import (
	"strings"

	"github.com/amber-lang/amber-lsp-analyzer/ast"
)

// IsStdlibPath reports whether path (the string literal following an
// import statement's `from`) refers to the bundled standard library rather
// than a file relative to the importing file.
//
// Alpha034 recognizes only the bare path "std"; later revisions also
// accept any path rooted at "std/", mirroring the version split in
// _examples/original_source/src/stdlib.rs's resolve and find_in_stdlib.
func IsStdlibPath(version ast.GrammarVersion, path string) bool {
	if path == "std" {
		return true
	}
	if version == ast.Alpha034 {
		return false
	}
	return strings.HasPrefix(path, "std/")
}

// ModuleName extracts the stdlib module name from a recognized stdlib
// path, e.g. "std/array" -> "array". Returns ok=false for the bare "std"
// path, which has no submodule, or for a path IsStdlibPath rejects.
func ModuleName(version ast.GrammarVersion, path string) (string, bool) {
	if !IsStdlibPath(version, path) {
		return "", false
	}
	rest, found := strings.CutPrefix(path, "std/")
	if !found || rest == "" {
		return "", false
	}
	return rest, true
}
