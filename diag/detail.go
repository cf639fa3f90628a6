package diag

// Detail provides key-value context for diagnostic issues.
//
// Details are used to add structured information to issues that can be
// programmatically inspected by tools. Use the standard detail key constants
// to ensure consistent key naming across the codebase.
type Detail struct {
	Key   string
	Value string
}

// Standard detail keys for consistent diagnostic metadata.
//
// Use these constants to avoid stringly-typed drift and enable programmatic
// inspection of diagnostic details. Custom detail keys are permitted for
// domain-specific diagnostics; use lower_snake_case for custom keys.
const (
	// DetailKeyExpected is the expected type or value.
	DetailKeyExpected = "expected"

	// DetailKeyGot is the actual type or value found.
	DetailKeyGot = "got"

	// DetailKeyTypeName is a type-lattice type name involved in the diagnostic.
	DetailKeyTypeName = "type"

	// DetailKeyName is the symbol, parameter, or identifier name involved.
	DetailKeyName = "name"

	// DetailKeyArgCount is the expected argument count (for arity diagnostics).
	DetailKeyArgCount = "arg_count"

	// DetailKeyGenericId is the generic-parameter identifier involved
	// (for generics-store diagnostics).
	DetailKeyGenericId = "generic_id"

	// DetailKeyOperator is the operator whose operand type is rejected.
	DetailKeyOperator = "operator"

	// DetailKeyImportPath is the import path (for import resolution errors).
	DetailKeyImportPath = "path"

	// DetailKeyCycle is the cycle participants as a comma-separated list of
	// file paths (for import cycle detection).
	DetailKeyCycle = "cycle"

	// DetailKeyFileId is a resolved file identifier.
	DetailKeyFileId = "file_id"

	// DetailKeyFileVersion is the analyzed version of a file.
	DetailKeyFileVersion = "file_version"

	// DetailKeyGrammarVersion is the grammar revision in effect
	// (alpha034, alpha035, alpha040).
	DetailKeyGrammarVersion = "grammar_version"

	// DetailKeyModifier is the failure-suppression modifier involved
	// (unsafe, trust).
	DetailKeyModifier = "modifier"

	// DetailKeyContext is contextual information (e.g., "GlobalAnalyzer",
	// "ScopeStack").
	DetailKeyContext = "context"
)

// ExpectedGot creates a pair of details for type mismatch diagnostics.
//
// This is the standard pattern for reporting "expected type X, found type Y"
// errors emitted by the expression analyzer.
func ExpectedGot(expected, got string) []Detail {
	return []Detail{
		{Key: DetailKeyExpected, Value: expected},
		{Key: DetailKeyGot, Value: got},
	}
}

// NamedType creates detail entries for diagnostics tied to a named symbol
// and its resolved type.
func NamedType(name, typeName string) []Detail {
	return []Detail{
		{Key: DetailKeyName, Value: name},
		{Key: DetailKeyTypeName, Value: typeName},
	}
}

// OperatorOperand creates detail entries for bad-operand diagnostics
// (E_BAD_OPERAND): the arithmetic operator and the rejected operand type.
func OperatorOperand(operator, typeName string) []Detail {
	return []Detail{
		{Key: DetailKeyOperator, Value: operator},
		{Key: DetailKeyTypeName, Value: typeName},
	}
}

// ImportCycle creates a detail entry carrying the cycle's participant file
// paths, used with E_IMPORT_CYCLE.
func ImportCycle(cycle []string) []Detail {
	joined := ""
	for i, path := range cycle {
		if i > 0 {
			joined += ","
		}
		joined += path
	}
	return []Detail{
		{Key: DetailKeyCycle, Value: joined},
	}
}
