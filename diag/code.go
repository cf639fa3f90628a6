package diag

// CodeCategory represents the semantic domain of an error code.
//
// Categories represent the semantic domain of an error, not necessarily the
// API layer that emits it. Most codes are emitted exclusively by their
// category's layer, but some codes represent cross-cutting concerns.
type CodeCategory uint8

const (
	// CategorySentinel is for sentinel codes like E_LIMIT_REACHED and E_INTERNAL.
	CategorySentinel CodeCategory = iota

	// CategoryScope is for scope/context violations (break outside loop, etc.).
	CategoryScope

	// CategoryType is for type-lattice and generics-store errors raised by the
	// expression analyzer.
	CategoryType

	// CategorySymbol is for symbol table errors: undefined names, arity,
	// reference/assignment mistakes.
	CategorySymbol

	// CategoryFailure is for failure-propagation obligation errors (the
	// failable-must-be-handled family).
	CategoryFailure

	// CategoryImport is for cross-file import resolution and cycle detection.
	CategoryImport

	// CategoryFunction is for function-definition-shape errors (parameter
	// ordering, declared-vs-inferred return type mismatches).
	CategoryFunction
)

// String returns a human-readable label for the category.
func (c CodeCategory) String() string {
	switch c {
	case CategorySentinel:
		return "sentinel"
	case CategoryScope:
		return "scope"
	case CategoryType:
		return "type"
	case CategorySymbol:
		return "symbol"
	case CategoryFailure:
		return "failure"
	case CategoryImport:
		return "import"
	case CategoryFunction:
		return "function"
	default:
		return "unknown"
	}
}

// Code is a stable programmatic identifier for an Issue.
//
// Error codes are stable identifiers that tools can match on, even when
// message text changes. The Code type uses unexported fields to enforce
// a closed set of valid codes—only codes defined in this package are valid.
//
// Code.String() values are globally unique across all categories. The
// CodeCategory is informational metadata for filtering and grouping.
type Code struct {
	value string
	cat   CodeCategory
}

// String returns the code's string representation (e.g., "E_NOT_DEFINED").
func (c Code) String() string {
	return c.value
}

// Category returns the programmatic category for this code.
func (c Code) Category() CodeCategory {
	return c.cat
}

// IsZero reports whether the code is unset.
func (c Code) IsZero() bool {
	return c.value == ""
}

// code is the unexported constructor—callers cannot create arbitrary codes.
func code(value string, cat CodeCategory) Code {
	return Code{value: value, cat: cat}
}

// Sentinel codes.
var (
	// E_LIMIT_REACHED is a sentinel code for explicit limit notification.
	// It does not automatically trigger Result.LimitReached(); use
	// Collector.LimitReached() to check limit status. Callers may inject
	// this code manually when desired.
	E_LIMIT_REACHED = code("E_LIMIT_REACHED", CategorySentinel)

	// E_INTERNAL indicates an unexpected invariant failure (internal bug indicator).
	// Use for conditions that should never occur in correct code.
	E_INTERNAL = code("E_INTERNAL", CategorySentinel)
)

// Symbol codes. Each code's comment gives the diagnostic taxonomy's message
// template; Code identifies the template, and the emitted Issue.Message may
// word it differently (for example naming the symbol and the counts).
var (
	// E_NOT_DEFINED: "`<name>` is not defined".
	E_NOT_DEFINED = code("E_NOT_DEFINED", CategorySymbol)

	// E_NOT_A_FUNCTION: "`<name>` is not a function".
	E_NOT_A_FUNCTION = code("E_NOT_A_FUNCTION", CategorySymbol)

	// E_IS_A_FUNCTION: "`<name>` is a function" (a call-shaped use of a
	// non-callable value resolved to a function where one wasn't expected).
	E_IS_A_FUNCTION = code("E_IS_A_FUNCTION", CategorySymbol)

	// E_TOO_MANY_ARGS: "Function takes only N arguments".
	E_TOO_MANY_ARGS = code("E_TOO_MANY_ARGS", CategorySymbol)

	// E_TOO_FEW_ARGS: "Function takes N arguments".
	E_TOO_FEW_ARGS = code("E_TOO_FEW_ARGS", CategorySymbol)

	// E_NOT_A_REFERENCE: "Cannot pass a non-variable as a reference".
	E_NOT_A_REFERENCE = code("E_NOT_A_REFERENCE", CategorySymbol)

	// E_MODIFY_CONST: "Cannot modify a constant variable".
	E_MODIFY_CONST = code("E_MODIFY_CONST", CategorySymbol)

	// E_ASSIGN_FUNCTION: "Cannot assign to a function".
	E_ASSIGN_FUNCTION = code("E_ASSIGN_FUNCTION", CategorySymbol)

	// E_ASSIGN_CONST: "Cannot assign to a constant".
	E_ASSIGN_CONST = code("E_ASSIGN_CONST", CategorySymbol)
)

// Type codes.
var (
	// E_ARRAY_MIXED_TYPES: "Array must have elements of the same type".
	E_ARRAY_MIXED_TYPES = code("E_ARRAY_MIXED_TYPES", CategoryType)

	// E_TYPE_MISMATCH: "Expected type T, found type U".
	E_TYPE_MISMATCH = code("E_TYPE_MISMATCH", CategoryType)

	// E_BAD_OPERAND: "Cannot add/divide/modulo/multiply/subtract variable of type T".
	E_BAD_OPERAND = code("E_BAD_OPERAND", CategoryType)
)

// Scope codes.
var (
	// E_FAIL_OUTSIDE_FN: "Fail statements can only be used inside of functions
	// or the main block".
	E_FAIL_OUTSIDE_FN = code("E_FAIL_OUTSIDE_FN", CategoryScope)

	// E_RETURN_OUTSIDE_FN: "Return statement outside of function".
	E_RETURN_OUTSIDE_FN = code("E_RETURN_OUTSIDE_FN", CategoryScope)

	// E_LOOP_CTRL_OUTSIDE_LOOP: "Break/Continue statement outside of loop".
	E_LOOP_CTRL_OUTSIDE_LOOP = code("E_LOOP_CTRL_OUTSIDE_LOOP", CategoryScope)

	// E_PROPAGATE_OUTSIDE_FN: "Propagate can only be used inside of main
	// block or function".
	E_PROPAGATE_OUTSIDE_FN = code("E_PROPAGATE_OUTSIDE_FN", CategoryScope)
)

// Failure-propagation codes.
var (
	// E_COMMAND_NO_HANDLER: "Command must have a failure handler".
	E_COMMAND_NO_HANDLER = code("E_COMMAND_NO_HANDLER", CategoryFailure)

	// E_FAILABLE_UNHANDLED: "Failable function must be handled with a failure
	// handler or marked with `trust` modifier".
	E_FAILABLE_UNHANDLED = code("E_FAILABLE_UNHANDLED", CategoryFailure)
)

// Function-definition codes.
var (
	// E_OPTIONAL_ORDER: "Optional argument must be the last one".
	E_OPTIONAL_ORDER = code("E_OPTIONAL_ORDER", CategoryFunction)

	// E_OPTIONAL_BY_REF: "Optional argument cannot be a reference".
	E_OPTIONAL_BY_REF = code("E_OPTIONAL_BY_REF", CategoryFunction)

	// E_RETURN_TYPE_MISMATCH: "Function returns type X, but expected Y".
	E_RETURN_TYPE_MISMATCH = code("E_RETURN_TYPE_MISMATCH", CategoryFunction)

	// E_PROPAGATE_NOT_FAILABLE: "Function is propagating an error, but return
	// type is not failable".
	E_PROPAGATE_NOT_FAILABLE = code("E_PROPAGATE_NOT_FAILABLE", CategoryFunction)
)

// Import codes.
var (
	// E_FILE_NOT_FOUND: "File doesn't exist".
	E_FILE_NOT_FOUND = code("E_FILE_NOT_FOUND", CategoryImport)

	// E_IMPORT_CYCLE: "Circular dependency".
	E_IMPORT_CYCLE = code("E_IMPORT_CYCLE", CategoryImport)

	// E_IMPORT_UNRESOLVED: "Could not resolve '<name>'".
	E_IMPORT_UNRESOLVED = code("E_IMPORT_UNRESOLVED", CategoryImport)

	// E_IMPORT_DUPLICATE: "Duplicate import '<name>'".
	E_IMPORT_DUPLICATE = code("E_IMPORT_DUPLICATE", CategoryImport)
)

// allCodes contains all defined codes for AllCodes() and uniqueness verification.
var allCodes = []Code{
	// Sentinel
	E_LIMIT_REACHED,
	E_INTERNAL,
	// Symbol
	E_NOT_DEFINED,
	E_NOT_A_FUNCTION,
	E_IS_A_FUNCTION,
	E_TOO_MANY_ARGS,
	E_TOO_FEW_ARGS,
	E_NOT_A_REFERENCE,
	E_MODIFY_CONST,
	E_ASSIGN_FUNCTION,
	E_ASSIGN_CONST,
	// Type
	E_ARRAY_MIXED_TYPES,
	E_TYPE_MISMATCH,
	E_BAD_OPERAND,
	// Scope
	E_FAIL_OUTSIDE_FN,
	E_RETURN_OUTSIDE_FN,
	E_LOOP_CTRL_OUTSIDE_LOOP,
	E_PROPAGATE_OUTSIDE_FN,
	// Failure
	E_COMMAND_NO_HANDLER,
	E_FAILABLE_UNHANDLED,
	// Function
	E_OPTIONAL_ORDER,
	E_OPTIONAL_BY_REF,
	E_RETURN_TYPE_MISMATCH,
	E_PROPAGATE_NOT_FAILABLE,
	// Import
	E_FILE_NOT_FOUND,
	E_IMPORT_CYCLE,
	E_IMPORT_UNRESOLVED,
	E_IMPORT_DUPLICATE,
}

// AllCodes returns all defined codes.
//
// This function is useful for tooling and testing. The returned slice is a
// copy; modifications do not affect the original.
func AllCodes() []Code {
	result := make([]Code, len(allCodes))
	copy(result, allCodes)
	return result
}

// CodesByCategory returns codes in the given category.
//
// The returned slice is a new allocation; modifications do not affect
// internal state.
func CodesByCategory(cat CodeCategory) []Code {
	var result []Code
	for _, c := range allCodes {
		if c.cat == cat {
			result = append(result, c)
		}
	}
	return result
}
