// Package stmt implements the statement analyzer from spec.md §4.5: a
// recursive walk over every ast.StmtKind that threads a scope stack and a
// generics store through nested blocks, loops, and conditionals. It
// enforces the control-flow rules (return/fail/break/continue only valid
// where a suitable enclosing frame exists) and discharges the failable
// obligation on Alpha040's MoveFiles statement the same way the expression
// analyzer discharges it for Command and FunctionInvocation.
//
// Grounded on the Rust reference's analyze_stmnt in
// _examples/original_source/src/analysis/{alpha034,alpha035,alpha040}/stmnt.rs.
package stmt
