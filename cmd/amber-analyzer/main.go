// Command amber-analyzer is a standalone CLI front end for the Amber
// semantic analyzer, for running diagnostics outside an editor connection.
package main

import "github.com/amber-lang/amber-lsp-analyzer/cmd/amber-analyzer/internal/cmd"

func main() {
	cmd.Execute()
}
