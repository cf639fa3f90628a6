package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// buildVersion is overridden at release-build time via
// -ldflags="-X .../cmd.buildVersion=...". "dev" otherwise, matching the
// teacher's yammm-lsp var version = "dev" convention.
var buildVersion = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the amber-analyzer version and exit",
	RunE: func(c *cobra.Command, args []string) error {
		fmt.Fprintf(c.OutOrStdout(), "amber-analyzer %s\n", buildVersion)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
