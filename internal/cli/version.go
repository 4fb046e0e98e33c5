package cli

import (
	"fmt"

	"github.com/pdtgen-labs/pdtgen/internal/branding"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (commit: %s, built: %s)\n",
			branding.CLIName(), buildVersion, buildCommit, buildDate)
		return nil
	},
}
