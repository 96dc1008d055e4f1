package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ledgerlab-dev/ledgerlab/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "ledgerlab",
		Short:   "Educational accounting computations",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newStatementsCommand())
	rootCmd.AddCommand(newCycleCommand())
	rootCmd.AddCommand(newDepreciationCommand())
	rootCmd.AddCommand(newInventoryCommand())

	return rootCmd
}
