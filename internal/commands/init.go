package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ledgerlab-dev/ledgerlab/internal/config"
	"github.com/ledgerlab-dev/ledgerlab/internal/cycle"
	"github.com/ledgerlab-dev/ledgerlab/internal/inventory"
	"github.com/ledgerlab-dev/ledgerlab/internal/trialbalance"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Scaffold a workspace with sample inputs and a default config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir)
		},
	}

	return cmd
}

func runInit(cmd *cobra.Command, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	if err := config.Save(filepath.Join(dir, "ledgerlab.yaml"), config.Default()); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	if err := writeCSVFile(dir, "trial-balance.csv", func(f *os.File) error {
		return trialbalance.WriteAccounts(f, trialbalance.Sample())
	}); err != nil {
		return err
	}

	if err := writeCSVFile(dir, "journal.csv", func(f *os.File) error {
		return cycle.WriteEntries(f, cycle.Sample())
	}); err != nil {
		return err
	}

	if err := writeCSVFile(dir, "purchases.csv", func(f *os.File) error {
		return inventory.WritePurchases(f, inventory.SamplePurchases())
	}); err != nil {
		return err
	}

	if err := writeCSVFile(dir, "sales.csv", func(f *os.File) error {
		return inventory.WriteSales(f, inventory.SampleSales())
	}); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized ledgerlab workspace at %s\n", dir)
	return nil
}
