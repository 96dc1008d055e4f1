package commands

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ledgerlab-dev/ledgerlab/internal/inventory"
	"github.com/ledgerlab-dev/ledgerlab/internal/report"
)

func newInventoryCommand() *cobra.Command {
	var method, system string
	var purchasesPath, salesPath string
	var outDir string

	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Compute COGS and ending inventory from purchases and sales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInventory(cmd, method, system, purchasesPath, salesPath, outDir)
		},
	}

	cmd.Flags().StringVar(&method, "method", "fifo", "method: fifo, lifo or wavg")
	cmd.Flags().StringVar(&system, "system", "periodic", "system: periodic or perpetual")
	cmd.Flags().StringVar(&purchasesPath, "purchases", "", "purchases CSV (built-in sample when omitted)")
	cmd.Flags().StringVar(&salesPath, "sales", "", "sales CSV (built-in sample when omitted)")
	cmd.Flags().StringVar(&outDir, "out", "", "directory for CSV exports")

	return cmd
}

func runInventory(cmd *cobra.Command, method, system, purchasesPath, salesPath, outDir string) error {
	m, err := inventory.ParseMethod(method)
	if err != nil {
		return err
	}
	s, err := inventory.ParseSystem(system)
	if err != nil {
		return err
	}

	layers, err := loadPurchases(purchasesPath)
	if err != nil {
		return err
	}
	sales, err := loadSales(salesPath)
	if err != nil {
		return err
	}

	result, err := inventory.Calculate(layers, sales, m, s)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", s, m)
	printTotal(out, "COGS", result.COGS)
	printTotal(out, "Ending Inventory", result.EndingInventory)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Step-by-Step Flow")
	for _, r := range result.Flow {
		fmt.Fprintf(out, "  %8s @ %-10s %14s\n",
			r.Qty.String(), r.UnitCost.StringFixed(4), r.Total.StringFixed(2))
	}

	if outDir == "" {
		return nil
	}
	return writeCSVFile(outDir, "inventory-flow.csv", func(f *os.File) error {
		return report.WriteFlow(f, result.Flow)
	})
}

func loadPurchases(path string) ([]inventory.Layer, error) {
	if path == "" {
		return inventory.SamplePurchases(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening purchases: %w", err)
	}
	defer f.Close()

	layers, err := inventory.ReadPurchases(f)
	if err != nil {
		return nil, fmt.Errorf("reading purchases %s: %w", path, err)
	}
	return layers, nil
}

func loadSales(path string) ([]decimal.Decimal, error) {
	if path == "" {
		return inventory.SampleSales(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening sales: %w", err)
	}
	defer f.Close()

	sales, err := inventory.ReadSales(f)
	if err != nil {
		return nil, fmt.Errorf("reading sales %s: %w", path, err)
	}
	return sales, nil
}
