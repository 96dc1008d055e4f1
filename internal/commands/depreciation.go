package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ledgerlab-dev/ledgerlab/internal/depreciation"
	"github.com/ledgerlab-dev/ledgerlab/internal/report"
)

func newDepreciationCommand() *cobra.Command {
	var method string
	var cost, salvage string
	var life int
	var totalUnits string
	var units string
	var outDir string

	cmd := &cobra.Command{
		Use:   "depreciation",
		Short: "Generate a depreciation schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDepreciation(cmd, method, cost, salvage, life, totalUnits, units, outDir)
		},
	}

	cmd.Flags().StringVar(&method, "method", "sl", "method: sl, ddb or uop")
	cmd.Flags().StringVar(&cost, "cost", "10000", "asset cost")
	cmd.Flags().StringVar(&salvage, "salvage", "1000", "salvage value")
	cmd.Flags().IntVar(&life, "life", 5, "useful life in years")
	cmd.Flags().StringVar(&totalUnits, "total-units", "", "estimated total units (uop only)")
	cmd.Flags().StringVar(&units, "units", "", "comma-separated units per year (uop only)")
	cmd.Flags().StringVar(&outDir, "out", "", "directory for CSV exports")

	return cmd
}

func runDepreciation(cmd *cobra.Command, method, cost, salvage string, life int, totalUnits, units, outDir string) error {
	m, err := depreciation.ParseMethod(method)
	if err != nil {
		return err
	}

	params := depreciation.Params{Method: m, UsefulLife: life}

	params.Cost, err = decimal.NewFromString(cost)
	if err != nil {
		return fmt.Errorf("parsing cost %q: %w", cost, err)
	}
	params.Salvage, err = decimal.NewFromString(salvage)
	if err != nil {
		return fmt.Errorf("parsing salvage %q: %w", salvage, err)
	}

	if m == depreciation.UnitsOfProduction {
		params.TotalUnits, err = decimal.NewFromString(totalUnits)
		if err != nil {
			return fmt.Errorf("parsing total units %q: %w", totalUnits, err)
		}
		for _, field := range strings.Split(units, ",") {
			u, err := decimal.NewFromString(strings.TrimSpace(field))
			if err != nil {
				return fmt.Errorf("parsing units %q: %w", field, err)
			}
			params.UnitsPerYear = append(params.UnitsPerYear, u)
		}
	}

	rows, err := depreciation.Schedule(params)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Depreciation Schedule")
	for _, r := range rows {
		fmt.Fprintf(out, "  Year %-3d %14s\n", r.Year, r.Depreciation.StringFixed(2))
	}
	fmt.Fprintln(out)
	printTotal(out, "Total Depreciation", depreciation.Total(rows))

	if outDir == "" {
		return nil
	}
	return writeCSVFile(outDir, "depreciation-schedule.csv", func(f *os.File) error {
		return report.WriteSchedule(f, rows)
	})
}
