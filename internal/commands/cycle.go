package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ledgerlab-dev/ledgerlab/internal/config"
	"github.com/ledgerlab-dev/ledgerlab/internal/cycle"
	"github.com/ledgerlab-dev/ledgerlab/internal/model"
	"github.com/ledgerlab-dev/ledgerlab/internal/report"
)

func newCycleCommand() *cobra.Command {
	var journalPath string
	var configPath string
	var outDir string

	cmd := &cobra.Command{
		Use:   "cycle",
		Short: "Run the accounting cycle: journal, ledger, adjusted trial balance, statements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCycle(cmd, journalPath, configPath, outDir)
		},
	}

	cmd.Flags().StringVar(&journalPath, "journal", "", "journal CSV (built-in sample when omitted)")
	cmd.Flags().StringVar(&configPath, "config", "", "ledgerlab.yaml with the account-category mapping")
	cmd.Flags().StringVar(&outDir, "out", "", "directory for CSV exports")

	return cmd
}

func runCycle(cmd *cobra.Command, journalPath, configPath, outDir string) error {
	entries, err := loadJournal(journalPath)
	if err != nil {
		return err
	}

	if verrs := cycle.ValidateEntries(entries); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return fmt.Errorf("journal validation failed: %s", strings.Join(msgs, "; "))
	}

	cfg := config.Default()
	if configPath != "" {
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
	}

	ledger := cycle.Post(entries)
	atb := cycle.Normalize(ledger)

	is := cycle.IncomeStatement(atb, cfg.Cycle.RevenueAccounts, cfg.Cycle.ExpenseAccounts, cfg.Cycle.ExtraExpenseAccounts)
	bs := cycle.BalanceSheet(atb, cfg.Cycle.AssetAccounts, cfg.Cycle.LiabilityAccounts, cfg.Cycle.EquityAccounts, is.NetIncome)

	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Ledger Accounts")
	for _, b := range ledger {
		fmt.Fprintf(out, "  %-24s %12s %12s %12s\n",
			b.Account, b.Debit.StringFixed(2), b.Credit.StringFixed(2), b.Balance.StringFixed(2))
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Adjusted Trial Balance")
	for _, r := range atb {
		fmt.Fprintf(out, "  %-24s %12s %12s\n", r.Account, r.DR.StringFixed(2), r.CR.StringFixed(2))
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Income Statement")
	printTotal(out, "Total Revenue", is.TotalRevenue)
	printTotal(out, "Total Expenses", is.TotalExpenses)
	printTotal(out, "Net Income", is.NetIncome)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Balance Sheet")
	printTotal(out, "Total Assets", bs.TotalAssets)
	printTotal(out, "Total Liabilities", bs.TotalLiabilities)
	printTotal(out, "Owner's Equity", bs.TotalEquity)
	printTotal(out, "Liabilities + Equity", bs.TotalLiabilities.Add(bs.TotalEquity))

	if outDir == "" {
		return nil
	}
	if err := writeCSVFile(outDir, "ledger.csv", func(f *os.File) error {
		return report.WriteLedger(f, ledger)
	}); err != nil {
		return err
	}
	return writeCSVFile(outDir, "adjusted-trial-balance.csv", func(f *os.File) error {
		return report.WriteATB(f, atb)
	})
}

func loadJournal(path string) ([]model.Entry, error) {
	if path == "" {
		return cycle.Sample(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}
	defer f.Close()

	entries, err := cycle.ReadEntries(f)
	if err != nil {
		return nil, fmt.Errorf("reading journal %s: %w", path, err)
	}
	return entries, nil
}
