package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ledgerlab-dev/ledgerlab/internal/model"
	"github.com/ledgerlab-dev/ledgerlab/internal/report"
	"github.com/ledgerlab-dev/ledgerlab/internal/statements"
	"github.com/ledgerlab-dev/ledgerlab/internal/trialbalance"
)

func newStatementsCommand() *cobra.Command {
	var input string
	var outDir string

	cmd := &cobra.Command{
		Use:   "statements",
		Short: "Derive income statement, balance sheet and cash flow from a trial balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatements(cmd, input, outDir)
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "trial balance CSV (built-in sample when omitted)")
	cmd.Flags().StringVar(&outDir, "out", "", "directory for CSV exports")

	return cmd
}

func runStatements(cmd *cobra.Command, input, outDir string) error {
	accounts, err := loadTrialBalance(input)
	if err != nil {
		return err
	}

	sections, err := trialbalance.Classify(accounts)
	if err != nil {
		return err
	}

	is := statements.BuildIncomeStatement(sections[model.CategoryRevenue], sections[model.CategoryExpense])
	bs := statements.BuildBalanceSheet(
		sections[model.CategoryAsset],
		sections[model.CategoryLiability],
		sections[model.CategoryEquity],
		is.NetIncome,
	)
	cf := statements.BuildCashFlowIndirect(
		is.NetIncome,
		sections[model.CategoryNonCash],
		sections[model.CategoryAsset],
		sections[model.CategoryLiability],
	)

	out := cmd.OutOrStdout()
	printStatementRows(out, "Income Statement", is.Rows)
	printStatementRows(out, "Balance Sheet", bs.Rows)
	printTotal(out, "Total Assets", bs.TotalAssets)
	printTotal(out, "Total Liabilities", bs.TotalLiabilities)
	printTotal(out, "Total Equity", bs.TotalEquity)
	printTotal(out, "Liabilities + Equity", bs.TotalLiabilities.Add(bs.TotalEquity))
	fmt.Fprintln(out)

	if statements.BalanceCheck(bs.TotalAssets, bs.TotalLiabilities, bs.TotalEquity) {
		fmt.Fprintln(out, "Balance sheet balances.")
	} else {
		fmt.Fprintln(out, "Balance sheet does NOT balance - recheck the trial balance.")
	}
	fmt.Fprintln(out)

	printStatementRows(out, "Cash Flow Statement (Indirect)", cf.Rows)

	if outDir == "" {
		return nil
	}
	exports := map[string][]model.StatementRow{
		"income-statement.csv": is.Rows,
		"balance-sheet.csv":    bs.Rows,
		"cash-flow.csv":        cf.Rows,
	}
	for name, rows := range exports {
		if err := writeCSVFile(outDir, name, func(f *os.File) error {
			return report.WriteStatementRows(f, rows)
		}); err != nil {
			return err
		}
	}
	return nil
}

func loadTrialBalance(input string) ([]model.Account, error) {
	if input == "" {
		return trialbalance.Sample(), nil
	}
	f, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("opening trial balance: %w", err)
	}
	defer f.Close()

	accounts, err := trialbalance.ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading trial balance %s: %w", input, err)
	}
	return accounts, nil
}

func writeCSVFile(dir, name string, write func(*os.File) error) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
