// Package report serializes engine outputs as CSV tables. Amounts are
// written full precision; two-decimal display is left to callers.
package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/ledgerlab-dev/ledgerlab/internal/depreciation"
	"github.com/ledgerlab-dev/ledgerlab/internal/inventory"
	"github.com/ledgerlab-dev/ledgerlab/internal/model"
)

// WriteStatementRows writes statement lines as section,description,amount.
func WriteStatementRows(w io.Writer, rows []model.StatementRow) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"section", "description", "amount"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, r := range rows {
		if err := cw.Write([]string{r.Section, r.Description, r.Amount.String()}); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// WriteLedger writes ledger balances as account,debit,credit,balance.
func WriteLedger(w io.Writer, balances []model.LedgerBalance) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"account", "debit", "credit", "balance"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, b := range balances {
		row := []string{b.Account, b.Debit.String(), b.Credit.String(), b.Balance.String()}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// WriteATB writes adjusted-trial-balance rows as account,dr,cr.
func WriteATB(w io.Writer, rows []model.TrialBalanceRow) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"account", "dr", "cr"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, r := range rows {
		if err := cw.Write([]string{r.Account, r.DR.String(), r.CR.String()}); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// WriteSchedule writes a depreciation schedule as year,depreciation.
func WriteSchedule(w io.Writer, rows []depreciation.Row) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"year", "depreciation"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, r := range rows {
		if err := cw.Write([]string{fmt.Sprintf("%d", r.Year), r.Depreciation.String()}); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// WriteFlow writes an inventory costing trace as qty,unit_cost,line_total.
func WriteFlow(w io.Writer, rows []inventory.FlowRow) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"qty", "unit_cost", "line_total"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, r := range rows {
		if err := cw.Write([]string{r.Qty.String(), r.UnitCost.String(), r.Total.String()}); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
