package commands

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/ledgerlab-dev/ledgerlab/internal/model"
)

// printStatementRows renders statement lines as an aligned two-column
// table, with the balance-sheet section label prefixed when present.
func printStatementRows(w io.Writer, title string, rows []model.StatementRow) {
	fmt.Fprintf(w, "%s\n", title)
	for _, r := range rows {
		desc := r.Description
		if r.Section != "" {
			desc = r.Section + " / " + r.Description
		}
		fmt.Fprintf(w, "  %-34s %14s\n", desc, r.Amount.StringFixed(2))
	}
	fmt.Fprintln(w)
}

func printTotal(w io.Writer, label string, amount decimal.Decimal) {
	fmt.Fprintf(w, "  %-34s %14s\n", label, amount.StringFixed(2))
}
