// Package cycle implements the accounting-cycle pipeline: journal
// entries are posted to ledger balances, normalized into an adjusted
// trial balance, and summarized into cycle statements.
package cycle

import (
	"github.com/ledgerlab-dev/ledgerlab/internal/model"
)

// Post groups journal entries by account name (exact string match) and
// sums debit and credit columns independently. Accounts appear in
// first-posted order; the grouping itself is order-independent over
// the entry multiset. Balances are recomputed in full on every call,
// keeping the pipeline stateless and idempotent.
func Post(entries []model.Entry) []model.LedgerBalance {
	index := make(map[string]int)
	var balances []model.LedgerBalance

	for _, e := range entries {
		i, ok := index[e.Account]
		if !ok {
			i = len(balances)
			index[e.Account] = i
			balances = append(balances, model.LedgerBalance{Account: e.Account})
		}
		balances[i].Debit = balances[i].Debit.Add(e.Debit)
		balances[i].Credit = balances[i].Credit.Add(e.Credit)
	}

	for i := range balances {
		balances[i].Balance = balances[i].Debit.Sub(balances[i].Credit)
	}
	return balances
}

// Normalize splits each ledger balance into debit/credit columns: a
// positive balance lands in DR, a negative one (negated) in CR, and an
// exactly-zero balance leaves both columns zero.
func Normalize(balances []model.LedgerBalance) []model.TrialBalanceRow {
	rows := make([]model.TrialBalanceRow, 0, len(balances))
	for _, b := range balances {
		row := model.TrialBalanceRow{Account: b.Account}
		switch {
		case b.Balance.IsPositive():
			row.DR = b.Balance
		case b.Balance.IsNegative():
			row.CR = b.Balance.Neg()
		}
		rows = append(rows, row)
	}
	return rows
}
