package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is a single row in a journal (one side of a transaction).
type Entry struct {
	Date    time.Time
	Account string
	Debit   decimal.Decimal // zero if credit side
	Credit  decimal.Decimal // zero if debit side
}

// LedgerBalance aggregates all journal rows posted to one account.
type LedgerBalance struct {
	Account string
	Debit   decimal.Decimal
	Credit  decimal.Decimal
	Balance decimal.Decimal // Debit - Credit
}

// TrialBalanceRow is one adjusted-trial-balance line: a net ledger
// balance split into debit and credit columns. At most one of DR/CR
// is nonzero; a zero balance leaves both zero.
type TrialBalanceRow struct {
	Account string
	DR      decimal.Decimal
	CR      decimal.Decimal
}
