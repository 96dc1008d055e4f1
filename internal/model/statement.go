package model

import (
	"github.com/shopspring/decimal"
)

// StatementRow is one line of a rendered financial statement. Section
// is set for balance-sheet rows ("Assets", "Liabilities", "Equity")
// and empty elsewhere. Descriptions are not unique: component rows and
// summary rows (Total Revenue, Net Income, ...) share the sequence.
type StatementRow struct {
	Section     string
	Description string
	Amount      decimal.Decimal
}

// IncomeStatement lists revenues and negated expenses followed by
// summary rows.
type IncomeStatement struct {
	Rows          []StatementRow
	TotalRevenue  decimal.Decimal
	TotalExpenses decimal.Decimal
	NetIncome     decimal.Decimal
}

// BalanceSheet lists asset, liability and equity accounts by section.
// TotalEquity includes the period's net income.
type BalanceSheet struct {
	Rows             []StatementRow
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	TotalEquity      decimal.Decimal
}

// CashFlowStatement is the indirect-method operating section.
type CashFlowStatement struct {
	Rows           []StatementRow
	NetCashFromOps decimal.Decimal
}

// CycleIncomeStatement holds the accounting-cycle income statement
// totals derived from an adjusted trial balance.
type CycleIncomeStatement struct {
	TotalRevenue  decimal.Decimal
	TotalExpenses decimal.Decimal
	NetIncome     decimal.Decimal
}

// CycleBalanceSheet holds the accounting-cycle balance sheet totals.
// TotalEquity includes net income.
type CycleBalanceSheet struct {
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	TotalEquity      decimal.Decimal
}
