// Package statements derives financial statements from a classified
// trial balance.
package statements

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerlab-dev/ledgerlab/internal/model"
)

// Row labels shared by builders and renderers.
const (
	RowTotalRevenue   = "Total Revenue"
	RowTotalExpenses  = "Total Expenses"
	RowNetIncome      = "Net Income"
	RowNonCash        = "Non-Cash Expenses"
	RowAssetChanges   = "Changes in Assets"
	RowLiabChanges    = "Changes in Liabilities"
	RowNetCashFromOps = "Net Cash from Ops"

	SectionAssets      = "Assets"
	SectionLiabilities = "Liabilities"
	SectionEquity      = "Equity"
)

// balanceTolerance absorbs floating-point rounding from upstream
// tools, not accounting errors.
var balanceTolerance = decimal.NewFromFloat(0.01)

// BuildIncomeStatement lists each revenue account as a positive
// amount and each expense account negated, followed by Total Revenue,
// Total Expenses (as a negative figure) and Net Income.
func BuildIncomeStatement(revenues, expenses []model.Account) model.IncomeStatement {
	totalRevenue := sumAmounts(revenues)
	totalExpenses := sumAmounts(expenses)

	rows := make([]model.StatementRow, 0, len(revenues)+len(expenses)+3)
	for _, a := range revenues {
		rows = append(rows, model.StatementRow{Description: a.Name, Amount: a.Amount})
	}
	for _, a := range expenses {
		rows = append(rows, model.StatementRow{Description: a.Name, Amount: a.Amount.Neg()})
	}

	netIncome := totalRevenue.Sub(totalExpenses)
	rows = append(rows,
		model.StatementRow{Description: RowTotalRevenue, Amount: totalRevenue},
		model.StatementRow{Description: RowTotalExpenses, Amount: totalExpenses.Neg()},
		model.StatementRow{Description: RowNetIncome, Amount: netIncome},
	)

	return model.IncomeStatement{
		Rows:          rows,
		TotalRevenue:  totalRevenue,
		TotalExpenses: totalExpenses,
		NetIncome:     netIncome,
	}
}

// BuildBalanceSheet assembles sectioned rows for assets, liabilities
// and equity. The equity section gains a synthetic Net Income row
// before summing, so TotalEquity includes net income.
func BuildBalanceSheet(assets, liabilities, equity []model.Account, netIncome decimal.Decimal) model.BalanceSheet {
	rows := make([]model.StatementRow, 0, len(assets)+len(liabilities)+len(equity)+1)
	for _, a := range assets {
		rows = append(rows, model.StatementRow{Section: SectionAssets, Description: a.Name, Amount: a.Amount})
	}
	for _, a := range liabilities {
		rows = append(rows, model.StatementRow{Section: SectionLiabilities, Description: a.Name, Amount: a.Amount})
	}
	for _, a := range equity {
		rows = append(rows, model.StatementRow{Section: SectionEquity, Description: a.Name, Amount: a.Amount})
	}
	rows = append(rows, model.StatementRow{Section: SectionEquity, Description: RowNetIncome, Amount: netIncome})

	return model.BalanceSheet{
		Rows:             rows,
		TotalAssets:      sumAmounts(assets),
		TotalLiabilities: sumAmounts(liabilities),
		TotalEquity:      sumAmounts(equity).Add(netIncome),
	}
}

// BalanceCheck reports whether assets equal liabilities plus equity
// within tolerance. A false result is a reportable business condition
// (recheck the trial balance), not a system fault.
func BalanceCheck(totalAssets, totalLiabilities, totalEquity decimal.Decimal) bool {
	diff := totalAssets.Sub(totalLiabilities.Add(totalEquity))
	return diff.Abs().LessThan(balanceTolerance)
}

// BuildCashFlowIndirect derives the operating section of an
// indirect-method cash flow statement:
//
//	net cash = net income + non-cash expenses - sum(assets) + sum(liabilities)
//
// This is a single-period simplification: it treats current asset and
// liability balances as the period's changes rather than netting
// prior-period deltas. Asset increases consume cash, liability
// increases provide cash.
func BuildCashFlowIndirect(netIncome decimal.Decimal, nonCash, assets, liabilities []model.Account) model.CashFlowStatement {
	nonCashTotal := sumAmounts(nonCash)
	assetChanges := sumAmounts(assets).Neg()
	liabChanges := sumAmounts(liabilities)
	netCash := netIncome.Add(nonCashTotal).Add(assetChanges).Add(liabChanges)

	rows := []model.StatementRow{
		{Description: RowNetIncome, Amount: netIncome},
		{Description: RowNonCash, Amount: nonCashTotal},
		{Description: RowAssetChanges, Amount: assetChanges},
		{Description: RowLiabChanges, Amount: liabChanges},
		{Description: RowNetCashFromOps, Amount: netCash},
	}

	return model.CashFlowStatement{Rows: rows, NetCashFromOps: netCash}
}

func sumAmounts(accounts []model.Account) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(a.Amount)
	}
	return total
}
