package cycle

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerlab-dev/ledgerlab/internal/model"
)

// suppliesAccount is the account whose leftover debit balance is
// treated as supplies used during the period.
const suppliesAccount = "Supplies"

// IncomeStatement sums CR over revenue accounts and DR over expense
// accounts of an adjusted trial balance.
//
// If an account named "Supplies" still carries a debit balance it is
// counted as an expense, modeling a supplies-used adjustment inferred
// from the unadjusted balance. Callers who know the adjustment should
// pass the account through extraExpense instead of relying on the
// inference.
func IncomeStatement(atb []model.TrialBalanceRow, revenue, expense, extraExpense []string) model.CycleIncomeStatement {
	revenueSet := nameSet(revenue)
	expenseSet := nameSet(expense)
	for _, name := range extraExpense {
		expenseSet[name] = true
	}
	for _, row := range atb {
		if row.Account == suppliesAccount && row.DR.IsPositive() {
			expenseSet[suppliesAccount] = true
		}
	}

	totalRevenue := decimal.Zero
	totalExpenses := decimal.Zero
	for _, row := range atb {
		if revenueSet[row.Account] {
			totalRevenue = totalRevenue.Add(row.CR)
		}
		if expenseSet[row.Account] {
			totalExpenses = totalExpenses.Add(row.DR)
		}
	}

	return model.CycleIncomeStatement{
		TotalRevenue:  totalRevenue,
		TotalExpenses: totalExpenses,
		NetIncome:     totalRevenue.Sub(totalExpenses),
	}
}

// BalanceSheet sums DR over asset accounts and CR over liability and
// equity accounts of an adjusted trial balance. Net income is folded
// into total equity.
func BalanceSheet(atb []model.TrialBalanceRow, assets, liabilities, equity []string, netIncome decimal.Decimal) model.CycleBalanceSheet {
	assetSet := nameSet(assets)
	liabilitySet := nameSet(liabilities)
	equitySet := nameSet(equity)

	totalAssets := decimal.Zero
	totalLiabilities := decimal.Zero
	totalEquity := decimal.Zero
	for _, row := range atb {
		if assetSet[row.Account] {
			totalAssets = totalAssets.Add(row.DR)
		}
		if liabilitySet[row.Account] {
			totalLiabilities = totalLiabilities.Add(row.CR)
		}
		if equitySet[row.Account] {
			totalEquity = totalEquity.Add(row.CR)
		}
	}

	return model.CycleBalanceSheet{
		TotalAssets:      totalAssets,
		TotalLiabilities: totalLiabilities,
		TotalEquity:      totalEquity.Add(netIncome),
	}
}

func nameSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
