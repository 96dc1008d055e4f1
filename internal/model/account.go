package model

import (
	"github.com/shopspring/decimal"
)

// Category classifies a trial-balance account into a report section.
type Category string

const (
	CategoryAsset     Category = "Asset"
	CategoryLiability Category = "Liability"
	CategoryEquity    Category = "Equity"
	CategoryRevenue   Category = "Revenue"
	CategoryExpense   Category = "Expense"
	CategoryNonCash   Category = "Non-Cash"
)

// ParseCategory maps a Type column value to a Category.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryAsset, CategoryLiability, CategoryEquity,
		CategoryRevenue, CategoryExpense, CategoryNonCash:
		return Category(s), true
	}
	return "", false
}

// Account represents a row in a trial balance.
type Account struct {
	Name     string
	Category Category
	Amount   decimal.Decimal // normal balance, non-negative by convention
}
