package cycle

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerlab-dev/ledgerlab/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func entry(account, debit, credit string) model.Entry {
	return model.Entry{
		Date:    time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Account: account,
		Debit:   dec(debit),
		Credit:  dec(credit),
	}
}

func TestPost_AggregatesByAccount(t *testing.T) {
	ledger := Post(Sample())
	require.Len(t, ledger, 5)

	// First-posted order.
	assert.Equal(t, "Cash", ledger[0].Account)
	assert.Equal(t, "Owner's Capital", ledger[1].Account)

	cash := ledger[0]
	assert.True(t, cash.Debit.Equal(dec("7500")))
	assert.True(t, cash.Credit.Equal(dec("2000")))
	assert.True(t, cash.Balance.Equal(dec("5500")))

	capital := ledger[1]
	assert.True(t, capital.Balance.Equal(dec("-5000")))
}

func TestPost_OrderIndependentGrouping(t *testing.T) {
	entries := Sample()
	reversed := make([]model.Entry, len(entries))
	for i, e := range entries {
		reversed[len(entries)-1-i] = e
	}

	byAccount := func(balances []model.LedgerBalance) map[string]model.LedgerBalance {
		m := make(map[string]model.LedgerBalance)
		for _, b := range balances {
			m[b.Account] = b
		}
		return m
	}

	forward := byAccount(Post(entries))
	backward := byAccount(Post(reversed))
	require.Len(t, backward, len(forward))
	for name, fb := range forward {
		bb := backward[name]
		assert.True(t, fb.Debit.Equal(bb.Debit), "%s debit", name)
		assert.True(t, fb.Credit.Equal(bb.Credit), "%s credit", name)
		assert.True(t, fb.Balance.Equal(bb.Balance), "%s balance", name)
	}
}

func TestPost_BothSidesOnOneRow(t *testing.T) {
	ledger := Post([]model.Entry{entry("Cash", "100", "40")})
	require.Len(t, ledger, 1)
	assert.True(t, ledger[0].Balance.Equal(dec("60")))
}

func TestNormalize_SplitsColumns(t *testing.T) {
	atb := Normalize(Post(Sample()))
	rows := make(map[string]model.TrialBalanceRow)
	for _, r := range atb {
		rows[r.Account] = r
	}

	assert.True(t, rows["Cash"].DR.Equal(dec("5500")))
	assert.True(t, rows["Cash"].CR.IsZero())
	assert.True(t, rows["Owner's Capital"].CR.Equal(dec("5000")))
	assert.True(t, rows["Owner's Capital"].DR.IsZero())
	assert.True(t, rows["Supplies"].DR.Equal(dec("1200")))
	assert.True(t, rows["Revenue"].CR.Equal(dec("2500")))
	assert.True(t, rows["Rent Expense"].DR.Equal(dec("800")))
}

func TestNormalize_ZeroBalance(t *testing.T) {
	atb := Normalize(Post([]model.Entry{
		entry("Cash", "100", "0"),
		entry("Cash", "0", "100"),
	}))
	require.Len(t, atb, 1)
	assert.True(t, atb[0].DR.IsZero())
	assert.True(t, atb[0].CR.IsZero())
}

func TestIncomeStatement_SuppliesInference(t *testing.T) {
	atb := Normalize(Post(Sample()))

	is := IncomeStatement(atb, []string{"Revenue"}, []string{"Rent Expense", "Supplies Expense"}, nil)

	assert.True(t, is.TotalRevenue.Equal(dec("2500")))
	// Rent 800 plus the leftover Supplies debit of 1200 counted as used.
	assert.True(t, is.TotalExpenses.Equal(dec("2000")))
	assert.True(t, is.NetIncome.Equal(dec("500")))
}

func TestIncomeStatement_NoInferenceWithoutSuppliesDebit(t *testing.T) {
	atb := []model.TrialBalanceRow{
		{Account: "Revenue", CR: dec("1000")},
		{Account: "Rent Expense", DR: dec("300")},
	}

	is := IncomeStatement(atb, []string{"Revenue"}, []string{"Rent Expense"}, nil)
	assert.True(t, is.TotalExpenses.Equal(dec("300")))
	assert.True(t, is.NetIncome.Equal(dec("700")))
}

func TestIncomeStatement_ExtraExpenseAccounts(t *testing.T) {
	atb := []model.TrialBalanceRow{
		{Account: "Revenue", CR: dec("1000")},
		{Account: "Insurance", DR: dec("250")},
	}

	is := IncomeStatement(atb, []string{"Revenue"}, nil, []string{"Insurance"})
	assert.True(t, is.TotalExpenses.Equal(dec("250")))
}

func TestBalanceSheet_Totals(t *testing.T) {
	atb := Normalize(Post(Sample()))

	is := IncomeStatement(atb, []string{"Revenue"}, []string{"Rent Expense", "Supplies Expense"}, nil)
	bs := BalanceSheet(atb, []string{"Cash", "Supplies"}, []string{"Accounts Payable"}, []string{"Owner's Capital"}, is.NetIncome)

	assert.True(t, bs.TotalAssets.Equal(dec("6700")))
	assert.True(t, bs.TotalLiabilities.IsZero())
	assert.True(t, bs.TotalEquity.Equal(dec("5500")), "capital 5000 plus net income 500")
}

func TestValidateEntries(t *testing.T) {
	good := entry("Cash", "100", "0")
	errs := ValidateEntries([]model.Entry{good})
	assert.Empty(t, errs)

	bad := []model.Entry{
		{Date: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), Account: "", Debit: dec("10")},
		{Account: "Cash", Debit: dec("-5"), Credit: dec("-1")},
	}
	errs = ValidateEntries(bad)
	require.Len(t, errs, 4)
	assert.Contains(t, errs[0].Error(), "entry 1")
	assert.Contains(t, errs[0].Error(), "missing account name")
	assert.Contains(t, errs[1].Error(), "missing date")
	assert.Contains(t, errs[2].Error(), "negative debit")
	assert.Contains(t, errs[3].Error(), "negative credit")
}

func TestCSV_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteEntries(&buf, Sample()))

	got, err := ReadEntries(&buf)
	require.NoError(t, err)
	require.Len(t, got, 8)

	assert.Equal(t, "Cash", got[0].Account)
	assert.True(t, got[0].Debit.Equal(dec("5000")))
	assert.True(t, got[0].Credit.IsZero())
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), got[0].Date)
}

func TestReadEntries_BadDate(t *testing.T) {
	in := bytes.NewBufferString("date,account,debit,credit\nJan 1,Cash,100,0\n")
	_, err := ReadEntries(in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing date")
}
