package trialbalance

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ledgerlab-dev/ledgerlab/internal/model"
)

// Header is the CSV header for a trial balance file.
const Header = "account,type,amount"

const (
	numFields = 3
	colName   = 0
	colType   = 1
	colAmount = 2
)

// ReadAccounts reads a trial balance CSV.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading trial balance CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var accounts []model.Account
	for i, rec := range records[1:] {
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// WriteAccounts writes a trial balance CSV (including header).
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(a model.Account) []string {
	row := make([]string, numFields)
	row[colName] = a.Name
	row[colType] = string(a.Category)
	row[colAmount] = a.Amount.String()
	return row
}

// UnmarshalAccount converts a CSV row to an Account. The category is
// carried through as-is; Classify performs the strict check.
func UnmarshalAccount(record []string) (model.Account, error) {
	if len(record) != numFields {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	amount, err := decimal.NewFromString(record[colAmount])
	if err != nil {
		return model.Account{}, fmt.Errorf("parsing amount %q: %w", record[colAmount], err)
	}

	return model.Account{
		Name:     record[colName],
		Category: model.Category(record[colType]),
		Amount:   amount,
	}, nil
}

// Sample returns the built-in demo trial balance used when no input
// file is supplied.
func Sample() []model.Account {
	return []model.Account{
		{Name: "Cash", Category: model.CategoryAsset, Amount: decimal.NewFromInt(5000)},
		{Name: "Accounts Receivable", Category: model.CategoryAsset, Amount: decimal.NewFromInt(2000)},
		{Name: "Supplies", Category: model.CategoryAsset, Amount: decimal.NewFromInt(800)},
		{Name: "Equipment", Category: model.CategoryAsset, Amount: decimal.NewFromInt(3000)},
		{Name: "Accounts Payable", Category: model.CategoryLiability, Amount: decimal.NewFromInt(1500)},
		{Name: "Owner's Capital", Category: model.CategoryEquity, Amount: decimal.NewFromInt(5000)},
		{Name: "Revenue", Category: model.CategoryRevenue, Amount: decimal.NewFromInt(8000)},
		{Name: "Rent Expense", Category: model.CategoryExpense, Amount: decimal.NewFromInt(2000)},
		{Name: "Depreciation Expense", Category: model.CategoryNonCash, Amount: decimal.NewFromInt(500)},
	}
}
