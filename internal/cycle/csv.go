package cycle

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerlab-dev/ledgerlab/internal/model"
)

// Header is the CSV header for a journal file.
const Header = "date,account,debit,credit"

const (
	numFields  = 4
	dateFormat = "2006-01-02"
	colDate    = 0
	colAccount = 1
	colDebit   = 2
	colCredit  = 3
)

// ReadEntries reads all journal entries from a journal CSV reader.
func ReadEntries(r io.Reader) ([]model.Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var entries []model.Entry
	for i, rec := range records[1:] {
		entry, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// WriteEntries writes journal entries to a CSV writer (including header).
func WriteEntries(w io.Writer, entries []model.Entry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, entry := range entries {
		if err := cw.Write(MarshalEntry(entry)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e model.Entry) []string {
	row := make([]string, numFields)
	row[colDate] = e.Date.Format(dateFormat)
	row[colAccount] = e.Account
	row[colDebit] = e.Debit.String()
	row[colCredit] = e.Credit.String()
	return row
}

// UnmarshalEntry converts a CSV row to an Entry. Empty debit/credit
// cells read as zero.
func UnmarshalEntry(record []string) (model.Entry, error) {
	if len(record) != numFields {
		return model.Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.Entry{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	var debit, credit decimal.Decimal

	if record[colDebit] != "" {
		debit, err = decimal.NewFromString(record[colDebit])
		if err != nil {
			return model.Entry{}, fmt.Errorf("parsing debit %q: %w", record[colDebit], err)
		}
	}

	if record[colCredit] != "" {
		credit, err = decimal.NewFromString(record[colCredit])
		if err != nil {
			return model.Entry{}, fmt.Errorf("parsing credit %q: %w", record[colCredit], err)
		}
	}

	return model.Entry{
		Date:    date,
		Account: record[colAccount],
		Debit:   debit,
		Credit:  credit,
	}, nil
}

// Sample returns the built-in demo journal used when no input file is
// supplied.
func Sample() []model.Entry {
	day := func(d int) time.Time { return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC) }
	amt := func(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

	return []model.Entry{
		{Date: day(1), Account: "Cash", Debit: amt(5000)},
		{Date: day(1), Account: "Owner's Capital", Credit: amt(5000)},
		{Date: day(5), Account: "Supplies", Debit: amt(1200)},
		{Date: day(5), Account: "Cash", Credit: amt(1200)},
		{Date: day(10), Account: "Revenue", Credit: amt(2500)},
		{Date: day(10), Account: "Cash", Debit: amt(2500)},
		{Date: day(15), Account: "Rent Expense", Debit: amt(800)},
		{Date: day(15), Account: "Cash", Credit: amt(800)},
	}
}
