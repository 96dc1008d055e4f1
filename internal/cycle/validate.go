package cycle

import (
	"fmt"

	"github.com/ledgerlab-dev/ledgerlab/internal/model"
)

// ValidationError describes a single bad journal row.
type ValidationError struct {
	Row         int // 1-based position in the journal
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("entry %d: %s", e.Row, e.Description)
}

// ValidateEntries checks journal rows for basic input sanity: a named
// account, a real date, and non-negative amounts. Double-entry
// balancing is deliberately not enforced; the poster accepts any row
// mix, including rows carrying both a debit and a credit.
func ValidateEntries(entries []model.Entry) []ValidationError {
	var errs []ValidationError
	for i, e := range entries {
		row := i + 1
		if e.Account == "" {
			errs = append(errs, ValidationError{Row: row, Description: "missing account name"})
		}
		if e.Date.IsZero() {
			errs = append(errs, ValidationError{Row: row, Description: "missing date"})
		}
		if e.Debit.IsNegative() {
			errs = append(errs, ValidationError{Row: row, Description: fmt.Sprintf("negative debit %s", e.Debit)})
		}
		if e.Credit.IsNegative() {
			errs = append(errs, ValidationError{Row: row, Description: fmt.Sprintf("negative credit %s", e.Credit)})
		}
	}
	return errs
}
