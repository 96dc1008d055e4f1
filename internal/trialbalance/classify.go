// Package trialbalance classifies trial-balance accounts into the
// report sections the statement builders consume.
package trialbalance

import (
	"errors"
	"fmt"

	"github.com/ledgerlab-dev/ledgerlab/internal/model"
)

// ErrUnknownCategory reports an account whose Type column is not one
// of the six recognized categories.
var ErrUnknownCategory = errors.New("unknown account category")

// Classify partitions accounts by category, preserving input order
// within each section. An unrecognized category fails the whole call
// rather than silently dropping the row from every report.
func Classify(accounts []model.Account) (map[model.Category][]model.Account, error) {
	sections := make(map[model.Category][]model.Account)
	for _, a := range accounts {
		if _, ok := model.ParseCategory(string(a.Category)); !ok {
			return nil, fmt.Errorf("account %q: %w: %q", a.Name, ErrUnknownCategory, a.Category)
		}
		sections[a.Category] = append(sections[a.Category], a)
	}
	return sections, nil
}
