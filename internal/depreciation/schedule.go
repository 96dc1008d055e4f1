// Package depreciation generates year-by-year depreciation schedules.
package depreciation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput reports malformed or out-of-range asset parameters.
var ErrInvalidInput = errors.New("invalid depreciation input")

// Method selects the depreciation formula.
type Method string

const (
	StraightLine           Method = "straight-line"
	DoubleDecliningBalance Method = "double-declining-balance"
	UnitsOfProduction      Method = "units-of-production"
)

// ParseMethod maps a CLI/user spelling to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "sl", "straight-line":
		return StraightLine, nil
	case "ddb", "double-declining-balance":
		return DoubleDecliningBalance, nil
	case "uop", "units-of-production":
		return UnitsOfProduction, nil
	}
	return "", fmt.Errorf("%w: unknown method %q", ErrInvalidInput, s)
}

// Params holds asset parameters for one schedule. TotalUnits and
// UnitsPerYear apply to units-of-production only; UnitsPerYear must
// have one figure per year of useful life.
type Params struct {
	Method       Method
	Cost         decimal.Decimal
	Salvage      decimal.Decimal
	UsefulLife   int
	TotalUnits   decimal.Decimal
	UnitsPerYear []decimal.Decimal
}

// Row is one schedule line.
type Row struct {
	Year         int
	Depreciation decimal.Decimal
}

// Schedule generates the full schedule for years 1..UsefulLife.
func Schedule(p Params) ([]Row, error) {
	if err := validate(p); err != nil {
		return nil, err
	}

	switch p.Method {
	case StraightLine:
		return straightLine(p), nil
	case DoubleDecliningBalance:
		return doubleDeclining(p), nil
	case UnitsOfProduction:
		return unitsOfProduction(p), nil
	}
	return nil, fmt.Errorf("%w: unknown method %q", ErrInvalidInput, p.Method)
}

// Total sums a schedule's depreciation column.
func Total(rows []Row) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Depreciation)
	}
	return total
}

func validate(p Params) error {
	if p.UsefulLife <= 0 {
		return fmt.Errorf("%w: useful life must be positive, got %d", ErrInvalidInput, p.UsefulLife)
	}
	if p.Cost.IsNegative() {
		return fmt.Errorf("%w: negative cost %s", ErrInvalidInput, p.Cost)
	}
	if p.Salvage.IsNegative() {
		return fmt.Errorf("%w: negative salvage %s", ErrInvalidInput, p.Salvage)
	}
	if p.Salvage.GreaterThan(p.Cost) {
		return fmt.Errorf("%w: salvage %s exceeds cost %s", ErrInvalidInput, p.Salvage, p.Cost)
	}
	if p.Method == UnitsOfProduction {
		if !p.TotalUnits.IsPositive() {
			return fmt.Errorf("%w: total units must be positive, got %s", ErrInvalidInput, p.TotalUnits)
		}
		if len(p.UnitsPerYear) != p.UsefulLife {
			return fmt.Errorf("%w: %d units-per-year figures for a %d-year life",
				ErrInvalidInput, len(p.UnitsPerYear), p.UsefulLife)
		}
		for i, u := range p.UnitsPerYear {
			if u.IsNegative() {
				return fmt.Errorf("%w: negative units %s in year %d", ErrInvalidInput, u, i+1)
			}
		}
	}
	return nil
}

func straightLine(p Params) []Row {
	annual := p.Cost.Sub(p.Salvage).Div(decimal.NewFromInt(int64(p.UsefulLife)))
	rows := make([]Row, 0, p.UsefulLife)
	for year := 1; year <= p.UsefulLife; year++ {
		rows = append(rows, Row{Year: year, Depreciation: annual})
	}
	return rows
}

func doubleDeclining(p Params) []Row {
	rate := decimal.NewFromInt(2).Div(decimal.NewFromInt(int64(p.UsefulLife)))
	bookValue := p.Cost

	rows := make([]Row, 0, p.UsefulLife)
	for year := 1; year <= p.UsefulLife; year++ {
		dep := bookValue.Mul(rate)
		// Book value never drops below salvage. Once the clamp fires,
		// later years compute against book value == salvage and yield
		// zero depreciation.
		if bookValue.Sub(dep).LessThan(p.Salvage) {
			dep = bookValue.Sub(p.Salvage)
		}
		rows = append(rows, Row{Year: year, Depreciation: dep})
		bookValue = bookValue.Sub(dep)
	}
	return rows
}

func unitsOfProduction(p Params) []Row {
	perUnit := p.Cost.Sub(p.Salvage).Div(p.TotalUnits)
	rows := make([]Row, 0, p.UsefulLife)
	for i, units := range p.UnitsPerYear {
		rows = append(rows, Row{Year: i + 1, Depreciation: units.Mul(perUnit)})
	}
	return rows
}
