package inventory

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// PurchasesHeader is the CSV header for a purchases file.
const PurchasesHeader = "qty,cost"

// SalesHeader is the CSV header for a sales file.
const SalesHeader = "qty"

// ReadPurchases reads purchase layers from a qty,cost CSV.
func ReadPurchases(r io.Reader) ([]Layer, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading purchases CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var layers []Layer
	for i, rec := range records[1:] {
		layer, err := unmarshalLayer(rec[0], rec[1])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		layers = append(layers, layer)
	}
	return layers, nil
}

// WritePurchases writes purchase layers as a qty,cost CSV.
func WritePurchases(w io.Writer, layers []Layer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(PurchasesHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, l := range layers {
		if err := cw.Write([]string{l.Qty.String(), l.UnitCost.String()}); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// ReadSales reads sale quantities from a single-column CSV. Row order
// is the sale-event order for the perpetual system.
func ReadSales(r io.Reader) ([]decimal.Decimal, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading sales CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var sales []decimal.Decimal
	for i, rec := range records[1:] {
		qty, err := decimal.NewFromString(rec[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing qty %q: %w", i+2, rec[0], err)
		}
		sales = append(sales, qty)
	}
	return sales, nil
}

// WriteSales writes sale quantities as a single-column CSV.
func WriteSales(w io.Writer, sales []decimal.Decimal) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{SalesHeader}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, q := range sales {
		if err := cw.Write([]string{q.String()}); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// ParsePurchaseLines parses "qty, cost" text lines, one layer per
// line. Blank lines are skipped.
func ParsePurchaseLines(text string) ([]Layer, error) {
	var layers []Layer
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, ",", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("line %d: expected \"qty, cost\", got %q", i+1, line)
		}
		layer, err := unmarshalLayer(strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		layers = append(layers, layer)
	}
	return layers, nil
}

// ParseSaleLines parses sale quantity text lines, one per line.
// Blank lines are skipped.
func ParseSaleLines(text string) ([]decimal.Decimal, error) {
	var sales []decimal.Decimal
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		qty, err := decimal.NewFromString(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: parsing qty %q: %w", i+1, line, err)
		}
		sales = append(sales, qty)
	}
	return sales, nil
}

func unmarshalLayer(qtyField, costField string) (Layer, error) {
	qty, err := decimal.NewFromString(qtyField)
	if err != nil {
		return Layer{}, fmt.Errorf("parsing qty %q: %w", qtyField, err)
	}
	cost, err := decimal.NewFromString(costField)
	if err != nil {
		return Layer{}, fmt.Errorf("parsing cost %q: %w", costField, err)
	}
	return Layer{Qty: qty, UnitCost: cost}, nil
}

// SamplePurchases returns the built-in demo purchase layers.
func SamplePurchases() []Layer {
	return []Layer{
		{Qty: decimal.NewFromInt(10), UnitCost: decimal.NewFromInt(5)},
		{Qty: decimal.NewFromInt(15), UnitCost: decimal.NewFromInt(6)},
		{Qty: decimal.NewFromInt(20), UnitCost: decimal.NewFromInt(7)},
	}
}

// SampleSales returns the built-in demo sale quantities.
func SampleSales() []decimal.Decimal {
	return []decimal.Decimal{decimal.NewFromInt(20), decimal.NewFromInt(10)}
}
