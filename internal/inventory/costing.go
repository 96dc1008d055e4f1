// Package inventory computes cost of goods sold and ending inventory
// from purchase layers and sale quantities under FIFO, LIFO and
// weighted-average costing, each in periodic or perpetual form.
//
// The perpetual weighted-average method is a moving average over the
// purchase set loaded at the start of the run; the input model has no
// purchase events interleaved between sales. Feeding such a history
// would require a single merged chronological event sequence.
package inventory

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidInput reports malformed purchase or sale figures.
var ErrInvalidInput = errors.New("invalid inventory input")

// ErrInsufficientInventory reports sales exceeding purchased quantity.
var ErrInsufficientInventory = errors.New("sales exceed available inventory")

// Method selects the layer consumption order or averaging.
type Method string

const (
	FIFO            Method = "fifo"
	LIFO            Method = "lifo"
	WeightedAverage Method = "weighted-average"
)

// ParseMethod maps a CLI/user spelling to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "fifo":
		return FIFO, nil
	case "lifo":
		return LIFO, nil
	case "wavg", "weighted-average":
		return WeightedAverage, nil
	}
	return "", fmt.Errorf("%w: unknown method %q", ErrInvalidInput, s)
}

// System selects when sales settle against the layers.
type System string

const (
	// Periodic settles total sales once at period end.
	Periodic System = "periodic"
	// Perpetual processes each sale event against the current layer
	// state in order.
	Perpetual System = "perpetual"
)

// ParseSystem maps a CLI/user spelling to a System.
func ParseSystem(s string) (System, error) {
	switch s {
	case "periodic":
		return Periodic, nil
	case "perpetual":
		return Perpetual, nil
	}
	return "", fmt.Errorf("%w: unknown system %q", ErrInvalidInput, s)
}

// Layer is one purchase lot. Input order is significant: FIFO
// consumes from the front, LIFO from the back.
type Layer struct {
	Qty      decimal.Decimal
	UnitCost decimal.Decimal
}

// FlowRow is one step in the costing trace: quantity costed at a unit
// cost. For weighted-average rows UnitCost is the average cost in
// effect for the sale.
type FlowRow struct {
	Qty      decimal.Decimal
	UnitCost decimal.Decimal
	Total    decimal.Decimal
}

// Result is the outcome of one costing run.
type Result struct {
	COGS            decimal.Decimal
	EndingInventory decimal.Decimal
	Flow            []FlowRow
}

// Calculate runs one costing pass over the purchase layers and sale
// quantities. The caller's layer slice is never mutated; the engine
// works on its own copy. Selling more than was purchased fails with
// ErrInsufficientInventory before any consumption happens.
func Calculate(layers []Layer, sales []decimal.Decimal, m Method, s System) (Result, error) {
	if err := validate(layers, sales); err != nil {
		return Result{}, err
	}

	totalSold := decimal.Zero
	for _, q := range sales {
		totalSold = totalSold.Add(q)
	}
	totalAvailable := decimal.Zero
	for _, l := range layers {
		totalAvailable = totalAvailable.Add(l.Qty)
	}
	if totalSold.GreaterThan(totalAvailable) {
		return Result{}, fmt.Errorf("%w: selling %s of %s available",
			ErrInsufficientInventory, totalSold, totalAvailable)
	}

	work := make([]Layer, len(layers))
	copy(work, layers)

	switch s {
	case Periodic:
		return periodic(work, totalSold, m)
	case Perpetual:
		return perpetual(work, sales, m)
	}
	return Result{}, fmt.Errorf("%w: unknown system %q", ErrInvalidInput, s)
}

func validate(layers []Layer, sales []decimal.Decimal) error {
	for i, l := range layers {
		if l.Qty.IsNegative() {
			return fmt.Errorf("%w: negative quantity %s in purchase %d", ErrInvalidInput, l.Qty, i+1)
		}
		if l.UnitCost.IsNegative() {
			return fmt.Errorf("%w: negative unit cost %s in purchase %d", ErrInvalidInput, l.UnitCost, i+1)
		}
	}
	for i, q := range sales {
		if q.IsNegative() {
			return fmt.Errorf("%w: negative quantity %s in sale %d", ErrInvalidInput, q, i+1)
		}
	}
	return nil
}

// periodic settles totalSold against the original layers in one pass.
func periodic(layers []Layer, totalSold decimal.Decimal, m Method) (Result, error) {
	if m == WeightedAverage {
		return periodicAverage(layers, totalSold), nil
	}

	order, err := walkOrder(len(layers), m)
	if err != nil {
		return Result{}, err
	}

	cogs := decimal.Zero
	needed := totalSold
	var flow []FlowRow
	for _, i := range order {
		if needed.IsZero() {
			break
		}
		use := decimal.Min(layers[i].Qty, needed)
		if use.IsZero() {
			continue
		}
		lineTotal := use.Mul(layers[i].UnitCost)
		flow = append(flow, FlowRow{Qty: use, UnitCost: layers[i].UnitCost, Total: lineTotal})
		cogs = cogs.Add(lineTotal)
		needed = needed.Sub(use)
	}

	// Ending inventory is computed per cost tier: layers sharing a
	// unit cost are fungible, so each layer subtracts the total
	// consumed at its cost rather than tracking its own remainder.
	usedByCost := make(map[string]decimal.Decimal)
	for _, f := range flow {
		key := f.UnitCost.String()
		usedByCost[key] = usedByCost[key].Add(f.Qty)
	}

	ending := decimal.Zero
	for _, l := range layers {
		remaining := l.Qty.Sub(usedByCost[l.UnitCost.String()])
		if remaining.IsPositive() {
			ending = ending.Add(remaining.Mul(l.UnitCost))
		}
	}

	return Result{COGS: cogs, EndingInventory: ending, Flow: flow}, nil
}

func periodicAverage(layers []Layer, totalSold decimal.Decimal) Result {
	totalQty := decimal.Zero
	totalCost := decimal.Zero
	for _, l := range layers {
		totalQty = totalQty.Add(l.Qty)
		totalCost = totalCost.Add(l.Qty.Mul(l.UnitCost))
	}

	avgCost := decimal.Zero
	if totalQty.IsPositive() {
		avgCost = totalCost.Div(totalQty)
	}

	cogs := totalSold.Mul(avgCost)
	ending := totalQty.Sub(totalSold).Mul(avgCost)

	var flow []FlowRow
	if totalSold.IsPositive() {
		flow = []FlowRow{{Qty: totalSold, UnitCost: avgCost, Total: cogs}}
	}

	return Result{COGS: cogs, EndingInventory: ending, Flow: flow}
}

// perpetual processes each sale event in order against the mutable
// running layers. One flow row is recorded per (sale, layer) touch;
// a zero-quantity sale is a no-op with no trace.
func perpetual(layers []Layer, sales []decimal.Decimal, m Method) (Result, error) {
	if m == WeightedAverage {
		return perpetualAverage(layers, sales), nil
	}

	cogs := decimal.Zero
	var flow []FlowRow
	for _, saleQty := range sales {
		order, err := walkOrder(len(layers), m)
		if err != nil {
			return Result{}, err
		}

		needed := saleQty
		for _, i := range order {
			if needed.IsZero() {
				break
			}
			use := decimal.Min(layers[i].Qty, needed)
			if use.IsZero() {
				continue
			}
			lineTotal := use.Mul(layers[i].UnitCost)
			flow = append(flow, FlowRow{Qty: use, UnitCost: layers[i].UnitCost, Total: lineTotal})
			cogs = cogs.Add(lineTotal)
			layers[i].Qty = layers[i].Qty.Sub(use)
			needed = needed.Sub(use)
		}
	}

	ending := decimal.Zero
	for _, l := range layers {
		ending = ending.Add(l.Qty.Mul(l.UnitCost))
	}

	return Result{COGS: cogs, EndingInventory: ending, Flow: flow}, nil
}

func perpetualAverage(layers []Layer, sales []decimal.Decimal) Result {
	totalQty := decimal.Zero
	totalCost := decimal.Zero
	for _, l := range layers {
		totalQty = totalQty.Add(l.Qty)
		totalCost = totalCost.Add(l.Qty.Mul(l.UnitCost))
	}

	cogs := decimal.Zero
	var flow []FlowRow
	for _, saleQty := range sales {
		if saleQty.IsZero() {
			continue
		}

		// The average is recomputed lazily per sale from the current
		// running totals, then applied to the entire sale.
		avgCost := decimal.Zero
		if totalQty.IsPositive() {
			avgCost = totalCost.Div(totalQty)
		}

		saleCost := saleQty.Mul(avgCost)
		flow = append(flow, FlowRow{Qty: saleQty, UnitCost: avgCost, Total: saleCost})
		cogs = cogs.Add(saleCost)
		totalQty = totalQty.Sub(saleQty)
		totalCost = totalCost.Sub(saleCost)
	}

	// The remaining running cost is the ending inventory; this keeps
	// cogs + ending equal to the purchased total exactly.
	return Result{COGS: cogs, EndingInventory: totalCost, Flow: flow}
}

// walkOrder yields layer indices front-to-back for FIFO and
// back-to-front for LIFO.
func walkOrder(n int, m Method) ([]int, error) {
	order := make([]int, n)
	switch m {
	case FIFO:
		for i := range order {
			order[i] = i
		}
	case LIFO:
		for i := range order {
			order[i] = n - 1 - i
		}
	default:
		return nil, fmt.Errorf("%w: unknown method %q", ErrInvalidInput, m)
	}
	return order, nil
}
