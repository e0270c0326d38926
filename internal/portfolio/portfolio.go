// Package portfolio implements holdings aggregation and valuation.
package portfolio

import (
	"github.com/shopspring/decimal"

	"github.com/alioayf27-debug/trackstock/internal/model"
)

var One = decimal.NewFromInt(1)
var Hundred = decimal.NewFromInt(100)

// Merge folds a buy into the holdings list and returns the updated list.
// A buy of a held ticker merges into the existing position with a
// weighted-average cost, keeping its place in the list; the purchase date
// is taken from the newer buy. A new ticker is appended at the end.
//
// Merge is pure: it performs no I/O and never modifies its inputs.
// Quantities are not validated here, that is the transport layer's job.
func Merge(positions []model.Position, buy model.Position) []model.Position {
	for i, existing := range positions {
		if existing.Ticker != buy.Ticker {
			continue
		}

		quantity := existing.Quantity.Add(buy.Quantity)
		cost := existing.Quantity.Mul(existing.AvgCost).
			Add(buy.Quantity.Mul(buy.AvgCost)).
			Div(quantity)

		updated := make([]model.Position, len(positions))
		copy(updated, positions)
		updated[i] = model.Position{
			Ticker:       existing.Ticker,
			Quantity:     quantity,
			AvgCost:      cost,
			PurchaseDate: buy.PurchaseDate,
		}

		return updated
	}

	updated := make([]model.Position, 0, len(positions)+1)
	updated = append(updated, positions...)

	return append(updated, buy)
}

// Remove deletes the whole position for a ticker. Partial sells are not
// supported. Removing an absent ticker returns the list unchanged.
func Remove(positions []model.Position, ticker string) []model.Position {
	updated := make([]model.Position, 0, len(positions))

	for _, position := range positions {
		if position.Ticker != ticker {
			updated = append(updated, position)
		}
	}

	return updated
}

// ValuedPosition is a Position priced against the latest quotes.
type ValuedPosition struct {
	model.Position
	Price            decimal.Decimal `json:"price"`
	MarketValue      decimal.Decimal `json:"marketValue"`
	CostBasis        decimal.Decimal `json:"costBasis"`
	Profit           decimal.Decimal `json:"profit"`
	ShareOfPortfolio decimal.Decimal `json:"shareOfPortfolio"`
}

// Valuation sums a portfolio against the latest quotes.
type Valuation struct {
	Positions   []ValuedPosition `json:"positions"`
	TotalValue  decimal.Decimal  `json:"totalValue"`
	TotalCost   decimal.Decimal  `json:"totalCost"`
	TotalProfit decimal.Decimal  `json:"totalProfit"`
	Performance decimal.Decimal  `json:"performance"`
}

// Value prices every position with the given per-ticker prices. A ticker
// with no price values at zero rather than failing, matching the rest of
// the pipeline's degrade-quietly policy.
func Value(positions []model.Position, prices map[string]decimal.Decimal) Valuation {
	valuation := Valuation{Positions: make([]ValuedPosition, 0, len(positions))}

	for _, position := range positions {
		row := ValuedPosition{Position: position}
		row.Price = prices[position.Ticker]
		row.MarketValue = position.Quantity.Mul(row.Price)
		row.CostBasis = position.Quantity.Mul(position.AvgCost)
		row.Profit = row.MarketValue.Sub(row.CostBasis)

		valuation.TotalValue = valuation.TotalValue.Add(row.MarketValue)
		valuation.TotalCost = valuation.TotalCost.Add(row.CostBasis)
		valuation.Positions = append(valuation.Positions, row)
	}

	valuation.TotalProfit = valuation.TotalValue.Sub(valuation.TotalCost)

	if !valuation.TotalCost.IsZero() {
		valuation.Performance = valuation.TotalValue.Div(valuation.TotalCost).Sub(One).Mul(Hundred)
	}

	for i := range valuation.Positions {
		row := &valuation.Positions[i]

		if valuation.TotalValue.IsZero() {
			row.ShareOfPortfolio = decimal.Zero
		} else {
			row.ShareOfPortfolio = row.MarketValue.Div(valuation.TotalValue).Mul(Hundred)
		}
	}

	return valuation
}
