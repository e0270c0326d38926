package portfolio

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alioayf27-debug/trackstock/internal/model"
)

func position(ticker string, quantity, avgCost float64) model.Position {
	return model.Position{
		Ticker:   ticker,
		Quantity: decimal.NewFromFloat(quantity),
		AvgCost:  decimal.NewFromFloat(avgCost),
	}
}

func TestMergeAppendsNewTicker(t *testing.T) {
	merged := Merge(nil, position("NVDA", 5, 100))

	require.Len(t, merged, 1)
	assert.Equal(t, "NVDA", merged[0].Ticker)
	assert.True(t, merged[0].Quantity.Equal(decimal.NewFromInt(5)))
}

func TestMergeWeightedAverageCost(t *testing.T) {
	holdings := []model.Position{position("NVDA", 5, 100)}

	merged := Merge(holdings, position("NVDA", 5, 200))

	require.Len(t, merged, 1)
	assert.True(t, merged[0].Quantity.Equal(decimal.NewFromInt(10)))
	assert.True(t, merged[0].AvgCost.Equal(decimal.NewFromInt(150)),
		"avg cost was %s", merged[0].AvgCost)
}

func TestMergeKeepsListPosition(t *testing.T) {
	holdings := []model.Position{
		position("AAPL", 1, 200),
		position("NVDA", 5, 100),
		position("MSFT", 2, 400),
	}

	merged := Merge(holdings, position("NVDA", 15, 120))

	require.Len(t, merged, 3)
	assert.Equal(t, "NVDA", merged[1].Ticker)
	assert.True(t, merged[1].Quantity.Equal(decimal.NewFromInt(20)))
	assert.True(t, merged[1].AvgCost.Equal(decimal.NewFromInt(115)))
}

func TestMergeTakesNewerPurchaseDate(t *testing.T) {
	older := position("NVDA", 5, 100)
	older.PurchaseDate = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	newer := position("NVDA", 5, 100)
	newer.PurchaseDate = time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	merged := Merge([]model.Position{older}, newer)

	require.Len(t, merged, 1)
	assert.Equal(t, newer.PurchaseDate, merged[0].PurchaseDate)
}

func TestMergeDoesNotModifyInput(t *testing.T) {
	holdings := []model.Position{position("NVDA", 5, 100)}

	Merge(holdings, position("NVDA", 5, 200))

	assert.True(t, holdings[0].Quantity.Equal(decimal.NewFromInt(5)))
	assert.True(t, holdings[0].AvgCost.Equal(decimal.NewFromInt(100)))
}

func TestRemove(t *testing.T) {
	holdings := []model.Position{
		position("AAPL", 1, 200),
		position("NVDA", 5, 100),
	}

	updated := Remove(holdings, "AAPL")

	require.Len(t, updated, 1)
	assert.Equal(t, "NVDA", updated[0].Ticker)
}

func TestRemoveAbsentTickerIsNoOp(t *testing.T) {
	holdings := []model.Position{position("NVDA", 5, 100)}

	updated := Remove(holdings, "AAPL")

	assert.Len(t, updated, 1)
}

func TestValue(t *testing.T) {
	holdings := []model.Position{
		position("NVDA", 10, 100),
		position("AAPL", 5, 200),
	}
	prices := map[string]decimal.Decimal{
		"NVDA": decimal.NewFromInt(150),
		"AAPL": decimal.NewFromInt(220),
	}

	valuation := Value(holdings, prices)

	require.Len(t, valuation.Positions, 2)

	// 10 * 150 + 5 * 220 = 2600 against a cost of 10 * 100 + 5 * 200 = 2000.
	assert.True(t, valuation.TotalValue.Equal(decimal.NewFromInt(2600)))
	assert.True(t, valuation.TotalCost.Equal(decimal.NewFromInt(2000)))
	assert.True(t, valuation.TotalProfit.Equal(decimal.NewFromInt(600)))
	assert.True(t, valuation.Performance.Equal(decimal.NewFromInt(30)),
		"performance was %s", valuation.Performance)

	nvda := valuation.Positions[0]

	assert.True(t, nvda.MarketValue.Equal(decimal.NewFromInt(1500)))
	assert.True(t, nvda.Profit.Equal(decimal.NewFromInt(500)))
	assert.True(t, nvda.ShareOfPortfolio.Round(4).Equal(decimal.RequireFromString("57.6923")),
		"share was %s", nvda.ShareOfPortfolio)
}

func TestValueMissingPriceCountsAsZero(t *testing.T) {
	holdings := []model.Position{position("NVDA", 10, 100)}

	valuation := Value(holdings, nil)

	assert.True(t, valuation.TotalValue.IsZero())
	assert.True(t, valuation.TotalProfit.Equal(decimal.NewFromInt(-1000)))
	assert.True(t, valuation.Positions[0].ShareOfPortfolio.IsZero())
}

func TestValueEmptyPortfolio(t *testing.T) {
	valuation := Value(nil, nil)

	assert.Empty(t, valuation.Positions)
	assert.True(t, valuation.Performance.IsZero())
}
