package quote

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alioayf27-debug/trackstock/internal/catalog"
	"github.com/alioayf27-debug/trackstock/internal/model"
)

// providerFunc adapts a function to the Provider interface.
type providerFunc func(ctx context.Context, ticker string) (model.Quote, error)

func (function providerFunc) Quote(ctx context.Context, ticker string) (model.Quote, error) {
	return function(ctx, ticker)
}

func testCatalog() *catalog.Catalog {
	return catalog.FromStocks([]model.Stock{
		{Ticker: "AAPL", Name: "Apple Inc.", Price: decimal.NewFromFloat(226)},
		{Ticker: "NVDA", Name: "NVIDIA Corp.", Price: decimal.NewFromFloat(138.5)},
	})
}

// sequence returns a Random function yielding the given values in order.
func sequence(values ...float64) func() float64 {
	index := 0

	return func() float64 {
		value := values[index%len(values)]
		index++

		return value
	}
}

func testResolver(provider Provider) (*Resolver, *time.Time) {
	clock := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	resolver := NewResolver(testCatalog(), provider)
	resolver.Now = func() time.Time { return clock }
	resolver.Random = sequence(1, 1)

	return resolver, &clock
}

func TestResolveLiveQuote(t *testing.T) {
	live := model.Quote{
		Ticker: "AAPL",
		Price:  decimal.NewFromFloat(227.5),
		Change: decimal.NewFromFloat(1.5),
	}
	resolver, clock := testResolver(providerFunc(
		func(ctx context.Context, ticker string) (model.Quote, error) {
			return live, nil
		},
	))

	quote, source, ok := resolver.Resolve(context.Background(), "AAPL", false)

	require.True(t, ok)
	assert.Equal(t, SourceLive, source)
	assert.True(t, quote.Price.Equal(live.Price))
	assert.Equal(t, *clock, quote.LastUpdated)
}

func TestResolveUnknownTicker(t *testing.T) {
	resolver, _ := testResolver(nil)

	_, _, ok := resolver.Resolve(context.Background(), "ZZZZ", false)

	assert.False(t, ok)
}

func TestResolveCacheWithinTTL(t *testing.T) {
	calls := 0
	resolver, clock := testResolver(providerFunc(
		func(ctx context.Context, ticker string) (model.Quote, error) {
			calls++

			return model.Quote{Ticker: ticker, Price: decimal.NewFromFloat(227)}, nil
		},
	))

	_, source, ok := resolver.Resolve(context.Background(), "AAPL", false)

	require.True(t, ok)
	require.Equal(t, SourceLive, source)

	*clock = clock.Add(30 * time.Second)

	_, source, ok = resolver.Resolve(context.Background(), "AAPL", false)

	require.True(t, ok)
	assert.Equal(t, SourceCached, source)
	assert.Equal(t, 1, calls)
}

func TestResolveRefetchAfterTTL(t *testing.T) {
	calls := 0
	resolver, clock := testResolver(providerFunc(
		func(ctx context.Context, ticker string) (model.Quote, error) {
			calls++

			return model.Quote{Ticker: ticker, Price: decimal.NewFromFloat(227)}, nil
		},
	))

	resolver.Resolve(context.Background(), "AAPL", false)

	*clock = clock.Add(61 * time.Second)

	_, source, ok := resolver.Resolve(context.Background(), "AAPL", false)

	require.True(t, ok)
	assert.Equal(t, SourceLive, source)
	assert.Equal(t, 2, calls)
}

func TestResolveForceRefreshBypassesCache(t *testing.T) {
	calls := 0
	resolver, _ := testResolver(providerFunc(
		func(ctx context.Context, ticker string) (model.Quote, error) {
			calls++

			return model.Quote{Ticker: ticker, Price: decimal.NewFromFloat(227)}, nil
		},
	))

	resolver.Resolve(context.Background(), "AAPL", false)

	_, source, ok := resolver.Resolve(context.Background(), "AAPL", true)

	require.True(t, ok)
	assert.Equal(t, SourceLive, source)
	assert.Equal(t, 2, calls)
}

func TestResolveSimulatesOnProviderFailure(t *testing.T) {
	resolver, _ := testResolver(providerFunc(
		func(ctx context.Context, ticker string) (model.Quote, error) {
			return model.Quote{}, errors.New("rate limited")
		},
	))

	quote, source, ok := resolver.Resolve(context.Background(), "AAPL", false)

	require.True(t, ok)
	assert.Equal(t, SourceSimulated, source)

	// Both random draws are 1, so the delta is the full 0.15% of the
	// reference price and the direction is up.
	assert.True(t, quote.Price.Equal(decimal.RequireFromString("226.339")),
		"price was %s", quote.Price)
}

func TestResolveSimulatesDownward(t *testing.T) {
	resolver, _ := testResolver(nil)
	resolver.Random = sequence(1, 0)

	quote, source, ok := resolver.Resolve(context.Background(), "AAPL", false)

	require.True(t, ok)
	assert.Equal(t, SourceSimulated, source)
	assert.True(t, quote.Price.Equal(decimal.RequireFromString("225.661")),
		"price was %s", quote.Price)
}

func TestResolveSimulationStaysWithinBounds(t *testing.T) {
	resolver, _ := testResolver(nil)
	resolver.Random = sequence(0.7, 0.2, 0.3, 0.9)

	lower := decimal.RequireFromString("225.661")
	upper := decimal.RequireFromString("226.339")

	for i := 0; i < 10; i++ {
		quote, source, ok := resolver.Resolve(context.Background(), "AAPL", true)

		require.True(t, ok)
		require.Equal(t, SourceSimulated, source)
		assert.True(t, quote.Price.GreaterThanOrEqual(lower), "price was %s", quote.Price)
		assert.True(t, quote.Price.LessThanOrEqual(upper), "price was %s", quote.Price)
	}
}

func TestResolveCachesSimulatedQuotes(t *testing.T) {
	resolver, _ := testResolver(nil)

	first, source, ok := resolver.Resolve(context.Background(), "NVDA", false)

	require.True(t, ok)
	require.Equal(t, SourceSimulated, source)

	second, source, ok := resolver.Resolve(context.Background(), "NVDA", false)

	require.True(t, ok)
	assert.Equal(t, SourceCached, source)
	assert.True(t, second.Price.Equal(first.Price))
}

func TestResolveNoDataFallsBackToSimulation(t *testing.T) {
	resolver, _ := testResolver(providerFunc(
		func(ctx context.Context, ticker string) (model.Quote, error) {
			return model.Quote{}, ErrNoData
		},
	))

	_, source, ok := resolver.Resolve(context.Background(), "AAPL", false)

	require.True(t, ok)
	assert.Equal(t, SourceSimulated, source)
}
