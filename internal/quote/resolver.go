package quote

import (
	"context"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/alioayf27-debug/trackstock/internal/catalog"
	"github.com/alioayf27-debug/trackstock/internal/model"
)

// Source classifies where a resolved quote came from, so callers can tell
// real from simulated data.
type Source int

const (
	SourceCached Source = iota
	SourceLive
	SourceSimulated
)

func (source Source) String() string {
	switch source {
	case SourceCached:
		return "cached"
	case SourceLive:
		return "live"
	case SourceSimulated:
		return "simulated"
	default:
		return "unknown"
	}
}

// DefaultTTL is how long a cached quote stays fresh.
const DefaultTTL = 60 * time.Second

// simulationVolatility bounds the simulated price delta to 0.15% of the
// reference price.
const simulationVolatility = 0.0015

// Resolver resolves quotes with a fixed precedence: fresh cache, then one
// provider call, then a simulated quote derived from the catalog reference
// price. For any ticker the catalog knows, resolution always succeeds;
// provider failures are absorbed, never surfaced.
type Resolver struct {
	Catalog  *catalog.Catalog
	Provider Provider
	Cache    *Cache

	// TTL, Now and Random are injectable so tests can run against a fixed
	// clock and deterministic randomness.
	TTL    time.Duration
	Now    func() time.Time
	Random func() float64
}

// NewResolver creates a resolver with a fresh cache, the default TTL, the
// wall clock, and math/rand randomness. Provider may be nil, in which case
// every miss falls through to simulation.
func NewResolver(securities *catalog.Catalog, provider Provider) *Resolver {
	return &Resolver{
		Catalog:  securities,
		Provider: provider,
		Cache:    NewCache(),
		TTL:      DefaultTTL,
		Now:      time.Now,
		Random:   rand.Float64,
	}
}

// Resolve returns a quote for the ticker and where it came from. The only
// failure is an unknown ticker; everything else degrades to a cached or
// simulated quote.
func (resolver *Resolver) Resolve(ctx context.Context, ticker string, forceRefresh bool) (model.Quote, Source, bool) {
	now := resolver.Now()

	if !forceRefresh {
		if entry, ok := resolver.Cache.Get(ticker); ok && now.Sub(entry.FetchedAt) < resolver.TTL {
			return entry.Quote, SourceCached, true
		}
	}

	// Unknown tickers never resolve, regardless of cache or network state.
	stock, ok := resolver.Catalog.Lookup(ticker)

	if !ok {
		return model.Quote{}, SourceCached, false
	}

	if resolver.Provider != nil {
		if live, err := resolver.Provider.Quote(ctx, ticker); err == nil {
			live.Ticker = stock.Ticker
			live.LastUpdated = now
			resolver.Cache.Put(ticker, live, now)

			return live, SourceLive, true
		}
	}

	simulated := resolver.simulate(stock, now)
	resolver.Cache.Put(ticker, simulated, now)

	return simulated, SourceSimulated, true
}

// simulate perturbs the reference price by a bounded random delta so the
// dashboard keeps moving through provider outages. Cosmetic, not a
// correctness guarantee.
func (resolver *Resolver) simulate(stock model.Stock, now time.Time) model.Quote {
	delta := stock.Price.Mul(decimal.NewFromFloat(resolver.Random() * simulationVolatility))

	price := stock.Price.Add(delta)

	if resolver.Random() < 0.5 {
		price = stock.Price.Sub(delta)
	}

	return model.Quote{
		Ticker:        stock.Ticker,
		Price:         price,
		Change:        stock.Change,
		ChangePercent: stock.ChangePercent,
		LastUpdated:   now,
	}
}
