package quote

import (
	"context"
	"sync"
	"time"

	"github.com/alioayf27-debug/trackstock/internal/model"
)

// DefaultRefreshDelay paces batch resolution to respect the provider's
// per-minute call budget. The cache TTL absorbs most calls, so a small
// fixed delay is enough for the capped batch size.
const DefaultRefreshDelay = 150 * time.Millisecond

// Pacer enforces a minimum interval between successive calls. It replaces
// the accidental throttling of strictly sequential awaits with an explicit,
// tunable policy.
type Pacer struct {
	Interval time.Duration

	mu    sync.Mutex
	last  time.Time
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// NewPacer creates a pacer with the given minimum interval between calls.
// A zero interval disables pacing.
func NewPacer(interval time.Duration) *Pacer {
	return &Pacer{Interval: interval, now: time.Now, sleep: sleepContext}
}

// Wait blocks until the next call is allowed, or the context is done.
func (pacer *Pacer) Wait(ctx context.Context) error {
	pacer.mu.Lock()

	now := pacer.now()
	var wait time.Duration

	if !pacer.last.IsZero() {
		if elapsed := now.Sub(pacer.last); elapsed < pacer.Interval {
			wait = pacer.Interval - elapsed
		}
	}

	pacer.last = now.Add(wait)
	pacer.mu.Unlock()

	if wait <= 0 {
		return ctx.Err()
	}

	return pacer.sleep(ctx, wait)
}

func sleepContext(ctx context.Context, duration time.Duration) error {
	timer := time.NewTimer(duration)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Resolved pairs a quote with its provenance.
type Resolved struct {
	Quote  model.Quote
	Source Source
}

// Refresher resolves batches of tickers one at a time, in input order,
// paced so at most one provider call is outstanding. It holds no state of
// its own across calls beyond what the resolver's cache retains.
type Refresher struct {
	Resolver *Resolver
	Pacer    *Pacer
}

// NewRefresher creates a refresher over a resolver with the default pacing.
func NewRefresher(resolver *Resolver) *Refresher {
	return &Refresher{Resolver: resolver, Pacer: NewPacer(DefaultRefreshDelay)}
}

// RefreshAll resolves every ticker in order, skipping unknown tickers.
// Each ticker is fully resolved, fallback included, before the next one
// begins. Cancelling the context stops the batch between resolutions and
// returns what was gathered so far.
func (refresher *Refresher) RefreshAll(ctx context.Context, tickers []string) []Resolved {
	results := make([]Resolved, 0, len(tickers))

	for _, ticker := range tickers {
		if err := refresher.Pacer.Wait(ctx); err != nil {
			return results
		}

		quote, source, ok := refresher.Resolver.Resolve(ctx, ticker, false)

		if ok {
			results = append(results, Resolved{Quote: quote, Source: source})
		}
	}

	return results
}
