package quote

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshAllKeepsInputOrder(t *testing.T) {
	resolver, _ := testResolver(nil)
	refresher := NewRefresher(resolver)
	refresher.Pacer = NewPacer(0)

	results := refresher.RefreshAll(context.Background(), []string{"NVDA", "AAPL"})

	require.Len(t, results, 2)
	assert.Equal(t, "NVDA", results[0].Quote.Ticker)
	assert.Equal(t, "AAPL", results[1].Quote.Ticker)
}

func TestRefreshAllSkipsUnknownTickers(t *testing.T) {
	resolver, _ := testResolver(nil)
	refresher := NewRefresher(resolver)
	refresher.Pacer = NewPacer(0)

	results := refresher.RefreshAll(context.Background(), []string{"AAPL", "ZZZZ", "NVDA"})

	require.Len(t, results, 2)
	assert.Equal(t, "AAPL", results[0].Quote.Ticker)
	assert.Equal(t, "NVDA", results[1].Quote.Ticker)
}

func TestRefreshAllStopsWhenPacingFails(t *testing.T) {
	resolver, _ := testResolver(nil)
	refresher := NewRefresher(resolver)

	calls := 0
	refresher.Pacer.sleep = func(ctx context.Context, duration time.Duration) error {
		calls++

		if calls >= 2 {
			return errors.New("interrupted")
		}

		return nil
	}

	results := refresher.RefreshAll(context.Background(), []string{"AAPL", "NVDA", "AAPL"})

	// The first ticker waits zero, the second sleeps once, the third
	// sleep fails and cuts the batch short.
	assert.Len(t, results, 2)
}

func TestRefreshAllStopsOnCancelledContext(t *testing.T) {
	resolver, _ := testResolver(nil)
	refresher := NewRefresher(resolver)
	refresher.Pacer = NewPacer(0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := refresher.RefreshAll(ctx, []string{"AAPL", "NVDA"})

	assert.Empty(t, results)
}

func TestPacerSpacesCalls(t *testing.T) {
	pacer := NewPacer(150 * time.Millisecond)
	clock := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	pacer.now = func() time.Time { return clock }

	var slept []time.Duration
	pacer.sleep = func(ctx context.Context, duration time.Duration) error {
		slept = append(slept, duration)

		return nil
	}

	for i := 0; i < 3; i++ {
		require.NoError(t, pacer.Wait(context.Background()))
	}

	// With a frozen clock every call after the first waits out the full
	// accumulated interval.
	assert.Equal(t, []time.Duration{150 * time.Millisecond, 300 * time.Millisecond}, slept)
}

func TestPacerZeroIntervalNeverSleeps(t *testing.T) {
	pacer := NewPacer(0)

	pacer.sleep = func(ctx context.Context, duration time.Duration) error {
		t.Fatal("sleep should not be called")

		return nil
	}

	for i := 0; i < 5; i++ {
		require.NoError(t, pacer.Wait(context.Background()))
	}
}
