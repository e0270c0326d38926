// Package quote implements the quote refresh pipeline: a per-ticker TTL
// cache, a resolver with provider and simulation fallback, and a paced
// batch refresher.
package quote

import (
	"sync"
	"time"

	"github.com/alioayf27-debug/trackstock/internal/model"
)

// Entry is a cached quote with the time it was resolved.
type Entry struct {
	Quote     model.Quote
	FetchedAt time.Time
}

// Cache stores the last resolved quote per ticker. Writes overwrite, there
// is no eviction beyond that: the ticker universe is small and static.
// Freshness is judged by the caller against its own TTL.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewCache creates an empty quote cache.
func NewCache() *Cache {
	return &Cache{entries: map[string]Entry{}}
}

// Get returns the cache entry for a ticker, if any.
func (cache *Cache) Get(ticker string) (Entry, bool) {
	cache.mu.RLock()
	defer cache.mu.RUnlock()

	entry, ok := cache.entries[ticker]

	return entry, ok
}

// Put records a quote for a ticker, replacing any prior entry.
func (cache *Cache) Put(ticker string, quote model.Quote, now time.Time) {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	cache.entries[ticker] = Entry{Quote: quote, FetchedAt: now}
}
