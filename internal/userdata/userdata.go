// Package userdata implements CRUD over the user's persisted collections:
// the watchlist, alerts, and portfolio.
package userdata

import (
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"

	"github.com/alioayf27-debug/trackstock/internal/model"
	"github.com/alioayf27-debug/trackstock/internal/portfolio"
	"github.com/alioayf27-debug/trackstock/internal/storage"
)

// Storage keys, one JSON document per collection.
const (
	watchlistKey = "trackstock_watchlist"
	alertsKey    = "trackstock_alerts"
	portfolioKey = "trackstock_portfolio"
)

// Collections reads and writes the persisted user collections.
type Collections struct {
	store storage.Store
}

// New creates collections over a document store.
func New(store storage.Store) *Collections {
	return &Collections{store: store}
}

// load reads a collection, treating an absent key as empty. A document
// that no longer parses also reads as empty: the stored state is
// best-effort and losing it beats refusing to start.
func load[T any](store storage.Store, key string) ([]T, error) {
	content, ok, err := store.Get(key)

	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, nil
	}

	var list []T

	if err := json.Unmarshal(content, &list); err != nil {
		log.Warn().Str("key", key).Err(err).Msg("malformed collection, resetting to empty")

		return nil, nil
	}

	return list, nil
}

func save[T any](store storage.Store, key string, list []T) error {
	content, err := json.Marshal(list)

	if err != nil {
		return err
	}

	return store.Set(key, content)
}

// Watchlist returns the ordered watchlist tickers.
func (collections *Collections) Watchlist() ([]string, error) {
	return load[string](collections.store, watchlistKey)
}

// AddToWatchlist appends a ticker unless it is already present. Plan size
// limits are enforced by the caller before insert.
func (collections *Collections) AddToWatchlist(ticker string) ([]string, error) {
	current, err := collections.Watchlist()

	if err != nil {
		return nil, err
	}

	for _, existing := range current {
		if existing == ticker {
			return current, nil
		}
	}

	updated := append(current, ticker)

	if err := save(collections.store, watchlistKey, updated); err != nil {
		return nil, err
	}

	return updated, nil
}

// RemoveFromWatchlist removes a ticker; removing an absent ticker is a
// no-op.
func (collections *Collections) RemoveFromWatchlist(ticker string) ([]string, error) {
	current, err := collections.Watchlist()

	if err != nil {
		return nil, err
	}

	updated := make([]string, 0, len(current))

	for _, existing := range current {
		if existing != ticker {
			updated = append(updated, existing)
		}
	}

	if err := save(collections.store, watchlistKey, updated); err != nil {
		return nil, err
	}

	return updated, nil
}

// Alerts returns all configured alerts in creation order.
func (collections *Collections) Alerts() ([]model.Alert, error) {
	return load[model.Alert](collections.store, alertsKey)
}

// AddAlert appends an alert. Ids are generation-time unique, so this
// always appends.
func (collections *Collections) AddAlert(alert model.Alert) ([]model.Alert, error) {
	current, err := collections.Alerts()

	if err != nil {
		return nil, err
	}

	updated := append(current, alert)

	if err := save(collections.store, alertsKey, updated); err != nil {
		return nil, err
	}

	return updated, nil
}

// RemoveAlert deletes an alert by id; an unknown id is a no-op.
func (collections *Collections) RemoveAlert(id string) ([]model.Alert, error) {
	current, err := collections.Alerts()

	if err != nil {
		return nil, err
	}

	updated := make([]model.Alert, 0, len(current))

	for _, existing := range current {
		if existing.ID != id {
			updated = append(updated, existing)
		}
	}

	if err := save(collections.store, alertsKey, updated); err != nil {
		return nil, err
	}

	return updated, nil
}

// Portfolio returns the held positions in insertion order.
func (collections *Collections) Portfolio() ([]model.Position, error) {
	return load[model.Position](collections.store, portfolioKey)
}

// AddPosition merges a buy into the portfolio with weighted-average cost.
func (collections *Collections) AddPosition(buy model.Position) ([]model.Position, error) {
	current, err := collections.Portfolio()

	if err != nil {
		return nil, err
	}

	updated := portfolio.Merge(current, buy)

	if err := save(collections.store, portfolioKey, updated); err != nil {
		return nil, err
	}

	return updated, nil
}

// RemovePosition wipes the whole position for a ticker.
func (collections *Collections) RemovePosition(ticker string) ([]model.Position, error) {
	current, err := collections.Portfolio()

	if err != nil {
		return nil, err
	}

	updated := portfolio.Remove(current, ticker)

	if err := save(collections.store, portfolioKey, updated); err != nil {
		return nil, err
	}

	return updated, nil
}
