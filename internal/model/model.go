// Package model defines the data types shared across TrackStock.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents a signed-in dashboard user.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Plan  Plan   `json:"plan"`
}

// Stock is the static reference record for a tradable symbol. Price fields
// hold the baseline values used to seed quotes and the simulation fallback.
type Stock struct {
	Ticker            string          `json:"ticker"`
	Name              string          `json:"name"`
	Price             decimal.Decimal `json:"price"`
	Change            decimal.Decimal `json:"change"`
	ChangePercent     decimal.Decimal `json:"changePercent"`
	Exchange          string          `json:"exchange"`
	MarketCap         string          `json:"marketCap"`
	Currency          string          `json:"currency"`
	PERatio           decimal.Decimal `json:"peRatio"`
	Sector            string          `json:"sector"`
	Logo              string          `json:"logo,omitempty"`
	Volume            string          `json:"volume"`
	Region            string          `json:"region"`
	AIScore           float64         `json:"aiScore"`
	AIVerdict         string          `json:"aiVerdict"`
	TradingViewSymbol string          `json:"tradingViewSymbol,omitempty"`
	Beta              decimal.Decimal `json:"beta"`
	Dividend          string          `json:"dividend,omitempty"`
}

// Quote is an immutable price snapshot for a ticker. A newer Quote for the
// same ticker supersedes it, nothing mutates one in place.
type Quote struct {
	Ticker        string          `json:"ticker"`
	Price         decimal.Decimal `json:"price"`
	Change        decimal.Decimal `json:"change"`
	ChangePercent decimal.Decimal `json:"changePercent"`
	LastUpdated   time.Time       `json:"lastUpdated"`
}

// Position represents a holding in the portfolio. At most one Position
// exists per ticker, buys of the same ticker merge into it.
type Position struct {
	Ticker       string          `json:"ticker"`
	Quantity     decimal.Decimal `json:"quantity"`
	AvgCost      decimal.Decimal `json:"avgCost"`
	PurchaseDate time.Time       `json:"purchaseDate"`
}

// NewsItem is a single market news headline.
type NewsItem struct {
	Source   string `json:"source"`
	Time     string `json:"time"`
	Headline string `json:"headline"`
	URL      string `json:"url"`
}

// MarketStatus describes the data feed state shown in the ticker tape.
type MarketStatus struct {
	IsOpen    bool   `json:"isOpen"`
	Label     string `json:"label"`
	UpdatedAt string `json:"updatedAt"`
}
