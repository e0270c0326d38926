package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AlertKind selects which quote field an alert watches.
type AlertKind string

const (
	AlertPriceTarget   AlertKind = "PRICE_TARGET"
	AlertPercentChange AlertKind = "PERCENT_CHANGE"
)

// ParseAlertKind validates an alert kind received from a client.
func ParseAlertKind(value string) (AlertKind, error) {
	switch AlertKind(value) {
	case AlertPriceTarget, AlertPercentChange:
		return AlertKind(value), nil
	}

	return "", fmt.Errorf("unknown alert kind: %q", value)
}

// AlertDirection selects which side of the threshold triggers an alert.
type AlertDirection string

const (
	DirectionAbove AlertDirection = "ABOVE"
	DirectionBelow AlertDirection = "BELOW"
)

// ParseAlertDirection validates an alert direction received from a client.
func ParseAlertDirection(value string) (AlertDirection, error) {
	switch AlertDirection(value) {
	case DirectionAbove, DirectionBelow:
		return AlertDirection(value), nil
	}

	return "", fmt.Errorf("unknown alert direction: %q", value)
}

// Alert is a user-configured price or volatility notification. Alerts are
// created and deleted, never edited in place.
type Alert struct {
	ID        string          `json:"id"`
	Ticker    string          `json:"ticker"`
	Kind      AlertKind       `json:"type"`
	Direction AlertDirection  `json:"condition"`
	Threshold decimal.Decimal `json:"value"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"createdAt"`
}

// NewAlert creates an active alert with a generated id.
func NewAlert(ticker string, kind AlertKind, direction AlertDirection, threshold decimal.Decimal) Alert {
	return Alert{
		ID:        uuid.NewString(),
		Ticker:    ticker,
		Kind:      kind,
		Direction: direction,
		Threshold: threshold,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
}

// ShouldTrigger reports whether the quote crosses the alert threshold.
func (alert *Alert) ShouldTrigger(quote Quote) bool {
	if !alert.Active || alert.Ticker != quote.Ticker {
		return false
	}

	observed := quote.Price

	if alert.Kind == AlertPercentChange {
		observed = quote.ChangePercent
	}

	if alert.Direction == DirectionAbove {
		return observed.GreaterThanOrEqual(alert.Threshold)
	}

	return observed.LessThanOrEqual(alert.Threshold)
}
