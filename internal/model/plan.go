package model

import (
	"fmt"
	"time"
)

// Plan is a subscription tier controlling feature access and refresh rates.
type Plan string

const (
	PlanFree  Plan = "Free"
	PlanPro   Plan = "Pro"
	PlanElite Plan = "Elite"
	PlanOwner Plan = "Owner"
)

// ParsePlan validates a plan name received from a client.
func ParsePlan(value string) (Plan, error) {
	switch Plan(value) {
	case PlanFree, PlanPro, PlanElite, PlanOwner:
		return Plan(value), nil
	}

	return "", fmt.Errorf("unknown plan: %q", value)
}

// WatchlistLimit returns the maximum watchlist size, or 0 for unlimited.
func (plan Plan) WatchlistLimit() int {
	if plan == PlanFree {
		return 5
	}

	return 0
}

// RefreshInterval returns how often market polling consumers should refresh.
func (plan Plan) RefreshInterval() time.Duration {
	switch plan {
	case PlanElite, PlanOwner:
		return 5 * time.Second
	case PlanPro:
		return 15 * time.Second
	default:
		return 60 * time.Second
	}
}

// MarketRowLimit returns how many market overview rows the plan may see,
// or 0 for unlimited.
func (plan Plan) MarketRowLimit() int {
	if plan == PlanFree {
		return 3
	}

	return 0
}

// CanViewStockDetail reports whether the detail page is unlocked.
func (plan Plan) CanViewStockDetail() bool {
	return plan != PlanFree
}

// CanManageAlerts reports whether price alerts are unlocked.
func (plan Plan) CanManageAlerts() bool {
	return plan == PlanElite || plan == PlanOwner
}

// FeedLabel describes the quote feed quality for the plan.
func (plan Plan) FeedLabel() string {
	switch plan {
	case PlanElite, PlanOwner:
		return "Real-time Feed"
	case PlanPro:
		return "Live (15m delay)"
	default:
		return "Delayed (20m)"
	}
}
