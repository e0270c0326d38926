// Package catalog holds the static security reference data for the demo
// stock universe, and the filtering used by the market overview.
package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/alioayf27-debug/trackstock/internal/model"
)

// Catalog is a read-only lookup over the security universe.
type Catalog struct {
	stocks []model.Stock
	index  map[string]int
}

// New builds a catalog over the built-in global stock universe.
func New() *Catalog {
	return FromStocks(GlobalStocks())
}

// FromStocks builds a catalog over an explicit list of securities.
func FromStocks(stocks []model.Stock) *Catalog {
	index := make(map[string]int, len(stocks))

	for i, stock := range stocks {
		index[strings.ToUpper(stock.Ticker)] = i
	}

	return &Catalog{stocks: stocks, index: index}
}

// Lookup finds the reference record for a ticker, case-insensitively.
func (catalog *Catalog) Lookup(ticker string) (model.Stock, bool) {
	i, ok := catalog.index[strings.ToUpper(ticker)]

	if !ok {
		return model.Stock{}, false
	}

	return catalog.stocks[i], true
}

// All returns a copy of the full universe in catalog order.
func (catalog *Catalog) All() []model.Stock {
	stocks := make([]model.Stock, len(catalog.stocks))
	copy(stocks, catalog.stocks)

	return stocks
}

// Tickers returns every ticker in catalog order.
func (catalog *Catalog) Tickers() []string {
	tickers := make([]string, len(catalog.stocks))

	for i, stock := range catalog.stocks {
		tickers[i] = stock.Ticker
	}

	return tickers
}

// Query selects and orders securities for the market overview.
type Query struct {
	// Search matches tickers and company names, case-insensitively.
	Search string
	// Region keeps only securities from one region when set.
	Region string
	// Category is one of "Rising", "Cheap" or "Volume", anything else
	// keeps catalog order.
	Category string
}

// Filter applies a market overview query over a snapshot of securities.
// The input order is preserved unless the category imposes a sort.
func Filter(stocks []model.Stock, query Query) []model.Stock {
	result := make([]model.Stock, 0, len(stocks))

	search := strings.ToLower(strings.TrimSpace(query.Search))

	for _, stock := range stocks {
		if search != "" &&
			!strings.Contains(strings.ToLower(stock.Ticker), search) &&
			!strings.Contains(strings.ToLower(stock.Name), search) {
			continue
		}

		if query.Region != "" && query.Region != "All" && stock.Region != query.Region {
			continue
		}

		result = append(result, stock)
	}

	switch query.Category {
	case "Rising":
		sort.SliceStable(result, func(i, j int) bool {
			return result[j].ChangePercent.LessThan(result[i].ChangePercent)
		})
	case "Cheap":
		cheap := result[:0]

		for _, stock := range result {
			if stock.PERatio.IsPositive() {
				cheap = append(cheap, stock)
			}
		}

		result = cheap
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].PERatio.LessThan(result[j].PERatio)
		})
	case "Volume":
		sort.SliceStable(result, func(i, j int) bool {
			return ParseVolume(result[j].Volume) < ParseVolume(result[i].Volume)
		})
	}

	return result
}

var volumeSuffixes = []struct {
	suffix     string
	multiplier float64
}{
	{"T", 1e12},
	{"B", 1e9},
	{"M", 1e6},
	{"K", 1e3},
}

// ParseVolume converts a display volume such as "45.2M" into a unit count.
// Unparseable values read as zero.
func ParseVolume(volume string) float64 {
	volume = strings.TrimSpace(volume)

	for _, entry := range volumeSuffixes {
		if strings.HasSuffix(volume, entry.suffix) {
			number := strings.TrimSuffix(volume, entry.suffix)
			value, err := decimal.NewFromString(number)

			if err != nil {
				return 0
			}

			result, _ := value.Float64()

			return result * entry.multiplier
		}
	}

	value, err := decimal.NewFromString(volume)

	if err != nil {
		return 0
	}

	result, _ := value.Float64()

	return result
}
