package quote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/alioayf27-debug/trackstock/internal/model"
)

// ErrNoData reports that the provider had no usable quote for a symbol.
// Degenerate all-zero responses count as no data: some providers return
// zeroes for unsupported symbols instead of an error status.
var ErrNoData = errors.New("provider returned no quote data")

// Provider fetches a live quote for one ticker from an external source.
type Provider interface {
	Quote(ctx context.Context, ticker string) (model.Quote, error)
}

// FinnhubProvider fetches quotes from the Finnhub REST API.
type FinnhubProvider struct {
	BaseURL string
	Token   string
	Client  *http.Client
}

// NewFinnhubProvider creates a provider using the given API token.
func NewFinnhubProvider(token string) *FinnhubProvider {
	return &FinnhubProvider{
		BaseURL: "https://finnhub.io/api/v1",
		Token:   token,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type finnhubQuote struct {
	Current       float64 `json:"c"`
	Change        float64 `json:"d"`
	ChangePercent float64 `json:"dp"`
	High          float64 `json:"h"`
	Low           float64 `json:"l"`
	Open          float64 `json:"o"`
	PreviousClose float64 `json:"pc"`
}

// Quote fetches the current quote for a ticker.
func (provider *FinnhubProvider) Quote(ctx context.Context, ticker string) (model.Quote, error) {
	query := url.Values{}
	query.Set("symbol", ticker)
	query.Set("token", provider.Token)

	request, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		provider.BaseURL+"/quote?"+query.Encode(),
		nil,
	)

	if err != nil {
		return model.Quote{}, err
	}

	response, err := provider.Client.Do(request)

	if err != nil {
		return model.Quote{}, err
	}

	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return model.Quote{}, fmt.Errorf("quote provider status %d for %s", response.StatusCode, ticker)
	}

	content, err := io.ReadAll(response.Body)

	if err != nil {
		return model.Quote{}, err
	}

	var payload finnhubQuote

	if err := json.Unmarshal(content, &payload); err != nil {
		return model.Quote{}, err
	}

	if payload.Current == 0 && payload.PreviousClose == 0 {
		return model.Quote{}, ErrNoData
	}

	return model.Quote{
		Ticker:        ticker,
		Price:         decimal.NewFromFloat(payload.Current),
		Change:        decimal.NewFromFloat(payload.Change),
		ChangePercent: decimal.NewFromFloat(payload.ChangePercent),
	}, nil
}
