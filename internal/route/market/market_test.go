package market

import (
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alioayf27-debug/trackstock/internal/catalog"
	"github.com/alioayf27-debug/trackstock/internal/news"
	"github.com/alioayf27-debug/trackstock/internal/quote"
	"github.com/alioayf27-debug/trackstock/internal/route/auth"
	"github.com/alioayf27-debug/trackstock/internal/session"
)

func testClient(t *testing.T, plan string) (*httptest.Server, *http.Client) {
	t.Helper()
	t.Setenv("SECRET_KEY", "test-secret")
	session.InitSessionStorage()

	securities := catalog.New()
	refresher := quote.NewRefresher(quote.NewResolver(securities, nil))
	refresher.Pacer = quote.NewPacer(0)

	router := mux.NewRouter()
	(&auth.Handler{}).Register(router)
	(&Handler{
		Catalog:   securities,
		Refresher: refresher,
		News:      news.NewClient(""),
	}).Register(router)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)

	require.NoError(t, err)

	client := &http.Client{Jar: jar}
	response, err := client.Post(
		server.URL+"/api/login",
		"application/json",
		strings.NewReader(`{"email":"trader@example.com","plan":"`+plan+`"}`),
	)

	require.NoError(t, err)
	response.Body.Close()
	require.Equal(t, http.StatusCreated, response.StatusCode)

	return server, client
}

func fetchJSON(t *testing.T, client *http.Client, url string, target any) int {
	t.Helper()

	response, err := client.Get(url)

	require.NoError(t, err)

	defer response.Body.Close()

	if target != nil && response.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(response.Body).Decode(target))
	}

	return response.StatusCode
}

type marketPayload struct {
	Status struct {
		Label string `json:"label"`
	} `json:"status"`
	Stocks []struct {
		Ticker string `json:"ticker"`
		Region string `json:"region"`
	} `json:"stocks"`
	Locked   bool  `json:"locked"`
	Interval int64 `json:"refreshIntervalMs"`
}

func TestMarketOverviewForElite(t *testing.T) {
	server, client := testClient(t, "Elite")

	var payload marketPayload
	status := fetchJSON(t, client, server.URL+"/api/market", &payload)

	require.Equal(t, http.StatusOK, status)
	assert.Len(t, payload.Stocks, 20)
	assert.False(t, payload.Locked)
	assert.Equal(t, "Real-time Feed", payload.Status.Label)
	assert.Equal(t, int64(5000), payload.Interval)
}

func TestMarketOverviewCapsFreePlan(t *testing.T) {
	server, client := testClient(t, "Free")

	var payload marketPayload
	status := fetchJSON(t, client, server.URL+"/api/market", &payload)

	require.Equal(t, http.StatusOK, status)
	assert.Len(t, payload.Stocks, 3)
	assert.True(t, payload.Locked)
	assert.Equal(t, "Delayed (20m)", payload.Status.Label)
	assert.Equal(t, int64(60000), payload.Interval)
}

func TestMarketOverviewFilters(t *testing.T) {
	server, client := testClient(t, "Pro")

	var payload marketPayload
	status := fetchJSON(t, client, server.URL+"/api/market?region=Asia", &payload)

	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, payload.Stocks)

	for _, stock := range payload.Stocks {
		assert.Equal(t, "Asia", stock.Region)
	}
}

func TestMarketOverviewRequiresSession(t *testing.T) {
	server, _ := testClient(t, "Pro")

	response, err := http.Get(server.URL + "/api/market")

	require.NoError(t, err)

	defer response.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, response.StatusCode)
}

type stockPayload struct {
	Stock struct {
		Ticker string `json:"ticker"`
	} `json:"stock"`
	QuoteSource string `json:"quoteSource"`
	Summary     string `json:"summary"`
}

func TestStockDetail(t *testing.T) {
	server, client := testClient(t, "Pro")

	var payload stockPayload
	status := fetchJSON(t, client, server.URL+"/api/stock/aapl", &payload)

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "AAPL", payload.Stock.Ticker)
	assert.Equal(t, "simulated", payload.QuoteSource)
	assert.NotEmpty(t, payload.Summary)
}

func TestStockDetailLockedForFreePlan(t *testing.T) {
	server, client := testClient(t, "Free")

	status := fetchJSON(t, client, server.URL+"/api/stock/AAPL", nil)

	assert.Equal(t, http.StatusForbidden, status)
}

func TestStockDetailUnknownTicker(t *testing.T) {
	server, client := testClient(t, "Pro")

	status := fetchJSON(t, client, server.URL+"/api/stock/ZZZZ", nil)

	assert.Equal(t, http.StatusNotFound, status)
}

func TestNewsFallsBackToCannedHeadlines(t *testing.T) {
	server, client := testClient(t, "Pro")

	var items []struct {
		Source string `json:"source"`
	}
	status := fetchJSON(t, client, server.URL+"/api/news", &items)

	require.Equal(t, http.StatusOK, status)
	assert.Len(t, items, 5)
}

func TestNewsSummaryRequiresParams(t *testing.T) {
	server, client := testClient(t, "Pro")

	status := fetchJSON(t, client, server.URL+"/api/news/summary", nil)

	assert.Equal(t, http.StatusBadRequest, status)

	status = fetchJSON(t, client, server.URL+"/api/news/summary?headline=Fed+cuts&source=WSJ", nil)

	assert.Equal(t, http.StatusOK, status)
}
