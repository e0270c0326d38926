// Package market defines routes for the market overview, single-stock
// detail, the ticker tape, and market news.
package market

import (
	"time"

	"github.com/gorilla/mux"

	"github.com/alioayf27-debug/trackstock/internal/catalog"
	"github.com/alioayf27-debug/trackstock/internal/model"
	"github.com/alioayf27-debug/trackstock/internal/news"
	"github.com/alioayf27-debug/trackstock/internal/quote"
	"github.com/alioayf27-debug/trackstock/internal/route/view"
	"github.com/alioayf27-debug/trackstock/internal/session"
)

// BatchLimit caps how many tickers each overview refresh resolves. The
// rest of the universe shows reference prices until a detail view forces
// a fetch. Keeps the batch inside the provider's per-minute budget.
const BatchLimit = 10

// Handler holds the market route dependencies.
type Handler struct {
	Catalog   *catalog.Catalog
	Refresher *quote.Refresher
	News      *news.Client
}

// Register mounts the market routes.
func (handler *Handler) Register(router *mux.Router) {
	router.Handle("/api/market", view.Wrap(view.View{Get: handler.handleMarket}))
	router.Handle("/api/tape", view.Wrap(view.View{Get: handler.handleTape}))
	router.Handle("/api/stock/{ticker}", view.Wrap(view.View{Get: handler.handleStock}))
	router.Handle("/api/news", view.Wrap(view.View{Get: handler.handleNews}))
	router.Handle("/api/news/summary", view.Wrap(view.View{Get: handler.handleNewsSummary}))
}

type marketResponse struct {
	Status   model.MarketStatus `json:"status"`
	Stocks   []model.Stock      `json:"stocks"`
	Locked   bool               `json:"locked"`
	Interval int64              `json:"refreshIntervalMs"`
}

// overlay returns the universe with live or simulated quotes merged onto
// the refreshed prefix; the remainder keeps its reference prices.
func (handler *Handler) overlay(resolved []quote.Resolved) []model.Stock {
	stocks := handler.Catalog.All()
	quotes := make(map[string]model.Quote, len(resolved))

	for _, entry := range resolved {
		quotes[entry.Quote.Ticker] = entry.Quote
	}

	for i := range stocks {
		if live, ok := quotes[stocks[i].Ticker]; ok {
			stocks[i].Price = live.Price
			stocks[i].Change = live.Change
			stocks[i].ChangePercent = live.ChangePercent
		}
	}

	return stocks
}

func (handler *Handler) handleMarket(request *view.Request) any {
	user, ok := session.LoadUser(request.Request)

	if !ok {
		return view.Unauthorized()
	}

	tickers := handler.Catalog.Tickers()

	if len(tickers) > BatchLimit {
		tickers = tickers[:BatchLimit]
	}

	resolved := handler.Refresher.RefreshAll(request.Context(), tickers)

	stocks := catalog.Filter(handler.overlay(resolved), catalog.Query{
		Search:   request.URL.Query().Get("search"),
		Region:   request.URL.Query().Get("region"),
		Category: request.URL.Query().Get("category"),
	})

	locked := false

	if limit := user.Plan.MarketRowLimit(); limit > 0 && len(stocks) > limit {
		stocks = stocks[:limit]
		locked = true
	}

	return view.OK(marketResponse{
		Status: model.MarketStatus{
			IsOpen:    true,
			Label:     user.Plan.FeedLabel(),
			UpdatedAt: time.Now().UTC().Format("15:04") + " UTC",
		},
		Stocks:   stocks,
		Locked:   locked,
		Interval: user.Plan.RefreshInterval().Milliseconds(),
	})
}

type indexSnapshot struct {
	Symbol        string `json:"symbol"`
	Price         string `json:"price"`
	ChangePercent string `json:"changePercent"`
}

func (handler *Handler) handleTape(request *view.Request) any {
	return view.OK(map[string]any{
		"indices": []indexSnapshot{
			{Symbol: "SPX", Price: "4,500.23", ChangePercent: "+0.5%"},
			{Symbol: "VIX", Price: "13.50", ChangePercent: "-2.1%"},
			{Symbol: "NDX", Price: "15,300.12", ChangePercent: "+0.8%"},
			{Symbol: "FTSE", Price: "7,680.50", ChangePercent: "+0.3%"},
		},
		"status":    "Operational",
		"updatedAt": time.Now().UTC().Format("15:04") + " UTC",
	})
}

type stockResponse struct {
	Stock       model.Stock `json:"stock"`
	Quote       model.Quote `json:"quote"`
	QuoteSource string      `json:"quoteSource"`
	Summary     string      `json:"summary"`
}

func (handler *Handler) handleStock(request *view.Request) any {
	user, ok := session.LoadUser(request.Request)

	if !ok {
		return view.Unauthorized()
	}

	if !user.Plan.CanViewStockDetail() {
		return view.Forbidden("detailed analysis is available on Pro and Elite plans")
	}

	ticker := request.Var("ticker")
	stock, ok := handler.Catalog.Lookup(ticker)

	if !ok {
		return view.NotFound()
	}

	// The detail view always forces a fresh resolution.
	resolved, source, ok := handler.Refresher.Resolver.Resolve(request.Context(), stock.Ticker, true)

	if !ok {
		return view.NotFound()
	}

	return view.OK(stockResponse{
		Stock:       stock,
		Quote:       resolved,
		QuoteSource: source.String(),
		Summary:     handler.News.StockSummary(request.Context(), stock.Ticker, stock.Name),
	})
}

func (handler *Handler) handleNews(request *view.Request) any {
	if _, ok := session.LoadUser(request.Request); !ok {
		return view.Unauthorized()
	}

	return view.OK(handler.News.MarketNews(request.Context()))
}

func (handler *Handler) handleNewsSummary(request *view.Request) any {
	if _, ok := session.LoadUser(request.Request); !ok {
		return view.Unauthorized()
	}

	headline := request.URL.Query().Get("headline")
	source := request.URL.Query().Get("source")

	if headline == "" || source == "" {
		return view.BadRequest("headline and source are required")
	}

	return view.OK(map[string]string{
		"summary": handler.News.HeadlineImpact(request.Context(), headline, source),
	})
}
