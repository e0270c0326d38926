// Package watchlist defines routes for the user's watchlist.
package watchlist

import (
	"fmt"
	"strings"

	"github.com/gorilla/mux"

	"github.com/alioayf27-debug/trackstock/internal/catalog"
	"github.com/alioayf27-debug/trackstock/internal/model"
	"github.com/alioayf27-debug/trackstock/internal/quote"
	"github.com/alioayf27-debug/trackstock/internal/route/view"
	"github.com/alioayf27-debug/trackstock/internal/session"
	"github.com/alioayf27-debug/trackstock/internal/userdata"
)

// Handler holds the watchlist route dependencies.
type Handler struct {
	Catalog   *catalog.Catalog
	Data      *userdata.Collections
	Refresher *quote.Refresher
}

// Register mounts the watchlist routes.
func (handler *Handler) Register(router *mux.Router) {
	router.Handle("/api/watchlist", view.Wrap(view.View{
		Get:  handler.handleList,
		Post: handler.handleAdd,
	}))
	router.Handle("/api/watchlist/{ticker}", view.Wrap(view.View{
		Delete: handler.handleRemove,
	}))
}

type watchlistRow struct {
	model.Stock
	QuoteSource string `json:"quoteSource,omitempty"`
}

type watchlistResponse struct {
	Tickers []string       `json:"tickers"`
	Stocks  []watchlistRow `json:"stocks"`
	Limit   int            `json:"limit,omitempty"`
}

func (handler *Handler) handleList(request *view.Request) any {
	user, ok := session.LoadUser(request.Request)

	if !ok {
		return view.Unauthorized()
	}

	tickers, err := handler.Data.Watchlist()

	if err != nil {
		return err
	}

	resolved := handler.Refresher.RefreshAll(request.Context(), tickers)
	rows := make([]watchlistRow, 0, len(resolved))

	for _, entry := range resolved {
		stock, ok := handler.Catalog.Lookup(entry.Quote.Ticker)

		if !ok {
			continue
		}

		stock.Price = entry.Quote.Price
		stock.Change = entry.Quote.Change
		stock.ChangePercent = entry.Quote.ChangePercent
		rows = append(rows, watchlistRow{Stock: stock, QuoteSource: entry.Source.String()})
	}

	return view.OK(watchlistResponse{
		Tickers: tickers,
		Stocks:  rows,
		Limit:   user.Plan.WatchlistLimit(),
	})
}

type addRequest struct {
	Ticker string `json:"ticker" validate:"required"`
}

func (handler *Handler) handleAdd(request *view.Request) any {
	user, ok := session.LoadUser(request.Request)

	if !ok {
		return view.Unauthorized()
	}

	var body addRequest

	if response := request.BindJSON(&body); response != nil {
		return response
	}

	ticker := strings.ToUpper(strings.TrimSpace(body.Ticker))
	stock, ok := handler.Catalog.Lookup(ticker)

	if !ok {
		return view.BadRequest("stock symbol not found in demo database")
	}

	current, err := handler.Data.Watchlist()

	if err != nil {
		return err
	}

	// The size limit is a caller-level policy, checked before insert so an
	// idempotent re-add of a present ticker still succeeds below the cap.
	if limit := user.Plan.WatchlistLimit(); limit > 0 && len(current) >= limit {
		alreadyPresent := false

		for _, existing := range current {
			if existing == stock.Ticker {
				alreadyPresent = true
			}
		}

		if !alreadyPresent {
			return view.BadRequest(fmt.Sprintf(
				"%s plan is limited to %d watchlist items",
				user.Plan,
				limit,
			))
		}
	}

	updated, err := handler.Data.AddToWatchlist(stock.Ticker)

	if err != nil {
		return err
	}

	return updated
}

func (handler *Handler) handleRemove(request *view.Request) any {
	if _, ok := session.LoadUser(request.Request); !ok {
		return view.Unauthorized()
	}

	updated, err := handler.Data.RemoveFromWatchlist(strings.ToUpper(request.Var("ticker")))

	if err != nil {
		return err
	}

	return view.OK(updated)
}
