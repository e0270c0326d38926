// Package portfolio defines routes for the user's holdings.
package portfolio

import (
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/alioayf27-debug/trackstock/internal/catalog"
	"github.com/alioayf27-debug/trackstock/internal/model"
	"github.com/alioayf27-debug/trackstock/internal/portfolio"
	"github.com/alioayf27-debug/trackstock/internal/quote"
	"github.com/alioayf27-debug/trackstock/internal/route/view"
	"github.com/alioayf27-debug/trackstock/internal/session"
	"github.com/alioayf27-debug/trackstock/internal/userdata"
)

// Handler holds the portfolio route dependencies.
type Handler struct {
	Catalog   *catalog.Catalog
	Data      *userdata.Collections
	Refresher *quote.Refresher
}

// Register mounts the portfolio routes.
func (handler *Handler) Register(router *mux.Router) {
	router.Handle("/api/portfolio", view.Wrap(view.View{
		Get:  handler.handleValuation,
		Post: handler.handleAdd,
	}))
	router.Handle("/api/portfolio/{ticker}", view.Wrap(view.View{
		Delete: handler.handleRemove,
	}))
}

// handleValuation refreshes a quote for every held ticker and values the
// portfolio against those prices.
func (handler *Handler) handleValuation(request *view.Request) any {
	if _, ok := session.LoadUser(request.Request); !ok {
		return view.Unauthorized()
	}

	positions, err := handler.Data.Portfolio()

	if err != nil {
		return err
	}

	tickers := make([]string, 0, len(positions))

	for _, position := range positions {
		tickers = append(tickers, position.Ticker)
	}

	prices := make(map[string]decimal.Decimal)

	for _, entry := range handler.Refresher.RefreshAll(request.Context(), tickers) {
		prices[entry.Quote.Ticker] = entry.Quote.Price
	}

	return view.OK(portfolio.Value(positions, prices))
}

type addRequest struct {
	Ticker   string  `json:"ticker" validate:"required"`
	Quantity float64 `json:"quantity" validate:"gt=0"`
	AvgCost  float64 `json:"avgCost" validate:"gte=0"`
}

func (handler *Handler) handleAdd(request *view.Request) any {
	if _, ok := session.LoadUser(request.Request); !ok {
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

	updated, err := handler.Data.AddPosition(model.Position{
		Ticker:       stock.Ticker,
		Quantity:     decimal.NewFromFloat(body.Quantity),
		AvgCost:      decimal.NewFromFloat(body.AvgCost),
		PurchaseDate: time.Now().UTC(),
	})

	if err != nil {
		return err
	}

	return updated
}

func (handler *Handler) handleRemove(request *view.Request) any {
	if _, ok := session.LoadUser(request.Request); !ok {
		return view.Unauthorized()
	}

	updated, err := handler.Data.RemovePosition(strings.ToUpper(request.Var("ticker")))

	if err != nil {
		return err
	}

	return view.OK(updated)
}
