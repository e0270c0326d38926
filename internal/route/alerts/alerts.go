// Package alerts defines routes for price alert management.
package alerts

import (
	"strings"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/alioayf27-debug/trackstock/internal/catalog"
	"github.com/alioayf27-debug/trackstock/internal/model"
	"github.com/alioayf27-debug/trackstock/internal/quote"
	"github.com/alioayf27-debug/trackstock/internal/route/view"
	"github.com/alioayf27-debug/trackstock/internal/session"
	"github.com/alioayf27-debug/trackstock/internal/userdata"
)

// Handler holds the alert route dependencies.
type Handler struct {
	Catalog   *catalog.Catalog
	Data      *userdata.Collections
	Refresher *quote.Refresher
}

// Register mounts the alert routes.
func (handler *Handler) Register(router *mux.Router) {
	router.Handle("/api/alerts", view.Wrap(view.View{
		Get:  handler.handleList,
		Post: handler.handleCreate,
	}))
	router.Handle("/api/alerts/triggered", view.Wrap(view.View{
		Get: handler.handleTriggered,
	}))
	router.Handle("/api/alerts/{id}", view.Wrap(view.View{
		Delete: handler.handleRemove,
	}))
}

// gate rejects unauthenticated requests and plans below Elite.
func gate(request *view.Request) *view.Response {
	user, ok := session.LoadUser(request.Request)

	if !ok {
		return view.Unauthorized()
	}

	if !user.Plan.CanManageAlerts() {
		return view.Forbidden("price alerts are available on the Elite plan")
	}

	return nil
}

func (handler *Handler) handleList(request *view.Request) any {
	if response := gate(request); response != nil {
		return response
	}

	alerts, err := handler.Data.Alerts()

	if err != nil {
		return err
	}

	return view.OK(alerts)
}

type createRequest struct {
	Ticker    string  `json:"ticker" validate:"required"`
	Kind      string  `json:"type" validate:"required"`
	Direction string  `json:"condition" validate:"required"`
	Threshold float64 `json:"value" validate:"gt=0"`
}

func (handler *Handler) handleCreate(request *view.Request) any {
	if response := gate(request); response != nil {
		return response
	}

	var body createRequest

	if response := request.BindJSON(&body); response != nil {
		return response
	}

	ticker := strings.ToUpper(strings.TrimSpace(body.Ticker))

	if _, ok := handler.Catalog.Lookup(ticker); !ok {
		return view.BadRequest("stock symbol not found in demo database")
	}

	kind, err := model.ParseAlertKind(body.Kind)

	if err != nil {
		return view.BadRequest(err.Error())
	}

	direction, err := model.ParseAlertDirection(body.Direction)

	if err != nil {
		return view.BadRequest(err.Error())
	}

	alert := model.NewAlert(ticker, kind, direction, decimal.NewFromFloat(body.Threshold))
	updated, err := handler.Data.AddAlert(alert)

	if err != nil {
		return err
	}

	return updated
}

func (handler *Handler) handleRemove(request *view.Request) any {
	if response := gate(request); response != nil {
		return response
	}

	updated, err := handler.Data.RemoveAlert(request.Var("id"))

	if err != nil {
		return err
	}

	return view.OK(updated)
}

type triggeredAlert struct {
	model.Alert
	Quote model.Quote `json:"quote"`
}

// handleTriggered refreshes quotes for every active alert's ticker and
// reports the alerts whose condition now holds.
func (handler *Handler) handleTriggered(request *view.Request) any {
	if response := gate(request); response != nil {
		return response
	}

	alerts, err := handler.Data.Alerts()

	if err != nil {
		return err
	}

	seen := make(map[string]bool)
	tickers := make([]string, 0, len(alerts))

	for _, alert := range alerts {
		if alert.Active && !seen[alert.Ticker] {
			seen[alert.Ticker] = true
			tickers = append(tickers, alert.Ticker)
		}
	}

	quotes := make(map[string]model.Quote)

	for _, entry := range handler.Refresher.RefreshAll(request.Context(), tickers) {
		quotes[entry.Quote.Ticker] = entry.Quote
	}

	triggered := make([]triggeredAlert, 0)

	for _, alert := range alerts {
		current, ok := quotes[alert.Ticker]

		if !ok || !alert.Active {
			continue
		}

		if alert.ShouldTrigger(current) {
			triggered = append(triggered, triggeredAlert{Alert: alert, Quote: current})
		}
	}

	return view.OK(triggered)
}
