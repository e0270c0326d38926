// tape prints a quote table for the saved watchlist, or for the whole
// market with -all.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/alioayf27-debug/trackstock/internal/catalog"
	"github.com/alioayf27-debug/trackstock/internal/env"
	"github.com/alioayf27-debug/trackstock/internal/quote"
	"github.com/alioayf27-debug/trackstock/internal/storage"
	"github.com/alioayf27-debug/trackstock/internal/userdata"
)

func loadTickers(securities *catalog.Catalog, all bool, dataDir string) ([]string, error) {
	if all {
		return securities.Tickers(), nil
	}

	store, err := storage.NewFileStore(dataDir)

	if err != nil {
		return nil, err
	}

	tickers, err := userdata.New(store).Watchlist()

	if err != nil {
		return nil, err
	}

	if len(tickers) == 0 {
		log.Info().Msg("watchlist is empty, showing the whole market")

		return securities.Tickers(), nil
	}

	return tickers, nil
}

func render(securities *catalog.Catalog, resolved []quote.Resolved) {
	writer := table.NewWriter()
	writer.SetOutputMirror(os.Stdout)
	writer.SetStyle(table.StyleColoredDark)
	writer.Style().Options.DrawBorder = false
	writer.Style().Options.SeparateRows = false
	writer.Style().Options.SeparateColumns = false

	writer.AppendHeader(table.Row{"TICKER", "NAME", "PRICE", "CHG", "CHG%", "SOURCE"})
	writer.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})

	for _, entry := range resolved {
		name := entry.Quote.Ticker

		if stock, ok := securities.Lookup(entry.Quote.Ticker); ok {
			name = stock.Name
		}

		change := entry.Quote.Change.StringFixed(2)
		changePercent := entry.Quote.ChangePercent.StringFixed(2) + "%"

		if entry.Quote.Change.IsNegative() {
			change = text.Colors{text.FgRed}.Sprint(change)
			changePercent = text.Colors{text.FgRed}.Sprint(changePercent)
		} else if entry.Quote.Change.IsPositive() {
			change = text.Colors{text.FgGreen}.Sprint(change)
			changePercent = text.Colors{text.FgGreen}.Sprint(changePercent)
		}

		writer.AppendRow(table.Row{
			entry.Quote.Ticker,
			name,
			entry.Quote.Price.StringFixed(2),
			change,
			changePercent,
			entry.Source,
		})
	}

	writer.Render()
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	all := flag.Bool("all", false, "show every tracked stock, not just the watchlist")
	timeout := flag.Duration("timeout", 30*time.Second, "overall fetch deadline")
	flag.Parse()

	env.LoadEnvironmentVariables()

	securities := catalog.New()
	tickers, err := loadTickers(securities, *all, env.Get("DATA_DIR", "data"))

	if err != nil {
		log.Fatal().Err(err).Msg("failed to load watchlist")
	}

	var provider quote.Provider

	if token := env.Get("FINNHUB_API_KEY", ""); token != "" {
		provider = quote.NewFinnhubProvider(token)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	refresher := quote.NewRefresher(quote.NewResolver(securities, provider))
	render(securities, refresher.RefreshAll(ctx, tickers))
}
