package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/alioayf27-debug/trackstock/internal/catalog"
	"github.com/alioayf27-debug/trackstock/internal/env"
	"github.com/alioayf27-debug/trackstock/internal/news"
	"github.com/alioayf27-debug/trackstock/internal/quote"
	"github.com/alioayf27-debug/trackstock/internal/route/alerts"
	"github.com/alioayf27-debug/trackstock/internal/route/auth"
	"github.com/alioayf27-debug/trackstock/internal/route/market"
	routeportfolio "github.com/alioayf27-debug/trackstock/internal/route/portfolio"
	"github.com/alioayf27-debug/trackstock/internal/route/watchlist"
	"github.com/alioayf27-debug/trackstock/internal/session"
	"github.com/alioayf27-debug/trackstock/internal/storage"
	"github.com/alioayf27-debug/trackstock/internal/userdata"
)

func buildResolver(securities *catalog.Catalog) *quote.Resolver {
	var provider quote.Provider

	if token := env.Get("FINNHUB_API_KEY", ""); token != "" {
		provider = quote.NewFinnhubProvider(token)
	} else {
		log.Warn().Msg("FINNHUB_API_KEY is not set, all quotes will be simulated")
	}

	return quote.NewResolver(securities, provider)
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	env.LoadEnvironmentVariables()
	session.InitSessionStorage()

	store, err := storage.NewFileStore(env.Get("DATA_DIR", "data"))

	if err != nil {
		log.Fatal().Err(err).Msg("failed to open data directory")
	}

	securities := catalog.New()
	refresher := quote.NewRefresher(buildResolver(securities))
	collections := userdata.New(store)
	newsClient := news.NewClient(env.Get("GEMINI_API_KEY", ""))

	router := mux.NewRouter().StrictSlash(true)

	handlers := []interface{ Register(router *mux.Router) }{
		&auth.Handler{OwnerPasswordHash: env.Get("OWNER_PASSWORD_HASH", "")},
		&market.Handler{Catalog: securities, Refresher: refresher, News: newsClient},
		&watchlist.Handler{Catalog: securities, Data: collections, Refresher: refresher},
		&alerts.Handler{Catalog: securities, Data: collections, Refresher: refresher},
		&routeportfolio.Handler{Catalog: securities, Data: collections, Refresher: refresher},
	}

	for _, handler := range handlers {
		handler.Register(router)
	}

	server := http.Server{
		Addr:    env.Get("ADDR", ":8000"),
		Handler: router,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	log.Info().Str("addr", server.Addr).Msg("server started")
	<-done

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server shut down failed")
	}

	log.Info().Msg("server shut down successfully")
}
