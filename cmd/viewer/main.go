package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"StockDigest/internal/config"
	"StockDigest/internal/quote"
	"StockDigest/internal/ticker"
	"StockDigest/internal/viewer"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err == nil {
		log.Println("[INFO] loaded .env")
	}

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}

	var fetcher quote.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = quote.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = quote.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	resolver := quote.NewResolver(fetcher)
	resolver.HistoryDays = cfg.Quote.HistoryDays
	resolver.Parallelism = cfg.Quote.Parallelism

	defaults := ticker.Defaults(cfg.Tickers.Override, cfg.Tickers.File)
	srv := viewer.NewServer(resolver, defaults)

	log.Printf("[INFO] viewer listening on %s", cfg.Viewer.Listen)
	if err := http.ListenAndServe(cfg.Viewer.Listen, srv.Handler()); err != nil {
		log.Fatalf("[FATAL] viewer server: %v", err)
	}
}
