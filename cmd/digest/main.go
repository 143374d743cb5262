package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"StockDigest/internal/config"
	"StockDigest/internal/notify"
	"StockDigest/internal/portfolio"
	"StockDigest/internal/quote"
	"StockDigest/internal/recorder"
	"StockDigest/internal/report"
	"StockDigest/internal/ticker"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	channel := flag.String("channel", "email", "delivery channel: email or push")
	flag.Parse()

	if err := godotenv.Load(); err == nil {
		log.Println("[INFO] loaded .env")
	}

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}

	// Channel credentials are checked before any external call.
	switch *channel {
	case "email":
		if err := cfg.ValidateEmail(); err != nil {
			log.Fatalf("[FATAL] config validation: %v", err)
		}
	case "push":
		if err := cfg.ValidatePush(); err != nil {
			log.Fatalf("[FATAL] config validation: %v", err)
		}
	default:
		log.Fatalf("[FATAL] unknown channel %q (want email or push)", *channel)
	}

	// Init fetcher
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

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	startedAt := time.Now()

	tickers := ticker.Defaults(cfg.Tickers.Override, cfg.Tickers.File)
	log.Printf("[INFO] resolving %d tickers", len(tickers))
	results := resolver.ResolveAll(tickers)

	okCount := 0
	for _, r := range results {
		if r.OK() {
			okCount++
		}
	}
	log.Printf("[INFO] resolved: %d ok, %d without data", okCount, len(results)-okCount)

	holdings := portfolio.Load(cfg.Portfolio.File)
	body := report.Render(results, holdings, report.ParseStyle(cfg.Report.Style), startedAt)

	// Deliver
	var deliverErr error
	switch *channel {
	case "email":
		sender := notify.NewEmailSender(cfg.Email.User, cfg.Email.Password, cfg.Email.SMTPHost, cfg.Email.SMTPPort)
		deliverErr = sender.Send(report.Subject, body)
	case "push":
		clickURL := ""
		paste := notify.NewPasteClient(cfg.Push.PasteURL, cfg.Proxy)
		if u, err := paste.Create(body); err != nil {
			log.Printf("[WARN] paste creation failed, continuing without link: %v", err)
			if cfg.Push.EmbedPage {
				clickURL = notify.ClickPage(report.Subject, body)
			}
		} else {
			clickURL = u
		}
		push := notify.NewPushSender(cfg.Push.Server, cfg.Push.Topic, cfg.Proxy)
		deliverErr = push.Send(report.Subject, body, clickURL)
	}

	run := &recorder.RunRecord{
		StartedAt:   startedAt,
		Source:      fetcher.Name(),
		Channel:     *channel,
		TickerCount: len(results),
		OKCount:     okCount,
		Delivered:   deliverErr == nil,
	}
	if deliverErr != nil {
		run.DeliveryNote = deliverErr.Error()
	}
	if err := rec.RecordRun(run); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}
	if err := rec.Close(); err != nil {
		log.Printf("[ERROR] close recorder: %v", err)
	}

	if deliverErr != nil {
		log.Printf("[ERROR] %s delivery failed: %v", *channel, deliverErr)
		os.Exit(1)
	}
	log.Printf("[INFO] %s delivery sent", *channel)
}
