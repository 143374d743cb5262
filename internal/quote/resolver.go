package quote

import (
	"log"
	"strings"
	"sync"

	"StockDigest/internal/model"
)

// lookup is the tagged outcome of one resolution tier: either a usable
// price was found or the tier yielded nothing. Tier faults map to
// not-found instead of propagating.
type lookup struct {
	found    bool
	price    float64
	currency string
}

// Resolver turns ticker symbols into PriceResults using a two-tier
// fallback: the current-quote snapshot first, then recent daily closes.
// The history tier is consulted only when the snapshot yields no usable
// price; it never overwrites a snapshot price.
type Resolver struct {
	Fetcher     Fetcher
	HistoryDays int // trailing window for the history tier
	Parallelism int // ResolveAll worker count, 1 = sequential
}

// NewResolver creates a Resolver with the reference settings: a 5-day
// history window and sequential resolution.
func NewResolver(f Fetcher) *Resolver {
	return &Resolver{Fetcher: f, HistoryDays: 5, Parallelism: 1}
}

// Resolve resolves a single ticker. It never returns an error: every
// fault is classified into the result status, so one bad ticker cannot
// abort a run.
func (r *Resolver) Resolve(raw string) model.PriceResult {
	t := strings.ToUpper(strings.TrimSpace(raw))
	if t == "" {
		return model.PriceResult{Ticker: raw, Status: model.StatusEmptyTicker}
	}
	if r.Fetcher == nil {
		return model.PriceResult{Ticker: t, Status: model.ErrorStatus("no source")}
	}

	snap := r.snapshotTier(t)
	price, found := snap.price, snap.found
	if !found {
		hist := r.historyTier(t)
		price, found = hist.price, hist.found
	}

	if !found {
		// Currency may still be known from the snapshot even without a price.
		return model.PriceResult{Ticker: t, Currency: snap.currency, Status: model.StatusNoData}
	}
	return model.PriceResult{Ticker: t, Price: &price, Currency: snap.currency, Status: model.StatusOK}
}

func (r *Resolver) snapshotTier(symbol string) lookup {
	snap, err := r.Fetcher.FetchSnapshot(symbol)
	if err != nil {
		log.Printf("[WARN] %s: snapshot tier: %v", symbol, err)
		return lookup{}
	}
	if snap == nil {
		return lookup{}
	}
	out := lookup{currency: snap.Currency}
	if snap.LastPrice != nil && usable(*snap.LastPrice) {
		out.found = true
		out.price = *snap.LastPrice
	}
	return out
}

func (r *Resolver) historyTier(symbol string) lookup {
	days := r.HistoryDays
	if days <= 0 {
		days = 5
	}
	closes, err := r.Fetcher.FetchRecentCloses(symbol, days)
	if err != nil {
		log.Printf("[WARN] %s: history tier: %v", symbol, err)
		return lookup{}
	}
	// Chronologically last non-missing close wins.
	for i := len(closes) - 1; i >= 0; i-- {
		if usable(closes[i]) {
			return lookup{found: true, price: closes[i]}
		}
	}
	return lookup{}
}

// ResolveAll resolves every ticker and returns results in input order.
// With Parallelism > 1 tickers run on a bounded worker pool; each result
// is written to its input index, so output order always matches input.
func (r *Resolver) ResolveAll(tickers []string) []model.PriceResult {
	results := make([]model.PriceResult, len(tickers))
	if r.Parallelism <= 1 {
		for i, t := range tickers {
			results[i] = r.Resolve(t)
		}
		return results
	}

	sem := make(chan struct{}, r.Parallelism)
	var wg sync.WaitGroup
	for i, t := range tickers {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, t string) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = r.Resolve(t)
		}(i, t)
	}
	wg.Wait()
	return results
}
