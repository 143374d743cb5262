package report

import (
	"fmt"
	"math"
	"strings"
	"time"

	"StockDigest/internal/model"
)

// Subject is the fixed subject/title used by the delivery channels.
const Subject = "Daily Stock Update"

// Style selects how lines for unresolved tickers are rendered.
type Style string

const (
	// StyleVerbose renders "TICKER: N/A (<status>)".
	StyleVerbose Style = "verbose"
	// StyleTerse renders "TICKER: Error".
	StyleTerse Style = "terse"
)

// ParseStyle maps a config value to a Style, defaulting to verbose.
func ParseStyle(s string) Style {
	if Style(s) == StyleTerse {
		return StyleTerse
	}
	return StyleVerbose
}

// Render formats the plain-text report: a header line with a UTC
// timestamp, a blank line, then one line per result in input order.
// When holdings carries a positive average cost for a resolved ticker,
// the line gains a signed P/L percentage suffix. An empty result set
// renders just the header.
func Render(results []model.PriceResult, holdings map[string]model.Holding, style Style, now time.Time) string {
	lines := []string{
		fmt.Sprintf("%s (%s)", Subject, now.UTC().Format("2006-01-02 15:04 UTC")),
		"",
	}
	for _, r := range results {
		lines = append(lines, Line(r, holdings, style))
	}
	return strings.Join(lines, "\n")
}

// Line renders a single report line for one result.
func Line(r model.PriceResult, holdings map[string]model.Holding, style Style) string {
	if !r.OK() {
		if style == StyleTerse {
			return fmt.Sprintf("%s: Error", r.Ticker)
		}
		return fmt.Sprintf("%s: N/A (%s)", r.Ticker, r.Status)
	}
	price := *r.Price
	if h, ok := holdings[r.Ticker]; ok && h.AvgCost > 0 {
		pl := (price - h.AvgCost) / h.AvgCost * 100
		return fmt.Sprintf("%s: $%.2f  (P/L %+.2f%%)", r.Ticker, price, pl)
	}
	return fmt.Sprintf("%s: $%.2f", r.Ticker, price)
}

// Table converts results into viewer rows, one-to-one and in order,
// rounding prices to 4 decimals. The stored results keep full precision.
func Table(results []model.PriceResult) []model.TableRow {
	rows := make([]model.TableRow, len(results))
	for i, r := range results {
		row := model.TableRow{Ticker: r.Ticker, Currency: r.Currency, Status: r.Status}
		if r.Price != nil {
			p := math.Round(*r.Price*1e4) / 1e4
			row.Price = &p
		}
		rows[i] = row
	}
	return rows
}
