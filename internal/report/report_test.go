package report

import (
	"strings"
	"testing"
	"time"

	"StockDigest/internal/model"
)

var fixedNow = time.Date(2026, 2, 5, 21, 4, 0, 0, time.UTC)

func f64(v float64) *float64 { return &v }

func okResult(ticker string, price float64) model.PriceResult {
	return model.PriceResult{Ticker: ticker, Price: f64(price), Currency: "USD", Status: model.StatusOK}
}

func TestRender_Header(t *testing.T) {
	got := Render(nil, nil, StyleVerbose, fixedNow)
	want := "Daily Stock Update (2026-02-05 21:04 UTC)\n"
	if got != want {
		t.Errorf("Render(nil) = %q, want %q", got, want)
	}
}

func TestRender_PLSuffix(t *testing.T) {
	holdings := map[string]model.Holding{
		"VRT": {Ticker: "VRT", AvgCost: 100},
	}
	got := Render([]model.PriceResult{okResult("VRT", 123.4)}, holdings, StyleVerbose, fixedNow)
	if !strings.Contains(got, "$123.40") {
		t.Errorf("report missing 2-decimal price: %q", got)
	}
	if !strings.Contains(got, "P/L +23.40%") {
		t.Errorf("report missing signed P/L: %q", got)
	}
}

func TestRender_NegativePL(t *testing.T) {
	holdings := map[string]model.Holding{
		"CCJ": {Ticker: "CCJ", AvgCost: 100},
	}
	line := Line(okResult("CCJ", 50), holdings, StyleVerbose)
	want := "CCJ: $50.00  (P/L -50.00%)"
	if line != want {
		t.Errorf("Line = %q, want %q", line, want)
	}
}

func TestRender_NoHoldingNoSuffix(t *testing.T) {
	line := Line(okResult("TER", 50.0), nil, StyleVerbose)
	if line != "TER: $50.00" {
		t.Errorf("Line = %q, want %q", line, "TER: $50.00")
	}
	// A non-positive cost renders like no holding at all.
	holdings := map[string]model.Holding{"TER": {Ticker: "TER", AvgCost: 0}}
	if got := Line(okResult("TER", 50.0), holdings, StyleVerbose); got != "TER: $50.00" {
		t.Errorf("Line with zero-cost holding = %q, want no suffix", got)
	}
}

func TestRender_NonOKStyles(t *testing.T) {
	r := model.PriceResult{Ticker: "MBLY", Status: model.StatusNoData}
	if got := Line(r, nil, StyleVerbose); got != "MBLY: N/A (invalid ticker or no data)" {
		t.Errorf("verbose line = %q", got)
	}
	if got := Line(r, nil, StyleTerse); got != "MBLY: Error" {
		t.Errorf("terse line = %q", got)
	}
}

func TestRender_OrderPreservedAcrossStatuses(t *testing.T) {
	results := []model.PriceResult{
		okResult("VRT", 100),
		{Ticker: "BAD", Status: model.StatusNoData},
		okResult("FN", 200),
		{Ticker: "OOPS", Status: model.ErrorStatus("no source")},
	}
	got := Render(results, nil, StyleVerbose, fixedNow)
	lines := strings.Split(got, "\n")
	want := []string{
		"Daily Stock Update (2026-02-05 21:04 UTC)",
		"",
		"VRT: $100.00",
		"BAD: N/A (invalid ticker or no data)",
		"FN: $200.00",
		"OOPS: N/A (error: no source)",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), got)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestTable_RoundsToFourDecimals(t *testing.T) {
	results := []model.PriceResult{
		okResult("VRT", 123.456789),
		{Ticker: "BAD", Status: model.StatusNoData},
	}
	rows := Table(results)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Price == nil || *rows[0].Price != 123.4568 {
		t.Errorf("rows[0].Price = %v, want 123.4568", rows[0].Price)
	}
	if rows[1].Price != nil {
		t.Errorf("rows[1].Price = %v, want nil", *rows[1].Price)
	}
	if rows[1].Status != model.StatusNoData {
		t.Errorf("rows[1].Status = %q", rows[1].Status)
	}
}

func TestParseStyle(t *testing.T) {
	if ParseStyle("terse") != StyleTerse {
		t.Error(`ParseStyle("terse") != StyleTerse`)
	}
	for _, s := range []string{"", "verbose", "anything"} {
		if ParseStyle(s) != StyleVerbose {
			t.Errorf("ParseStyle(%q) != StyleVerbose", s)
		}
	}
}
