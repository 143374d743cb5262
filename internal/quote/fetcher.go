package quote

import "math"

// Snapshot is the lightweight current-quote view of a symbol. LastPrice is
// nil when the source exposes no usable last-trade field for the symbol.
type Snapshot struct {
	LastPrice *float64
	Currency  string
}

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	// FetchSnapshot returns the current-quote snapshot, or nil when the
	// source has none for the symbol.
	FetchSnapshot(symbol string) (*Snapshot, error)
	// FetchRecentCloses returns unadjusted daily closing prices over the
	// trailing window, oldest first, with missing days skipped.
	FetchRecentCloses(symbol string, days int) ([]float64, error)
	Name() string
}

// usable reports whether p is a finite, non-NaN price.
func usable(p float64) bool {
	return !math.IsNaN(p) && !math.IsInf(p, 0)
}

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Snapshot    *Snapshot
	SnapshotErr error
	Closes      []float64
	ClosesErr   error
	Calls       []string // records "snapshot:SYM" / "closes:SYM"
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchSnapshot(symbol string) (*Snapshot, error) {
	m.Calls = append(m.Calls, "snapshot:"+symbol)
	if m.SnapshotErr != nil {
		return nil, m.SnapshotErr
	}
	return m.Snapshot, nil
}

func (m *MockFetcher) FetchRecentCloses(symbol string, _ int) ([]float64, error) {
	m.Calls = append(m.Calls, "closes:"+symbol)
	if m.ClosesErr != nil {
		return nil, m.ClosesErr
	}
	return m.Closes, nil
}
