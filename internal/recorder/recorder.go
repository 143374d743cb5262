package recorder

import "time"

// RunRecord summarizes one digest run and its delivery outcome. Prices
// are deliberately not journaled, only operational counts and outcomes.
type RunRecord struct {
	StartedAt    time.Time
	Source       string // data source name, e.g. "yahoo"
	Channel      string // "email" or "push"
	TickerCount  int
	OKCount      int
	Delivered    bool
	DeliveryNote string // error text when Delivered is false
}

// Recorder persists run outcomes for operator inspection.
type Recorder interface {
	RecordRun(rec *RunRecord) error
	Close() error
}
