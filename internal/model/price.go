package model

// Status classifies the outcome of a single price resolution.
type Status string

const (
	StatusOK          Status = "ok"
	StatusEmptyTicker Status = "empty ticker"
	StatusNoData      Status = "invalid ticker or no data"
)

// ErrorStatus builds a status carrying the fault category of an
// unexpected resolution fault, e.g. "error: no source".
func ErrorStatus(kind string) Status {
	return Status("error: " + kind)
}

// PriceResult is the outcome of resolving one ticker.
// Price is non-nil if and only if Status is StatusOK, and then holds a
// finite value at full float precision; rounding happens at render time.
type PriceResult struct {
	Ticker   string
	Price    *float64
	Currency string // empty when the source did not report one
	Status   Status
}

// OK reports whether the resolution produced a usable price.
func (r PriceResult) OK() bool { return r.Status == StatusOK }

// Holding is one operator-configured position: the average cost per share
// (as shown by the broker) and an optional share count. Only AvgCost is
// needed for the P/L percentage annotation.
type Holding struct {
	Ticker  string  `yaml:"ticker"`
	AvgCost float64 `yaml:"avg_cost"`
	Shares  float64 `yaml:"shares,omitempty"`
}

// TableRow is one row of the tabular view used by the interactive viewer.
type TableRow struct {
	Ticker   string
	Price    *float64 // rounded to 4 decimals when present
	Currency string
	Status   Status
}
