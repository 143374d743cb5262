package portfolio

import (
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"StockDigest/internal/model"
)

// holdingsFile is the on-disk shape of the operator-edited portfolio file:
//
//	holdings:
//	  - ticker: VRT
//	    avg_cost: 175.9784
//	  - ticker: MBLY
//	    avg_cost: 11.0904
//	    shares: 12
type holdingsFile struct {
	Holdings []model.Holding `yaml:"holdings"`
}

// Load reads the holdings file at path into a ticker-keyed map. A missing,
// unreadable or malformed file yields an empty portfolio: the report then
// simply renders without P/L suffixes, which is never an error. Entries
// without a positive average cost are dropped.
func Load(path string) map[string]model.Holding {
	out := map[string]model.Holding{}
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[WARN] read portfolio %s: %v", path, err)
		}
		return out
	}
	var f holdingsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		log.Printf("[WARN] parse portfolio %s: %v", path, err)
		return out
	}
	for _, h := range f.Holdings {
		t := strings.ToUpper(strings.TrimSpace(h.Ticker))
		if t == "" || h.AvgCost <= 0 {
			continue
		}
		h.Ticker = t
		out[t] = h
	}
	return out
}
