package portfolio

import (
	"os"
	"path/filepath"
	"testing"
)

func write(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_MissingFile(t *testing.T) {
	got := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if len(got) != 0 {
		t.Errorf("Load on missing file = %v, want empty", got)
	}
}

func TestLoad_Holdings(t *testing.T) {
	path := write(t, `holdings:
  - ticker: vrt
    avg_cost: 175.9784
  - ticker: MBLY
    avg_cost: 11.0904
    shares: 12
`)
	got := Load(path)
	if len(got) != 2 {
		t.Fatalf("got %d holdings, want 2", len(got))
	}
	if h, ok := got["VRT"]; !ok || h.AvgCost != 175.9784 {
		t.Errorf("VRT holding = %+v (present=%v)", h, ok)
	}
	if h := got["MBLY"]; h.Shares != 12 {
		t.Errorf("MBLY shares = %v, want 12", h.Shares)
	}
}

func TestLoad_DropsUnusableEntries(t *testing.T) {
	path := write(t, `holdings:
  - ticker: VRT
    avg_cost: 0
  - ticker: ""
    avg_cost: 10
  - ticker: FN
    avg_cost: -3
`)
	if got := Load(path); len(got) != 0 {
		t.Errorf("Load = %v, want all entries dropped", got)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := write(t, "holdings: [not: valid: yaml")
	if got := Load(path); len(got) != 0 {
		t.Errorf("Load on malformed file = %v, want empty", got)
	}
}
