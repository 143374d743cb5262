package recorder

import (
	"path/filepath"
	"testing"
	"time"
)

func TestSQLiteRecorder_RecordRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	r, err := NewSQLiteRecorder(path)
	if err != nil {
		t.Fatalf("NewSQLiteRecorder: %v", err)
	}
	defer r.Close()

	rec := &RunRecord{
		StartedAt:    time.Unix(1700000000, 0),
		Source:       "yahoo",
		Channel:      "push",
		TickerCount:  13,
		OKCount:      12,
		Delivered:    false,
		DeliveryNote: "push API error: status 502",
	}
	if err := r.RecordRun(rec); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}

	row := r.db.QueryRow(`SELECT started_at, source, channel, ticker_count, ok_count, delivered, delivery_note FROM runs`)
	var startedAt int64
	var source, channel, note string
	var tickers, ok, delivered int
	if err := row.Scan(&startedAt, &source, &channel, &tickers, &ok, &delivered, &note); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if startedAt != 1700000000 || source != "yahoo" || channel != "push" {
		t.Errorf("row = %d %s %s", startedAt, source, channel)
	}
	if tickers != 13 || ok != 12 || delivered != 0 {
		t.Errorf("counts = %d/%d delivered=%d", tickers, ok, delivered)
	}
	if note != "push API error: status 502" {
		t.Errorf("note = %q", note)
	}
}

func TestSQLiteRecorder_MigrateIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	r, err := NewSQLiteRecorder(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	r2, err := NewSQLiteRecorder(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	r2.Close()
}
