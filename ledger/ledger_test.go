package ledger_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/etldemo/edk/ledger"
)

func TestLedger(t *testing.T) {
	l, err := ledger.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("opening ledger: %v", err)
	}
	defer l.Close()

	id1, err := l.Record(ledger.Entry{
		Time:      time.Now(),
		Source:    "fake",
		Seed:      42,
		Sourced:   1000,
		Kept:      812,
		OutputDir: "data/output",
		Format:    "parquet",
	})
	if err != nil {
		t.Fatalf("recording first run: %v", err)
	}
	id2, err := l.Record(ledger.Entry{Time: time.Now(), Source: "csv", Kept: 3})
	if err != nil {
		t.Fatalf("recording second run: %v", err)
	}
	if id2 != id1+1 {
		t.Fatalf("expected sequential ids, got %d and %d", id1, id2)
	}

	runs, err := l.Runs()
	if err != nil {
		t.Fatalf("reading runs: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Seed != 42 || runs[0].Kept != 812 {
		t.Fatalf("wrong first run: %+v", runs[0])
	}
	if runs[1].Source != "csv" {
		t.Fatalf("wrong second run: %+v", runs[1])
	}
}

func TestLedgerReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	l, err := ledger.Open(path)
	if err != nil {
		t.Fatalf("opening ledger: %v", err)
	}
	if _, err := l.Record(ledger.Entry{Source: "fake"}); err != nil {
		t.Fatalf("recording: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("closing: %v", err)
	}

	l, err = ledger.Open(path)
	if err != nil {
		t.Fatalf("reopening ledger: %v", err)
	}
	defer l.Close()
	runs, err := l.Runs()
	if err != nil {
		t.Fatalf("reading runs: %v", err)
	}
	if len(runs) != 1 || runs[0].Source != "fake" {
		t.Fatalf("wrong runs after reopen: %+v", runs)
	}
}
