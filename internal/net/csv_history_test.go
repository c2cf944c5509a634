package net

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/rmfonseca/tabnet/internal/opt"
)

// TestCSVHistory tests that the history file holds a header plus one row
// per completed epoch.
func TestCSVHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	n := newClassifier(t, 2, 3, 2, newRNG())
	x, y := twoBlobs(10, 5)

	run, err := NewTrainer(opt.NewSGD(0.01), NewCSVHistory(path, false)).Fit(n, x, y, 5)
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("history file missing: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("failed to read history: %v", err)
	}

	if len(records) != run.Len()+1 {
		t.Fatalf("history has %d lines, want %d", len(records), run.Len()+1)
	}
	header := records[0]
	want := []string{"epoch", "loss", "accuracy", "time_seconds"}
	for i, col := range want {
		if header[i] != col {
			t.Errorf("header[%d] = %q, want %q", i, header[i], col)
		}
	}
	if records[1][0] != "0" {
		t.Errorf("first data row epoch = %q, want 0", records[1][0])
	}
}
