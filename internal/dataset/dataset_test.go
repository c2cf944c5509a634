// Package dataset provides unit tests for dataset construction and CSV
// loading.
package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadCSV tests loading a header CSV with a trailing label column.
func TestLoadCSV(t *testing.T) {
	path := writeTempCSV(t,
		"sepal_length,sepal_width,species\n"+
			"5.1,3.5,setosa\n"+
			"6.2,2.9,versicolor\n"+
			"6.9,3.1,virginica\n")

	ds, err := LoadCSV(path, 2, true)
	if err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}

	if ds.Len() != 3 {
		t.Errorf("Len = %d, want 3", ds.Len())
	}
	if ds.NumFeatures() != 2 {
		t.Errorf("NumFeatures = %d, want 2", ds.NumFeatures())
	}
	if got := ds.Labels[1]; got != "versicolor" {
		t.Errorf("Labels[1] = %q, want versicolor", got)
	}
	if got := ds.Features.At(0, 0); got != 5.1 {
		t.Errorf("Features[0,0] = %v, want 5.1", got)
	}
	if len(ds.FeatureNames) != 2 || ds.FeatureNames[0] != "sepal_length" {
		t.Errorf("FeatureNames = %v, want [sepal_length sepal_width]", ds.FeatureNames)
	}
}

// TestLoadCSVLabelInMiddle tests a label column between feature columns.
func TestLoadCSVLabelInMiddle(t *testing.T) {
	path := writeTempCSV(t,
		"1.0,a,2.0\n"+
			"3.0,b,4.0\n")

	ds, err := LoadCSV(path, 1, false)
	if err != nil {
		t.Fatalf("LoadCSV failed: %v", err)
	}

	if ds.NumFeatures() != 2 {
		t.Fatalf("NumFeatures = %d, want 2", ds.NumFeatures())
	}
	if ds.Features.At(1, 1) != 4.0 {
		t.Errorf("Features[1,1] = %v, want 4.0", ds.Features.At(1, 1))
	}
	if ds.Labels[0] != "a" || ds.Labels[1] != "b" {
		t.Errorf("Labels = %v, want [a b]", ds.Labels)
	}
}

// TestLoadCSVBadValue tests that unparseable features are reported with
// their position.
func TestLoadCSVBadValue(t *testing.T) {
	path := writeTempCSV(t, "1.0,oops,setosa\n")

	if _, err := LoadCSV(path, 2, false); err == nil {
		t.Error("expected parse error for non-numeric feature")
	}
}

// TestLoadCSVLabelColOutOfRange tests the label column bound check.
func TestLoadCSVLabelColOutOfRange(t *testing.T) {
	path := writeTempCSV(t, "1.0,setosa\n")

	if _, err := LoadCSV(path, 5, false); err == nil {
		t.Error("expected error for out-of-range label column")
	}
}

// TestLoadCSVMissingFile tests the open failure path.
func TestLoadCSVMissingFile(t *testing.T) {
	if _, err := LoadCSV("does-not-exist.csv", 0, false); err == nil {
		t.Error("expected error for missing file")
	}
}

// TestNewRowLengthMismatch tests the shared-schema invariant.
func TestNewRowLengthMismatch(t *testing.T) {
	_, err := New([][]float64{{1, 2}, {3}}, []string{"a", "b"}, nil)
	if err == nil {
		t.Error("expected error for ragged feature rows")
	}
}

// TestNewLabelCountMismatch tests the features/labels length check.
func TestNewLabelCountMismatch(t *testing.T) {
	_, err := New([][]float64{{1}}, []string{"a", "b"}, nil)
	if err == nil {
		t.Error("expected error for mismatched label count")
	}
}

// TestSubset tests row selection with copied data.
func TestSubset(t *testing.T) {
	ds, err := New([][]float64{{1}, {2}, {3}}, []string{"a", "b", "c"}, nil)
	if err != nil {
		t.Fatal(err)
	}

	sub := ds.Subset([]int{2, 0})

	if sub.Len() != 2 {
		t.Fatalf("Len = %d, want 2", sub.Len())
	}
	if sub.Features.At(0, 0) != 3 || sub.Labels[0] != "c" {
		t.Errorf("Subset row 0 = (%v, %q), want (3, c)", sub.Features.At(0, 0), sub.Labels[0])
	}
	if sub.Features.At(1, 0) != 1 || sub.Labels[1] != "a" {
		t.Errorf("Subset row 1 = (%v, %q), want (1, a)", sub.Features.At(1, 0), sub.Labels[1])
	}

	// Mutating the subset must not touch the source.
	sub.Features.Set(0, 0, 99)
	if ds.Features.At(2, 0) != 3 {
		t.Error("Subset should copy feature data")
	}
}
