package net

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// TestAccuracy tests the exact-match ratio.
func TestAccuracy(t *testing.T) {
	pred := []string{"a", "b", "a", "c"}
	truth := []string{"a", "b", "c", "c"}

	got, err := Accuracy(pred, truth)
	if err != nil {
		t.Fatalf("Accuracy failed: %v", err)
	}
	if got != 0.75 {
		t.Errorf("Accuracy = %v, want 0.75", got)
	}
}

// TestAccuracyLengthMismatch tests sequences of length 10 and 9.
func TestAccuracyLengthMismatch(t *testing.T) {
	pred := make([]string, 10)
	truth := make([]string, 9)

	_, err := Accuracy(pred, truth)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Accuracy error = %v, want ErrLengthMismatch", err)
	}
}

// TestAccuracyEmpty tests that empty sequences are rejected.
func TestAccuracyEmpty(t *testing.T) {
	if _, err := Accuracy(nil, nil); err == nil {
		t.Error("Accuracy of empty sequences should fail")
	}
}

// TestPredictDoesNotMutateParams tests that prediction is a pure forward
// pass over the parameters.
func TestPredictDoesNotMutateParams(t *testing.T) {
	n := newClassifier(t, 3, 2, 2, newRNG())

	before := make([]float64, 0)
	for _, l := range n.Layers() {
		before = append(before, l.Params()...)
	}

	if _, err := Predict(n, mat.NewDense(4, 3, nil)); err != nil {
		t.Fatalf("Predict failed: %v", err)
	}

	i := 0
	for _, l := range n.Layers() {
		for _, p := range l.Params() {
			if p != before[i] {
				t.Fatal("Predict mutated network parameters")
			}
			i++
		}
	}
}

// TestArgmaxTieBreaksLowestIndex tests the left-to-right max convention.
func TestArgmaxTieBreaksLowestIndex(t *testing.T) {
	if got := argmax([]float64{0.2, 0.4, 0.4}); got != 1 {
		t.Errorf("argmax = %d, want 1 (first maximum wins)", got)
	}
	if got := argmax([]float64{0.5, 0.5}); got != 0 {
		t.Errorf("argmax = %d, want 0", got)
	}
}

// TestOneHotAccuracy tests argmax agreement between probabilities and
// one-hot targets.
func TestOneHotAccuracy(t *testing.T) {
	probs := mat.NewDense(2, 2, []float64{
		0.9, 0.1,
		0.3, 0.7,
	})
	targets := mat.NewDense(2, 2, []float64{
		1, 0,
		1, 0,
	})

	if got := oneHotAccuracy(probs, targets); got != 0.5 {
		t.Errorf("oneHotAccuracy = %v, want 0.5", got)
	}
}
