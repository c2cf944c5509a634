package net

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Predict runs a pure forward pass over a feature batch and returns one
// probability row per input row. Parameters are read, never mutated.
func Predict(n *Network, x *mat.Dense) (*mat.Dense, error) {
	return n.Forward(x)
}

// Accuracy returns the exact-match ratio between predicted and true
// labels, in [0, 1]. Fails with ErrLengthMismatch if the sequences differ
// in length.
func Accuracy(predicted, truth []string) (float64, error) {
	if len(predicted) != len(truth) {
		return 0, fmt.Errorf("%w: %d predictions but %d ground-truth labels",
			ErrLengthMismatch, len(predicted), len(truth))
	}
	if len(truth) == 0 {
		return 0, fmt.Errorf("net: accuracy of empty sequences is undefined")
	}

	correct := 0
	for i := range truth {
		if predicted[i] == truth[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(truth)), nil
}

// oneHotAccuracy compares argmax rows of a probability batch against
// argmax rows of one-hot targets.
func oneHotAccuracy(yPred, yTrue *mat.Dense) float64 {
	rows, _ := yPred.Dims()
	if rows == 0 {
		return 0
	}
	correct := 0
	for i := 0; i < rows; i++ {
		if argmax(yPred.RawRowView(i)) == argmax(yTrue.RawRowView(i)) {
			correct++
		}
	}
	return float64(correct) / float64(rows)
}

// argmax returns the index of the maximum value, scanning left to right
// so ties break toward the lowest index.
func argmax(row []float64) int {
	best := 0
	for i := 1; i < len(row); i++ {
		if row[i] > row[best] {
			best = i
		}
	}
	return best
}
