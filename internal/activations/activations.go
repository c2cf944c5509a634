// Package activations provides activation functions for dense layers.
package activations

import "math"

// Activation is an activation function with derivative.
type Activation interface {
	// Activate computes f(x)
	Activate(x float64) float64

	// Derivative computes f'(x)
	Derivative(x float64) float64
}

// RowActivation is implemented by activations that operate on a whole
// output row at once rather than elementwise (e.g. Softmax).
type RowActivation interface {
	// ActivateRow writes the activated row into dst. dst and z must have
	// the same length; dst may alias z.
	ActivateRow(dst, z []float64)
}

// Identity activation function (linear pass-through).
type Identity struct{}

// Activate returns x unchanged.
func (Identity) Activate(x float64) float64 {
	return x
}

// Derivative returns 1.
func (Identity) Derivative(x float64) float64 {
	return 1
}

// ReLU activation function.
type ReLU struct{}

// Activate computes max(0, x)
func (ReLU) Activate(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// Derivative returns 1 if x > 0, else 0
func (ReLU) Derivative(x float64) float64 {
	if x > 0 {
		return 1
	}
	return 0
}

// Softmax activation for the output layer. Turns a row of scores into a
// probability distribution, numerically stabilized by subtracting the row
// maximum before exponentiation.
//
// Softmax must be paired with a cross-entropy loss: the loss gradient
// (p - t) is already the gradient with respect to the pre-activation, so
// Derivative returns 1 and the layer passes the gradient through unchanged.
type Softmax struct{}

// Activate panics: Softmax operates on whole rows, use ActivateRow.
func (Softmax) Activate(x float64) float64 {
	panic("activations: Softmax.Activate: use ActivateRow for Softmax")
}

// Derivative returns 1 so the combined softmax/cross-entropy gradient
// flows through the layer unchanged.
func (Softmax) Derivative(x float64) float64 {
	return 1
}

// ActivateRow computes softmax over z and writes it into dst.
func (Softmax) ActivateRow(dst, z []float64) {
	if len(dst) != len(z) {
		panic("activations: Softmax.ActivateRow: dst and z must have same length")
	}
	if len(z) == 0 {
		return
	}

	max := z[0]
	for _, v := range z[1:] {
		if v > max {
			max = v
		}
	}

	var sum float64
	for i, v := range z {
		e := math.Exp(v - max)
		dst[i] = e
		sum += e
	}
	for i := range dst {
		dst[i] /= sum
	}
}
