// Package loss provides loss functions for classification.
package loss

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Loss is a loss function over a batch of predictions with derivative.
type Loss interface {
	// Forward computes the mean loss between predicted and true batches.
	Forward(yPred, yTrue *mat.Dense) float64

	// Backward computes the gradient of the mean loss w.r.t. the
	// prediction batch.
	Backward(yPred, yTrue *mat.Dense) *mat.Dense
}

// CrossEntropy is categorical cross-entropy over one-hot targets.
type CrossEntropy struct{}

// eps guards log(0) on zero predicted probabilities.
const eps = 1e-10

// Forward computes -mean over rows of sum(y_true * log(y_pred + eps)).
func (CrossEntropy) Forward(yPred, yTrue *mat.Dense) float64 {
	pr, pc := yPred.Dims()
	tr, tc := yTrue.Dims()
	if pr != tr || pc != tc {
		panic("loss: CrossEntropy: prediction and target must have same shape")
	}

	var sum float64
	for i := 0; i < pr; i++ {
		pRow := yPred.RawRowView(i)
		tRow := yTrue.RawRowView(i)
		for j := range pRow {
			if tRow[j] != 0 {
				sum -= tRow[j] * math.Log(pRow[j]+eps)
			}
		}
	}
	return sum / float64(pr)
}

// Backward computes the gradient for cross entropy paired with a softmax
// output layer. The combined gradient w.r.t. the pre-activation simplifies
// to (y_pred - y_true), scaled by 1/batch for the mean loss.
func (CrossEntropy) Backward(yPred, yTrue *mat.Dense) *mat.Dense {
	pr, pc := yPred.Dims()
	tr, tc := yTrue.Dims()
	if pr != tr || pc != tc {
		panic("loss: CrossEntropy: prediction and target must have same shape")
	}

	grad := mat.NewDense(pr, pc, nil)
	grad.Sub(yPred, yTrue)
	grad.Scale(1/float64(pr), grad)
	return grad
}
