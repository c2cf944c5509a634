// Package layer provides neural network layer implementations.
package layer

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/rmfonseca/tabnet/internal/activations"
)

// Layer is a neural network layer operating on row batches.
type Layer interface {
	// Forward computes the layer output for a batch (rows = samples).
	Forward(x *mat.Dense) *mat.Dense

	// Backward takes the gradient of the loss w.r.t. the layer output and
	// returns the gradient w.r.t. the layer input, storing parameter
	// gradients internally.
	Backward(grad *mat.Dense) *mat.Dense

	// Params returns the live backing slice of the layer parameters.
	// Optimizers update parameters by mutating it in place.
	Params() []float64

	// Gradients returns the live backing slice of the parameter gradients,
	// laid out to match Params. Valid after a Backward call.
	Gradients() []float64

	InSize() int
	OutSize() int
}

// Dense is a fully connected layer: a = act(x·W + b).
//
// Parameters are stored in a single flat slice, weights first (row-major,
// in x out) then biases, so that an optimizer can update the whole layer
// through one Params/Gradients pair. The weight matrix is a gonum view over
// that slice; mutating Params mutates the matrix.
type Dense struct {
	inSize  int
	outSize int
	act     activations.Activation

	params []float64
	grads  []float64
	w      *mat.Dense // view over params[:in*out]
	gw     *mat.Dense // view over grads[:in*out]

	// Cached during Forward for the following Backward.
	input  *mat.Dense
	preAct *mat.Dense
}

// NewDense creates a dense layer with Xavier/Glorot-initialized weights
// drawn from rng, so identical seeds reproduce identical parameters.
func NewDense(in, out int, act activations.Activation, rng *rand.Rand) *Dense {
	params := make([]float64, in*out+out)
	grads := make([]float64, in*out+out)

	scale := math.Sqrt(2.0 / (float64(in) + float64(out)))
	for i := 0; i < in*out; i++ {
		params[i] = rng.Float64()*2*scale - scale
	}
	for i := in * out; i < len(params); i++ {
		params[i] = rng.Float64()*0.2 - 0.1
	}

	return &Dense{
		inSize:  in,
		outSize: out,
		act:     act,
		params:  params,
		grads:   grads,
		w:       mat.NewDense(in, out, params[:in*out]),
		gw:      mat.NewDense(in, out, grads[:in*out]),
	}
}

// InSize returns the expected input width.
func (d *Dense) InSize() int { return d.inSize }

// OutSize returns the output width.
func (d *Dense) OutSize() int { return d.outSize }

// Activation returns the layer's activation function.
func (d *Dense) Activation() activations.Activation { return d.act }

// Params returns the live parameter slice (weights then biases).
func (d *Dense) Params() []float64 { return d.params }

// Gradients returns the live gradient slice, matching the Params layout.
func (d *Dense) Gradients() []float64 { return d.grads }

// Forward computes act(x·W + b) for a batch of rows.
func (d *Dense) Forward(x *mat.Dense) *mat.Dense {
	rows, cols := x.Dims()
	if cols != d.inSize {
		panic("layer: Dense.Forward: input width does not match layer input size")
	}

	// z = x·W + b
	z := mat.NewDense(rows, d.outSize, nil)
	z.Mul(x, d.w)
	bias := d.params[d.inSize*d.outSize:]
	for i := 0; i < rows; i++ {
		row := z.RawRowView(i)
		for j := range row {
			row[j] += bias[j]
		}
	}

	// Cache input and pre-activation for Backward.
	d.input = mat.DenseCopyOf(x)
	d.preAct = mat.DenseCopyOf(z)

	out := mat.NewDense(rows, d.outSize, nil)
	if rowAct, ok := d.act.(activations.RowActivation); ok {
		for i := 0; i < rows; i++ {
			rowAct.ActivateRow(out.RawRowView(i), z.RawRowView(i))
		}
	} else {
		for i := 0; i < rows; i++ {
			src := z.RawRowView(i)
			dst := out.RawRowView(i)
			for j := range src {
				dst[j] = d.act.Activate(src[j])
			}
		}
	}
	return out
}

// Backward computes parameter gradients and the input gradient from the
// output gradient of the most recent Forward batch:
//
//	dZ = grad ⊙ act'(z)
//	dW = xᵀ·dZ,  db = column sums of dZ,  dX = dZ·Wᵀ
func (d *Dense) Backward(grad *mat.Dense) *mat.Dense {
	if d.input == nil {
		panic("layer: Dense.Backward called before Forward")
	}
	rows, cols := grad.Dims()
	if cols != d.outSize {
		panic("layer: Dense.Backward: gradient width does not match layer output size")
	}

	dz := mat.NewDense(rows, d.outSize, nil)
	for i := 0; i < rows; i++ {
		gRow := grad.RawRowView(i)
		zRow := d.preAct.RawRowView(i)
		dzRow := dz.RawRowView(i)
		for j := range gRow {
			dzRow[j] = gRow[j] * d.act.Derivative(zRow[j])
		}
	}

	// dW written directly into the gradient backing slice via the view.
	d.gw.Mul(d.input.T(), dz)

	gb := d.grads[d.inSize*d.outSize:]
	for j := range gb {
		gb[j] = 0
	}
	for i := 0; i < rows; i++ {
		dzRow := dz.RawRowView(i)
		for j := range dzRow {
			gb[j] += dzRow[j]
		}
	}

	dx := mat.NewDense(rows, d.inSize, nil)
	dx.Mul(dz, d.w.T())
	return dx
}
