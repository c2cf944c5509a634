// Package net provides the feed-forward network, trainer and evaluator.
package net

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/rmfonseca/tabnet/internal/layer"
	"github.com/rmfonseca/tabnet/internal/loss"
)

// Network is an ordered stack of layers with a loss function. Parameters
// are initialized at layer construction and mutated only by a Trainer;
// prediction reads them without mutation.
type Network struct {
	layers []layer.Layer
	lossFn loss.Loss
}

// New creates a network, validating that consecutive layer widths chain:
// the input width of every layer must equal the output width of the layer
// before it. Fails with ErrShapeMismatch otherwise.
func New(layers []layer.Layer, lossFn loss.Loss) (*Network, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("net: network needs at least one layer")
	}
	if lossFn == nil {
		return nil, fmt.Errorf("net: network needs a loss function")
	}
	for i := 1; i < len(layers); i++ {
		if layers[i].InSize() != layers[i-1].OutSize() {
			return nil, fmt.Errorf("%w: layer %d outputs %d values but layer %d expects %d",
				ErrShapeMismatch, i-1, layers[i-1].OutSize(), i, layers[i].InSize())
		}
	}
	return &Network{layers: layers, lossFn: lossFn}, nil
}

// InSize returns the feature width the network accepts.
func (n *Network) InSize() int { return n.layers[0].InSize() }

// OutSize returns the width of the network output.
func (n *Network) OutSize() int { return n.layers[len(n.layers)-1].OutSize() }

// Layers returns the network's layers slice.
func (n *Network) Layers() []layer.Layer { return n.layers }

// Forward performs a forward pass over a batch (rows = samples) through
// all layers. Fails with ErrShapeMismatch if the batch width does not
// match the first layer.
func (n *Network) Forward(x *mat.Dense) (*mat.Dense, error) {
	_, cols := x.Dims()
	if cols != n.InSize() {
		return nil, fmt.Errorf("%w: batch has %d features, network expects %d",
			ErrShapeMismatch, cols, n.InSize())
	}
	curr := x
	for i := range n.layers {
		curr = n.layers[i].Forward(curr)
	}
	return curr, nil
}

// Backward performs a backward pass through all layers, leaving parameter
// gradients in each layer's gradient buffer.
func (n *Network) Backward(grad *mat.Dense) *mat.Dense {
	curr := grad
	for i := len(n.layers) - 1; i >= 0; i-- {
		curr = n.layers[i].Backward(curr)
	}
	return curr
}

// Loss computes the mean loss between a prediction batch and targets.
func (n *Network) Loss(yPred, yTrue *mat.Dense) float64 {
	return n.lossFn.Forward(yPred, yTrue)
}

// LossGradient computes the gradient of the mean loss w.r.t. the
// prediction batch.
func (n *Network) LossGradient(yPred, yTrue *mat.Dense) *mat.Dense {
	return n.lossFn.Backward(yPred, yTrue)
}

// Summary returns a table describing the network architecture.
func (n *Network) Summary() string {
	var b strings.Builder
	b.WriteString("Model: feed-forward\n")
	b.WriteString("_________________________________________________________________\n")
	fmt.Fprintf(&b, "%-25s %-20s %-10s\n", "Layer (type)", "Output Shape", "Param #")
	b.WriteString("=================================================================\n")

	totalParams := 0
	for i, l := range n.layers {
		lType := fmt.Sprintf("%T", l)
		if dot := strings.LastIndexByte(lType, '.'); dot >= 0 {
			lType = lType[dot+1:]
		}
		params := len(l.Params())
		totalParams += params
		fmt.Fprintf(&b, "%-25s %-20s %-10d\n",
			fmt.Sprintf("%s_%d", lType, i), fmt.Sprintf("(%d)", l.OutSize()), params)
	}
	b.WriteString("=================================================================\n")
	fmt.Fprintf(&b, "Total params: %d\n", totalParams)
	return b.String()
}
