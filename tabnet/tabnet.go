// Package tabnet is the public surface of the tabular-classification
// pipeline: label encoding, reproducible splitting, feature
// standardization, a feed-forward softmax classifier and its trainer.
package tabnet

import (
	"math/rand"

	"github.com/rmfonseca/tabnet/internal/activations"
	"github.com/rmfonseca/tabnet/internal/dataset"
	"github.com/rmfonseca/tabnet/internal/encoding"
	"github.com/rmfonseca/tabnet/internal/layer"
	"github.com/rmfonseca/tabnet/internal/loss"
	"github.com/rmfonseca/tabnet/internal/net"
	"github.com/rmfonseca/tabnet/internal/opt"
	"github.com/rmfonseca/tabnet/internal/scale"
	"github.com/rmfonseca/tabnet/internal/split"
)

// Re-export common types for easier access
type (
	Network     = net.Network
	Trainer     = net.Trainer
	TrainingRun = net.TrainingRun
	EpochStats  = net.EpochStats
	Callback    = net.Callback
	Layer       = layer.Layer
	Activation  = activations.Activation
	Optimizer   = opt.Optimizer
	Loss        = loss.Loss
	LabelSpace  = encoding.LabelSpace
	Stats       = scale.Stats
	Dataset     = dataset.Dataset
	Assignment  = split.Assignment
	Proportions = split.Proportions
)

// Error kinds surfaced by the pipeline stages.
var (
	ErrUnknownCategory    = encoding.ErrUnknownCategory
	ErrInvalidProportions = split.ErrInvalidProportions
	ErrDegenerateFeature  = scale.ErrDegenerateFeature
	ErrShapeMismatch      = net.ErrShapeMismatch
	ErrLengthMismatch     = net.ErrLengthMismatch
	ErrDivergedTraining   = net.ErrDivergedTraining
)

// Activations
var (
	ReLU     = activations.ReLU{}
	Identity = activations.Identity{}
	Softmax  = activations.Softmax{}
)

// Losses
var CrossEntropy = loss.CrossEntropy{}

// Dense creates a fully connected layer with weights drawn from rng.
func Dense(in, out int, act Activation, rng *rand.Rand) Layer {
	return layer.NewDense(in, out, act, rng)
}

// NewNetwork creates a network from an ordered layer stack, validating
// that consecutive layer widths chain.
func NewNetwork(layers []Layer, lossFn Loss) (*Network, error) {
	return net.New(layers, lossFn)
}

// NewTrainer creates a trainer with the given optimizer and callbacks.
func NewTrainer(optimizer Optimizer, callbacks ...Callback) *Trainer {
	return net.NewTrainer(optimizer, callbacks...)
}

// Optimizers
func Adam(lr float64) Optimizer { return opt.NewAdam(lr) }
func SGD(lr float64) Optimizer  { return opt.NewSGD(lr) }

// Callbacks
func Logger(interval int) net.Logger {
	return net.Logger{Interval: interval}
}

func EarlyStopping(patience int, minDelta float64) *net.EarlyStopping {
	return net.NewEarlyStopping(patience, minDelta)
}

func CSVHistory(filename string, append bool) *net.CSVHistory {
	return net.NewCSVHistory(filename, append)
}

// FitLabels registers the distinct labels in first-seen order.
func FitLabels(labels []string) *LabelSpace {
	return encoding.Fit(labels)
}

// Split deterministically assigns n record indices to train/test groups.
func Split(n int, seed int64, p Proportions) (Assignment, error) {
	return split.Split(n, seed, p)
}

// Predict runs a pure forward pass and returns probability rows.
var Predict = net.Predict

// Accuracy computes the exact-match ratio of two label sequences.
var Accuracy = net.Accuracy

// Dataset construction and loading
var (
	NewDataset = dataset.New
	LoadCSV    = dataset.LoadCSV
)

// Feature scaling
var (
	FitStats = scale.Fit
	Scale    = scale.Apply
)
