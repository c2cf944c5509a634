package net

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/rmfonseca/tabnet/internal/opt"
)

// EpochStats records the loss and training accuracy of one epoch.
type EpochStats struct {
	Epoch    int
	Loss     float64
	Accuracy float64
}

// TrainingRun is the per-epoch history of a Fit call, for external
// printing or plotting. It is not persisted by the trainer.
type TrainingRun struct {
	Epochs []EpochStats
}

// Len returns the number of completed epochs.
func (r *TrainingRun) Len() int { return len(r.Epochs) }

// Final returns the stats of the last completed epoch.
func (r *TrainingRun) Final() EpochStats {
	if len(r.Epochs) == 0 {
		return EpochStats{}
	}
	return r.Epochs[len(r.Epochs)-1]
}

// Trainer drives full passes over a training set and owns the parameter
// update semantics: each epoch is one forward pass over the whole batch,
// a loss computation, a backward pass and one optimizer step per layer.
type Trainer struct {
	optimizer opt.Optimizer
	callbacks []Callback
}

// NewTrainer creates a trainer with the given optimizer and callbacks.
func NewTrainer(optimizer opt.Optimizer, callbacks ...Callback) *Trainer {
	return &Trainer{optimizer: optimizer, callbacks: callbacks}
}

// Fit trains the network for up to epochs full-batch passes over x and
// one-hot targets y, recording loss and accuracy per epoch.
//
// A NaN or Inf epoch loss aborts the run with ErrDivergedTraining; the
// partial TrainingRun up to the failing epoch is returned alongside the
// error. Callbacks implementing Stopper can end the run early.
func (t *Trainer) Fit(n *Network, x, y *mat.Dense, epochs int) (*TrainingRun, error) {
	if epochs <= 0 {
		return nil, fmt.Errorf("net: epochs must be positive, got %d", epochs)
	}
	xr, _ := x.Dims()
	yr, yc := y.Dims()
	if xr != yr {
		return nil, fmt.Errorf("%w: %d feature rows but %d target rows",
			ErrLengthMismatch, xr, yr)
	}
	if yc != n.OutSize() {
		return nil, fmt.Errorf("%w: targets have %d columns but network outputs %d",
			ErrShapeMismatch, yc, n.OutSize())
	}

	run := &TrainingRun{}
	for _, cb := range t.callbacks {
		cb.OnTrainBegin(n)
	}
	defer func() {
		for _, cb := range t.callbacks {
			cb.OnTrainEnd(n)
		}
	}()

	for epoch := 0; epoch < epochs; epoch++ {
		yPred, err := n.Forward(x)
		if err != nil {
			return run, err
		}

		l := n.Loss(yPred, y)
		if math.IsNaN(l) || math.IsInf(l, 0) {
			return run, fmt.Errorf("%w: loss is %v at epoch %d", ErrDivergedTraining, l, epoch)
		}

		stats := EpochStats{
			Epoch:    epoch,
			Loss:     l,
			Accuracy: oneHotAccuracy(yPred, y),
		}
		run.Epochs = append(run.Epochs, stats)

		grad := n.LossGradient(yPred, y)
		n.Backward(grad)
		for _, l := range n.Layers() {
			t.optimizer.Step(l.Params(), l.Gradients())
		}

		stop := false
		for _, cb := range t.callbacks {
			cb.OnEpochEnd(epoch, stats, n)
			if s, ok := cb.(Stopper); ok && s.ShouldStop() {
				stop = true
			}
		}
		if stop {
			break
		}
	}
	return run, nil
}
