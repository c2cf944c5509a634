package net

import (
	"fmt"
	"math"
)

// Callback defines the interface for training callbacks.
type Callback interface {
	OnTrainBegin(n *Network)
	OnEpochEnd(epoch int, stats EpochStats, n *Network)
	OnTrainEnd(n *Network)
}

// Stopper is implemented by callbacks that can end training early.
type Stopper interface {
	ShouldStop() bool
}

// BaseCallback provides default empty implementations for Callback.
type BaseCallback struct{}

func (BaseCallback) OnTrainBegin(n *Network)                       {}
func (BaseCallback) OnEpochEnd(epoch int, stats EpochStats, n *Network) {}
func (BaseCallback) OnTrainEnd(n *Network)                         {}

// Logger logs training progress to console.
type Logger struct {
	BaseCallback
	Interval int
}

func (c Logger) OnEpochEnd(epoch int, stats EpochStats, n *Network) {
	if c.Interval > 0 && epoch%c.Interval == 0 {
		fmt.Printf("Epoch %d: loss = %.6f, accuracy = %.4f\n", epoch, stats.Loss, stats.Accuracy)
	}
}

// EarlyStopping stops training when the loss has stopped improving.
type EarlyStopping struct {
	BaseCallback
	Patience int
	MinDelta float64

	bestLoss     float64
	numBadEpochs int
	stopped      bool
}

// NewEarlyStopping creates an EarlyStopping callback that halts training
// after patience epochs without the loss improving by at least minDelta.
func NewEarlyStopping(patience int, minDelta float64) *EarlyStopping {
	return &EarlyStopping{
		Patience: patience,
		MinDelta: minDelta,
		bestLoss: math.MaxFloat64,
	}
}

func (c *EarlyStopping) OnEpochEnd(epoch int, stats EpochStats, n *Network) {
	if stats.Loss < c.bestLoss-c.MinDelta {
		c.bestLoss = stats.Loss
		c.numBadEpochs = 0
	} else {
		c.numBadEpochs++
	}

	if c.numBadEpochs >= c.Patience {
		fmt.Printf("Early stopping at epoch %d: loss %.6f did not improve for %d epochs\n",
			epoch, stats.Loss, c.Patience)
		c.stopped = true
	}
}

// ShouldStop reports whether the patience has been exhausted.
func (c *EarlyStopping) ShouldStop() bool { return c.stopped }
