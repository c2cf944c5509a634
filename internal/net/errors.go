package net

import "errors"

var (
	// ErrShapeMismatch reports incompatible layer or batch widths,
	// detected at construction or at the start of a forward pass.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrLengthMismatch reports prediction and ground-truth sequences of
	// different lengths.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrDivergedTraining reports a NaN or Inf loss during training.
	// Divergence is fatal to the run; the caller must restart with
	// different hyperparameters.
	ErrDivergedTraining = errors.New("training diverged")
)
