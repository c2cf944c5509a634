// Package scale standardizes feature matrices with training-derived
// statistics.
package scale

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ErrDegenerateFeature reports a zero-variance column, which cannot be
// standardized.
var ErrDegenerateFeature = errors.New("degenerate feature")

// stdTolerance is the threshold below which a column's standard deviation
// is treated as zero.
const stdTolerance = 1e-12

// Stats holds per-column mean and standard deviation computed by Fit.
// Treat a Stats value as immutable: the same stats must scale every later
// matrix, train or test, so that held-out data never leaks into them.
type Stats struct {
	mean []float64
	std  []float64
}

// Cols returns the number of columns the stats were fitted on.
func (s *Stats) Cols() int { return len(s.mean) }

// Mean returns the fitted mean of column j.
func (s *Stats) Mean(j int) float64 { return s.mean[j] }

// Std returns the fitted standard deviation of column j.
func (s *Stats) Std(j int) float64 { return s.std[j] }

// Fit computes per-column mean and sample standard deviation (the n-1
// denominator, matching gonum's stat.StdDev; the same convention is used
// everywhere). It fails with ErrDegenerateFeature if any column has ~zero
// variance.
//
// Fit must only ever see training data; applying its result to held-out
// data is the whole point, recomputing stats from held-out data is leakage.
func Fit(x *mat.Dense) (*Stats, error) {
	rows, cols := x.Dims()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("scale: cannot fit empty matrix")
	}
	if rows < 2 {
		return nil, fmt.Errorf("scale: need at least 2 rows to estimate a standard deviation")
	}

	s := &Stats{
		mean: make([]float64, cols),
		std:  make([]float64, cols),
	}
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, x)
		s.mean[j] = stat.Mean(col, nil)
		s.std[j] = stat.StdDev(col, nil)
		if s.std[j] < stdTolerance {
			return nil, fmt.Errorf("%w: column %d has zero variance", ErrDegenerateFeature, j)
		}
	}
	return s, nil
}

// Apply returns a new matrix with every column standardized as
// (x - mean) / std using the given stats. The input is not modified.
func Apply(x *mat.Dense, stats *Stats) (*mat.Dense, error) {
	rows, cols := x.Dims()
	if cols != stats.Cols() {
		return nil, fmt.Errorf("scale: matrix has %d columns, stats were fitted on %d",
			cols, stats.Cols())
	}

	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		src := x.RawRowView(i)
		dst := out.RawRowView(i)
		for j := range src {
			dst[j] = (src[j] - stats.mean[j]) / stats.std[j]
		}
	}
	return out, nil
}
