package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

func TestFitKnownStats(t *testing.T) {
	x := mat.NewDense(3, 2, []float64{
		1, 10,
		2, 20,
		3, 30,
	})

	stats, err := Fit(x)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, stats.Mean(0), 1e-12)
	assert.InDelta(t, 20.0, stats.Mean(1), 1e-12)
	// Sample standard deviation (n-1 denominator).
	assert.InDelta(t, 1.0, stats.Std(0), 1e-12)
	assert.InDelta(t, 10.0, stats.Std(1), 1e-12)
}

func TestApplySelfYieldsStandardColumns(t *testing.T) {
	x := mat.NewDense(5, 2, []float64{
		1.2, -4,
		3.4, 8,
		-0.5, 2,
		2.2, 0,
		7.1, 5,
	})

	stats, err := Fit(x)
	require.NoError(t, err)
	scaled, err := Apply(x, stats)
	require.NoError(t, err)

	rows, cols := scaled.Dims()
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, scaled)
		assert.InDelta(t, 0.0, stat.Mean(col, nil), 1e-10, "column %d mean", j)
		assert.InDelta(t, 1.0, stat.StdDev(col, nil), 1e-10, "column %d std", j)
	}
}

func TestApplyUsesOnlyFittedStats(t *testing.T) {
	// Leakage guard: with the test matrix held fixed, changing the
	// training data must change the scaled test output, proving that
	// only training-derived stats are used.
	test := mat.NewDense(2, 1, []float64{1, 2})

	trainA := mat.NewDense(3, 1, []float64{0, 1, 2})
	trainB := mat.NewDense(3, 1, []float64{10, 20, 30})

	statsA, err := Fit(trainA)
	require.NoError(t, err)
	statsB, err := Fit(trainB)
	require.NoError(t, err)

	scaledA, err := Apply(test, statsA)
	require.NoError(t, err)
	scaledB, err := Apply(test, statsB)
	require.NoError(t, err)

	assert.NotEqual(t, scaledA.At(0, 0), scaledB.At(0, 0))

	// And the exact transform matches (x - mean) / std per fitted stats.
	assert.InDelta(t, (1-statsA.Mean(0))/statsA.Std(0), scaledA.At(0, 0), 1e-12)
	assert.InDelta(t, (1-statsB.Mean(0))/statsB.Std(0), scaledB.At(0, 0), 1e-12)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	x := mat.NewDense(2, 1, []float64{1, 3})
	stats, err := Fit(x)
	require.NoError(t, err)

	_, err = Apply(x, stats)
	require.NoError(t, err)

	assert.Equal(t, 1.0, x.At(0, 0))
	assert.Equal(t, 3.0, x.At(1, 0))
}

func TestFitDegenerateFeature(t *testing.T) {
	x := mat.NewDense(3, 2, []float64{
		1, 5,
		2, 5,
		3, 5,
	})

	_, err := Fit(x)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDegenerateFeature)
}

func TestApplyWidthMismatch(t *testing.T) {
	stats, err := Fit(mat.NewDense(2, 2, []float64{1, 2, 3, 4}))
	require.NoError(t, err)

	_, err = Apply(mat.NewDense(2, 3, nil), stats)
	assert.Error(t, err)
}

func TestFitEmptyMatrix(t *testing.T) {
	_, err := Fit(&mat.Dense{})
	assert.Error(t, err)
}
