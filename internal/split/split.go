// Package split partitions record indices into train and test groups.
package split

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// ErrInvalidProportions reports proportions that do not sum to 1.
var ErrInvalidProportions = errors.New("invalid split proportions")

// proportionTolerance bounds the accepted deviation of the proportion sum
// from 1.0.
const proportionTolerance = 1e-9

// Group identifies the subset a record is assigned to.
type Group int

const (
	Train Group = iota
	Test
)

// Proportions is the requested train/test weighting. The two values must
// sum to 1.0 within tolerance.
type Proportions struct {
	Train float64
	Test  float64
}

// Assignment maps each record index to its group. Indexing the slice with
// a record index yields that record's group.
type Assignment []Group

// Indices returns the record indices assigned to g, in ascending order.
func (a Assignment) Indices(g Group) []int {
	var out []int
	for i, got := range a {
		if got == g {
			out = append(out, i)
		}
	}
	return out
}

// Count returns the number of records assigned to g.
func (a Assignment) Count(g Group) int {
	n := 0
	for _, got := range a {
		if got == g {
			n++
		}
	}
	return n
}

// Split assigns each of n record indices to a group using an independent
// weighted draw per record from a generator seeded with seed. It is a pure
// function of its inputs: the same (n, seed, p) always yields the same
// assignment.
//
// Because draws are independent, observed group sizes approximate the
// requested proportions rather than matching them exactly; this is the
// intended behavior, not a stratified split.
func Split(n int, seed int64, p Proportions) (Assignment, error) {
	if math.Abs(p.Train+p.Test-1.0) > proportionTolerance {
		return nil, fmt.Errorf("%w: %v + %v does not sum to 1.0",
			ErrInvalidProportions, p.Train, p.Test)
	}

	rng := rand.New(rand.NewSource(seed))
	a := make(Assignment, n)
	for i := range a {
		if rng.Float64() < p.Train {
			a[i] = Train
		} else {
			a[i] = Test
		}
	}
	return a, nil
}
