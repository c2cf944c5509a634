// Package encoding maps categorical labels to one-hot matrices and back.
package encoding

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrUnknownCategory reports a label not registered in the label space.
var ErrUnknownCategory = errors.New("unknown category")

// LabelSpace is the fixed, ordered set of distinct label values. The order
// is the first-seen registration order at Fit time and is reused for
// encoding, decoding and output-layer width; it is never re-derived from a
// data subset.
type LabelSpace struct {
	classes []string
	index   map[string]int
}

// Fit registers the distinct values of labels in first-seen order.
func Fit(labels []string) *LabelSpace {
	s := &LabelSpace{index: make(map[string]int)}
	for _, l := range labels {
		if _, ok := s.index[l]; !ok {
			s.index[l] = len(s.classes)
			s.classes = append(s.classes, l)
		}
	}
	return s
}

// Size returns the number of registered classes.
func (s *LabelSpace) Size() int { return len(s.classes) }

// Classes returns the registered class values in registration order.
func (s *LabelSpace) Classes() []string {
	out := make([]string, len(s.classes))
	copy(out, s.classes)
	return out
}

// Index returns the column index of a label, or ErrUnknownCategory.
func (s *LabelSpace) Index(label string) (int, error) {
	i, ok := s.index[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, label)
	}
	return i, nil
}

// Encode converts labels to a one-hot matrix with one row per label and
// one column per registered class. Every row has exactly one 1.
func (s *LabelSpace) Encode(labels []string) (*mat.Dense, error) {
	out := mat.NewDense(len(labels), s.Size(), nil)
	for i, l := range labels {
		j, err := s.Index(l)
		if err != nil {
			return nil, fmt.Errorf("encode row %d: %w", i, err)
		}
		out.Set(i, j, 1)
	}
	return out, nil
}

// Decode returns the label of the highest-valued column of a probability
// row. Ties break toward the lowest column index.
func (s *LabelSpace) Decode(probRow []float64) (string, error) {
	if len(probRow) != s.Size() {
		return "", fmt.Errorf("decode: row has %d columns, label space has %d classes",
			len(probRow), s.Size())
	}
	best := 0
	for j := 1; j < len(probRow); j++ {
		if probRow[j] > probRow[best] {
			best = j
		}
	}
	return s.classes[best], nil
}

// DecodeAll decodes every row of a probability matrix.
func (s *LabelSpace) DecodeAll(probs *mat.Dense) ([]string, error) {
	rows, _ := probs.Dims()
	out := make([]string, rows)
	for i := 0; i < rows; i++ {
		label, err := s.Decode(probs.RawRowView(i))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		out[i] = label
	}
	return out, nil
}
