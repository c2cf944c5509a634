// Package dataset provides the tabular dataset type consumed by the
// pipeline and a CSV loader for it.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// Dataset is an ordered collection of records with a shared numeric
// feature schema and one categorical label per record.
type Dataset struct {
	Features     *mat.Dense
	Labels       []string
	FeatureNames []string
}

// New builds a dataset from row-major feature data and labels.
func New(features [][]float64, labels []string, featureNames []string) (*Dataset, error) {
	if len(features) != len(labels) {
		return nil, fmt.Errorf("dataset: %d feature rows but %d labels", len(features), len(labels))
	}
	if len(features) == 0 {
		return nil, fmt.Errorf("dataset: no records")
	}

	cols := len(features[0])
	flat := make([]float64, 0, len(features)*cols)
	for i, row := range features {
		if len(row) != cols {
			return nil, fmt.Errorf("dataset: row %d has %d features, want %d", i, len(row), cols)
		}
		flat = append(flat, row...)
	}

	return &Dataset{
		Features:     mat.NewDense(len(features), cols, flat),
		Labels:       labels,
		FeatureNames: featureNames,
	}, nil
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	rows, _ := d.Features.Dims()
	return rows
}

// NumFeatures returns the feature count per record.
func (d *Dataset) NumFeatures() int {
	_, cols := d.Features.Dims()
	return cols
}

// Subset returns a new dataset containing the given record indices, in
// the given order. Feature data is copied.
func (d *Dataset) Subset(indices []int) *Dataset {
	cols := d.NumFeatures()
	features := mat.NewDense(len(indices), cols, nil)
	labels := make([]string, len(indices))
	for i, idx := range indices {
		features.SetRow(i, d.Features.RawRowView(idx))
		labels[i] = d.Labels[idx]
	}
	return &Dataset{
		Features:     features,
		Labels:       labels,
		FeatureNames: d.FeatureNames,
	}
}

// LoadCSV loads a dataset from a CSV file. labelCol is the index of the
// categorical label column; every other column is parsed as a numeric
// feature. hasHeader skips the first line and uses it for feature names.
func LoadCSV(filename string, labelCol int, hasHeader bool) (*Dataset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv file is empty")
	}

	startRow := 0
	var featureNames []string
	numCols := len(records[0])
	if labelCol < 0 || labelCol >= numCols {
		return nil, fmt.Errorf("label column %d out of range (%d columns)", labelCol, numCols)
	}
	if hasHeader {
		startRow = 1
		for j, name := range records[0] {
			if j != labelCol {
				featureNames = append(featureNames, name)
			}
		}
	}
	if len(records) <= startRow {
		return nil, fmt.Errorf("csv file has no data rows")
	}

	numSamples := len(records) - startRow
	features := make([][]float64, 0, numSamples)
	labels := make([]string, 0, numSamples)

	for i := startRow; i < len(records); i++ {
		record := records[i]
		if len(record) != numCols {
			return nil, fmt.Errorf("inconsistent number of columns at row %d", i)
		}

		row := make([]float64, 0, numCols-1)
		for j, valStr := range record {
			if j == labelCol {
				continue
			}
			val, err := strconv.ParseFloat(valStr, 64)
			if err != nil {
				return nil, fmt.Errorf("failed to parse value at row %d, col %d: %w", i, j, err)
			}
			row = append(row, val)
		}
		features = append(features, row)
		labels = append(labels, record[labelCol])
	}

	return New(features, labels, featureNames)
}
