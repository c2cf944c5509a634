package tabnet

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/rmfonseca/tabnet/internal/encoding"
	"github.com/rmfonseca/tabnet/internal/layer"
	"github.com/rmfonseca/tabnet/internal/loss"
	"github.com/rmfonseca/tabnet/internal/net"
	"github.com/rmfonseca/tabnet/internal/opt"
	"github.com/rmfonseca/tabnet/internal/scale"
	"github.com/rmfonseca/tabnet/internal/split"
)

// Config is the documented configuration surface of the pipeline. Zero
// values select the defaults noted on each field.
type Config struct {
	// HiddenUnits is the width of the hidden layer. Default: half the
	// feature count, minimum 1.
	HiddenUnits int

	// Epochs is the number of full passes over the training set.
	// Default: 500.
	Epochs int

	// LearningRate for the Adam optimizer. Default: 0.001.
	LearningRate float64

	// Seed drives both the split assignment and parameter
	// initialization; identical seeds reproduce identical runs.
	Seed int64

	// Proportions is the requested train/test weighting. Default:
	// {Train: 0.8, Test: 0.2}.
	Proportions Proportions

	// Callbacks observe training epochs (logging, early stopping,
	// CSV history).
	Callbacks []Callback
}

func (c Config) withDefaults(numFeatures int) Config {
	if c.HiddenUnits == 0 {
		c.HiddenUnits = numFeatures / 2
		if c.HiddenUnits < 1 {
			c.HiddenUnits = 1
		}
	}
	if c.Epochs == 0 {
		c.Epochs = 500
	}
	if c.LearningRate == 0 {
		c.LearningRate = 0.001
	}
	if c.Proportions == (Proportions{}) {
		c.Proportions = Proportions{Train: 0.8, Test: 0.2}
	}
	return c
}

// Result is the output of a pipeline run.
type Result struct {
	// Run is the per-epoch training history.
	Run *TrainingRun

	// Network is the fitted classifier.
	Network *Network

	// Space is the label space fitted on the full label column.
	Space *LabelSpace

	// Stats are the feature statistics fitted on the training subset
	// only; they are the only stats ever applied to held-out data.
	Stats *Stats

	// Probabilities holds one row-stochastic probability row per
	// held-out record.
	Probabilities *mat.Dense

	// Predicted are the decoded labels for the held-out records.
	Predicted []string

	// Truth are the ground-truth labels of the held-out records.
	Truth []string

	// Accuracy is the held-out exact-match ratio.
	Accuracy float64
}

// Pipeline composes the full supervised flow: encode labels, split
// records, standardize features with training-derived stats, train a
// feed-forward softmax classifier, and evaluate held-out accuracy.
type Pipeline struct {
	Config Config
}

// NewPipeline creates a pipeline with the given configuration.
func NewPipeline(cfg Config) *Pipeline {
	return &Pipeline{Config: cfg}
}

// Run executes the pipeline on a dataset. Each stage consumes the prior
// stage's output; all stages are deterministic for a fixed Config.
func (p *Pipeline) Run(ds *Dataset) (*Result, error) {
	cfg := p.Config.withDefaults(ds.NumFeatures())

	// Label space is fitted once on the full label column so that the
	// class ordering is shared by train and test subsets.
	space := encoding.Fit(ds.Labels)
	if space.Size() < 2 {
		return nil, fmt.Errorf("tabnet: need at least 2 classes, got %d", space.Size())
	}

	assignment, err := split.Split(ds.Len(), cfg.Seed, cfg.Proportions)
	if err != nil {
		return nil, err
	}
	if assignment.Count(split.Train) == 0 || assignment.Count(split.Test) == 0 {
		return nil, fmt.Errorf("tabnet: split produced an empty group (train=%d, test=%d)",
			assignment.Count(split.Train), assignment.Count(split.Test))
	}
	trainSet := ds.Subset(assignment.Indices(split.Train))
	testSet := ds.Subset(assignment.Indices(split.Test))

	// Scaling stats come from the training subset only.
	stats, err := scale.Fit(trainSet.Features)
	if err != nil {
		return nil, err
	}
	scaledTrain, err := scale.Apply(trainSet.Features, stats)
	if err != nil {
		return nil, err
	}
	scaledTest, err := scale.Apply(testSet.Features, stats)
	if err != nil {
		return nil, err
	}

	targets, err := space.Encode(trainSet.Labels)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	network, err := net.New([]layer.Layer{
		layer.NewDense(ds.NumFeatures(), cfg.HiddenUnits, ReLU, rng),
		layer.NewDense(cfg.HiddenUnits, space.Size(), Softmax, rng),
	}, loss.CrossEntropy{})
	if err != nil {
		return nil, err
	}

	trainer := net.NewTrainer(opt.NewAdam(cfg.LearningRate), cfg.Callbacks...)
	run, err := trainer.Fit(network, scaledTrain, targets, cfg.Epochs)
	if err != nil {
		return nil, err
	}

	probs, err := net.Predict(network, scaledTest)
	if err != nil {
		return nil, err
	}
	predicted, err := space.DecodeAll(probs)
	if err != nil {
		return nil, err
	}
	accuracy, err := net.Accuracy(predicted, testSet.Labels)
	if err != nil {
		return nil, err
	}

	return &Result{
		Run:           run,
		Network:       network,
		Space:         space,
		Stats:         stats,
		Probabilities: probs,
		Predicted:     predicted,
		Truth:         testSet.Labels,
		Accuracy:      accuracy,
	}, nil
}
