package learner

import (
	"math"

	"github.com/mrapp-ke/SyndromeLearner/induction"
	"github.com/mrapp-ke/SyndromeLearner/labelstats"
	"github.com/mrapp-ke/SyndromeLearner/ports"
	"github.com/mrapp-ke/SyndromeLearner/thresholds"
	"github.com/mrapp-ke/SyndromeLearner/vecset"
)

// Driver runs the sequential model-induction loop (spec.md §4.7,
// component C10) over a fixed Config.
type Driver struct {
	cfg Config
}

// New returns a Driver for cfg.
func New(cfg Config) *Driver {
	return &Driver{cfg: cfg}
}

// Fit runs the induction loop to completion and returns the built model
// (spec.md §4.7 steps 1-5).
func (d *Driver) Fit() (interface{}, error) {
	cfg := d.cfg

	stats, err := labelstats.New(cfg.Labels)
	if err != nil {
		return nil, err
	}

	if cfg.DefaultHeadFactory != nil {
		head := cfg.DefaultHeadFactory()
		cfg.ModelBuilder.AddRule(nil, head)
	}

	subsystem := thresholds.New(cfg.Features, cfg.Nominal, stats)
	top, err := induction.New(subsystem, cfg.FeatureSampling, cfg.Induction, cfg.Refinement)
	if err != nil {
		return nil, err
	}

	partition := ports.Partition{TrainingIndices: trainingIndices(stats.NumExamples())}

	currentQuality := math.MaxFloat64
	numRules := 0
	numUsedRules := 0
	storedStop := false

	for {
		decision := cfg.Stopping.Test(partition, stats, numRules)
		if decision.Action == ports.ForceStop {
			break
		}
		if decision.Action == ports.StoreStop && !storedStop {
			storedStop = true
			numUsedRules = decision.NumRules
		}

		weightValues := cfg.InstanceSampling.SubSample(cfg.RNG, stats.NumExamples())
		weightVector, err := vecset.NewWeightVector(weightValues)
		if err != nil {
			return nil, err
		}

		committed, newQuality, err := top.InduceRule(weightVector, cfg.RNG, currentQuality, cfg.ModelBuilder)
		if err != nil {
			return nil, err
		}
		if !committed {
			break
		}

		currentQuality = newQuality
		numRules++

		if cfg.Visitor != nil {
			cfg.Visitor.VisitPrediction(stats.Prediction())
		}
	}

	if cfg.Visitor != nil {
		cfg.Visitor.VisitGroundTruth(stats.GroundTruth())
	}

	if !storedStop {
		numUsedRules = 0
	}

	return cfg.ModelBuilder.Build(numUsedRules)
}

func trainingIndices(n int) []uint32 {
	indices := make([]uint32, n)
	for i := range indices {
		indices[i] = uint32(i)
	}

	return indices
}
