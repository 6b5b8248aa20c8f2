package learner

import (
	"github.com/mrapp-ke/SyndromeLearner/induction"
	"github.com/mrapp-ke/SyndromeLearner/ports"
	"github.com/mrapp-ke/SyndromeLearner/refinement"
)

// Config wires every collaborator the driver needs to fit one model
// (spec.md §4.7, §6 external interfaces).
type Config struct {
	Features ports.FeatureMatrix
	Nominal  ports.NominalMask
	Labels   ports.LabelMatrix

	InstanceSampling ports.InstanceSubSampling
	FeatureSampling  ports.FeatureSubSampling
	RNG              ports.RNG
	Stopping         ports.StoppingCriteria
	ModelBuilder     ports.ModelBuilder
	Visitor          ports.PredictionVisitor

	Induction  induction.Config
	Refinement refinement.Config

	// DefaultHeadFactory, if non-nil, is called once to build the
	// default rule's head (spec.md §4.7 step 2: "append an empty-body
	// rule only if a default head refinement factory was provided"). A
	// nil factory skips the default rule entirely.
	DefaultHeadFactory func() ports.HeadView
}
