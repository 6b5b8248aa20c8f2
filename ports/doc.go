// Package ports declares the external collaborator interfaces consumed by
// the SyndromeLearner core. The core (labelstats, quality, headrefine,
// thresholds, refinement, induction, rulemodel, learner) never constructs
// these collaborators itself; it only calls through the interfaces below.
//
// Concrete implementations of the ingestion-facing ports (LabelMatrix,
// FeatureMatrix) belong to a host application, not this module — command
// line parsing, file ingestion, and feature discretization are explicitly
// out of scope (see spec.md §1). The sampling-facing and stopping-facing
// ports (RNG, FeatureSubSampling, InstanceSubSampling, StoppingCriteria,
// ModelBuilder) do ship default implementations in sibling packages
// (sampling, stopping, rulemodel) so learner.Driver is runnable
// end-to-end, but callers remain free to substitute their own.
package ports
