// SyndromeLearner induces an ordered list of IF-THEN rules that
// describes a time-indexed target sequence from per-example tabular
// features (spec.md §2 System Overview).
//
// The package layout mirrors the component table in SPEC_FULL.md:
//
//	ports/      — external-interface contracts (collaborators the core calls)
//	vecset/     — weight vectors (C1)
//	featvec/    — sorted per-feature value sequences (C2)
//	coverage/   — the per-rule coverage mask (C3)
//	labelstats/ — label statistics and per-label subsets (C4, C4a)
//	quality/    — the Pearson-based quality score (C5)
//	headrefine/ — best-head-so-far tracking (C6)
//	thresholds/ — the base/filtered feature-vector cache (C7)
//	refinement/ — conditions and the four-phase exact split search (C8)
//	induction/  — the top-down greedy rule-growth loop (C9)
//	rulemodel/  — the serializable rule list and its builder (C11)
//	sampling/   — default RNG and sub-sampling collaborators
//	stopping/   — default stopping criteria
//	learner/    — the sequential model-induction driver (C10)
package syndromelearner
