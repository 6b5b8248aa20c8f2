package refinement

import (
	"github.com/mrapp-ke/SyndromeLearner/featvec"
	"github.com/mrapp-ke/SyndromeLearner/headrefine"
	"github.com/mrapp-ke/SyndromeLearner/labelstats"
	"github.com/mrapp-ke/SyndromeLearner/thresholds"
	"github.com/mrapp-ke/SyndromeLearner/vecset"
)

// RuleRefinement sweeps one feature's currently-filtered vector to find
// its best split (spec.md §4.4, component C8). One instance is created
// per candidate feature, per top-down iteration (spec.md §4.6: "create
// IRuleRefinement(j) from thresholdsSubset").
type RuleRefinement struct {
	featureIndex int
	nominal      bool
	subset       *thresholds.Subset
	cfg          Config

	best *Refinement
}

// New returns a RuleRefinement scoped to feature featureIndex.
func New(featureIndex int, subset *thresholds.Subset, cfg Config) *RuleRefinement {
	return &RuleRefinement{
		featureIndex: featureIndex,
		nominal:      subset.IsNominal(featureIndex),
		subset:       subset,
		cfg:          cfg,
	}
}

// PollRefinement yields ownership of the last refinement found, clearing
// it from this object (spec.md §4.6 "ruleRefinement[j].pollRefinement()",
// §9 "Ownership of heads and refinements").
func (rr *RuleRefinement) PollRefinement() *Refinement {
	r := rr.best
	rr.best = nil

	return r
}

// sweepCtx carries the state shared by every phase of one FindRefinement
// call: the feature's pairs and missing set, the sampled weights, and the
// running "best head/refinement found so far in this sweep", seeded from
// the caller's currentBest so only strict global improvements survive.
type sweepCtx struct {
	rr      *RuleRefinement
	pairs   []featvec.Pair
	missing []uint32
	weights *vecset.WeightVector
	total   int

	minCoverage int
	hr          *headrefine.HeadRefinement
	localBest   *headrefine.Head
	bestRef     *Refinement
}

// FindRefinement sweeps feature featureIndex's currently-filtered vector
// across all four phases (spec.md §4.4), retaining the best split found
// that both meets minCoverage and strictly beats currentBest.
func (rr *RuleRefinement) FindRefinement(currentBest *headrefine.Head, minCoverage int) {
	fv := rr.subset.FilteredVector(rr.featureIndex)
	pairs := fv.Pairs()

	ctx := &sweepCtx{
		rr:          rr,
		pairs:       pairs,
		missing:     fv.Missing(),
		weights:     rr.subset.Weights(),
		total:       len(pairs),
		minCoverage: minCoverage,
		hr:          headrefine.New(),
		localBest:   currentBest,
	}

	boundary := 0
	for boundary < ctx.total && pairs[boundary].Value < 0 {
		boundary++
	}

	ctx.phaseA(boundary)
	ctx.phaseB(boundary)
	ctx.phaseC()
	ctx.phaseD(boundary)

	rr.best = ctx.bestRef
}

func (c *sweepCtx) freshSubset() *labelstats.Subset {
	s := c.rr.subset.Statistics().CreateSubset(labelstats.NewFullLabelIndices(1))
	for _, i := range c.missing {
		s.AddToMissing(i, c.weights.Get(i))
	}

	return s
}

// tryHead scores subset ss (uncovered/accumulated variant) against the
// running local best; it returns the new head and records it as the
// local best iff this call strictly improved on it, nil otherwise
// (spec.md §4.3 findHead/pollHead).
func (c *sweepCtx) tryHead(ss *labelstats.Subset, uncovered, accumulated bool) *headrefine.Head {
	h := c.hr.FindHead(c.localBest, ss, uncovered, accumulated)
	if h == c.localBest {
		return nil
	}
	c.localBest = h

	return h
}

func (c *sweepCtx) record(cond Condition, h *headrefine.Head) {
	c.bestRef = &Refinement{Condition: cond, Head: h}
}

// gateOK reports whether a condition using comp may be emitted: LEQ is
// gated by UseLEQ, NEQ by UseNEQ, and GR and EQ are never gated.
func (c *sweepCtx) gateOK(comp Comparator) bool {
	switch comp {
	case LEQ:
		return c.rr.cfg.UseLEQ
	case NEQ:
		return c.rr.cfg.UseNEQ
	default:
		return true
	}
}

// evaluateGroup scores the covered side (comp, matching [start, end)) and
// the complement side (complement, matching everything else) of one
// distinct-value boundary, recording whichever strictly improves on the
// running local best (spec.md §4.4 phases A/B/D, each "evaluate ... on
// the covered subset" / "evaluate ... using the uncovered complement").
func (c *sweepCtx) evaluateGroup(ss *labelstats.Subset, comp, complement Comparator, threshold float32, numCovered, start, end, previous int, accumulated bool) {
	if numCovered >= c.minCoverage && c.gateOK(comp) {
		if h := c.tryHead(ss, false, accumulated); h != nil {
			c.record(Condition{
				featureIndex: c.rr.featureIndex,
				comparator:   comp,
				threshold:    threshold,
				numCovered:   uint32(numCovered),
				covered:      true,
				start:        start,
				end:          end,
				previous:     previous,
				total:        c.total,
				adjustable:   comp == LEQ || comp == GR,
			}, h)
		}
	}

	complementCovered := c.total - numCovered
	if complementCovered >= c.minCoverage && c.gateOK(complement) {
		if h := c.tryHead(ss, true, accumulated); h != nil {
			c.record(Condition{
				featureIndex: c.rr.featureIndex,
				comparator:   complement,
				threshold:    threshold,
				numCovered:   uint32(complementCovered),
				covered:      false,
				start:        start,
				end:          end,
				previous:     previous,
				total:        c.total,
				adjustable:   complement == LEQ || complement == GR,
			}, h)
		}
	}
}

// phaseA ascends over the negative-value prefix [0, boundary) (spec.md
// §4.4 "Phase A — negative-value prefix").
func (c *sweepCtx) phaseA(boundary int) {
	if boundary == 0 {
		return
	}
	pairs, weights := c.pairs, c.weights

	pos := 0
	for pos < boundary && weights.Get(pairs[pos].Example) == 0 {
		pos++
	}
	if pos >= boundary {
		return
	}

	ss := c.freshSubset()
	ss.AddToSubset(pairs[pos].Example, weights.Get(pairs[pos].Example))
	covered := 1
	firstR := pos
	prev := pos
	sameValue := true
	accumulated := false

	for i := pos + 1; i < boundary; i++ {
		p := pairs[i]
		w := weights.Get(p.Example)
		if w == 0 {
			continue
		}
		if p.Value != pairs[prev].Value {
			sameValue = false
			threshold := arithmeticMean(pairs[prev].Value, p.Value)
			covComp, compComp := LEQ, GR
			if c.rr.nominal {
				threshold = pairs[prev].Value
				covComp, compComp = EQ, NEQ
			}
			c.evaluateGroup(ss, covComp, compComp, threshold, covered, firstR, i, prev, accumulated)

			if c.rr.nominal {
				ss.ResetSubset()
				accumulated = true
				firstR = i
			}
		}
		ss.AddToSubset(p.Example, w)
		covered++
		prev = i
	}

	if c.rr.nominal && !sameValue {
		c.evaluateGroup(ss, EQ, NEQ, pairs[boundary-1].Value, covered, firstR, boundary, prev, accumulated)
	}
}

// phaseB descends over the non-negative suffix [boundary, total) (spec.md
// §4.4 "Phase B — non-negative suffix, descending"). The matched/covered
// side here is the growing suffix of large values, so numerical
// comparators invert relative to phase A: GR covers, LEQ is the
// complement.
func (c *sweepCtx) phaseB(boundary int) {
	total := c.total
	if boundary >= total {
		return
	}
	pairs, weights := c.pairs, c.weights

	pos := total - 1
	for pos >= boundary && weights.Get(pairs[pos].Example) == 0 {
		pos--
	}
	if pos < boundary {
		return
	}

	ss := c.freshSubset()
	ss.AddToSubset(pairs[pos].Example, weights.Get(pairs[pos].Example))
	covered := 1
	lastR := pos
	prev := pos
	sameValue := true
	accumulated := false

	for i := pos - 1; i >= boundary; i-- {
		p := pairs[i]
		w := weights.Get(p.Example)
		if w == 0 {
			continue
		}
		if p.Value != pairs[prev].Value {
			sameValue = false
			threshold := arithmeticMean(pairs[prev].Value, p.Value)
			covComp, compComp := GR, LEQ
			if c.rr.nominal {
				threshold = pairs[prev].Value
				covComp, compComp = EQ, NEQ
			}
			c.evaluateGroup(ss, covComp, compComp, threshold, covered, i+1, lastR+1, prev, accumulated)

			if c.rr.nominal {
				ss.ResetSubset()
				accumulated = true
				lastR = i
			}
		}
		ss.AddToSubset(p.Example, w)
		covered++
		prev = i
	}

	if c.rr.nominal && !sameValue {
		c.evaluateGroup(ss, EQ, NEQ, pairs[boundary].Value, covered, boundary, lastR+1, prev, accumulated)
	}
}

// phaseC bridges the implicit sparse-zero bucket (spec.md §4.4 "Phase C —
// sparse-zero bridge"): when the feature's nonzero vector is shorter than
// the sampled weight vector, some examples carry an implicit value of 0.
// Only the covered side (f != 0 / f > z) is modeled here: it matches
// exactly the feature's existing pairs, a committable position range.
// Its complement (f == 0) matches examples absent from pairs entirely,
// which have no position to express as a thresholds.PositionRange under
// this package's position-indexed cache model, so it is not evaluated as
// a committable candidate (see DESIGN.md).
func (c *sweepCtx) phaseC() {
	if c.total == 0 || c.total >= c.weights.Len() {
		return
	}

	ss := c.freshSubset()
	for _, p := range c.pairs {
		ss.AddToSubset(p.Example, c.weights.Get(p.Example))
	}

	threshold := c.pairs[0].Value / 2
	comp := GR
	if c.rr.nominal {
		comp = NEQ
		threshold = 0
	}

	if c.total < c.minCoverage || !c.gateOK(comp) {
		return
	}
	if h := c.tryHead(ss, false, false); h != nil {
		c.record(Condition{
			featureIndex: c.rr.featureIndex,
			comparator:   comp,
			threshold:    threshold,
			numCovered:   uint32(c.total),
			covered:      true,
			start:        0,
			end:          c.total,
			previous:     0,
			total:        c.total,
		}, h)
	}
}

// phaseD bridges the gap between the negative prefix and the non-negative
// suffix for numerical features (spec.md §4.4 "Phase D — numerical-only
// bridge"). Skipped for nominal features, and when there are no negatives
// or no non-negatives to bridge.
func (c *sweepCtx) phaseD(boundary int) {
	if c.rr.nominal || boundary == 0 || boundary >= c.total {
		return
	}
	pairs, weights := c.pairs, c.weights

	lastNegPos := -1
	for i := boundary - 1; i >= 0; i-- {
		if weights.Get(pairs[i].Example) != 0 {
			lastNegPos = i
			break
		}
	}
	firstNonNegPos := -1
	for i := boundary; i < c.total; i++ {
		if weights.Get(pairs[i].Example) != 0 {
			firstNonNegPos = i
			break
		}
	}
	if lastNegPos < 0 || firstNonNegPos < 0 {
		return
	}

	threshold := arithmeticMean(pairs[lastNegPos].Value, pairs[firstNonNegPos].Value)
	if c.total < c.weights.Len() && pairs[lastNegPos].Value < 0 && pairs[firstNonNegPos].Value > 0 {
		threshold = pairs[lastNegPos].Value / 2
	}

	ss := c.freshSubset()
	for i := 0; i <= lastNegPos; i++ {
		ss.AddToSubset(pairs[i].Example, weights.Get(pairs[i].Example))
	}

	c.evaluateGroup(ss, LEQ, GR, threshold, lastNegPos+1, 0, firstNonNegPos, lastNegPos, false)
}

func arithmeticMean(a, b float32) float32 {
	return (a + b) / 2
}
