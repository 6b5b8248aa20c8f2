package quality

import "math"

// Evaluate computes the Pearson correlation r between the per-time-slot
// prediction vector and the ground-truth count vector, and returns
// overallQualityScore = -|r| (spec.md §4.2). Lower is better: a perfect
// positive or negative linear relationship scores -1; no linear
// relationship scores toward 0.
//
// If either sequence has zero variance, r is undefined; Evaluate returns
// ok == false and the candidate head must be rejected (spec.md §4.2,
// §7 "Quality undefined").
//
// prediction and groundTruth must have the same length; Evaluate panics
// otherwise, mirroring the teacher's "contract violations fail fast"
// posture for programmer errors rather than data errors.
func Evaluate(prediction, groundTruth []uint32) (score float64, ok bool) {
	if len(prediction) != len(groundTruth) {
		panic("quality: prediction and groundTruth length mismatch")
	}

	n := float64(len(prediction))
	if n == 0 {
		return 0, false
	}

	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for i := range prediction {
		x := float64(prediction[i])
		y := float64(groundTruth[i])
		sumX += x
		sumY += y
		sumXY += x * y
		sumX2 += x * x
		sumY2 += y * y
	}

	numerator := n*sumXY - sumX*sumY
	varX := n*sumX2 - sumX*sumX
	varY := n*sumY2 - sumY*sumY
	if varX <= 0 || varY <= 0 {
		return 0, false
	}

	denominator := math.Sqrt(varX) * math.Sqrt(varY)
	r := numerator / denominator
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, false
	}

	return -math.Abs(r), true
}
