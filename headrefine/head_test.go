package headrefine_test

import (
	"math"
	"testing"

	"github.com/mrapp-ke/SyndromeLearner/headrefine"
	"github.com/stretchr/testify/require"
)

func TestHead_OverallQualityScore_NilIsInfinite(t *testing.T) {
	t.Parallel()

	var h *headrefine.Head
	require.Equal(t, math.MaxFloat64, h.OverallQualityScore())
}

func TestHead_OverallQualityScore_ReturnsScore(t *testing.T) {
	t.Parallel()

	h := &headrefine.Head{Score: -0.75}
	require.Equal(t, -0.75, h.OverallQualityScore())
}
