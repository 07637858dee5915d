package testutil

import "testing"

func TestRequireHelpersAcceptMatches(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2.0000001}, []float64{1, 2}, 1e-6)
	RequireComplexNearlyEqual(t, []complex128{10 + 1e-9i}, []complex128{10}, 1e-9)
	RequireFinite(t, []float64{0, -1, 1e300})
}
