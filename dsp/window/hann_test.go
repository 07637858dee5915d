package window

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-spectral/internal/testutil"
)

func TestHannGolden(t *testing.T) {
	tests := []struct {
		name string
		size int
		opts []Option
		want []float64
	}{
		{name: "symmetric-4", size: 4, want: []float64{0, 0.75, 0.75, 0}},
		{name: "symmetric-5", size: 5, want: []float64{0, 0.5, 1, 0.5, 0}},
		{name: "periodic-4", size: 4, opts: []Option{WithPeriodic()}, want: []float64{0, 0.5, 1, 0.5}},
		{name: "single", size: 1, want: []float64{1}},
		{name: "two", size: 2, want: []float64{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Hann(tt.size, tt.opts...)
			if err != nil {
				t.Fatalf("Hann(%d): %v", tt.size, err)
			}
			testutil.RequireSliceNearlyEqual(t, got, tt.want, 1e-12)
		})
	}
}

func TestHannInvalidSize(t *testing.T) {
	for _, size := range []int{0, -3} {
		w, err := Hann(size)
		if err == nil {
			t.Fatalf("Hann(%d) expected error", size)
		}
		if w != nil {
			t.Fatalf("Hann(%d) = %v, want nil", size, w)
		}
	}
}

func TestHannSymmetric(t *testing.T) {
	w, err := Hann(63)
	if err != nil {
		t.Fatalf("Hann: %v", err)
	}

	for i := range w {
		if !almostEqual(w[i], w[len(w)-1-i], 1e-12) {
			t.Fatalf("w[%d]=%v != w[%d]=%v", i, w[i], len(w)-1-i, w[len(w)-1-i])
		}
	}
}

func TestApplyHannMatchesFormula(t *testing.T) {
	samples := testutil.DeterministicNoise(7, 1, 37)
	out := ApplyHann(samples)

	if len(out) != len(samples) {
		t.Fatalf("len=%d, want %d", len(out), len(samples))
	}

	n := float64(len(samples) - 1)
	for i, x := range samples {
		c := math.Cos(math.Pi * float64(i) / n)
		want := x * (1 - c*c)
		if !almostEqual(out[i], want, 1e-12) {
			t.Fatalf("out[%d]=%v, want %v", i, out[i], want)
		}
	}
}

func TestApplyHannEndpointsZero(t *testing.T) {
	for _, n := range []int{2, 3, 16, 1000} {
		out := ApplyHann(testutil.DC(3.5, n))
		if out[0] != 0 || out[n-1] != 0 {
			t.Fatalf("n=%d: endpoints %v, %v; want 0, 0", n, out[0], out[n-1])
		}
	}
}

func TestApplyHannDoesNotMutate(t *testing.T) {
	samples := []float64{1, 2, 3, 4, 5, 6}
	orig := append([]float64(nil), samples...)

	out := ApplyHann(samples)
	out[2] = 42

	testutil.RequireSliceNearlyEqual(t, samples, orig, 0)
}

func TestApplyHannDegenerate(t *testing.T) {
	empty := ApplyHann(nil)
	if empty == nil || len(empty) != 0 {
		t.Fatalf("ApplyHann(nil) = %#v, want empty non-nil slice", empty)
	}

	single := []float64{-2.5}
	out := ApplyHann(single)
	if len(out) != 1 || out[0] != -2.5 {
		t.Fatalf("ApplyHann(%v) = %v, want unchanged", single, out)
	}

	out[0] = 9
	if single[0] != -2.5 {
		t.Fatal("ApplyHann must return a copy for a single sample")
	}
}

func TestApplyCoefficients(t *testing.T) {
	out, err := ApplyCoefficients([]float64{1, 2, 3}, []float64{0.5, 0.5, 2})
	if err != nil {
		t.Fatalf("ApplyCoefficients: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out, []float64{0.5, 1, 6}, 0)

	if _, err := ApplyCoefficients([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestAnalyzeHann(t *testing.T) {
	w, _ := Hann(2048)

	a, err := Analyze(w)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if !almostEqual(a.CoherentGain, 0.5, 1e-3) {
		t.Errorf("CoherentGain=%v, want ~0.5", a.CoherentGain)
	}
	if !almostEqual(a.ENBW, 1.5, 0.01) {
		t.Errorf("ENBW=%v, want ~1.5", a.ENBW)
	}
	if !almostEqual(a.Bandwidth3dB, 1.44, 0.02) {
		t.Errorf("Bandwidth3dB=%v, want ~1.44", a.Bandwidth3dB)
	}
	if !almostEqual(a.ScallopLossdB, -1.42, 0.02) {
		t.Errorf("ScallopLossdB=%v, want ~-1.42", a.ScallopLossdB)
	}
}

func TestAnalyzeErrors(t *testing.T) {
	if _, err := Analyze(nil); err == nil {
		t.Fatal("expected error for empty coefficients")
	}
	if _, err := Analyze([]float64{0, 0, 0}); err == nil {
		t.Fatal("expected error for zero coherent gain")
	}
	if _, err := EquivalentNoiseBandwidth(nil); err == nil {
		t.Fatal("expected error for empty coefficients")
	}
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
