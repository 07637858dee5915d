package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/dsp/spectrum"
)

func ExampleMagnitude() {
	bins := []complex128{1 + 0i, 0 + 1i, -1 + 0i}
	mag := spectrum.Magnitude(bins)
	fmt.Printf("%.1f %.1f %.1f\n", mag[0], mag[1], mag[2])
	// Output:
	// 1.0 1.0 1.0
}

func ExamplePeakBin() {
	mags := []float64{0.1, 0.4, 3.2, 0.5}
	freqs := spectrum.BinFrequencies(len(mags), 8, 8000)
	i, m := spectrum.PeakBin(mags)
	fmt.Printf("bin=%d freq=%.0f mag=%.1f\n", i, freqs[i], m)
	// Output:
	// bin=2 freq=2000 mag=3.2
}
