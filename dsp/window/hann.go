// Package window applies the Hann taper to sample blocks ahead of an FFT.
package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic bool
}

func defaultConfig() config {
	return config{}
}

// WithPeriodic configures periodic form (FFT framing) instead of symmetric form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Hann returns Hann window coefficients w[i] = 1 - cos²(π·i/(size-1)).
//
// A window of size 1 is the single coefficient 1.
func Hann(size int, opts ...Option) ([]float64, error) {
	if err := validateLength(size); err != nil {
		return nil, err
	}

	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, size)
	if size == 1 {
		out[0] = 1
		return out, nil
	}

	for i := range out {
		c := math.Cos(math.Pi * samplePosition(i, size, cfg.periodic))
		out[i] = 1 - c*c
	}

	return out, nil
}

// ApplyHann returns a new slice holding samples tapered by a symmetric Hann
// window. The input is never modified.
//
// An empty input yields an empty slice; a single sample is returned
// unchanged.
func ApplyHann(samples []float64) []float64 {
	if len(samples) == 0 {
		return []float64{}
	}

	coeffs, _ := Hann(len(samples))
	out, _ := ApplyCoefficients(samples, coeffs)

	return out
}

// ApplyCoefficients multiplies samples with coefficients and returns a new slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

func samplePosition(n, size int, periodic bool) float64 {
	den := float64(size - 1)
	if periodic {
		den = float64(size)
	}

	return float64(n) / den
}
