package fft

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/dsp/core"
	"github.com/cwbudde/algo-spectral/dsp/phasor"
	"github.com/cwbudde/algo-spectral/dsp/spectrum"
)

// Result is the half spectrum of an N-point transform.
//
// Magnitudes[i] is the magnitude of bin i and Frequencies[i] its frequency
// in the unit of the sampling rate. Both slices have NumberOfBins = N/2
// entries.
type Result struct {
	Magnitudes   []float64
	Frequencies  []float64
	NumberOfBins int
}

// Peak returns the dominant bin of r. It returns -1 when r has no bins.
func (r Result) Peak() (bin int, frequency, magnitude float64) {
	bin, magnitude = spectrum.PeakBin(r.Magnitudes)
	if bin < 0 {
		return -1, 0, 0
	}

	return bin, r.Frequencies[bin], magnitude
}

// Transform computes the half spectrum of real samples.
//
// len(samples) must be a power of two and samplingRate a finite number > 0;
// otherwise Transform returns the zero Result and an error wrapping
// ErrNotPowerOfTwo or ErrInvalidSamplingRate. A single sample is a valid
// input and yields a Result with zero bins.
func Transform(samples []float64, samplingRate float64, opts ...Option) (Result, error) {
	if err := validate(len(samples), samplingRate); err != nil {
		return Result{}, err
	}

	return transform(Reals(samples), samplingRate, applyOptions(opts))
}

// TransformValues is Transform for inputs that may hold complex elements.
// Only the first N/2 bins are returned, as for real input.
func TransformValues(values []Value, samplingRate float64, opts ...Option) (Result, error) {
	if err := validate(len(values), samplingRate); err != nil {
		return Result{}, err
	}

	return transform(values, samplingRate, applyOptions(opts))
}

// Phasors returns all N complex bins of the transform of values.
func Phasors(values []Value, opts ...Option) ([]phasor.Phasor, error) {
	if !core.IsPowerOfTwo(len(values)) {
		return nil, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, len(values))
	}

	return phasors(values, applyOptions(opts))
}

func validate(n int, samplingRate float64) error {
	if !core.IsPowerOfTwo(n) {
		return fmt.Errorf("%w: %d", ErrNotPowerOfTwo, n)
	}

	if !core.IsFinite(samplingRate) || samplingRate <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidSamplingRate, samplingRate)
	}

	return nil
}

func transform(values []Value, samplingRate float64, cfg config) (Result, error) {
	n := len(values)

	ph, err := phasors(values, cfg)
	if err != nil {
		return Result{}, err
	}

	bins := n / 2
	re, im := phasor.Parts(ph[:bins])
	mags := make([]float64, bins)
	if bins > 0 {
		spectrum.MagnitudeFromParts(mags, re, im)
	}

	return Result{
		Magnitudes:   mags,
		Frequencies:  spectrum.BinFrequencies(bins, n, samplingRate),
		NumberOfBins: bins,
	}, nil
}

func phasors(values []Value, cfg config) ([]phasor.Phasor, error) {
	switch cfg.engine {
	case EngineRecursive:
		return recursivePhasors(values, phasor.NewTable(len(values))), nil
	case EngineIterative:
		return iterativePhasors(values, phasor.NewTable(len(values))), nil
	case EnginePlan:
		return planPhasors(values)
	case EngineGonum:
		return gonumPhasors(values), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownEngine, int(cfg.engine))
	}
}
