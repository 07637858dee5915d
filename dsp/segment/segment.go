// Package segment splits long sample sequences into equal power-of-two
// length blocks suitable for FFT input.
package segment

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-spectral/dsp/core"
)

var (
	// ErrMinLengthNotPowerOfTwo is returned when the minimum block length
	// is not 2^k.
	ErrMinLengthNotPowerOfTwo = errors.New("segment: min length must be a power of two")
	// ErrTooFewSamples is returned when the input is shorter than the
	// minimum block length.
	ErrTooFewSamples = errors.New("segment: fewer samples than min length")
	// ErrInvalidMaxSubs is returned when the requested block count is < 1.
	ErrInvalidMaxSubs = errors.New("segment: max number of sub-samples must be >= 1")
)

// Layout describes how a sequence is divided into blocks.
type Layout struct {
	// Count is the number of blocks.
	Count int
	// Interval is the distance in samples between consecutive block starts.
	Interval int
	// Length is the block length, the largest power of two <= Interval.
	Length int
}

// Start returns the index of the first sample of block i.
func (l Layout) Start(i int) int {
	return i * l.Interval
}

// Plan computes the block layout for a sequence of n samples.
//
// Count is maxSubs when n >= minLength*maxSubs and floor(n/minLength)
// otherwise. Interval is floor(n/Count). Blocks start every Interval samples
// and may leave gaps when Length < Interval.
func Plan(n, minLength, maxSubs int) (Layout, error) {
	if !core.IsPowerOfTwo(minLength) {
		return Layout{}, fmt.Errorf("%w: %d", ErrMinLengthNotPowerOfTwo, minLength)
	}

	if n < minLength {
		return Layout{}, fmt.Errorf("%w: %d < %d", ErrTooFewSamples, n, minLength)
	}

	if maxSubs < 1 {
		return Layout{}, fmt.Errorf("%w: %d", ErrInvalidMaxSubs, maxSubs)
	}

	count := maxSubs
	if n/maxSubs < minLength {
		count = n / minLength
	}

	interval := n / count

	return Layout{
		Count:    count,
		Interval: interval,
		Length:   core.FloorPowerOfTwo(interval),
	}, nil
}

// Split divides samples into blocks according to Plan. Each block is a copy
// of a contiguous range of samples.
func Split(samples []float64, minLength, maxSubs int) ([][]float64, error) {
	layout, err := Plan(len(samples), minLength, maxSubs)
	if err != nil {
		return nil, err
	}

	subs := make([][]float64, layout.Count)
	for i := range subs {
		start := layout.Start(i)
		subs[i] = append([]float64(nil), samples[start:start+layout.Length]...)
	}

	return subs, nil
}

// PowerOfTwoSubSamples is Split with the failure folded into an empty
// result: when minLength is not a power of two, samples is shorter than
// minLength or maxSubs < 1, it returns an empty, non-nil slice.
func PowerOfTwoSubSamples(samples []float64, minLength, maxSubs int) [][]float64 {
	subs, err := Split(samples, minLength, maxSubs)
	if err != nil {
		return [][]float64{}
	}

	return subs
}
