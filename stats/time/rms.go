// Package time provides time-domain amplitude measures.
package time

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-spectral/dsp/core"
)

// ErrEmptySignal is returned by measures that are undefined for zero samples.
var ErrEmptySignal = errors.New("stats: signal must contain at least one sample")

// RMS returns the root-mean-square sqrt(sum(x²)/n) of the signal.
// An empty signal is rejected with ErrEmptySignal.
func RMS(signal []float64) (float64, error) {
	if len(signal) == 0 {
		return 0, ErrEmptySignal
	}

	var sumSq float64
	for _, x := range signal {
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(signal))), nil
}

// RMSdB returns the RMS level in dB (20*log10). Silence yields -Inf.
func RMSdB(signal []float64) (float64, error) {
	r, err := RMS(signal)
	if err != nil {
		return 0, err
	}

	return core.LinearToDB(r), nil
}

// Peak returns the peak absolute amplitude of the signal.
func Peak(signal []float64) (float64, error) {
	if len(signal) == 0 {
		return 0, ErrEmptySignal
	}

	peak := math.Abs(signal[0])
	for _, x := range signal[1:] {
		if a := math.Abs(x); a > peak {
			peak = a
		}
	}

	return peak, nil
}

// CrestFactor returns peak / RMS. Returns 0 for an all-zero signal.
func CrestFactor(signal []float64) (float64, error) {
	r, err := RMS(signal)
	if err != nil {
		return 0, err
	}

	if r == 0 {
		return 0, nil
	}

	p, _ := Peak(signal)

	return p / r, nil
}
