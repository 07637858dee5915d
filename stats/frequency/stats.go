// Package frequency summarises a half spectrum produced by package fft.
package frequency

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectral/dsp/core"
	"github.com/cwbudde/algo-spectral/dsp/fft"
)

var (
	// ErrNoBins is returned for a Result without bins.
	ErrNoBins = errors.New("frequency: spectrum has no bins")
	// ErrInvalidFraction is returned when a rolloff fraction is outside (0, 1].
	ErrInvalidFraction = errors.New("frequency: rolloff fraction must be in (0, 1]")
)

// Stats holds summary statistics of a magnitude spectrum.
type Stats struct {
	PeakFrequency float64
	PeakMagnitude float64
	PeakdB        float64
	Centroid      float64 // Hz, magnitude-weighted mean frequency
	Flatness      float64 // 0..1, geometric / arithmetic mean (DC excluded)
	Rolloff85     float64 // Hz below which 85% of energy lies
}

// Calculate computes all statistics of r.
func Calculate(r fft.Result) (Stats, error) {
	if r.NumberOfBins == 0 {
		return Stats{}, ErrNoBins
	}

	_, peakFreq, peakMag := r.Peak()
	roll, _ := Rolloff(r, 0.85)

	return Stats{
		PeakFrequency: peakFreq,
		PeakMagnitude: peakMag,
		PeakdB:        core.LinearToDB(peakMag),
		Centroid:      centroid(r),
		Flatness:      flatness(r.Magnitudes),
		Rolloff85:     roll,
	}, nil
}

// Centroid returns the spectral centroid
//
//	sum(f_i * |X_i|) / sum(|X_i|)
//
// or 0 for an all-zero spectrum.
func Centroid(r fft.Result) (float64, error) {
	if r.NumberOfBins == 0 {
		return 0, ErrNoBins
	}

	return centroid(r), nil
}

func centroid(r fft.Result) float64 {
	sum, weighted := 0.0, 0.0
	for i, m := range r.Magnitudes {
		sum += m
		weighted += r.Frequencies[i] * m
	}

	if sum == 0 {
		return 0
	}

	return weighted / sum
}

// Flatness returns the spectral flatness (Wiener entropy) in the range 0..1.
// The DC bin is excluded; a spectrum with fewer than two bins or any zero bin
// has flatness 0.
func Flatness(r fft.Result) (float64, error) {
	if r.NumberOfBins == 0 {
		return 0, ErrNoBins
	}

	return flatness(r.Magnitudes), nil
}

func flatness(mags []float64) float64 {
	if len(mags) < 2 {
		return 0
	}

	sumLin, sumLog := 0.0, 0.0
	for _, v := range mags[1:] {
		if v <= 0 {
			return 0
		}

		sumLin += v
		sumLog += math.Log(v)
	}

	n := float64(len(mags) - 1)

	return math.Exp(sumLog/n) / (sumLin / n)
}

// Rolloff returns the frequency of the first bin at which the cumulative
// energy (sum of squared magnitudes) reaches fraction of the total.
// An all-zero spectrum has rolloff 0.
func Rolloff(r fft.Result, fraction float64) (float64, error) {
	if r.NumberOfBins == 0 {
		return 0, ErrNoBins
	}

	if !(fraction > 0 && fraction <= 1) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidFraction, fraction)
	}

	total := 0.0
	for _, m := range r.Magnitudes {
		total += m * m
	}

	if total == 0 {
		return 0, nil
	}

	threshold := fraction * total
	cum := 0.0
	for i, m := range r.Magnitudes {
		cum += m * m
		if cum >= threshold {
			return r.Frequencies[i], nil
		}
	}

	return r.Frequencies[len(r.Frequencies)-1], nil
}
