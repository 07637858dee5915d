package fft

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-spectral/dsp/phasor"
)

func planPhasors(values []Value) ([]phasor.Phasor, error) {
	if len(values) == 1 {
		return []phasor.Phasor{values[0].Phasor()}, nil
	}

	plan, err := algofft.NewPlan64(len(values))
	if err != nil {
		return nil, fmt.Errorf("fft: plan for %d points: %w", len(values), err)
	}

	out := make([]complex128, len(values))
	if err := plan.Forward(out, toComplex(values)); err != nil {
		return nil, fmt.Errorf("fft: plan forward: %w", err)
	}

	return fromComplex(out), nil
}

func gonumPhasors(values []Value) []phasor.Phasor {
	if len(values) == 1 {
		return []phasor.Phasor{values[0].Phasor()}
	}

	out := fourier.NewCmplxFFT(len(values)).Coefficients(nil, toComplex(values))

	return fromComplex(out)
}

func toComplex(values []Value) []complex128 {
	out := make([]complex128, len(values))
	for i, v := range values {
		out[i] = v.Phasor().Complex()
	}
	return out
}

func fromComplex(in []complex128) []phasor.Phasor {
	out := make([]phasor.Phasor, len(in))
	for i, c := range in {
		out[i] = phasor.FromComplex(c)
	}
	return out
}
