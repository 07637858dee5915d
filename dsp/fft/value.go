package fft

import "github.com/cwbudde/algo-spectral/dsp/phasor"

// Kind tags the representation held by a Value.
type Kind uint8

const (
	// KindReal is a bare real sample with implicit zero imaginary part.
	KindReal Kind = iota
	// KindComplex is a (real, imaginary) pair.
	KindComplex
)

// Value is a single transform input element, either a real sample or a
// complex pair.
type Value struct {
	re   float64
	im   float64
	kind Kind
}

// Real returns a real-valued input element.
func Real(x float64) Value {
	return Value{re: x, kind: KindReal}
}

// Complex returns a complex-valued input element.
func Complex(re, im float64) Value {
	return Value{re: re, im: im, kind: KindComplex}
}

// Kind reports whether v is real or complex.
func (v Value) Kind() Kind { return v.kind }

// Phasor returns v as a complex number. A real element maps to (x, 0).
func (v Value) Phasor() phasor.Phasor {
	if v.kind == KindReal {
		return phasor.Phasor{Re: v.re}
	}

	return phasor.Phasor{Re: v.re, Im: v.im}
}

// Reals wraps real samples as transform input.
func Reals(samples []float64) []Value {
	out := make([]Value, len(samples))
	for i, x := range samples {
		out[i] = Real(x)
	}
	return out
}
