// Package phasor provides the complex arithmetic used by the FFT butterfly.
//
// A Phasor is a plain (real, imaginary) pair. The operations are pure value
// functions with no failure modes for finite inputs.
package phasor

import "math"

// Phasor is a complex number in rectangular form.
type Phasor struct {
	Re float64
	Im float64
}

// One is the multiplicative identity.
var One = Phasor{Re: 1}

// FromComplex converts a complex128 to a Phasor.
func FromComplex(c complex128) Phasor {
	return Phasor{Re: real(c), Im: imag(c)}
}

// Complex returns p as a complex128.
func (p Phasor) Complex() complex128 {
	return complex(p.Re, p.Im)
}

// Mul returns p*q.
func (p Phasor) Mul(q Phasor) Phasor {
	return Phasor{
		Re: p.Re*q.Re - p.Im*q.Im,
		Im: p.Re*q.Im + p.Im*q.Re,
	}
}

// Add returns p+q.
func (p Phasor) Add(q Phasor) Phasor {
	return Phasor{Re: p.Re + q.Re, Im: p.Im + q.Im}
}

// Sub returns p-q.
func (p Phasor) Sub(q Phasor) Phasor {
	return Phasor{Re: p.Re - q.Re, Im: p.Im - q.Im}
}

// Abs returns the magnitude sqrt(re² + im²).
func (p Phasor) Abs() float64 {
	return math.Sqrt(p.Re*p.Re + p.Im*p.Im)
}

// UnitRoot returns the twiddle factor e^(-2πik/n) as a point on the unit
// circle. n must be > 0.
func UnitRoot(k, n int) Phasor {
	x := -2 * math.Pi * float64(k) / float64(n)
	return Phasor{Re: math.Cos(x), Im: math.Sin(x)}
}

// Parts splits phasors into separate real and imaginary slices.
func Parts(in []Phasor) (re, im []float64) {
	re = make([]float64, len(in))
	im = make([]float64, len(in))

	for i, p := range in {
		re[i] = p.Re
		im[i] = p.Im
	}

	return re, im
}
