package fft

import (
	"math/bits"

	"github.com/cwbudde/algo-spectral/dsp/core"
	"github.com/cwbudde/algo-spectral/dsp/phasor"
)

// iterativePhasors computes the same butterflies as recursivePhasors
// bottom-up in a single buffer, after placing the input in bit-reversed
// order. Stack depth stays constant for any N.
func iterativePhasors(values []Value, tab *phasor.Table) []phasor.Phasor {
	n := len(values)
	logN := core.Log2(n)

	out := make([]phasor.Phasor, n)
	for i, v := range values {
		out[reverseBits(i, logN)] = v.Phasor()
	}

	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		for start := 0; start < n; start += size {
			for k := range half {
				t := out[start+k]
				e := tab.At(k, size).Mul(out[start+k+half])

				out[start+k] = t.Add(e)
				out[start+k+half] = t.Sub(e)
			}
		}
	}

	return out
}

// reverseBits reverses the low width bits of i.
func reverseBits(i, width int) int {
	if width == 0 {
		return 0
	}

	return int(bits.Reverse(uint(i)) >> (bits.UintSize - width))
}
