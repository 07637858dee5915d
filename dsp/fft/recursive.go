package fft

import "github.com/cwbudde/algo-spectral/dsp/phasor"

// recursivePhasors is the radix-2 decimation-in-time split: transform the
// even- and odd-indexed halves, then combine them with one butterfly per
// output pair. Every level allocates fresh slices; the input is never
// written.
func recursivePhasors(values []Value, tab *phasor.Table) []phasor.Phasor {
	n := len(values)
	if n == 1 {
		return []phasor.Phasor{values[0].Phasor()}
	}

	half := n / 2
	even := make([]Value, half)
	odd := make([]Value, half)

	for i := range half {
		even[i] = values[2*i]
		odd[i] = values[2*i+1]
	}

	evenPhasors := recursivePhasors(even, tab)
	oddPhasors := recursivePhasors(odd, tab)

	out := make([]phasor.Phasor, n)
	for k := range half {
		t := evenPhasors[k]
		e := tab.At(k, n).Mul(oddPhasors[k])

		out[k] = t.Add(e)
		out[k+half] = t.Sub(e)
	}

	return out
}
