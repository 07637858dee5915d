package spectrum

// BinFrequencies returns the centre frequency of the first n bins of an
// fftSize-point transform: f[i] = i * sampleRate / fftSize.
func BinFrequencies(n, fftSize int, sampleRate float64) []float64 {
	if n <= 0 || fftSize <= 0 {
		return []float64{}
	}

	step := sampleRate / float64(fftSize)

	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i) * step
	}
	return out
}

// PeakBin returns the index and value of the largest magnitude. Ties resolve
// to the lowest index. It returns -1, 0 for an empty slice.
func PeakBin(mags []float64) (int, float64) {
	if len(mags) == 0 {
		return -1, 0
	}

	best := 0
	for i, m := range mags[1:] {
		if m > mags[best] {
			best = i + 1
		}
	}

	return best, mags[best]
}
