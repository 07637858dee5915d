package window

import "math"

// Analysis holds numerically computed spectral properties of a window.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// Bandwidth3dB is the 3 dB (half-power) main lobe width in bins.
	Bandwidth3dB float64
	// ScallopLossdB is the worst-case amplitude error for an off-bin signal.
	ScallopLossdB float64
}

// Analyze computes spectral properties of the given window coefficients
// using numerical DFT evaluation.
func Analyze(coeffs []float64) (Analysis, error) {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}, errEmptyCoeffs
	}

	enbw, err := EquivalentNoiseBandwidth(coeffs)
	if err != nil {
		return Analysis{}, err
	}

	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}

	dcRef := dftMagSq(coeffs, 0)

	scallopLoss := 0.0
	if halfBin := dftMagSq(coeffs, 0.5/float64(n)); halfBin > 0 {
		scallopLoss = 10 * math.Log10(halfBin/dcRef)
	}

	return Analysis{
		CoherentGain:  sum / float64(n),
		ENBW:          enbw,
		Bandwidth3dB:  searchBandwidth(coeffs, dcRef, n),
		ScallopLossdB: scallopLoss,
	}, nil
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a window.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	sumSquares := 0.0

	for _, c := range coeffs {
		sum += c
		sumSquares += c * c
	}

	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}

// dftMagSq evaluates |DFT(freq)|^2 at a normalised frequency [0,1).
func dftMagSq(coeffs []float64, freq float64) float64 {
	re, im := 0.0, 0.0
	w := 2 * math.Pi * freq
	for k, c := range coeffs {
		phase := w * float64(k)
		re += c * math.Cos(phase)
		im -= c * math.Sin(phase)
	}
	return re*re + im*im
}

// searchBandwidth bisects for the half-power point of the main lobe and
// returns the two-sided width in bins.
func searchBandwidth(coeffs []float64, dcRef float64, n int) float64 {
	invRef := 1.0 / dcRef

	lo := 0.0
	hi := 0.5
	for i := 0; i < 80; i++ {
		mid := (lo + hi) / 2
		if dftMagSq(coeffs, mid)*invRef > 0.5 {
			lo = mid
		} else {
			hi = mid
		}
	}

	return 2 * lo * float64(n)
}
