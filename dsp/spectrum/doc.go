// Package spectrum derives real-valued bin data from complex FFT output.
//
// It covers magnitude, power and phase extraction, the bin-to-frequency
// mapping of a half spectrum, and dominant-bin lookup.
package spectrum
