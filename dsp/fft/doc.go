// Package fft computes the half-spectrum of a power-of-two length signal.
//
// [Transform] validates its input, decomposes it with a radix-2
// decimation-in-time Cooley-Tukey FFT and returns per-bin magnitudes and
// frequencies for the first N/2 bins. Input elements may be real samples or
// complex values (see [Value]).
//
// The default engine is the recursive even/odd split. [WithEngine] selects
// an in-place iterative butterfly or one of the third-party backends; all
// engines agree within floating-point tolerance.
package fft
