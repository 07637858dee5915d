package fft

import "errors"

var (
	// ErrNotPowerOfTwo is returned when the input length is not 2^k.
	ErrNotPowerOfTwo = errors.New("fft: input length must be a power of two")
	// ErrInvalidSamplingRate is returned for a sampling rate that is not a
	// finite number > 0.
	ErrInvalidSamplingRate = errors.New("fft: sampling rate must be finite and > 0")
	// ErrUnknownEngine is returned when an option selects an engine that
	// does not exist.
	ErrUnknownEngine = errors.New("fft: unknown engine")
)
