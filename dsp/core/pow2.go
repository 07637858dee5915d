package core

import "math/bits"

// IsPowerOfTwo reports whether n is 2^k for some k >= 0.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// FloorPowerOfTwo returns the largest power of two that is <= n.
// Returns 0 for n <= 0.
func FloorPowerOfTwo(n int) int {
	if n <= 0 {
		return 0
	}

	return 1 << (bits.Len(uint(n)) - 1)
}

// NextPowerOfTwo returns the smallest power of two that is >= n.
// Returns 1 for n <= 1.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(n-1))
}

// Log2 returns k for n == 2^k. The result is undefined when n is not a
// power of two; callers validate with IsPowerOfTwo first.
func Log2(n int) int {
	return bits.TrailingZeros(uint(n))
}
