// Package utils implements various helper functions.
package utils

import (
	"golang.org/x/exp/constraints"
)

// BitMask returns 2^n - 1 in the unsigned type T.
// Values of n greater or equal to the bit-size of T return
// the all-ones word.
func BitMask[T constraints.Unsigned](n int) T {
	return (T(1) << uint(n)) - 1
}

// Bit returns the k-th bit of x.
func Bit[T constraints.Unsigned](x T, k int) T {
	return (x >> uint(k)) & 1
}

// BitSize returns the bit-size of the unsigned type T.
func BitSize[T constraints.Unsigned]() int {
	var n int
	for x := ^T(0); x != 0; x >>= 1 {
		n++
	}
	return n
}

// IsPowerOfTwo returns true if x is a non-zero power of two.
func IsPowerOfTwo[T constraints.Unsigned](x T) bool {
	return x != 0 && x&(x-1) == 0
}

// Log2 returns the floor of the base-2 logarithm of x, and -1 if x is zero.
func Log2[T constraints.Unsigned](x T) (n int) {
	n = -1
	for ; x != 0; x >>= 1 {
		n++
	}
	return
}

// IsPrime returns true if x is prime. It uses trial division and is meant
// for the small moduli of parameter profiles.
func IsPrime(x uint64) bool {
	if x < 2 {
		return false
	}
	for d := uint64(2); d*d <= x; d++ {
		if x%d == 0 {
			return false
		}
	}
	return true
}
