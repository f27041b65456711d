package utils

import (
	"golang.org/x/exp/constraints"
)

// XorSlice returns the XOR of all the elements of s.
func XorSlice[T constraints.Unsigned](s []T) (x T) {
	for _, si := range s {
		x ^= si
	}
	return
}

// SumSlice returns the wrapping sum of all the elements of s.
func SumSlice[T constraints.Unsigned](s []T) (x T) {
	for _, si := range s {
		x += si
	}
	return
}

// SumSliceMod returns the sum of all the elements of s modulo q.
func SumSliceMod[T constraints.Unsigned](s []T, q T) (x T) {
	var acc uint64
	for _, si := range s {
		acc = (acc + uint64(si)%uint64(q)) % uint64(q)
	}
	return T(acc)
}

// Zero sets all the elements of s to zero.
func Zero[T constraints.Integer](s []T) {
	for i := range s {
		s[i] = 0
	}
}
