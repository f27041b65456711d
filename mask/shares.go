// Package mask implements the probing-secure gadgets of the masked comparison:
// share refresh, secure AND, secure addition and multiplication, and the
// conversions between arithmetic and Boolean sharings, in word and bitsliced form.
//
// A sharing of a secret x over s shares is a slice of s words such that
// x = sum of the shares (arithmetic) or x = XOR of the shares (Boolean).
// All loop bounds depend only on the share count and the declared widths.
package mask

import (
	"github.com/tuneinsight/maskcmp/utils"
)

// Word is the type of a single share.
type Word interface {
	~uint32 | ~uint64
}

// Rand is the randomness capability consumed by the gadgets.
type Rand interface {
	Uint32() uint32
	Uint64() uint64
}

func randWord[T Word](src Rand) T {
	if utils.BitSize[T]() == 32 {
		return T(src.Uint32())
	}
	return T(src.Uint64())
}

// Matrix is a coefficient-major share matrix: Matrix[i] is the sharing of the i-th coefficient.
type Matrix[T Word] [][]T

// NewMatrix allocates a rows x shares matrix over a single contiguous backing array.
func NewMatrix[T Word](rows, shares int) Matrix[T] {
	backing := make([]T, rows*shares)
	m := make(Matrix[T], rows)
	for i := range m {
		m[i] = backing[i*shares : (i+1)*shares : (i+1)*shares]
	}
	return m
}

// Rows returns the number of coefficients.
func (m Matrix[T]) Rows() int {
	return len(m)
}

// Shares returns the number of shares per coefficient.
func (m Matrix[T]) Shares() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// CopyNew returns a deep copy of the matrix.
func (m Matrix[T]) CopyNew() Matrix[T] {
	c := NewMatrix[T](m.Rows(), m.Shares())
	c.Copy(m)
	return c
}

// Copy copies other on the receiver, row by row.
func (m Matrix[T]) Copy(other Matrix[T]) {
	for i := range m {
		copy(m[i], other[i])
	}
}

// XorSum returns the value of a Boolean sharing.
// It unmasks its input and is meant for verification only.
func XorSum[T Word](x []T) T {
	return utils.XorSlice(x)
}

// ArithSum returns the value of an arithmetic sharing modulo 2^w, w the bit-size of T.
// It unmasks its input and is meant for verification only.
func ArithSum[T Word](x []T) T {
	return utils.SumSlice(x)
}

// ArithSumMod returns the value of an arithmetic sharing modulo q.
// It unmasks its input and is meant for verification only.
func ArithSumMod(x []uint32, q uint32) uint32 {
	return utils.SumSliceMod(x, q)
}

// UniformMod returns a uniform value in [0, q) by rejection sampling.
func UniformMod(q uint32, src Rand) uint32 {
	bound := (uint64(1) << 32) / uint64(q) * uint64(q)
	r := uint64(src.Uint32())
	for r >= bound {
		r = uint64(src.Uint32())
	}
	return uint32(r % uint64(q))
}

// ShareArithmeticMod writes on out a fresh arithmetic sharing of x modulo q.
// x must be smaller than q.
func ShareArithmeticMod(out []uint32, x, q uint32, src Rand) {
	out[0] = x
	for j := 1; j < len(out); j++ {
		r := UniformMod(q, src)
		out[0] = (out[0] + q - r) % q
		out[j] = r
	}
}

// ShareArithmetic writes on out a fresh arithmetic sharing of x modulo 2^w, w the bit-size of T.
func ShareArithmetic[T Word](out []T, x T, src Rand) {
	out[0] = x
	for j := 1; j < len(out); j++ {
		out[j] = randWord[T](src)
		out[0] -= out[j]
	}
}

// ShareBoolean writes on out a fresh Boolean sharing of x.
func ShareBoolean[T Word](out []T, x T, src Rand) {
	out[0] = x
	for j := 1; j < len(out); j++ {
		out[j] = randWord[T](src)
		out[0] ^= out[j]
	}
}
