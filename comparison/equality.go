package comparison

import (
	"github.com/tuneinsight/maskcmp/mask"
)

// foldRegister ANDs, in place, the two halves of the 32-bit Boolean sharing x
// until a single bit remains: 16, 8, 4, 2 and 1 bits, one SecAnd per halving.
func foldRegister(x []uint32, src mask.Rand) {

	n := len(x)
	lo := make([]uint32, n)
	hi := make([]uint32, n)

	for w := 16; w > 0; w >>= 1 {
		m := uint32(1)<<w - 1
		for j := 0; j < n; j++ {
			lo[j] = x[j] & m
			hi[j] = (x[j] >> w) & m
		}
		mask.SecAnd(x, hi, lo, src)
	}
}

// unmaskBit is the only place where a secret-dependent value is recombined.
func unmaskBit(x []uint32) uint32 {
	return mask.XorSum(x) & 1
}

// BooleanEqualityTest returns 1 if the 64-bit Boolean sharing B is a sharing of zero, and 0 otherwise.
// B is complemented, so that zero becomes all-ones, and its 64 bits are ANDed together by a tree of SecAnd.
func BooleanEqualityTest(B []uint64, src mask.Rand) uint32 {

	n := len(B)

	lo := make([]uint32, n)
	hi := make([]uint32, n)

	for j := 0; j < n; j++ {
		b := B[j]
		if j == 0 {
			b = ^b
		}
		lo[j] = uint32(b)
		hi[j] = uint32(b >> 32)
	}

	out := make([]uint32, n)
	mask.SecAnd(out, hi, lo, src)

	foldRegister(out, src)

	return unmaskBit(out)
}

// BooleanEqualityTestGF returns 1 if the 96-bit Boolean sharing E is a sharing of zero, and 0 otherwise.
// It first folds the two 32-bit halves of the low limb and ANDs the result with the high limb.
func BooleanEqualityTestGF(E Uint96, src mask.Rand) uint32 {

	n := len(E.LSB)

	lo := make([]uint32, n)
	hi := make([]uint32, n)
	top := make([]uint32, n)

	for j := 0; j < n; j++ {
		b, t := E.LSB[j], E.MSB[j]
		if j == 0 {
			b, t = ^b, ^t
		}
		lo[j] = uint32(b)
		hi[j] = uint32(b >> 32)
		top[j] = t
	}

	out := make([]uint32, n)
	mask.SecAnd(out, hi, lo, src)
	mask.SecAnd(out, out, top, src)

	foldRegister(out, src)

	return unmaskBit(out)
}

// BooleanEqualityTestSimple returns 1 if every 32-bit Boolean sharing B[i] is a sharing of zero, and 0 otherwise.
// The complemented registers are ANDed one after the other into a single register, which is then folded.
// B is left untouched.
func BooleanEqualityTestSimple(B mask.Matrix[uint32], src mask.Rand) uint32 {

	n := B.Shares()

	out := make([]uint32, n)
	copy(out, B[0])
	out[0] = ^out[0]

	tmp := make([]uint32, n)

	for i := 1; i < B.Rows(); i++ {
		copy(tmp, B[i])
		tmp[0] = ^tmp[0]
		mask.SecAnd(out, out, tmp, src)
	}

	foldRegister(out, src)

	return unmaskBit(out)
}

// BooleanEqualityTestSimpleNBS returns 1 if the low widths[i] bits of every Boolean sharing BC[i]
// are a sharing of zero, and 0 otherwise. It runs without bitslicing: a running one-bit accumulator
// is ANDed with each complemented bit of each coefficient in turn. BC is left untouched.
func BooleanEqualityTestSimpleNBS(BC mask.Matrix[uint32], widths []int, src mask.Rand) uint32 {

	n := BC.Shares()

	out := make([]uint32, n)
	out[0] = 1

	tmp := make([]uint32, n)

	for i := range BC {
		for k := 0; k < widths[i]; k++ {
			for j := 0; j < n; j++ {
				tmp[j] = BC[i][j] >> k
			}
			tmp[0] = ^tmp[0]
			mask.SecAnd(out, out, tmp, src)
		}
	}

	return unmaskBit(out)
}
