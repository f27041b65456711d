package comparison

import (
	"github.com/tuneinsight/maskcmp/mask"
	"github.com/tuneinsight/maskcmp/utils"
)

// Compress compresses x in [0, q) on d bits.
// For a power-of-two q it keeps the d most significant bits of x, otherwise
// it returns round(x * 2^d / q) mod 2^d.
func Compress(x uint32, d int, q uint32) uint32 {
	if utils.IsPowerOfTwo(q) {
		return x >> (utils.Log2(q) - d)
	}
	return uint32((((uint64(x) << d) + uint64(q>>1)) / uint64(q)) & utils.BitMask[uint64](d))
}

// Uncompress returns the smallest x in [0, q), taken cyclically, such that Compress(x, d, q) = c
// for an odd q. The preimage of c is the cyclic interval [Uncompress(c), Uncompress(c+1)).
func Uncompress(c uint32, d int, q uint32) uint32 {
	x := uint64((c-1)&utils.BitMask[uint32](d)) + 1
	x = x*uint64(q) - uint64(q>>1)
	x += utils.BitMask[uint64](d)
	x >>= d
	return uint32(x % uint64(q))
}

// CompressB compresses a coefficient of the first polynomial.
func (p Parameters) CompressB(x uint32) uint32 {
	return Compress(x, p.compressToB, p.q)
}

// CompressC compresses a coefficient of the second polynomial.
func (p Parameters) CompressC(x uint32) uint32 {
	return Compress(x, p.compressToC, p.p)
}

// sharedCompress rescales in place the arithmetic sharings modulo q of m into sharings
// modulo 2^(d+f) whose top d bits encode Compress(x, d, q), f the fractional bits.
// Each share is divided independently and the rounding offset is carried by share 0 only.
// The rounding errors of the s divisions sum to less than s, which stays below the
// fractional bits as long as 2^(f-1) >= (s-1)*q.
func sharedCompress(m mask.Matrix[uint32], d, f int, q uint32) {

	offset := uint64(q) << f >> 1
	Q := uint64(q)

	for i := range m {

		ref := checkSharedCompressInput(m[i], d, q)

		for j := range m[i] {

			tmp := uint64(m[i][j]) << (d + f)

			if j == 0 {
				tmp += offset
			}

			// division by a public constant
			m[i][j] = uint32(tmp / Q)
		}

		checkSharedCompressOutput(m[i], d, f, ref)
	}
}

// subtractPublic subtracts (c << (from-to)) modulo 2^from from share 0 of each coefficient of m,
// c the public compressed coefficients, so that the top `to` bits of each sharing are zero iff
// they match c.
func subtractPublic(m mask.Matrix[uint32], public []uint32, from, to int) {
	keep := utils.BitMask[uint32](from)
	for i := range m {
		m[i][0] = (m[i][0] - (public[i] << (from - to))) & keep
	}
}
