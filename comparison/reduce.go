package comparison

import (
	"github.com/tuneinsight/maskcmp/mask"
	"github.com/tuneinsight/maskcmp/utils"
)

// ReduceComparisons writes on E the random linear combination sum_i R_i * D[i] mod 2^64
// of the arithmetic sharings D[i], drawing one fresh 64-bit R_i per row.
// E is a sharing of zero if every D[i] is, and is non-zero with high probability otherwise.
func ReduceComparisons(E []uint64, D mask.Matrix[uint64], src mask.Rand) {

	utils.Zero(E)

	for i := range D {
		R := src.Uint64()
		for j := range E {
			E[j] += R * D[i][j]
		}
	}

	checkReduce(E, D)
}

// Uint96 is a Boolean sharing of an element of GF(2)[x]/deg<96, split in
// a 64-bit low limb and a 32-bit high limb per share.
type Uint96 struct {
	LSB []uint64
	MSB []uint32
}

// NewUint96 allocates a zero Uint96 over nshares shares.
func NewUint96(nshares int) Uint96 {
	return Uint96{
		LSB: make([]uint64, nshares),
		MSB: make([]uint32, nshares),
	}
}

// CopyNew returns a deep copy of the receiver.
func (u Uint96) CopyNew() Uint96 {
	c := NewUint96(len(u.LSB))
	copy(c.LSB, u.LSB)
	copy(c.MSB, u.MSB)
	return c
}

// ReduceComparisonsGF writes on E the carry-less random linear combination
// sum_i R_i (x) BC[i] of the 32-bit Boolean sharings BC[i], drawing one fresh 64-bit
// R_i per row. The carry-less product is computed bit-serially: for every bit k of
// every share, R_i * bit is XORed on the low limb at offset k, and its top k bits
// on the high limb. E is a sharing of zero if every BC[i] is.
func ReduceComparisonsGF(E Uint96, BC mask.Matrix[uint32], src mask.Rand) {

	utils.Zero(E.LSB)
	utils.Zero(E.MSB)

	for i := range BC {

		R := src.Uint64()

		for j := range E.LSB {
			for k := 0; k < 32; k++ {
				tmp := R * uint64(utils.Bit(BC[i][j], k))
				E.LSB[j] ^= tmp << k
				// a shift by 64 yields zero
				E.MSB[j] ^= uint32(tmp >> (64 - k))
			}
		}
	}

	checkReduceGF(E, BC)
}
