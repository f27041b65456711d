package mask

import (
	"fmt"
)

// Lanes is the number of coefficients packed in a bitsliced sharing.
const Lanes = 32

// Bitsliced is a bit-major share matrix: Bitsliced[j][k] packs, in its bit i,
// the bit k of share j of the i-th of 32 coefficients.
type Bitsliced [][]uint32

// NewBitsliced allocates a nshares x nbits bitsliced sharing over a single contiguous backing array.
func NewBitsliced(nshares, nbits int) Bitsliced {
	backing := make([]uint32, nshares*nbits)
	b := make(Bitsliced, nshares)
	for j := range b {
		b[j] = backing[j*nbits : (j+1)*nbits : (j+1)*nbits]
	}
	return b
}

// Lanes returns the bit-width of the sharing.
func (b Bitsliced) Lanes() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// Pack transposes 32 coefficient-major sharings into out.
// Only the low out.Lanes() bits of each share are kept.
func Pack(out Bitsliced, in Matrix[uint32]) {

	if in.Rows() != Lanes {
		panic(fmt.Errorf("cannot Pack: invalid number of rows: expected %d but is %d", Lanes, in.Rows()))
	}

	for j := range out {
		for k := range out[j] {
			out[j][k] = 0
		}
	}

	for i := 0; i < Lanes; i++ {
		for j := range out {
			for k := range out[j] {
				out[j][k] |= ((in[i][j] >> k) & 1) << i
			}
		}
	}
}

// Unpack is the inverse of Pack: it writes on the 32 rows of out the
// coefficient-major sharings packed in in. The bits of out above in.Lanes() are zero.
func Unpack(out Matrix[uint32], in Bitsliced) {

	if out.Rows() != Lanes {
		panic(fmt.Errorf("cannot Unpack: invalid number of rows: expected %d but is %d", Lanes, out.Rows()))
	}

	for i := 0; i < Lanes; i++ {
		for j := range in {
			var tmp uint32
			for k := range in[j] {
				tmp |= ((in[j][k] >> i) & 1) << k
			}
			out[i][j] = tmp
		}
	}
}
