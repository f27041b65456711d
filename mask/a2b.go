package mask

import (
	"fmt"
)

// A2B writes on out a Boolean sharing of the arithmetic sharing in, modulo 2^w, w the bit-size of T.
// The shares are split in two halves converted recursively, each half is
// padded to len(in) shares and refreshed, and the two are combined with SecAdd.
// The recursion depth is ceil(log2(len(in))).
// out and in must have the same length and must not alias.
func A2B[T Word](out, in []T, src Rand) {

	n := len(in)

	if n == 1 {
		out[0] = in[0]
		return
	}

	h := (n + 1) >> 1

	x := make([]T, n)
	y := make([]T, n)

	A2B(x[:h], in[:h], src)
	Refresh(x, h, src)

	A2B(y[:n-h], in[h:], src)
	Refresh(y, n-h, src)

	SecAdd(out, x, y, src)

	checkA2B(out, in)
}

func a2bBitsliced(out, in Bitsliced, src Rand) {

	n := len(in)

	if n == 1 {
		copy(out[0], in[0])
		return
	}

	h := (n + 1) >> 1

	x := NewBitsliced(n, in.Lanes())
	y := NewBitsliced(n, in.Lanes())

	a2bBitsliced(x[:h], in[:h], src)
	RefreshBitsliced(x, h, src)

	a2bBitsliced(y[:n-h], in[h:], src)
	RefreshBitsliced(y, n-h, src)

	SecAddBitsliced(out, x, y, src)
}

// A2BBitsliced converts, 32 coefficients at a time, the arithmetic sharings modulo 2^nbits
// of in into Boolean sharings written on out. The number of rows of in must be a multiple of 32.
// The shares of out are reduced to their low nbits bits.
func A2BBitsliced(out, in Matrix[uint32], nbits int, src Rand) {

	if in.Rows()%Lanes != 0 {
		panic(fmt.Errorf("cannot A2BBitsliced: number of rows %d is not a multiple of %d", in.Rows(), Lanes))
	}

	nshares := in.Shares()

	packed := NewBitsliced(nshares, nbits)
	converted := NewBitsliced(nshares, nbits)

	for i := 0; i < in.Rows(); i += Lanes {
		Pack(packed, in[i:i+Lanes])
		a2bBitsliced(converted, packed, src)
		Unpack(out[i:i+Lanes], converted)
	}

	checkA2BBitsliced(out, in, nbits)
}

// A2BKeepBitsliced converts, 32 coefficients at a time, the arithmetic sharings modulo 2^from
// of in and keeps the result bitsliced: for each block of 32 coefficients, the top `to` lanes
// of the Boolean sharing are written, lowest first, on the rows out[row], out[row+1], ... of out.
// The lower from-to bits are discarded. It returns the index of the first row of out left untouched.
func A2BKeepBitsliced(out Matrix[uint32], row int, in Matrix[uint32], from, to int, src Rand) int {

	if in.Rows()%Lanes != 0 {
		panic(fmt.Errorf("cannot A2BKeepBitsliced: number of rows %d is not a multiple of %d", in.Rows(), Lanes))
	}

	if to > from {
		panic(fmt.Errorf("cannot A2BKeepBitsliced: to=%d > from=%d", to, from))
	}

	nshares := in.Shares()

	packed := NewBitsliced(nshares, from)
	converted := NewBitsliced(nshares, from)

	for i := 0; i < in.Rows(); i += Lanes {

		Pack(packed, in[i:i+Lanes])
		a2bBitsliced(converted, packed, src)

		for j := 0; j < nshares; j++ {
			for k := 0; k < to; k++ {
				out[row+k][j] = converted[j][k+from-to]
			}
		}

		checkA2BKeepBitsliced(out[row:row+to], in[i:i+Lanes], from, to)

		row += to
	}

	return row
}
