package mask

import (
	"github.com/tuneinsight/maskcmp/utils"
)

// SecAdd writes on out a Boolean sharing of (XOR x) + (XOR y) mod 2^w, w the bit-size of T.
// The carries are computed with a masked Kogge-Stone prefix network,
// log2(w) layers of SecAnd. out may alias x or y.
func SecAdd[T Word](out, x, y []T, src Rand) {

	n := len(x)
	layers := utils.Log2(uint(utils.BitSize[T]()))

	p := make([]T, n)
	g := make([]T, n)
	a := make([]T, n)

	for i := range p {
		p[i] = x[i] ^ y[i]
	}

	SecAnd(g, x, y, src)

	for j := 0; j < layers-1; j++ {

		shift := 1 << j

		// g = g | (p & g<<shift)
		for i := range a {
			a[i] = g[i] << shift
		}
		SecAnd(a, p, a, src)
		for i := range g {
			g[i] ^= a[i]
		}

		// p = p & p<<shift
		for i := range a {
			a[i] = p[i] << shift
		}
		Refresh(a, n, src)
		SecAnd(p, p, a, src)
	}

	shift := 1 << (layers - 1)
	for i := range a {
		a[i] = g[i] << shift
	}
	SecAnd(a, p, a, src)
	for i := range g {
		g[i] ^= a[i]
	}

	for i := range out {
		out[i] = x[i] ^ y[i] ^ (g[i] << 1)
	}
}

// SecAddBitsliced writes on out a bitsliced Boolean sharing of x + y mod 2^nbits,
// nbits the number of lanes, for each of the 32 packed coefficients.
// The carry ripples through the lanes with two SecAnd per lane.
// out may alias x or y.
func SecAddBitsliced(out, x, y Bitsliced, src Rand) {

	n := len(x)
	nbits := x.Lanes()

	xk := make([]uint32, n)
	yk := make([]uint32, n)
	t := make([]uint32, n)
	g := make([]uint32, n)
	c := make([]uint32, n)

	for k := 0; k < nbits; k++ {

		for j := 0; j < n; j++ {
			xk[j] = x[j][k]
			yk[j] = y[j][k]
			t[j] = xk[j] ^ yk[j]
		}

		for j := 0; j < n; j++ {
			out[j][k] = t[j] ^ c[j]
		}

		if k == nbits-1 {
			break
		}

		// c = (x & y) | (c & (x ^ y)), the two terms are disjoint
		SecAnd(g, xk, yk, src)

		if k == 0 {
			copy(c, g)
			continue
		}

		SecAnd(c, c, t, src)
		for j := range c {
			c[j] ^= g[j]
		}
	}
}
