package comparison

import (
	"github.com/tuneinsight/maskcmp/mask"
	"github.com/tuneinsight/maskcmp/utils"
	"github.com/tuneinsight/maskcmp/utils/profiling"
)

// decompressionInterval returns the public cyclic interval [lo, lo+width) of
// the residues modulo q that compress to c on d bits.
func decompressionInterval(c uint32, d int, q uint32) (lo, width uint32) {
	lo = Uncompress(c, d, q)
	hi := Uncompress(c+1, d, q)
	if hi < lo {
		hi += q
	}
	return lo, hi - lo
}

// vanishingProduct writes on out a sharing modulo q of y(y-1)...(y-(width-1)),
// y = sum(b) - lo, which is zero iff sum(b) lies in [lo, lo+width).
// It calls SecMult width-1 times; width depends only on public data.
// b is overwritten.
func vanishingProduct(out, b []uint32, q, lo, width uint32, src mask.Rand) {

	b[0] = (b[0] + q - lo) % q
	copy(out, b)

	for k := uint32(1); k < width; k++ {
		b[0] = (b[0] + q - 1) % q
		mask.SecMult(out, out, b, q, src)
	}
}

// HybridSimple runs the HybridSimple pipeline and returns the result bit. Inputs are not checked,
// see [Comparator.Compare]; the profile must support it (see [Parameters.HybridSupported]).
//
// Instead of compressing the first polynomial, every coefficient is checked against the decompression
// interval of its public value with a product that vanishes on the interval. The products are batched
// in HybridRows random combinations modulo Q, which are compressed on HybridCompressTo bits and
// converted to Boolean together with the second polynomial.
func (c *Comparator) HybridSimple(B, C mask.Matrix[uint32], publicB, publicC []uint32) uint32 {

	p := c.params
	q := p.q
	Q := uint64(q)

	c.rec.Start(profiling.StagePreprocess)
	Cp := C.CopyNew()
	sharedCompress(Cp, p.compressToC, p.fracBits, p.p)
	subtractPublic(Cp, publicC, p.compressFromC, p.compressToC)
	c.rec.Stop(profiling.StagePreprocess)

	c.rec.Start(profiling.StageHybrid)

	acc := mask.NewMatrix[uint64](mask.Lanes, p.nShares)

	b := make([]uint32, p.nShares)
	prod := make([]uint32, p.nShares)

	for i := range B {

		lo, width := decompressionInterval(publicB[i], p.compressToB, q)

		copy(b, B[i])
		vanishingProduct(prod, b, q, lo, width, c.src)
		checkHybridProduct(prod, B[i], q, lo, width)

		for j := 0; j < p.hybridRows; j += 2 {
			r0, r1 := mask.RandomQ(q, c.src)
			for k := range prod {
				acc[j][k] = (acc[j][k] + uint64(r0)*uint64(prod[k])) % Q
				acc[j+1][k] = (acc[j+1][k] + uint64(r1)*uint64(prod[k])) % Q
			}
		}
	}

	// shared compression of the combinations on HybridCompressTo bits with FracBits fractional bits,
	// the rounding offset places zero at the bottom of the zero interval
	from := p.CompressFromBHybrid()
	E := mask.NewMatrix[uint32](mask.Lanes, p.nShares)
	for j := 0; j < p.hybridRows; j++ {
		for k := range E[j] {
			// division by a public constant
			E[j][k] = uint32((acc[j][k] << from) / Q)
		}
		E[j][0] += utils.BitMask[uint32](p.fracBits)
	}

	c.rec.Stop(profiling.StageHybrid)

	c.rec.Start(profiling.StageA2B)
	BC := mask.NewMatrix[uint32](p.SimpleCompBitsHybrid(), p.nShares)
	row := mask.A2BKeepBitsliced(BC, 0, E, from, p.hybridCompressTo, c.src)
	mask.A2BKeepBitsliced(BC, row, Cp, p.compressFromC, p.compressToC, c.src)
	c.rec.Stop(profiling.StageA2B)

	c.rec.Start(profiling.StageTest)
	defer c.rec.Stop(profiling.StageTest)

	return BooleanEqualityTestSimple(BC, c.src)
}
