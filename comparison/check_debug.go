//go:build maskdebug

package comparison

import (
	"fmt"

	"github.com/tuneinsight/maskcmp/mask"
	"github.com/tuneinsight/maskcmp/utils"
)

func checkSharedCompressInput(x []uint32, d int, q uint32) uint32 {
	return Compress(mask.ArithSumMod(x, q), d, q)
}

func checkSharedCompressOutput(x []uint32, d, f int, want uint32) {
	if have := (mask.ArithSum(x) & utils.BitMask[uint32](d+f)) >> f; have != want {
		panic(fmt.Errorf("comparison: sharedCompress: unmasked output %d, expected %d", have, want))
	}
}

func checkB2AStage(D []uint64, BC []uint32) {
	if want, have := uint64(mask.XorSum(BC)), mask.ArithSum(D); want != have {
		panic(fmt.Errorf("comparison: B2A stage: unmasked output %d, expected %d", have, want))
	}
}

func checkReduce(E []uint64, D mask.Matrix[uint64]) {
	for i := range D {
		if mask.ArithSum(D[i]) != 0 {
			return
		}
	}
	if have := mask.ArithSum(E); have != 0 {
		panic(fmt.Errorf("comparison: ReduceComparisons: accumulator %#x for zero differences", have))
	}
}

func checkReduceGF(E Uint96, BC mask.Matrix[uint32]) {
	for i := range BC {
		if mask.XorSum(BC[i]) != 0 {
			return
		}
	}
	if lsb, msb := mask.XorSum(E.LSB), mask.XorSum(E.MSB); lsb != 0 || msb != 0 {
		panic(fmt.Errorf("comparison: ReduceComparisonsGF: accumulator %#x%016x for zero differences", msb, lsb))
	}
}

func checkHybridProduct(prod, b []uint32, q, lo, width uint32) {
	y := (mask.ArithSumMod(b, q) + q - lo) % q
	if have := mask.ArithSumMod(prod, q); (y < width) != (have == 0) {
		panic(fmt.Errorf("comparison: hybrid product: unmasked output %d for offset %d in interval of width %d", have, y, width))
	}
}
