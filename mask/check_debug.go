//go:build maskdebug

package mask

import (
	"fmt"

	"github.com/tuneinsight/maskcmp/utils"
)

// DebugChecks reports whether the unmasking assertions are compiled in.
const DebugChecks = true

func checkSecAnd[T Word](z, a, b []T) {
	if want, have := XorSum(a)&XorSum(b), XorSum(z); want != have {
		panic(fmt.Errorf("mask: SecAnd: unmasked output %#x, expected %#x", have, want))
	}
}

func checkA2B[T Word](out, in []T) {
	if want, have := ArithSum(in), XorSum(out); want != have {
		panic(fmt.Errorf("mask: A2B: unmasked output %#x, expected %#x", have, want))
	}
}

func checkA2BBitsliced(out, in Matrix[uint32], nbits int) {
	mask := utils.BitMask[uint32](nbits)
	for i := range in {
		if want, have := ArithSum(in[i])&mask, XorSum(out[i])&mask; want != have {
			panic(fmt.Errorf("mask: A2BBitsliced: coefficient %d: unmasked output %#x, expected %#x", i, have, want))
		}
	}
}

func checkA2BKeepBitsliced(out, in Matrix[uint32], from, to int) {
	mask := utils.BitMask[uint32](from)
	for k := 0; k < to; k++ {
		lane := XorSum(out[k])
		for i := range in {
			want := ((ArithSum(in[i]) & mask) >> (k + from - to)) & 1
			if have := (lane >> i) & 1; want != have {
				panic(fmt.Errorf("mask: A2BKeepBitsliced: coefficient %d, lane %d: unmasked output %d, expected %d", i, k, have, want))
			}
		}
	}
}

func checkB2A(out []uint64, in []uint32) {
	if want, have := uint64(XorSum(in)), ArithSum(out); want != have {
		panic(fmt.Errorf("mask: B2A: unmasked output %#x, expected %#x", have, want))
	}
}

func checkSecMult(z []uint64, a, b []uint32, q uint32) {
	var have uint64
	for i := range z {
		have = (have + z[i]) % uint64(q)
	}
	if want := uint64(ArithSumMod(a, q)) * uint64(ArithSumMod(b, q)) % uint64(q); want != have {
		panic(fmt.Errorf("mask: SecMult: unmasked output %d, expected %d", have, want))
	}
}
