package mask

import (
	"testing"
)

func BenchmarkMask(b *testing.B) {
	for _, nshares := range []int{2, 3, 4, 6} {
		benchA2B(b, nshares)
		benchA2BBitsliced(b, nshares)
		benchB2A(b, nshares)
		benchSecMult(b, nshares)
	}
}

func benchA2B(b *testing.B, nshares int) {
	b.Run(testString("A2B/uint64", nshares), func(b *testing.B) {
		src := newTestSource(b, b.Name())
		in, out := make([]uint64, nshares), make([]uint64, nshares)
		ShareArithmetic(in, src.Uint64(), src)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			A2B(out, in, src)
		}
	})
}

func benchA2BBitsliced(b *testing.B, nshares int) {
	b.Run(testString("A2BBitsliced/nbits=13", nshares), func(b *testing.B) {
		src := newTestSource(b, b.Name())
		in, out := NewMatrix[uint32](Lanes, nshares), NewMatrix[uint32](Lanes, nshares)
		for i := range in {
			ShareArithmetic(in[i], src.Uint32(), src)
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			A2BBitsliced(out, in, 13, src)
		}
	})
}

func benchB2A(b *testing.B, nshares int) {
	b.Run(testString("B2A", nshares), func(b *testing.B) {
		src := newTestSource(b, b.Name())
		in, out := make([]uint32, nshares), make([]uint64, nshares)
		ShareBoolean(in, src.Uint32()&0x3ff, src)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			B2A(out, in, src)
		}
	})
}

func benchSecMult(b *testing.B, nshares int) {
	b.Run(testString("SecMult/q=3329", nshares), func(b *testing.B) {
		src := newTestSource(b, b.Name())
		x, y, z := make([]uint32, nshares), make([]uint32, nshares), make([]uint32, nshares)
		ShareArithmeticMod(x, 1234, 3329, src)
		ShareArithmeticMod(y, 42, 3329, src)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			SecMult(z, x, y, 3329, src)
		}
	})
}
