package comparison

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/maskcmp/mask"
)

func BenchmarkComparison(b *testing.B) {
	for _, p := range testProfiles {
		params, err := NewSchemeParameters(p.scheme, p.rank, p.nshares)
		require.NoError(b, err)
		benchVariants(b, params)
		benchGadgets(b, params)
	}
}

func benchVariants(b *testing.B, params Parameters) {
	for _, v := range Variants() {

		if v == HybridSimple && !params.HybridSupported() {
			continue
		}

		b.Run(testString(params, v.String()), func(b *testing.B) {
			tc := newTestContext(b, params, b.Name())
			inst := NewInstance(params, tc.src)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := inst.Compare(tc.cmp, v); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func benchGadgets(b *testing.B, params Parameters) {

	b.Run(testString(params, "ReduceComparisons"), func(b *testing.B) {
		tc := newTestContext(b, params, b.Name())
		D := mask.NewMatrix[uint64](params.NCoeffsB()+params.NCoeffsC(), params.NShares())
		E := make([]uint64, params.NShares())
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			ReduceComparisons(E, D, tc.src)
		}
	})

	b.Run(testString(params, "ReduceComparisonsGF"), func(b *testing.B) {
		tc := newTestContext(b, params, b.Name())
		BC := mask.NewMatrix[uint32](params.SimpleCompBits(), params.NShares())
		E := NewUint96(params.NShares())
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			ReduceComparisonsGF(E, BC, tc.src)
		}
	})

	b.Run(testString(params, "BooleanEqualityTestSimple"), func(b *testing.B) {
		tc := newTestContext(b, params, b.Name())
		BC := mask.NewMatrix[uint32](params.SimpleCompBits(), params.NShares())
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			BooleanEqualityTestSimple(BC, tc.src)
		}
	})
}
