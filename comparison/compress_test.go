package comparison

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/maskcmp/mask"
	"github.com/tuneinsight/maskcmp/utils"
)

func TestCompress(t *testing.T) {

	t.Run("Saber", func(t *testing.T) {
		require.Equal(t, uint32(0x3ff), Compress(8191, 10, 8192))
		require.Equal(t, uint32(1), Compress(8, 10, 8192))
		require.Equal(t, uint32(0), Compress(7, 10, 8192))
		require.Equal(t, uint32(5), Compress(0x2ff, 3, 1024))
	})

	t.Run("Kyber", func(t *testing.T) {
		q := uint32(3329)
		require.Equal(t, uint32(0), Compress(0, 10, q))
		require.Equal(t, uint32(0), Compress(3328, 10, q))
		require.Equal(t, uint32(1), Compress(2, 10, q))
		require.Equal(t, uint32(8), Compress(q/2, 4, q))
	})
}

func TestUncompress(t *testing.T) {

	q := uint32(3329)

	for _, d := range []int{1, 4, 5, 10, 11} {
		t.Run(fmt.Sprintf("d=%d", d), func(t *testing.T) {

			var total uint32

			for c := uint32(0); c < 1<<d; c++ {

				lo, width := decompressionInterval(c, d, q)
				require.NotZero(t, width)

				for k := uint32(0); k < width; k++ {
					require.Equal(t, c, Compress((lo+k)%q, d, q))
				}

				// the interval is maximal
				require.NotEqual(t, c, Compress((lo+q-1)%q, d, q))
				require.NotEqual(t, c, Compress((lo+width)%q, d, q))

				total += width
			}

			require.Equal(t, q, total)
		})
	}
}

func TestSharedCompress(t *testing.T) {

	src := newTestSource(t, "compress", "shared")

	for nshares := 1; nshares <= 6; nshares++ {
		for _, d := range []int{4, 5, 10, 11} {

			q := uint32(3329)
			f := KyberFracBits(nshares)

			m := mask.NewMatrix[uint32](64, nshares)
			want := make([]uint32, m.Rows())
			for i := range m {
				x := mask.UniformMod(q, src)
				if i < 4 {
					// neighbourhood of the wrap-around and of a rounding boundary
					x = []uint32{0, q - 1, q - 2, q / 2}[i]
				}
				mask.ShareArithmeticMod(m[i], x, q, src)
				want[i] = Compress(x, d, q)
			}

			sharedCompress(m, d, f, q)

			for i := range m {
				have := (mask.ArithSum(m[i]) & utils.BitMask[uint32](d+f)) >> f
				require.Equal(t, want[i], have, "nshares=%d d=%d i=%d", nshares, d, i)
			}
		}
	}
}

func TestSubtractPublic(t *testing.T) {

	src := newTestSource(t, "compress", "public")

	from, to := 13, 10
	keep := utils.BitMask[uint32](from)

	m := mask.NewMatrix[uint32](2, 3)
	for i := range m {
		mask.ShareArithmetic(m[i], keep, src)
		for j := range m[i] {
			m[i][j] &= keep
		}
	}

	subtractPublic(m, []uint32{0x3ff, 0x3fe}, from, to)

	top := func(x []uint32) uint32 {
		return (mask.ArithSum(x) & keep) >> (from - to)
	}

	require.Equal(t, uint32(0), top(m[0]))
	require.Equal(t, uint32(1), top(m[1]))
}
