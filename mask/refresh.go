package mask

// Refresh re-randomizes the Boolean sharing x without changing the value of x[:from].
// The shares x[from:] are first zeroed, which pads a sharing over from shares to
// len(x) shares, then every pair (i, j), i < j, receives a fresh mask XORed on both shares.
// It draws len(x)(len(x)-1)/2 words.
func Refresh[T Word](x []T, from int, src Rand) {

	for i := from; i < len(x); i++ {
		x[i] = 0
	}

	for i := 0; i < len(x)-1; i++ {
		for j := i + 1; j < len(x); j++ {
			r := randWord[T](src)
			x[i] ^= r
			x[j] ^= r
		}
	}
}

// RefreshBitsliced is the bitsliced counterpart of Refresh: one fresh
// mask is drawn per pair of shares and per lane.
func RefreshBitsliced(x Bitsliced, from int, src Rand) {

	for i := from; i < len(x); i++ {
		for k := range x[i] {
			x[i][k] = 0
		}
	}

	for i := 0; i < len(x)-1; i++ {
		for j := i + 1; j < len(x); j++ {
			for k := range x[i] {
				r := src.Uint32()
				x[i][k] ^= r
				x[j][k] ^= r
			}
		}
	}
}
