package mask

// B2A writes on out an arithmetic sharing modulo 2^64 of the 32-bit Boolean sharing in.
// It works over len(in)+1 shares: fresh arithmetic masks a are drawn, their negation
// is converted to Boolean shares and added to the extended input with SecAdd, which
// yields a Boolean sharing of x - sum(a). After a last refresh, this masked difference
// is recombined and added to a[0]. out and in must have the same length.
func B2A(out []uint64, in []uint32, src Rand) {

	n := len(in)

	a := make([]uint64, n)
	neg := make([]uint64, n)
	for j := range a {
		a[j] = src.Uint64()
		neg[j] = -a[j]
	}

	b := make([]uint64, n+1)
	A2B(b[:n], neg, src)
	Refresh(b, n, src)

	x := make([]uint64, n+1)
	for j := 0; j < n; j++ {
		x[j] = uint64(in[j])
	}
	Refresh(x, n, src)

	d := make([]uint64, n+1)
	SecAdd(d, x, b, src)
	Refresh(d, n+1, src)

	var masked uint64
	for j := range d {
		masked ^= d[j]
	}

	out[0] = masked + a[0]
	copy(out[1:], a[1:])

	checkB2A(out, in)
}
