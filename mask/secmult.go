package mask

// RandomQ returns two independent uniform residues modulo q drawn from a single 32-bit word.
// The word is rejection-sampled below the largest multiple of q^2 that fits on 32 bits.
// q must be smaller than 2^16.
func RandomQ(q uint32, src Rand) (r0, r1 uint32) {

	qq := uint64(q) * uint64(q)
	bound := (uint64(1) << 32) / qq * qq

	// the number of draws depends only on the randomness, never on shares
	r := uint64(src.Uint32())
	for r >= bound {
		r = uint64(src.Uint32())
	}

	r %= qq

	return uint32(r % uint64(q)), uint32(r / uint64(q))
}

// SecMult writes on out an arithmetic sharing modulo q of the product of the
// arithmetic sharings a and b. Shares must be smaller than q, and q smaller than 2^16.
// out may alias a or b.
func SecMult(out, a, b []uint32, q uint32, src Rand) {

	n := len(a)
	Q := uint64(q)

	iterations := n * (n - 1) / 2
	R := make([]uint32, iterations+iterations&1)
	for i := 0; i < iterations; i += 2 {
		R[i], R[i+1] = RandomQ(q, src)
	}

	z := make([]uint64, n)
	for i := range z {
		z[i] = uint64(a[i]) * uint64(b[i]) % Q
	}

	idx := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := uint64(R[idx])
			c := (r + uint64(a[i])*uint64(b[j])%Q + uint64(a[j])*uint64(b[i])%Q) % Q
			z[i] = (z[i] + Q - r) % Q
			z[j] = (z[j] + c) % Q
			idx++
		}
	}

	checkSecMult(z, a, b, q)

	for i := range out {
		out[i] = uint32(z[i])
	}
}
