package mask

// SecAnd writes on out a Boolean sharing of (XOR a) & (XOR b).
// This is the ISW multiplication: every cross product a[i]&b[j] is
// folded back under a fresh mask. out may alias a or b.
func SecAnd[T Word](out, a, b []T, src Rand) {

	n := len(a)

	z := make([]T, n)
	for i := range z {
		z[i] = a[i] & b[i]
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := randWord[T](src)
			z[i] ^= r
			z[j] ^= (r ^ (a[i] & b[j])) ^ (a[j] & b[i])
		}
	}

	checkSecAnd(z, a, b)

	copy(out, z)
}
