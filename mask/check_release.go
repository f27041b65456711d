//go:build !maskdebug

package mask

// DebugChecks reports whether the unmasking assertions are compiled in.
const DebugChecks = false

func checkSecAnd[T Word](z, a, b []T)                            {}
func checkA2B[T Word](out, in []T)                               {}
func checkA2BBitsliced(out, in Matrix[uint32], nbits int)        {}
func checkA2BKeepBitsliced(out, in Matrix[uint32], from, to int) {}
func checkB2A(out []uint64, in []uint32)                         {}
func checkSecMult(z []uint64, a, b []uint32, q uint32)           {}
