package comparison

import (
	"fmt"
)

// RingDegree is the number of coefficients of a polynomial of the supported schemes.
const RingDegree = 256

const (
	saberQ  = 8192
	saberP  = 1024
	saberEP = 10

	kyberQ = 3329

	hybridCompressTo = 13
	hybridRows       = 12
)

var (
	// saberET maps the module rank to the compressed width of the second polynomial.
	saberET = map[int]int{2: 3, 3: 4, 4: 6}

	// kyberDUDV maps the module rank to the compressed widths of both polynomials.
	kyberDUDV = map[int][2]int{2: {10, 4}, 3: {10, 4}, 4: {11, 5}}
)

// KyberFracBits returns the number of fractional bits of the shared compression for nshares shares.
func KyberFracBits(nshares int) int {
	return 11 + nshares
}

// SchemeLiteral returns the [ParametersLiteral] of the given scheme at module rank
// 2, 3 or 4 (the light, standard and high security levels) with nshares shares.
// The first polynomial has rank*256 coefficients, the second 256.
func SchemeLiteral(scheme Scheme, rank, nshares int) (ParametersLiteral, error) {

	switch scheme {
	case Saber:

		et, ok := saberET[rank]
		if !ok {
			return ParametersLiteral{}, fmt.Errorf("cannot SchemeLiteral: invalid rank %d for %s", rank, scheme)
		}

		return ParametersLiteral{
			Scheme:      Saber,
			Q:           saberQ,
			P:           saberP,
			NShares:     nshares,
			NCoeffsB:    rank * RingDegree,
			NCoeffsC:    RingDegree,
			CompressToB: saberEP,
			CompressToC: et,
		}, nil

	case Kyber:

		d, ok := kyberDUDV[rank]
		if !ok {
			return ParametersLiteral{}, fmt.Errorf("cannot SchemeLiteral: invalid rank %d for %s", rank, scheme)
		}

		return ParametersLiteral{
			Scheme:           Kyber,
			Q:                kyberQ,
			P:                kyberQ,
			NShares:          nshares,
			NCoeffsB:         rank * RingDegree,
			NCoeffsC:         RingDegree,
			CompressToB:      d[0],
			CompressToC:      d[1],
			FracBits:         KyberFracBits(nshares),
			HybridCompressTo: hybridCompressTo,
			HybridRows:       hybridRows,
		}, nil

	default:
		return ParametersLiteral{}, fmt.Errorf("cannot SchemeLiteral: invalid scheme %q", scheme)
	}
}

// NewSchemeParameters is a shorthand for [SchemeLiteral] followed by [NewParametersFromLiteral].
func NewSchemeParameters(scheme Scheme, rank, nshares int) (params Parameters, err error) {
	var pl ParametersLiteral
	if pl, err = SchemeLiteral(scheme, rank, nshares); err != nil {
		return
	}
	return NewParametersFromLiteral(pl)
}
