package comparison

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/go-cmp/cmp"

	"github.com/tuneinsight/maskcmp/mask"
	"github.com/tuneinsight/maskcmp/utils"
	"github.com/tuneinsight/maskcmp/utils/buffer"
)

// MaxShares is the largest supported number of shares.
const MaxShares = 16

// MaxWidth is the largest supported bit-width of a share before compression.
const MaxWidth = 32

// Scheme is the family of the parameter profile.
type Scheme string

const (
	// Saber is the family of power-of-two moduli: compression is a plain right shift.
	Saber = Scheme("saber")
	// Kyber is the family of odd prime moduli: shares are rescaled by a shared compression
	// with FracBits extra fractional bits before the Boolean conversion.
	Kyber = Scheme("kyber")
)

// ParametersLiteral is a literal representation of a comparison parameter profile.
// It has public fields and is used to express unchecked user-defined profiles literally
// into Go programs. The [NewParametersFromLiteral] function is used to generate the
// actual checked parameters from the literal representation.
//
// The first polynomial (B) has NCoeffsB coefficients shared modulo Q and compressed on
// CompressToB bits, the second (C) has NCoeffsC coefficients shared modulo P and
// compressed on CompressToC bits.
//
// The fields FracBits, HybridCompressTo and HybridRows are only used by the [Kyber] family.
type ParametersLiteral struct {
	Scheme           Scheme
	Q                uint32
	P                uint32
	NShares          int
	NCoeffsB         int
	NCoeffsC         int
	CompressToB      int
	CompressToC      int
	FracBits         int `json:",omitempty"`
	HybridCompressTo int `json:",omitempty"`
	HybridRows       int `json:",omitempty"`
}

// Parameters is a checked comparison parameter profile. Its fields are private and
// immutable. See [ParametersLiteral] for user-specified profiles.
type Parameters struct {
	scheme           Scheme
	q                uint32
	p                uint32
	nShares          int
	nCoeffsB         int
	nCoeffsC         int
	compressFromB    int
	compressToB      int
	compressFromC    int
	compressToC      int
	fracBits         int
	hybridCompressTo int
	hybridRows       int
}

// NewParametersFromLiteral instantiates a set of comparison parameters from a
// [ParametersLiteral] specification. It returns an error if the profile is not
// consistent or if a derived width exceeds [MaxWidth].
func NewParametersFromLiteral(pl ParametersLiteral) (params Parameters, err error) {

	if pl.NShares < 1 || pl.NShares > MaxShares {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: NShares=%d is not in [1, %d]", pl.NShares, MaxShares)
	}

	if err = checkCoeffs("NCoeffsB", pl.NCoeffsB); err != nil {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %w", err)
	}

	if err = checkCoeffs("NCoeffsC", pl.NCoeffsC); err != nil {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %w", err)
	}

	params = Parameters{
		scheme:      pl.Scheme,
		q:           pl.Q,
		p:           pl.P,
		nShares:     pl.NShares,
		nCoeffsB:    pl.NCoeffsB,
		nCoeffsC:    pl.NCoeffsC,
		compressToB: pl.CompressToB,
		compressToC: pl.CompressToC,
	}

	switch pl.Scheme {
	case Saber:
		err = params.initSaber(pl)
	case Kyber:
		err = params.initKyber(pl)
	default:
		err = fmt.Errorf("invalid scheme %q", pl.Scheme)
	}

	if err != nil {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %w", err)
	}

	if err = checkWidths("B", params.compressFromB, params.compressToB); err != nil {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %w", err)
	}

	if err = checkWidths("C", params.compressFromC, params.compressToC); err != nil {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %w", err)
	}

	return
}

func (p *Parameters) initSaber(pl ParametersLiteral) error {

	if !utils.IsPowerOfTwo(pl.Q) || !utils.IsPowerOfTwo(pl.P) {
		return fmt.Errorf("scheme %s requires power-of-two moduli but Q=%d and P=%d", pl.Scheme, pl.Q, pl.P)
	}

	if pl.FracBits != 0 || pl.HybridCompressTo != 0 || pl.HybridRows != 0 {
		return fmt.Errorf("scheme %s does not use FracBits, HybridCompressTo and HybridRows", pl.Scheme)
	}

	p.compressFromB = utils.Log2(pl.Q)
	p.compressFromC = utils.Log2(pl.P)

	return nil
}

func (p *Parameters) initKyber(pl ParametersLiteral) error {

	if pl.Q < 3 || pl.Q >= 1<<16 || !utils.IsPrime(uint64(pl.Q)) {
		return fmt.Errorf("scheme %s requires an odd prime modulus Q < 2^16 but Q=%d", pl.Scheme, pl.Q)
	}

	if pl.P != pl.Q {
		return fmt.Errorf("scheme %s requires P=Q but P=%d and Q=%d", pl.Scheme, pl.P, pl.Q)
	}

	if pl.FracBits < 1 || pl.FracBits > MaxWidth {
		return fmt.Errorf("FracBits=%d is not in [1, %d]", pl.FracBits, MaxWidth)
	}

	// the rounding errors of the per-share division stay below the fractional bits
	if uint64(1)<<(pl.FracBits-1) < uint64(pl.NShares-1)*uint64(pl.Q) {
		return fmt.Errorf("FracBits=%d is too small: 2^(FracBits-1) must be at least (NShares-1)*Q=%d", pl.FracBits, (pl.NShares-1)*int(pl.Q))
	}

	for _, d := range []int{pl.CompressToB, pl.CompressToC} {
		if d < 1 || d > MaxWidth || uint64(1)<<d >= uint64(pl.Q) {
			return fmt.Errorf("compression width %d is not in [1, log2(Q))", d)
		}
	}

	p.fracBits = pl.FracBits
	p.compressFromB = pl.CompressToB + pl.FracBits
	p.compressFromC = pl.CompressToC + pl.FracBits

	if pl.HybridRows == 0 && pl.HybridCompressTo == 0 {
		return nil
	}

	if pl.HybridRows < 2 || pl.HybridRows > mask.Lanes || pl.HybridRows&1 != 0 {
		return fmt.Errorf("HybridRows=%d must be even and in [2, %d]", pl.HybridRows, mask.Lanes)
	}

	if pl.HybridCompressTo < 1 || uint64(1)<<pl.HybridCompressTo <= uint64(pl.Q) || pl.HybridCompressTo+pl.FracBits > MaxWidth {
		return fmt.Errorf("HybridCompressTo=%d must satisfy 2^HybridCompressTo > Q and HybridCompressTo+FracBits <= %d", pl.HybridCompressTo, MaxWidth)
	}

	p.hybridCompressTo = pl.HybridCompressTo
	p.hybridRows = pl.HybridRows

	return nil
}

func checkCoeffs(name string, n int) error {
	if n < mask.Lanes || n%mask.Lanes != 0 {
		return fmt.Errorf("%s=%d must be a positive multiple of %d", name, n, mask.Lanes)
	}
	return nil
}

func checkWidths(name string, from, to int) error {
	if from < 1 || from > MaxWidth {
		return fmt.Errorf("compression source width of %s is %d but must be in [1, %d]", name, from, MaxWidth)
	}
	if to < 1 || to > from {
		return fmt.Errorf("compression target width of %s is %d but must be in [1, %d]", name, to, from)
	}
	return nil
}

// ParametersLiteral returns the [ParametersLiteral] of the target [Parameters].
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{
		Scheme:           p.scheme,
		Q:                p.q,
		P:                p.p,
		NShares:          p.nShares,
		NCoeffsB:         p.nCoeffsB,
		NCoeffsC:         p.nCoeffsC,
		CompressToB:      p.compressToB,
		CompressToC:      p.compressToC,
		FracBits:         p.fracBits,
		HybridCompressTo: p.hybridCompressTo,
		HybridRows:       p.hybridRows,
	}
}

// Scheme returns the family of the profile.
func (p Parameters) Scheme() Scheme {
	return p.scheme
}

// Q returns the modulus of the first polynomial.
func (p Parameters) Q() uint32 {
	return p.q
}

// P returns the modulus of the second polynomial.
func (p Parameters) P() uint32 {
	return p.p
}

// NShares returns the number of shares.
func (p Parameters) NShares() int {
	return p.nShares
}

// NCoeffsB returns the number of coefficients of the first polynomial.
func (p Parameters) NCoeffsB() int {
	return p.nCoeffsB
}

// NCoeffsC returns the number of coefficients of the second polynomial.
func (p Parameters) NCoeffsC() int {
	return p.nCoeffsC
}

// CompressFromB returns the bit-width at which the first polynomial enters the Boolean conversion.
func (p Parameters) CompressFromB() int {
	return p.compressFromB
}

// CompressToB returns the compressed bit-width of the first polynomial.
func (p Parameters) CompressToB() int {
	return p.compressToB
}

// CompressFromC returns the bit-width at which the second polynomial enters the Boolean conversion.
func (p Parameters) CompressFromC() int {
	return p.compressFromC
}

// CompressToC returns the compressed bit-width of the second polynomial.
func (p Parameters) CompressToC() int {
	return p.compressToC
}

// FracBits returns the number of fractional bits of the shared compression.
func (p Parameters) FracBits() int {
	return p.fracBits
}

// HybridCompressTo returns the compressed bit-width of the random combinations of the hybrid pipeline.
func (p Parameters) HybridCompressTo() int {
	return p.hybridCompressTo
}

// HybridRows returns the number of random combinations of the hybrid pipeline.
func (p Parameters) HybridRows() int {
	return p.hybridRows
}

// CompressFromBHybrid returns the bit-width at which the random combinations
// of the hybrid pipeline enter the Boolean conversion.
func (p Parameters) CompressFromBHybrid() int {
	return p.hybridCompressTo + p.fracBits
}

// HybridSupported returns true if the profile can run the HybridSimple pipeline.
func (p Parameters) HybridSupported() bool {
	return p.scheme == Kyber && p.hybridRows != 0
}

// SimpleCompBits returns the number of bitsliced registers holding both compressed polynomials.
func (p Parameters) SimpleCompBits() int {
	return p.nCoeffsB/mask.Lanes*p.compressToB + p.nCoeffsC/mask.Lanes*p.compressToC
}

// SimpleCompBitsHybrid returns the number of bitsliced registers of the hybrid pipeline.
func (p Parameters) SimpleCompBitsHybrid() int {
	return p.hybridCompressTo + p.nCoeffsC/mask.Lanes*p.compressToC
}

// String returns a short description of the profile.
func (p Parameters) String() string {
	return fmt.Sprintf("%s/Q=%d/P=%d/nshares=%d/B=%dx%d->%d/C=%dx%d->%d",
		p.scheme, p.q, p.p, p.nShares, p.nCoeffsB, p.compressFromB, p.compressToB, p.nCoeffsC, p.compressFromC, p.compressToC)
}

// Equal returns true if the receiver and other are the same profile.
func (p Parameters) Equal(other *Parameters) bool {
	return cmp.Equal(p.ParametersLiteral(), other.ParametersLiteral())
}

// MarshalJSON returns a JSON representation of this parameter set. See Marshal from the [encoding/json] package.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of a parameter set into the receiver Parameter. See Unmarshal from the [encoding/json] package.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var params ParametersLiteral
	if err = json.Unmarshal(data, &params); err != nil {
		return err
	}
	*p, err = NewParametersFromLiteral(params)
	return
}

// WriteTo writes the JSON representation of the parameters, prefixed by its
// length, on w. It implements the io.WriterTo interface.
func (p Parameters) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		bytes, err := p.MarshalJSON()
		if err != nil {
			return 0, err
		}

		if n, err = buffer.WriteUint32(w, uint32(len(bytes))); err != nil {
			return n, fmt.Errorf("buffer.WriteUint32: %w", err)
		}

		var inc int
		if inc, err = w.Write(bytes); err != nil {
			return n + int64(inc), fmt.Errorf("io.Writer.Write: %w", err)
		}

		return n + int64(inc), w.Flush()

	default:
		return p.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface.
func (p *Parameters) ReadFrom(r io.Reader) (n int64, err error) {

	var size uint32
	if n, err = buffer.ReadUint32(r, &size); err != nil {
		return n, fmt.Errorf("buffer.ReadUint32: %w", err)
	}

	bytes := make([]byte, size)

	var inc int
	if inc, err = io.ReadFull(r, bytes); err != nil {
		return n + int64(inc), fmt.Errorf("io.ReadFull: %w", err)
	}

	return n + int64(inc), p.UnmarshalJSON(bytes)
}
