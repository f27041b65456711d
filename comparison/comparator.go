// Package comparison implements the masked equality test of a re-encryption check:
// it decides whether two shared polynomials, once compressed, equal two public
// compressed polynomials, and unmasks nothing but the final result bit.
//
// Six interchangeable pipelines are provided. They share the same contract and differ
// only in the representation used at each stage:
//
//   - Arith: bitsliced A2B, B2A per coefficient, ReduceComparisons mod 2^64, 64-bit equality test.
//   - Simple: keep-bitsliced A2B, equality test over all the bitsliced registers.
//   - SimpleNBS: word A2B per coefficient, bit-serial equality test.
//   - SimpleNBSO: bitsliced A2B unpacked per coefficient, equality test over the coefficients.
//   - GF: keep-bitsliced A2B, carry-less ReduceComparisonsGF, 96-bit equality test.
//   - HybridSimple: secure decompression check of the first polynomial with SecMult, then Simple.
package comparison

import (
	"fmt"
	"strings"

	"github.com/tuneinsight/maskcmp/mask"
	"github.com/tuneinsight/maskcmp/utils"
	"github.com/tuneinsight/maskcmp/utils/profiling"
)

// Variant identifies a comparison pipeline.
type Variant int

const (
	Arith = Variant(iota)
	Simple
	SimpleNBS
	SimpleNBSO
	GF
	HybridSimple
)

var variantNames = [...]string{"Arith", "Simple", "Simple_NBS", "Simple_NBSO", "GF", "HybridSimple"}

// Variants returns all the pipelines.
func Variants() []Variant {
	return []Variant{Arith, Simple, SimpleNBS, SimpleNBSO, GF, HybridSimple}
}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return fmt.Sprintf("Variant(%d)", int(v))
	}
	return variantNames[v]
}

// ParseVariant returns the Variant named s. The match ignores case and underscores.
func ParseVariant(s string) (Variant, error) {
	norm := func(s string) string {
		return strings.ToLower(strings.ReplaceAll(s, "_", ""))
	}
	for i, name := range variantNames {
		if norm(name) == norm(s) {
			return Variant(i), nil
		}
	}
	return 0, fmt.Errorf("cannot ParseVariant: unknown variant %q", s)
}

// Comparator runs the masked comparison pipelines of a parameter profile.
// A Comparator holds no state across calls other than its randomness source
// and recorder. It is not safe for concurrent use if its source is not.
type Comparator struct {
	params Parameters
	src    mask.Rand
	rec    profiling.Recorder
}

// NewComparator returns a Comparator for params drawing its randomness from src.
// A nil rec is replaced by [profiling.Nop].
func NewComparator(params Parameters, src mask.Rand, rec profiling.Recorder) *Comparator {
	if rec == nil {
		rec = profiling.Nop{}
	}
	return &Comparator{params: params, src: src, rec: rec}
}

// Parameters returns the parameters of the comparator.
func (c *Comparator) Parameters() Parameters {
	return c.params
}

// Compare returns true if the sharings B and C, compressed, equal the public compressed
// polynomials publicB and publicC. B must hold NCoeffsB sharings modulo Q and C NCoeffsC
// sharings modulo P, with shares in [0, Q) and [0, P) respectively.
//
// Only the public shapes and ranges are checked: an error means a caller or configuration
// mistake, never a mismatch. HybridSimple requires a profile for which HybridSupported is true.
func (c *Comparator) Compare(v Variant, B, C mask.Matrix[uint32], publicB, publicC []uint32) (equal bool, err error) {

	if err = c.checkInputs(v, B, C, publicB, publicC); err != nil {
		return false, fmt.Errorf("cannot Compare: %w", err)
	}

	c.rec.Status(fmt.Sprintf("===== Start %s %s =====", v, c.params))
	c.rec.Start(profiling.StageTotal)

	var result uint32

	switch v {
	case Arith:
		result = c.Arith(B, C, publicB, publicC)
	case Simple:
		result = c.Simple(B, C, publicB, publicC)
	case SimpleNBS:
		result = c.SimpleNBS(B, C, publicB, publicC)
	case SimpleNBSO:
		result = c.SimpleNBSO(B, C, publicB, publicC)
	case GF:
		result = c.GF(B, C, publicB, publicC)
	case HybridSimple:
		result = c.HybridSimple(B, C, publicB, publicC)
	}

	c.rec.Stop(profiling.StageTotal)
	c.rec.Status(fmt.Sprintf("===== End %s =====", v))

	return result == 1, nil
}

func (c *Comparator) checkInputs(v Variant, B, C mask.Matrix[uint32], publicB, publicC []uint32) error {

	p := c.params

	if v < Arith || v > HybridSimple {
		return fmt.Errorf("invalid variant %d", int(v))
	}

	if v == HybridSimple && !p.HybridSupported() {
		return fmt.Errorf("variant %s is not supported by the profile %s", v, p)
	}

	if err := checkShape("B", B, p.nCoeffsB, p.nShares); err != nil {
		return err
	}

	if err := checkShape("C", C, p.nCoeffsC, p.nShares); err != nil {
		return err
	}

	if err := checkPublic("publicB", publicB, p.nCoeffsB, p.compressToB); err != nil {
		return err
	}

	return checkPublic("publicC", publicC, p.nCoeffsC, p.compressToC)
}

func checkShape(name string, m mask.Matrix[uint32], rows, shares int) error {
	if m.Rows() != rows {
		return fmt.Errorf("%s has %d coefficients but the profile requires %d", name, m.Rows(), rows)
	}
	for i := range m {
		if len(m[i]) != shares {
			return fmt.Errorf("%s[%d] has %d shares but the profile requires %d", name, i, len(m[i]), shares)
		}
	}
	return nil
}

func checkPublic(name string, public []uint32, rows, width int) error {
	if len(public) != rows {
		return fmt.Errorf("%s has %d coefficients but the profile requires %d", name, len(public), rows)
	}
	for i, x := range public {
		if x>>width != 0 {
			return fmt.Errorf("%s[%d]=%d does not fit on %d bits", name, i, x, width)
		}
	}
	return nil
}

// preprocess copies B and C, rescales them to the working widths if the profile
// requires a shared compression, and subtracts the shifted public polynomials from share 0.
func (c *Comparator) preprocess(B, C mask.Matrix[uint32], publicB, publicC []uint32) (Bp, Cp mask.Matrix[uint32]) {

	p := c.params

	c.rec.Start(profiling.StagePreprocess)
	defer c.rec.Stop(profiling.StagePreprocess)

	Bp = B.CopyNew()
	Cp = C.CopyNew()

	if p.scheme == Kyber {
		sharedCompress(Bp, p.compressToB, p.fracBits, p.q)
		sharedCompress(Cp, p.compressToC, p.fracBits, p.p)
	}

	subtractPublic(Bp, publicB, p.compressFromB, p.compressToB)
	subtractPublic(Cp, publicC, p.compressFromC, p.compressToC)

	return
}

// truncate keeps, in place, the bits [from-to, from) of the Boolean sharings of m, shifted down.
func truncate(m mask.Matrix[uint32], from, to int) {
	keep := utils.BitMask[uint32](to)
	for i := range m {
		for j := range m[i] {
			m[i][j] = (m[i][j] >> (from - to)) & keep
		}
	}
}

// convertBitsliced converts the preprocessed sharings into one Boolean sharing of the
// compressed difference per coefficient, B first.
func (c *Comparator) convertBitsliced(Bp, Cp mask.Matrix[uint32]) (BC mask.Matrix[uint32]) {

	p := c.params

	c.rec.Start(profiling.StageA2B)
	defer c.rec.Stop(profiling.StageA2B)

	BC = mask.NewMatrix[uint32](p.nCoeffsB+p.nCoeffsC, p.nShares)

	mask.A2BBitsliced(BC[:p.nCoeffsB], Bp, p.compressFromB, c.src)
	truncate(BC[:p.nCoeffsB], p.compressFromB, p.compressToB)

	mask.A2BBitsliced(BC[p.nCoeffsB:], Cp, p.compressFromC, c.src)
	truncate(BC[p.nCoeffsB:], p.compressFromC, p.compressToC)

	return
}

// convertKeepBitsliced converts the preprocessed sharings into SimpleCompBits bitsliced registers.
func (c *Comparator) convertKeepBitsliced(Bp, Cp mask.Matrix[uint32]) (BC mask.Matrix[uint32]) {

	p := c.params

	c.rec.Start(profiling.StageA2B)
	defer c.rec.Stop(profiling.StageA2B)

	BC = mask.NewMatrix[uint32](p.SimpleCompBits(), p.nShares)

	row := mask.A2BKeepBitsliced(BC, 0, Bp, p.compressFromB, p.compressToB, c.src)
	mask.A2BKeepBitsliced(BC, row, Cp, p.compressFromC, p.compressToC, c.src)

	return
}

// Arith runs the Arith pipeline and returns the result bit. Inputs are not checked, see [Comparator.Compare].
func (c *Comparator) Arith(B, C mask.Matrix[uint32], publicB, publicC []uint32) uint32 {

	p := c.params

	Bp, Cp := c.preprocess(B, C, publicB, publicC)

	BC := c.convertBitsliced(Bp, Cp)

	c.rec.Start(profiling.StageB2A)
	D := mask.NewMatrix[uint64](BC.Rows(), p.nShares)
	for i := range BC {
		mask.B2A(D[i], BC[i], c.src)
		checkB2AStage(D[i], BC[i])
	}
	c.rec.Stop(profiling.StageB2A)

	c.rec.Start(profiling.StageReduce)
	E := make([]uint64, p.nShares)
	ReduceComparisons(E, D, c.src)
	c.rec.Stop(profiling.StageReduce)

	c.rec.Start(profiling.StageTest)
	defer c.rec.Stop(profiling.StageTest)

	EB := make([]uint64, p.nShares)
	mask.A2B(EB, E, c.src)

	return BooleanEqualityTest(EB, c.src)
}

// Simple runs the Simple pipeline and returns the result bit. Inputs are not checked, see [Comparator.Compare].
func (c *Comparator) Simple(B, C mask.Matrix[uint32], publicB, publicC []uint32) uint32 {

	Bp, Cp := c.preprocess(B, C, publicB, publicC)

	BC := c.convertKeepBitsliced(Bp, Cp)

	c.rec.Start(profiling.StageTest)
	defer c.rec.Stop(profiling.StageTest)

	return BooleanEqualityTestSimple(BC, c.src)
}

// SimpleNBS runs the SimpleNBS pipeline and returns the result bit. Inputs are not checked, see [Comparator.Compare].
func (c *Comparator) SimpleNBS(B, C mask.Matrix[uint32], publicB, publicC []uint32) uint32 {

	p := c.params

	Bp, Cp := c.preprocess(B, C, publicB, publicC)

	c.rec.Start(profiling.StageA2B)

	BC := mask.NewMatrix[uint32](p.nCoeffsB+p.nCoeffsC, p.nShares)
	widths := make([]int, BC.Rows())

	for i := range Bp {
		mask.A2B(BC[i], Bp[i], c.src)
		widths[i] = p.compressToB
	}
	truncate(BC[:p.nCoeffsB], p.compressFromB, p.compressToB)

	for i := range Cp {
		mask.A2B(BC[p.nCoeffsB+i], Cp[i], c.src)
		widths[p.nCoeffsB+i] = p.compressToC
	}
	truncate(BC[p.nCoeffsB:], p.compressFromC, p.compressToC)

	c.rec.Stop(profiling.StageA2B)

	c.rec.Start(profiling.StageTest)
	defer c.rec.Stop(profiling.StageTest)

	return BooleanEqualityTestSimpleNBS(BC, widths, c.src)
}

// SimpleNBSO runs the SimpleNBSO pipeline and returns the result bit. Inputs are not checked, see [Comparator.Compare].
func (c *Comparator) SimpleNBSO(B, C mask.Matrix[uint32], publicB, publicC []uint32) uint32 {

	Bp, Cp := c.preprocess(B, C, publicB, publicC)

	BC := c.convertBitsliced(Bp, Cp)

	c.rec.Start(profiling.StageTest)
	defer c.rec.Stop(profiling.StageTest)

	return BooleanEqualityTestSimple(BC, c.src)
}

// GF runs the GF pipeline and returns the result bit. Inputs are not checked, see [Comparator.Compare].
func (c *Comparator) GF(B, C mask.Matrix[uint32], publicB, publicC []uint32) uint32 {

	Bp, Cp := c.preprocess(B, C, publicB, publicC)

	BC := c.convertKeepBitsliced(Bp, Cp)

	c.rec.Start(profiling.StageReduce)
	E := NewUint96(c.params.nShares)
	ReduceComparisonsGF(E, BC, c.src)
	c.rec.Stop(profiling.StageReduce)

	c.rec.Start(profiling.StageTest)
	defer c.rec.Stop(profiling.StageTest)

	return BooleanEqualityTestGF(E, c.src)
}
