package comparison

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tuneinsight/maskcmp/mask"
	"github.com/tuneinsight/maskcmp/utils/buffer"
)

// Instance is a test vector of the comparison: two secret polynomials, their
// sharings, and the public compressed polynomials they are compared against.
// Instances are a testing and benchmarking facility: they hold the secrets in the clear.
type Instance struct {
	params  Parameters
	b, c    []uint32
	B, C    mask.Matrix[uint32]
	PublicB []uint32
	PublicC []uint32
}

// Fault describes a modification of one public compressed coefficient.
type Fault struct {
	InB   bool
	Coeff int
	Delta uint32
}

func (f Fault) String() string {
	poly := "C"
	if f.InB {
		poly = "B"
	}
	return fmt.Sprintf("%s[%d]+%d", poly, f.Coeff, f.Delta)
}

// NewInstance samples uniform secret polynomials modulo Q and P, shares them and sets
// the public polynomials to their compressions, so that the comparison must succeed.
func NewInstance(params Parameters, src mask.Rand) *Instance {

	inst := &Instance{
		params:  params,
		b:       make([]uint32, params.nCoeffsB),
		c:       make([]uint32, params.nCoeffsC),
		B:       mask.NewMatrix[uint32](params.nCoeffsB, params.nShares),
		C:       mask.NewMatrix[uint32](params.nCoeffsC, params.nShares),
		PublicB: make([]uint32, params.nCoeffsB),
		PublicC: make([]uint32, params.nCoeffsC),
	}

	for i := range inst.b {
		inst.b[i] = mask.UniformMod(params.q, src)
	}

	for i := range inst.c {
		inst.c[i] = mask.UniformMod(params.p, src)
	}

	inst.Remask(src)
	inst.Restore()

	return inst
}

// Remask replaces the sharings by fresh sharings of the same secrets.
func (inst *Instance) Remask(src mask.Rand) {
	for i := range inst.b {
		mask.ShareArithmeticMod(inst.B[i], inst.b[i], inst.params.q, src)
	}
	for i := range inst.c {
		mask.ShareArithmeticMod(inst.C[i], inst.c[i], inst.params.p, src)
	}
}

// Restore sets the public polynomials to the compressions of the secrets.
func (inst *Instance) Restore() {
	for i := range inst.b {
		inst.PublicB[i] = inst.params.CompressB(inst.b[i])
	}
	for i := range inst.c {
		inst.PublicC[i] = inst.params.CompressC(inst.c[i])
	}
}

// Apply adds f.Delta to the public coefficient designated by f, modulo its compressed width.
func (inst *Instance) Apply(f Fault) {
	if f.InB {
		inst.PublicB[f.Coeff] = (inst.PublicB[f.Coeff] + f.Delta) & (1<<inst.params.compressToB - 1)
	} else {
		inst.PublicC[f.Coeff] = (inst.PublicC[f.Coeff] + f.Delta) & (1<<inst.params.compressToC - 1)
	}
}

// InjectFault draws a uniform polynomial, coefficient and non-zero delta, applies the fault and returns it.
func (inst *Instance) InjectFault(src mask.Rand) (f Fault) {

	f.InB = src.Uint32()&1 == 1

	width := inst.params.compressToC
	ncoeffs := inst.params.nCoeffsC
	if f.InB {
		width = inst.params.compressToB
		ncoeffs = inst.params.nCoeffsB
	}

	f.Coeff = int(mask.UniformMod(uint32(ncoeffs), src))
	f.Delta = mask.UniformMod(1<<width-1, src) + 1

	inst.Apply(f)

	return
}

// Compare runs the comparison of the instance with variant v on comparator c.
func (inst *Instance) Compare(c *Comparator, v Variant) (bool, error) {
	return c.Compare(v, inst.B, inst.C, inst.PublicB, inst.PublicC)
}

// WriteTo writes the parameters, the sharings and the public polynomials of the instance on w.
// It implements the io.WriterTo interface.
func (inst *Instance) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		if n, err = inst.params.WriteTo(w); err != nil {
			return n, fmt.Errorf("cannot WriteTo: params: %w", err)
		}

		for _, data := range inst.sections() {
			var inc int64
			if inc, err = buffer.WriteUint32Slice(w, data); err != nil {
				return n + inc, fmt.Errorf("cannot WriteTo: %w", err)
			}
			n += inc
		}

		return n, w.Flush()

	default:
		return inst.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads an instance written by WriteTo. The secrets are recovered from the sharings.
// It implements the io.ReaderFrom interface.
func (inst *Instance) ReadFrom(r io.Reader) (n int64, err error) {

	var params Parameters
	if n, err = params.ReadFrom(r); err != nil {
		return n, fmt.Errorf("cannot ReadFrom: params: %w", err)
	}

	*inst = Instance{
		params:  params,
		b:       make([]uint32, params.nCoeffsB),
		c:       make([]uint32, params.nCoeffsC),
		B:       mask.NewMatrix[uint32](params.nCoeffsB, params.nShares),
		C:       mask.NewMatrix[uint32](params.nCoeffsC, params.nShares),
		PublicB: make([]uint32, params.nCoeffsB),
		PublicC: make([]uint32, params.nCoeffsC),
	}

	for _, data := range inst.sections() {
		var inc int64
		if inc, err = buffer.ReadUint32Slice(r, data); err != nil {
			return n + inc, fmt.Errorf("cannot ReadFrom: %w", err)
		}
		n += inc
	}

	for i := range inst.b {
		inst.b[i] = mask.ArithSumMod(inst.B[i], params.q)
	}

	for i := range inst.c {
		inst.c[i] = mask.ArithSumMod(inst.C[i], params.p)
	}

	return
}

// sections returns the serialized slices in order.
func (inst *Instance) sections() (s [][]uint32) {
	s = make([][]uint32, 0, len(inst.B)+len(inst.C)+2)
	s = append(s, inst.B...)
	s = append(s, inst.C...)
	return append(s, inst.PublicB, inst.PublicC)
}

// Parameters returns the parameters of the instance.
func (inst *Instance) Parameters() Parameters {
	return inst.params
}
