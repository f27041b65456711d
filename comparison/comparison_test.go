package comparison

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/maskcmp/mask"
	"github.com/tuneinsight/maskcmp/utils/profiling"
	"github.com/tuneinsight/maskcmp/utils/sampling"
)

var flagParamString = flag.String("params", "", "specify the test parameters as a JSON string. Overrides the default profiles.")

// testProfiles are the default profiles of the test suite: every scheme at its
// smallest rank, and the standard ranks with more shares.
var testProfiles = []struct {
	scheme  Scheme
	rank    int
	nshares int
}{
	{Saber, 2, 2},
	{Saber, 3, 3},
	{Kyber, 2, 2},
	{Kyber, 3, 3},
	{Kyber, 4, 4},
}

func testString(params Parameters, opname string) string {
	return fmt.Sprintf("%s/%s", opname, params)
}

type testContext struct {
	params Parameters
	src    *sampling.Source
	cmp    *Comparator
}

func newTestSource(t testing.TB, seed, label string) *sampling.Source {
	src, err := sampling.NewKeyedSource(sampling.DeriveKey([]byte(seed), label))
	require.NoError(t, err)
	return src
}

func newTestContext(t testing.TB, params Parameters, label string) *testContext {
	src := newTestSource(t, params.String(), label)
	return &testContext{
		params: params,
		src:    src,
		cmp:    NewComparator(params, src, nil),
	}
}

func testParametersList(t *testing.T) (list []Parameters) {

	if *flagParamString != "" {
		var params Parameters
		if err := json.Unmarshal([]byte(*flagParamString), &params); err != nil {
			t.Fatal(err)
		}
		return []Parameters{params}
	}

	for _, p := range testProfiles {
		params, err := NewSchemeParameters(p.scheme, p.rank, p.nshares)
		require.NoError(t, err)
		list = append(list, params)
	}

	return
}

func TestComparison(t *testing.T) {
	for _, params := range testParametersList(t) {
		testVariants(t, params)
		testRecorder(t, params)
		testCompareErrors(t, params)
		testInstance(t, params)
	}
}

func testVariants(t *testing.T, params Parameters) {

	trials := 3
	if testing.Short() {
		trials = 1
	}

	for _, v := range Variants() {

		if v == HybridSimple && !params.HybridSupported() {
			continue
		}

		t.Run(testString(params, v.String()), func(t *testing.T) {

			tc := newTestContext(t, params, t.Name())

			for i := 0; i < trials; i++ {

				inst := NewInstance(params, tc.src)

				equal, err := inst.Compare(tc.cmp, v)
				require.NoError(t, err)
				require.True(t, equal, "genuine instance rejected")

				inst.Remask(tc.src)
				f := inst.InjectFault(tc.src)

				equal, err = inst.Compare(tc.cmp, v)
				require.NoError(t, err)
				require.False(t, equal, "fault %s accepted", f)
			}

			// boundary faults: smallest and largest delta on the first and last coefficients
			inst := NewInstance(params, tc.src)
			for _, f := range []Fault{
				{InB: true, Coeff: 0, Delta: 1},
				{InB: true, Coeff: params.NCoeffsB() - 1, Delta: 1<<params.CompressToB() - 1},
				{InB: false, Coeff: 0, Delta: 1<<params.CompressToC() - 1},
				{InB: false, Coeff: params.NCoeffsC() - 1, Delta: 1},
			} {
				inst.Restore()
				inst.Apply(f)
				equal, err := inst.Compare(tc.cmp, v)
				require.NoError(t, err)
				require.False(t, equal, "fault %s accepted", f)
			}

			inst.Restore()
			equal, err := inst.Compare(tc.cmp, v)
			require.NoError(t, err)
			require.True(t, equal)
		})
	}
}

func testRecorder(t *testing.T, params Parameters) {
	t.Run(testString(params, "Recorder"), func(t *testing.T) {

		tc := newTestContext(t, params, t.Name())
		rec := profiling.NewLogRecorder(5)
		cmp := NewComparator(params, tc.src, rec)

		inst := NewInstance(params, tc.src)

		want := map[Variant][]profiling.Stage{
			Arith: {profiling.StagePreprocess, profiling.StageA2B, profiling.StageB2A, profiling.StageReduce, profiling.StageTest, profiling.StageTotal},
			GF:    {profiling.StagePreprocess, profiling.StageA2B, profiling.StageReduce, profiling.StageTest, profiling.StageTotal},
		}

		for v, stages := range want {
			equal, err := inst.Compare(cmp, v)
			require.NoError(t, err)
			require.True(t, equal)

			entries := rec.SnapshotAndReset()
			have := make([]profiling.Stage, len(entries))
			for i, e := range entries {
				have[i] = e.Stage
			}
			require.Equal(t, stages, have)
		}
	})
}

func testCompareErrors(t *testing.T, params Parameters) {
	t.Run(testString(params, "CompareErrors"), func(t *testing.T) {

		tc := newTestContext(t, params, t.Name())
		inst := NewInstance(params, tc.src)

		_, err := tc.cmp.Compare(Variant(42), inst.B, inst.C, inst.PublicB, inst.PublicC)
		require.Error(t, err)

		_, err = tc.cmp.Compare(Simple, inst.B[1:], inst.C, inst.PublicB, inst.PublicC)
		require.Error(t, err)

		_, err = tc.cmp.Compare(Simple, inst.B, inst.C, inst.PublicB, inst.PublicC[1:])
		require.Error(t, err)

		wrongShares := mask.NewMatrix[uint32](params.NCoeffsC(), params.NShares()+1)
		_, err = tc.cmp.Compare(Simple, inst.B, wrongShares, inst.PublicB, inst.PublicC)
		require.Error(t, err)

		publicB := append([]uint32{}, inst.PublicB...)
		publicB[3] = 1 << params.CompressToB()
		_, err = tc.cmp.Compare(Simple, inst.B, inst.C, publicB, inst.PublicC)
		require.Error(t, err)

		_, err = tc.cmp.Compare(HybridSimple, inst.B, inst.C, inst.PublicB, inst.PublicC)
		require.Equal(t, params.HybridSupported(), err == nil)
	})
}

func testInstance(t *testing.T, params Parameters) {
	t.Run(testString(params, "Instance/WriteAndRead"), func(t *testing.T) {

		tc := newTestContext(t, params, t.Name())
		inst := NewInstance(params, tc.src)
		f := inst.InjectFault(tc.src)

		var buf bytes.Buffer
		_, err := inst.WriteTo(&buf)
		require.NoError(t, err)

		var have Instance
		_, err = have.ReadFrom(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err)

		require.True(t, params.Equal(&have.params))
		require.Equal(t, inst.B, have.B)
		require.Equal(t, inst.C, have.C)
		require.Equal(t, inst.PublicB, have.PublicB)
		require.Equal(t, inst.PublicC, have.PublicC)
		require.Equal(t, inst.b, have.b)
		require.Equal(t, inst.c, have.c)

		equal, err := have.Compare(tc.cmp, Simple)
		require.NoError(t, err)
		require.False(t, equal, "fault %s accepted", f)

		have.Restore()
		equal, err = have.Compare(tc.cmp, Simple)
		require.NoError(t, err)
		require.True(t, equal)
	})
}

// TestRemasking compares, at 3 shares, a fixed polynomial against its own compression and
// against a single-bit fault, across 10000 independent remaskings.
func TestRemasking(t *testing.T) {

	remaskings := 10000
	if testing.Short() {
		remaskings = 100
	}

	params, err := NewSchemeParameters(Saber, 2, 3)
	require.NoError(t, err)

	tc := newTestContext(t, params, t.Name())
	inst := NewInstance(params, tc.src)

	fault := Fault{InB: false, Coeff: 17, Delta: 1}

	for i := 0; i < remaskings; i++ {

		inst.Remask(tc.src)

		inst.Restore()
		equal, err := inst.Compare(tc.cmp, Simple)
		require.NoError(t, err)
		require.True(t, equal, "remasking %d: genuine instance rejected", i)

		inst.Apply(fault)
		equal, err = inst.Compare(tc.cmp, Simple)
		require.NoError(t, err)
		require.False(t, equal, "remasking %d: fault accepted", i)
	}
}
