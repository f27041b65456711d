//go:build maskdebug

package mask

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDebugChecks(t *testing.T) {

	require.True(t, DebugChecks)

	require.Panics(t, func() { checkA2B([]uint32{1, 2}, []uint32{1, 1}) })
	require.NotPanics(t, func() { checkA2B([]uint32{3, 0}, []uint32{1, 2}) })

	require.Panics(t, func() { checkB2A([]uint64{1, 1}, []uint32{1, 0}) })
	require.Panics(t, func() { checkSecAnd([]uint32{1}, []uint32{1}, []uint32{2}) })
	require.Panics(t, func() { checkSecMult([]uint64{1, 0}, []uint32{2, 0}, []uint32{3, 0}, 17) })
	require.NotPanics(t, func() { checkSecMult([]uint64{3, 3}, []uint32{2, 0}, []uint32{3, 0}, 17) })
}
