//go:build !maskdebug

package comparison

import (
	"github.com/tuneinsight/maskcmp/mask"
)

func checkSharedCompressInput(x []uint32, d int, q uint32) uint32 { return 0 }
func checkSharedCompressOutput(x []uint32, d, f int, want uint32) {}
func checkB2AStage(D []uint64, BC []uint32)                       {}
func checkReduce(E []uint64, D mask.Matrix[uint64])               {}
func checkReduceGF(E Uint96, BC mask.Matrix[uint32])              {}
func checkHybridProduct(prod, b []uint32, q, lo, width uint32)    {}
