package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitMask(t *testing.T) {
	require.Equal(t, uint32(0), BitMask[uint32](0))
	require.Equal(t, uint32(0x3ff), BitMask[uint32](10))
	require.Equal(t, uint32(0xffffffff), BitMask[uint32](32))
	require.Equal(t, uint64(0xffffffff), BitMask[uint64](32))
	require.Equal(t, ^uint64(0), BitMask[uint64](64))
}

func TestBit(t *testing.T) {
	require.Equal(t, uint32(1), Bit(uint32(0b100), 2))
	require.Equal(t, uint32(0), Bit(uint32(0b100), 1))
	require.Equal(t, uint64(1), Bit(uint64(1)<<63, 63))
}

func TestBitSize(t *testing.T) {
	require.Equal(t, 8, BitSize[uint8]())
	require.Equal(t, 32, BitSize[uint32]())
	require.Equal(t, 64, BitSize[uint64]())
}

func TestLog2(t *testing.T) {
	require.Equal(t, -1, Log2(uint32(0)))
	require.Equal(t, 0, Log2(uint32(1)))
	require.Equal(t, 13, Log2(uint32(8192)))
	require.Equal(t, 11, Log2(uint32(3329)))
	require.True(t, IsPowerOfTwo(uint32(1024)))
	require.False(t, IsPowerOfTwo(uint32(3329)))
	require.False(t, IsPowerOfTwo(uint32(0)))
}

func TestIsPrime(t *testing.T) {
	require.True(t, IsPrime(3329))
	require.True(t, IsPrime(7681))
	require.True(t, IsPrime(2))
	require.False(t, IsPrime(1))
	require.False(t, IsPrime(3327))
	require.False(t, IsPrime(8192))
}
