package buffer

import (
	"encoding/binary"
	"io"
)

// ReadUint32 reads an uint32 from r and stores it on c.
func ReadUint32(r io.Reader, c *uint32) (n int64, err error) {
	var b [4]byte
	inc, err := io.ReadFull(r, b[:])
	if err != nil {
		return int64(inc), err
	}
	*c = binary.LittleEndian.Uint32(b[:])
	return int64(inc), nil
}

// ReadUint32Slice reads len(c) uint32 from r and stores them on c.
func ReadUint32Slice(r io.Reader, c []uint32) (n int64, err error) {

	b := make([]byte, 4*min(len(c), chunkSize))

	for len(c) > 0 {

		m := min(len(c), chunkSize)

		var inc int
		if inc, err = io.ReadFull(r, b[:4*m]); err != nil {
			return n + int64(inc), err
		}

		for i := 0; i < m; i++ {
			c[i] = binary.LittleEndian.Uint32(b[4*i:])
		}

		n += int64(inc)
		c = c[m:]
	}

	return
}
