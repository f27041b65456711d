package buffer

import (
	"encoding/binary"
)

const chunkSize = 1 << 10

// WriteUint32 writes c to w.
func WriteUint32(w Writer, c uint32) (n int64, err error) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], c)
	inc, err := w.Write(b[:])
	return int64(inc), err
}

// WriteUint32Slice writes the elements of c to w, without length prefix.
func WriteUint32Slice(w Writer, c []uint32) (n int64, err error) {

	b := make([]byte, 4*min(len(c), chunkSize))

	for len(c) > 0 {

		m := min(len(c), chunkSize)

		for i := 0; i < m; i++ {
			binary.LittleEndian.PutUint32(b[4*i:], c[i])
		}

		var inc int
		if inc, err = w.Write(b[:4*m]); err != nil {
			return n + int64(inc), err
		}

		n += int64(inc)
		c = c[m:]
	}

	return
}
