// Package buffer implements methods for writing and reading fixed-width
// little-endian words to and from io.Writer and io.Reader.
package buffer

import (
	"fmt"
	"io"
)

// Writer is an interface for writers that buffer their output.
// This interface is notably implemented by the bufio.Writer type
// (see https://pkg.go.dev/bufio#Writer) and by the Buffer type.
type Writer interface {
	io.Writer
	Flush() (err error)
}

// Buffer is a simple []byte-based buffer that complies to the
// Writer interface and to io.Reader. Its backing slice has a
// fixed size: writes beyond capacity result in an error.
type Buffer struct {
	buf []byte
	n   int
	off int
}

// NewBufferSize creates a new Buffer with size capacity.
func NewBufferSize(size int) *Buffer {
	return &Buffer{buf: make([]byte, size)}
}

// Write writes p into b.
func (b *Buffer) Write(p []byte) (n int, err error) {
	if len(p)+b.n > len(b.buf) {
		return 0, fmt.Errorf("buffer too small")
	}
	n = copy(b.buf[b.n:], p)
	b.n += n
	return n, nil
}

// Flush doesn't do anything on this slice-based buffer.
func (b *Buffer) Flush() (err error) {
	return nil
}

// Bytes returns the written part of the backing slice.
func (b *Buffer) Bytes() []byte {
	return b.buf[:b.n]
}

// Reset re-initializes the read and write offsets of b.
func (b *Buffer) Reset() {
	b.n = 0
	b.off = 0
}

// Read reads up to len(p) written bytes from the read offset of b into p. It returns the
// number n of bytes read and io.EOF if n < len(p).
func (b *Buffer) Read(p []byte) (n int, err error) {
	n = copy(p, b.buf[b.off:b.n])
	b.off += n
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}
