package sampling

import (
	"encoding/binary"
	"fmt"
	"io"
)

const sourceBufferSize = 512

// Source draws fixed-width uniform words from a PRNG.
// Reads are buffered. A read failure of the underlying PRNG
// means the entropy is exhausted: Source panics rather than
// returning degraded randomness.
// Source is not safe for concurrent use.
type Source struct {
	prng PRNG
	buf  []byte
	ptr  int
}

// NewSource returns a Source reading from prng.
func NewSource(prng PRNG) *Source {
	return &Source{
		prng: prng,
		buf:  make([]byte, sourceBufferSize),
		ptr:  sourceBufferSize,
	}
}

// NewKeyedSource returns a deterministic Source reading from
// a KeyedPRNG keyed with key.
func NewKeyedSource(key []byte) (*Source, error) {
	prng, err := NewKeyedPRNG(key)
	if err != nil {
		return nil, fmt.Errorf("cannot NewKeyedSource: %w", err)
	}
	return NewSource(prng), nil
}

func (s *Source) next(n int) []byte {
	if s.ptr+n > len(s.buf) {
		if _, err := io.ReadFull(s.prng, s.buf); err != nil {
			panic(fmt.Errorf("sampling: randomness source exhausted: %w", err))
		}
		s.ptr = 0
	}
	b := s.buf[s.ptr : s.ptr+n]
	s.ptr += n
	return b
}

// Uint32 returns a uniform 32-bit word.
func (s *Source) Uint32() uint32 {
	return binary.LittleEndian.Uint32(s.next(4))
}

// Uint64 returns a uniform 64-bit word.
func (s *Source) Uint64() uint64 {
	return binary.LittleEndian.Uint64(s.next(8))
}

// Backend names a PRNG construction.
type Backend string

const (
	// System reads the crypto/rand entropy pool. The seed is ignored.
	System = Backend("system")
	// Keyed is the blake2b XOF keyed with the seed.
	Keyed = Backend("keyed")
	// ChaCha is the ChaCha20 keystream keyed with the seed.
	ChaCha = Backend("chacha")
	// Fast is the buffered frand generator, seeded with the seed or
	// from the entropy pool if the seed is empty.
	Fast = Backend("fast")
)

// NewBackendSource returns a Source over the given backend. The deterministic
// backends derive their key from seed and label with DeriveKey, so that every
// label gets an independent stream.
func NewBackendSource(backend Backend, seed []byte, label string) (*Source, error) {

	switch backend {
	case System:
		prng, err := NewPRNG()
		if err != nil {
			return nil, fmt.Errorf("cannot NewBackendSource: %w", err)
		}
		return NewSource(prng), nil
	case Keyed:
		return NewKeyedSource(DeriveKey(seed, label))
	case ChaCha:
		prng, err := NewChaChaPRNG(DeriveKey(seed, label))
		if err != nil {
			return nil, fmt.Errorf("cannot NewBackendSource: %w", err)
		}
		return NewSource(prng), nil
	case Fast:
		if len(seed) == 0 {
			return NewSource(NewFastPRNG()), nil
		}
		return NewSource(NewFastPRNGFromSeed(DeriveKey(seed, label))), nil
	default:
		return nil, fmt.Errorf("cannot NewBackendSource: unknown backend %q", backend)
	}
}
