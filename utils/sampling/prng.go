package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	"github.com/aead/chacha20/chacha"
	"github.com/hhcho/frand"
	"golang.org/x/crypto/blake2b"
)

// PRNG is an interface for secure generation of random bytes
type PRNG interface {
	io.Reader
}

// ThreadSafePRNG reads from the operating system entropy pool.
type ThreadSafePRNG struct {
}

// NewPRNG returns a new PRNG that is thread-safe
func NewPRNG() (*ThreadSafePRNG, error) {
	return &ThreadSafePRNG{}, nil
}

// Read reads bytes from the system entropy pool on sum.
func (prng *ThreadSafePRNG) Read(sum []byte) (n int, err error) {
	return rand.Read(sum)
}

// KeyedPRNG is a structure storing the parameters used to securely and *deterministically* generate
// sequences of random bytes using the hash function blake2b. Two KeyedPRNG instantiated with the
// same key produce the same stream, which makes failing comparison runs reproducible.
// WARNING: KeyedPRNG should NOT be called by multiple threads. It does not make sense to do so as the resulting
// sequence will not be deterministic for a given key. For a PRNG securely seeded with a private key use [ThreadSafePRNG].
type KeyedPRNG struct {
	mutex sync.Mutex
	key   []byte
	xof   blake2b.XOF
}

// NewKeyedPRNG creates a new instance of KeyedPRNG.
// Accepts an optional key, else set key=nil which is treated as key=[]byte{}
// WARNING: A PRNG INITIALISED WITH key=nil IS INSECURE!
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	var err error
	prng := new(KeyedPRNG)
	prng.key = make([]byte, len(key))
	copy(prng.key, key)
	if prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, key); err != nil {
		return nil, fmt.Errorf("cannot NewKeyedPRNG: %w", err)
	}
	return prng, nil
}

// Key returns a copy of the key used to seed the PRNG.
// This value can be used with `NewKeyedPRNG` to instantiate
// a new PRNG that will produce the same stream of bytes.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Read reads bytes from the KeyedPRNG on sum.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	return prng.xof.Read(sum)
}

// Reset resets the PRNG to its initial state.
func (prng *KeyedPRNG) Reset() {
	prng.mutex.Lock()
	defer prng.mutex.Unlock()
	prng.xof.Reset()
}

// ChaChaPRNG is a deterministic PRNG outputting the ChaCha20 keystream
// of a 32-byte key under the all-zero nonce.
type ChaChaPRNG struct {
	key    []byte
	cipher *chacha.Cipher
}

// NewChaChaPRNG creates a new ChaChaPRNG from a key of chacha.KeySize bytes.
func NewChaChaPRNG(key []byte) (*ChaChaPRNG, error) {
	if len(key) != chacha.KeySize {
		return nil, fmt.Errorf("cannot NewChaChaPRNG: invalid key size: expected %d but is %d", chacha.KeySize, len(key))
	}

	prng := &ChaChaPRNG{key: make([]byte, chacha.KeySize)}
	copy(prng.key, key)

	if err := prng.init(); err != nil {
		return nil, fmt.Errorf("cannot NewChaChaPRNG: %w", err)
	}

	return prng, nil
}

func (prng *ChaChaPRNG) init() (err error) {
	nonce := make([]byte, chacha.NonceSize)
	prng.cipher, err = chacha.NewCipher(nonce, prng.key, 20)
	return
}

// Key returns a copy of the key used to seed the PRNG.
func (prng *ChaChaPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Read writes the next len(sum) bytes of keystream on sum.
func (prng *ChaChaPRNG) Read(sum []byte) (n int, err error) {
	for i := range sum {
		sum[i] = 0
	}
	prng.cipher.XORKeyStream(sum, sum)
	return len(sum), nil
}

// Reset rewinds the keystream to its first byte.
func (prng *ChaChaPRNG) Reset() {
	if err := prng.init(); err != nil {
		// the key size has been checked at creation
		panic(err)
	}
}

// FastPRNG is a buffered ChaCha-based generator suited to
// high-volume benchmark runs where the system entropy pool
// would dominate the timings.
type FastPRNG struct {
	rng *frand.RNG
}

const fastPRNGBufferSize = 1024

// NewFastPRNG returns a FastPRNG seeded from the system entropy pool.
func NewFastPRNG() *FastPRNG {
	seed := make([]byte, chacha.KeySize)
	for i := 0; i < len(seed); i += 8 {
		binary.LittleEndian.PutUint64(seed[i:], RandUint64())
	}
	return NewFastPRNGFromSeed(seed)
}

// NewFastPRNGFromSeed returns a FastPRNG deterministically seeded with seed.
// The seed must be chacha.KeySize bytes long.
func NewFastPRNGFromSeed(seed []byte) *FastPRNG {
	return &FastPRNG{rng: frand.NewCustom(seed, fastPRNGBufferSize, 20)}
}

// Read reads bytes from the FastPRNG on sum.
func (prng *FastPRNG) Read(sum []byte) (n int, err error) {
	return prng.rng.Read(sum)
}
