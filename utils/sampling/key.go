package sampling

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// KeySize is the byte size of the keys returned by DeriveKey.
const KeySize = 32

// DeriveKey derives a KeySize-byte PRNG key from a seed and a domain-separation label.
// Distinct labels give independent keys, so one seed can drive many keyed streams.
func DeriveKey(seed []byte, label string) []byte {
	hasher := blake3.New()

	var length [8]byte
	binary.LittleEndian.PutUint64(length[:], uint64(len(label)))

	hasher.Write(length[:])
	hasher.Write([]byte(label))
	hasher.Write(seed)

	digest := hasher.Sum(nil)
	return digest[:KeySize]
}
