package sha3hw

import (
	"math/big"

	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
)

const (
	// PUFInputBits is the width of the PUF-mode input.
	PUFInputBits = 704
	// PUFInputSize is PUFInputBits in bytes (22 words).
	PUFInputSize = PUFInputBits / 8
)

// HashPUF hashes a 704-bit PUF response the way the core's PUF path does:
// the integer is serialized whole, little-endian, into 88 bytes. No HMAC
// wrapping is applied.
func HashPUF(input *big.Int) (Digest, error) {
	b, err := EncodeIntLE(input, PUFInputSize)
	if err != nil {
		return Digest{}, errors.WithMessage(err, "PUF input")
	}
	return HashBytes(b), nil
}

// HashPUFBytes hashes an already serialized 88-byte PUF input.
func HashPUFBytes(b []byte) (Digest, error) {
	if len(b) != PUFInputSize {
		return Digest{}, errors.Wrapf(ErrRange, "PUF input is %d bytes, want %d", len(b), PUFInputSize)
	}
	return HashBytes(b), nil
}

// HashBlock hashes a word stream the way the core's block path does: each
// word least-significant byte first, words in order. No HMAC wrapping is
// applied.
func HashBlock(words []uint32) Digest {
	return HashBytes(EncodeWordsLE(words))
}

// HashBytes is plain SHA3-512.
func HashBytes(data []byte) Digest {
	return sha3.Sum512(data)
}
