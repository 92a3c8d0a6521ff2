package sha3hw

import (
	"encoding/hex"
	"math/big"

	"github.com/pkg/errors"
)

// DigestSize is the size, in bytes, of a SHA3-512 digest.
const DigestSize = 64

// Digest is a 512-bit hash output, in the byte order the hash produced it.
type Digest [DigestSize]byte

// ParseDigest parses an expected digest copied from a simulation log.
func ParseDigest(s string) (Digest, error) {
	var d Digest
	v, err := ParseHex(s, DigestSize*8)
	if err != nil {
		return d, errors.WithMessage(err, "digest")
	}
	v.FillBytes(d[:])
	return d, nil
}

// Hex returns the digest as 128 lowercase hex digits, big-endian.
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

func (d Digest) String() string {
	return d.Hex()
}

// Int returns the digest as a big-endian integer.
func (d Digest) Int() *big.Int {
	return DecodeBytesBE(d[:])
}

// Preview returns the leading bits of the digest as 0x-prefixed hex, as the
// hardware testbenches print them. bits is clamped to the digest width.
func (d Digest) Preview(bits int) string {
	n := min(max(bits/8, 0), DigestSize)
	return "0x" + hex.EncodeToString(d[:n])
}
