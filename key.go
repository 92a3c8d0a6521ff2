package sha3hw

import (
	"encoding/hex"
	"math/big"

	"github.com/pkg/errors"
)

const (
	// KeySize is the size, in bytes, of an HMAC key.
	KeySize = 64
	// BlockSize is the SHA3-512 rate in bytes: (1600 - 2*512) / 8 = 72.
	BlockSize = 72
	// IPad is the inner pad byte XORed into every byte of the padded key.
	IPad = 0x36
)

// Key is a 512-bit HMAC key in big-endian byte order.
type Key [KeySize]byte

// NewKey copies b into a Key. b must be exactly KeySize bytes.
func NewKey(b []byte) (Key, error) {
	var k Key
	if len(b) != KeySize {
		return k, errors.Wrapf(ErrInvalidKey, "got %d bytes", len(b))
	}
	copy(k[:], b)
	return k, nil
}

// KeyFromInt converts a 512-bit integer to a Key, big-endian.
func KeyFromInt(v *big.Int) (Key, error) {
	var k Key
	b, err := EncodeIntBE(v, KeySize)
	if err != nil {
		return k, errors.WithMessage(err, "key")
	}
	copy(k[:], b)
	return k, nil
}

// ParseKey parses a key given as 128 hex digits.
func ParseKey(s string) (Key, error) {
	digits, err := cleanHex(s)
	if err != nil {
		return Key{}, errors.WithMessage(err, "key")
	}
	if len(digits) != 2*KeySize {
		return Key{}, errors.Wrapf(ErrInvalidKey, "got %d hex characters, want %d", len(digits), 2*KeySize)
	}
	b, err := hex.DecodeString(digits)
	if err != nil {
		return Key{}, errors.Wrapf(ErrFormat, "key: %v", err)
	}
	return NewKey(b)
}

// PaddedBlock returns the key extended to the rate with 8 zero bytes.
func (k Key) PaddedBlock() [BlockSize]byte {
	var b [BlockSize]byte
	copy(b[:], k[:])
	return b
}

// IPadBlock returns the padded key XOR ipad, the block absorbed ahead of
// the message.
func (k Key) IPadBlock() [BlockSize]byte {
	b := k.PaddedBlock()
	xorPad(&b)
	return b
}

// Int returns the key as a big-endian integer.
func (k Key) Int() *big.Int {
	return DecodeBytesBE(k[:])
}

// String returns the key as 128 hex digits.
func (k Key) String() string {
	return hex.EncodeToString(k[:])
}

// xorPad XORs IPad into every byte of b.
func xorPad(b *[BlockSize]byte) {
	for i := range b {
		b[i] ^= IPad
	}
}
